// main.go - CLI entry point: `run <rom>` free-runs a cartridge, `test
// <rom> <log>` runs it while writing a trace log for diffing against
// a reference. Grounded on oisee-z80-optimizer/cmd/z80opt/main.go's
// cobra RunE/subcommand layout; x/term.IsTerminal gates ANSI coloring
// on stderr the way the teacher narrows its raw-terminal dependency to
// a single feature check.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	root := &cobra.Command{
		Use:   "gameboy",
		Short: "A Sharp LR35902 (\"DMG\") interpreter core",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newTestCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <rom>",
		Short: "Load a cartridge and run it until it halts forever or panics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cpu, bus, err := loadMachine(args[0])
			if err != nil {
				printError(err)
				return err
			}

			runUntilStuck(cpu, bus)
			return nil
		},
	}
}

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <rom> <log>",
		Short: "Run a cartridge, writing a trace line per instruction to <log>",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cpu, bus, err := loadMachine(args[0])
			if err != nil {
				printError(err)
				return err
			}

			logFile, err := os.Create(args[1])
			if err != nil {
				printError(fmt.Errorf("log file create failed: %w", err))
				return err
			}
			defer logFile.Close()

			runWithTrace(cpu, bus, logFile)
			return nil
		},
	}
}

func loadMachine(romPath string) (*CPU, *MemoryBus, error) {
	data, err := os.ReadFile(romPath)
	if err != nil {
		return nil, nil, fmt.Errorf("ROM load failed: %w", err)
	}

	cart, err := LoadCartridge(data)
	if err != nil {
		return nil, nil, fmt.Errorf("ROM load failed: %w", err)
	}

	log.Printf("loaded ROM: %s (type 0x%02X)", cart.Header().Title, byte(cart.Header().Type))
	log.Printf("ROM banks: %d, RAM size: %d bytes", cart.Header().ROMBanks, cart.Header().RAMSize)

	bus := NewMemoryBus()
	bus.Cartridge = cart

	cpu := NewCPU()
	return cpu, bus, nil
}

// runUntilStuck free-runs the machine until it halts. Per spec, HALT
// suspends the CPU and the harness stops stepping in that state -
// there is no PPU/joypad surface in this core to later wake it, so a
// halted CPU here means the program has nothing left to do.
func runUntilStuck(cpu *CPU, bus *MemoryBus) {
	for !cpu.Halted {
		Step(cpu, bus)
	}
}

func runWithTrace(cpu *CPU, bus *MemoryBus, logFile *os.File) {
	for !cpu.Halted {
		fmt.Fprint(logFile, TraceLine(cpu, bus))
		Step(cpu, bus)
	}
}

func printError(err error) {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "\x1b[31merror:\x1b[0m %s\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
}
