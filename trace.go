// trace.go - the fixed-format per-step trace line used by the `test`
// subcommand to diff emulated execution against a reference log.
// Grounded on debug_cpu_z80.go's register-snapshot approach, trimmed
// to the single fixed line format spec.md §6 defines.

package main

import "fmt"

// TraceLine formats one instruction-boundary snapshot: the full
// register file plus the four bytes at and following PC, exactly as
// spec.md §6 specifies - this format is consumed by tools that expect
// it byte-for-byte, so field order and width are not cosmetic.
func TraceLine(c *CPU, bus Bus) string {
	pc := c.PC
	pcmem := [4]byte{
		bus.ReadByte(pc),
		bus.ReadByte(pc + 1),
		bus.ReadByte(pc + 2),
		bus.ReadByte(pc + 3),
	}

	return fmt.Sprintf(
		"A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X\n",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, pc,
		pcmem[0], pcmem[1], pcmem[2], pcmem[3],
	)
}
