// stepper.go - the glue spec.md §4.5 calls the Stepper: advance the
// CPU by one instruction, advance the timer by the cycles that
// instruction spent, and raise the timer interrupt flag on overflow.
// This is deliberately a free function rather than a type: it owns no
// state of its own beyond the CPU and bus it's given.

package main

// Step executes one CPU instruction against bus and returns the
// number of machine cycles it spent. The timer advances by exactly
// that count, and a TIMA overflow during this step sets IF bit 2
// (0xFF0F) so a later interrupt dispatch can pick it up.
func Step(cpu *CPU, bus *MemoryBus) int {
	cycles := cpu.Step(bus)

	if bus.Timer.Tick(cycles) {
		bus.RequestInterrupt(intTimer)
	}

	return cycles
}
