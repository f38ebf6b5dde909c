// errors.go - the three error shapes spec.md §7 distinguishes: a
// non-recoverable cartridge load failure, a fatal unknown-opcode fault,
// and the (not-an-error) silent 0xFF returned for out-of-range bank
// access. Grounded on sid_parser.go/ay_parser.go's plain errors.New/
// fmt.Errorf style - nothing in the pack reaches for an error-wrapping
// library for this kind of parse failure.

package main

import "fmt"

// BadRomError reports a cartridge file that failed to load: too short
// to contain a header, or carrying a ROM or RAM size code outside the
// handled enumerations. The cartridge-type byte is not validated.
type BadRomError struct {
	Reason string
}

func (e *BadRomError) Error() string {
	return fmt.Sprintf("bad rom: %s", e.Reason)
}

// UnknownOpcodeError is fatal: the interpreter has no handler for the
// given opcode at the given address. Callers are expected to let this
// propagate as a panic rather than recover from it - per spec.md §7 an
// unknown opcode means the emulated program (or the interpreter's
// opcode map) is wrong, not a condition the core can run through.
type UnknownOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}
