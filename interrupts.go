// interrupts.go - interrupt-master-enable handling, EI's one-instruction
// delay, and HALT/the halt bug. Per spec.md §1 this core records
// interrupt requests into IF (0xFF0F) but never consumes them; fixed
// vector dispatch, IF-bit clearing, and waking a halted CPU from a
// pending request are the interrupt-servicing sequencer's job, named
// out of scope at the bus boundary. A HALT'd CPU only resumes stepping
// when the external host decides to - see spec.md §5.
//
// The halt bug below is a pure fetch-quirk of HALT itself (spec.md
// §9(b)): deciding whether PC repeats only reads IF/IE, it doesn't
// service or clear anything.

package main

const (
	ifRegister = 0xFF0F
	ieRegister = 0xFFFF

	intVBlank = 0
	intLCD    = 1
	intTimer  = 2
	intSerial = 3
	intJoypad = 4
)

func (c *CPU) opHALT(bus Bus) {
	ime := c.IME
	pending := bus.ReadByte(ifRegister) & bus.ReadByte(ieRegister) & 0x1F
	if !ime && pending != 0 {
		// Halt bug: the next opcode fetch does not advance PC, so the
		// byte following HALT is read (and executed) twice.
		c.haltBugArmed = true
	} else {
		c.Halted = true
	}
	c.tick(bus, 4)
}

func (c *CPU) opDI(bus Bus) {
	c.IME = false
	c.imeDelay = 0
	c.tick(bus, 4)
}

func (c *CPU) opEI(bus Bus) {
	c.imeDelay = 2
	c.tick(bus, 4)
}
