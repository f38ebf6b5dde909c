// ld.go - the LD register-transfer family. Grounded on cpu_z80.go's
// opLDRegReg/opLDRegImm: operand-category encoded in the opcode bits,
// executed through a small number of generic routines (spec.md §9's
// "table-driven implementation" design note).

package main

func (c *CPU) opLDRegReg(bus Bus, dest, src byte) {
	value := c.readReg8(bus, src)
	c.writeReg8(bus, dest, value)
	if dest == 6 || src == 6 {
		c.tick(bus, 8)
	} else {
		c.tick(bus, 4)
	}
}

func (c *CPU) opLDRegImm(bus Bus, dest byte) {
	value := c.fetchByte(bus)
	c.writeReg8(bus, dest, value)
	if dest == 6 {
		c.tick(bus, 12)
	} else {
		c.tick(bus, 8)
	}
}

func (c *CPU) opLDBCNN(bus Bus) {
	c.SetBC(c.fetchWord(bus))
	c.tick(bus, 12)
}

func (c *CPU) opLDDENN(bus Bus) {
	c.SetDE(c.fetchWord(bus))
	c.tick(bus, 12)
}

func (c *CPU) opLDHLNN(bus Bus) {
	c.SetHL(c.fetchWord(bus))
	c.tick(bus, 12)
}

func (c *CPU) opLDSPNN(bus Bus) {
	c.SP = c.fetchWord(bus)
	c.tick(bus, 12)
}

func (c *CPU) opLDNNSP(bus Bus) {
	addr := c.fetchWord(bus)
	bus.WriteByte(addr, byte(c.SP))
	bus.WriteByte(addr+1, byte(c.SP>>8))
	c.tick(bus, 20)
}

func (c *CPU) opLDSPHL(bus Bus) {
	c.SP = c.HL()
	c.tick(bus, 8)
}

func (c *CPU) opLDHLSPn(bus Bus) {
	disp := int8(c.fetchByte(bus))
	result := c.addSPSigned(disp)
	c.SetFlag(flagZ, false)
	c.SetFlag(flagN, false)
	c.SetHL(result)
	c.tick(bus, 12)
}

func (c *CPU) opADDSPn(bus Bus) {
	disp := int8(c.fetchByte(bus))
	result := c.addSPSigned(disp)
	c.SetFlag(flagZ, false)
	c.SetFlag(flagN, false)
	c.SP = result
	c.tick(bus, 16)
}

func (c *CPU) opLDBCA(bus Bus) {
	bus.WriteByte(c.BC(), c.A)
	c.tick(bus, 8)
}

func (c *CPU) opLDDEA(bus Bus) {
	bus.WriteByte(c.DE(), c.A)
	c.tick(bus, 8)
}

func (c *CPU) opLDABC(bus Bus) {
	c.A = bus.ReadByte(c.BC())
	c.tick(bus, 8)
}

func (c *CPU) opLDADE(bus Bus) {
	c.A = bus.ReadByte(c.DE())
	c.tick(bus, 8)
}

func (c *CPU) opLDHLIncA(bus Bus) {
	bus.WriteByte(c.HL(), c.A)
	c.SetHL(c.HL() + 1)
	c.tick(bus, 8)
}

func (c *CPU) opLDAHLInc(bus Bus) {
	c.A = bus.ReadByte(c.HL())
	c.SetHL(c.HL() + 1)
	c.tick(bus, 8)
}

func (c *CPU) opLDHLDecA(bus Bus) {
	bus.WriteByte(c.HL(), c.A)
	c.SetHL(c.HL() - 1)
	c.tick(bus, 8)
}

func (c *CPU) opLDAHLDec(bus Bus) {
	c.A = bus.ReadByte(c.HL())
	c.SetHL(c.HL() - 1)
	c.tick(bus, 8)
}

func (c *CPU) opLDHnA(bus Bus) {
	offset := c.fetchByte(bus)
	bus.WriteByte(0xFF00|uint16(offset), c.A)
	c.tick(bus, 12)
}

func (c *CPU) opLDHAn(bus Bus) {
	offset := c.fetchByte(bus)
	c.A = bus.ReadByte(0xFF00 | uint16(offset))
	c.tick(bus, 12)
}

func (c *CPU) opLDCIndA(bus Bus) {
	bus.WriteByte(0xFF00|uint16(c.C), c.A)
	c.tick(bus, 8)
}

func (c *CPU) opLDACIndA(bus Bus) {
	c.A = bus.ReadByte(0xFF00 | uint16(c.C))
	c.tick(bus, 8)
}

func (c *CPU) opLDNNA(bus Bus) {
	addr := c.fetchWord(bus)
	bus.WriteByte(addr, c.A)
	c.tick(bus, 16)
}

func (c *CPU) opLDANN(bus Bus) {
	addr := c.fetchWord(bus)
	c.A = bus.ReadByte(addr)
	c.tick(bus, 16)
}
