// opcodes.go - initBaseOps populates the primary 256-entry dispatch
// table. Grounded on cpu_z80.go's initBaseOps: opcodes that share an
// operand-selection bit pattern are wired by a range loop over a
// closure rather than written out one case at a time; opcodes with no
// shared structure get an explicit assignment. See spec.md §9's design
// note on table-driven dispatch.

package main

func (c *CPU) initBaseOps() {
	for i := range c.baseOps {
		c.baseOps[i] = opUnknownBase
	}

	c.baseOps[0x00] = func(cpu *CPU, bus Bus) { cpu.tick(bus, 4) } // NOP
	c.baseOps[0x10] = func(cpu *CPU, bus Bus) {
		cpu.fetchByte(bus) // STOP's second byte, always 0x00 on real hardware
		cpu.tick(bus, 4)
	}

	c.wireLD8Bit()
	c.wireLD16Bit()
	c.wireIncDec8()
	c.wireIncDec16()
	c.wireAddHL()
	c.wireALU()
	c.wireRotateAccumulator()
	c.wireJumpsAndCalls()
	c.wirePushPop()
	c.wireMisc()
}

// wireLD8Bit wires LD r,r' (0x40-0x7F, 0x76 reserved for HALT) and
// LD r,n (0x06,0x0E,...,0x3E).
func (c *CPU) wireLD8Bit() {
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		op := byte(opcode)
		dest := (op >> 3) & 0x07
		src := op & 0x07
		c.baseOps[op] = func(cpu *CPU, bus Bus) {
			cpu.opLDRegReg(bus, dest, src)
		}
	}
	c.baseOps[0x76] = func(cpu *CPU, bus Bus) { cpu.opHALT(bus) }

	immOpcodes := [8]byte{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E}
	for dest, opcode := range immOpcodes {
		d := byte(dest)
		c.baseOps[opcode] = func(cpu *CPU, bus Bus) {
			cpu.opLDRegImm(bus, d)
		}
	}

	c.baseOps[0x02] = func(cpu *CPU, bus Bus) { cpu.opLDBCA(bus) }
	c.baseOps[0x12] = func(cpu *CPU, bus Bus) { cpu.opLDDEA(bus) }
	c.baseOps[0x0A] = func(cpu *CPU, bus Bus) { cpu.opLDABC(bus) }
	c.baseOps[0x1A] = func(cpu *CPU, bus Bus) { cpu.opLDADE(bus) }
	c.baseOps[0x22] = func(cpu *CPU, bus Bus) { cpu.opLDHLIncA(bus) }
	c.baseOps[0x2A] = func(cpu *CPU, bus Bus) { cpu.opLDAHLInc(bus) }
	c.baseOps[0x32] = func(cpu *CPU, bus Bus) { cpu.opLDHLDecA(bus) }
	c.baseOps[0x3A] = func(cpu *CPU, bus Bus) { cpu.opLDAHLDec(bus) }
	c.baseOps[0xE0] = func(cpu *CPU, bus Bus) { cpu.opLDHnA(bus) }
	c.baseOps[0xF0] = func(cpu *CPU, bus Bus) { cpu.opLDHAn(bus) }
	c.baseOps[0xE2] = func(cpu *CPU, bus Bus) { cpu.opLDCIndA(bus) }
	c.baseOps[0xF2] = func(cpu *CPU, bus Bus) { cpu.opLDACIndA(bus) }
	c.baseOps[0xEA] = func(cpu *CPU, bus Bus) { cpu.opLDNNA(bus) }
	c.baseOps[0xFA] = func(cpu *CPU, bus Bus) { cpu.opLDANN(bus) }
}

func (c *CPU) wireLD16Bit() {
	c.baseOps[0x01] = func(cpu *CPU, bus Bus) { cpu.opLDBCNN(bus) }
	c.baseOps[0x11] = func(cpu *CPU, bus Bus) { cpu.opLDDENN(bus) }
	c.baseOps[0x21] = func(cpu *CPU, bus Bus) { cpu.opLDHLNN(bus) }
	c.baseOps[0x31] = func(cpu *CPU, bus Bus) { cpu.opLDSPNN(bus) }
	c.baseOps[0x08] = func(cpu *CPU, bus Bus) { cpu.opLDNNSP(bus) }
	c.baseOps[0xF9] = func(cpu *CPU, bus Bus) { cpu.opLDSPHL(bus) }
	c.baseOps[0xF8] = func(cpu *CPU, bus Bus) { cpu.opLDHLSPn(bus) }
	c.baseOps[0xE8] = func(cpu *CPU, bus Bus) { cpu.opADDSPn(bus) }
}

// wireIncDec8 wires INC r / DEC r across the canonical B,C,D,E,H,L,(HL),A
// register-code ordering shared with LD's dest/src fields.
func (c *CPU) wireIncDec8() {
	for reg := byte(0); reg < 8; reg++ {
		r := reg
		incOp := 0x04 + 8*reg
		decOp := 0x05 + 8*reg
		cycles := byte(4)
		if r == 6 {
			cycles = 12
		}
		c.baseOps[incOp] = func(cpu *CPU, bus Bus) {
			cpu.writeReg8(bus, r, cpu.inc8(cpu.readReg8(bus, r)))
			cpu.tick(bus, int(cycles))
		}
		c.baseOps[decOp] = func(cpu *CPU, bus Bus) {
			cpu.writeReg8(bus, r, cpu.dec8(cpu.readReg8(bus, r)))
			cpu.tick(bus, int(cycles))
		}
	}
}

func (c *CPU) wireIncDec16() {
	c.baseOps[0x03] = func(cpu *CPU, bus Bus) { cpu.SetBC(cpu.BC() + 1); cpu.tick(bus, 8) }
	c.baseOps[0x13] = func(cpu *CPU, bus Bus) { cpu.SetDE(cpu.DE() + 1); cpu.tick(bus, 8) }
	c.baseOps[0x23] = func(cpu *CPU, bus Bus) { cpu.SetHL(cpu.HL() + 1); cpu.tick(bus, 8) }
	c.baseOps[0x33] = func(cpu *CPU, bus Bus) { cpu.SP++; cpu.tick(bus, 8) }
	c.baseOps[0x0B] = func(cpu *CPU, bus Bus) { cpu.SetBC(cpu.BC() - 1); cpu.tick(bus, 8) }
	c.baseOps[0x1B] = func(cpu *CPU, bus Bus) { cpu.SetDE(cpu.DE() - 1); cpu.tick(bus, 8) }
	c.baseOps[0x2B] = func(cpu *CPU, bus Bus) { cpu.SetHL(cpu.HL() - 1); cpu.tick(bus, 8) }
	c.baseOps[0x3B] = func(cpu *CPU, bus Bus) { cpu.SP--; cpu.tick(bus, 8) }
}

func (c *CPU) wireAddHL() {
	c.baseOps[0x09] = func(cpu *CPU, bus Bus) { cpu.addHL(cpu.BC()); cpu.tick(bus, 8) }
	c.baseOps[0x19] = func(cpu *CPU, bus Bus) { cpu.addHL(cpu.DE()); cpu.tick(bus, 8) }
	c.baseOps[0x29] = func(cpu *CPU, bus Bus) { cpu.addHL(cpu.HL()); cpu.tick(bus, 8) }
	c.baseOps[0x39] = func(cpu *CPU, bus Bus) { cpu.addHL(cpu.SP); cpu.tick(bus, 8) }
}

// wireALU wires the 0x80-0xBF ALU-A,r block and the matching 0xC6.. row
// of ALU-A,n immediate forms.
func (c *CPU) wireALU() {
	for opcode := 0x80; opcode <= 0xBF; opcode++ {
		op := byte(opcode)
		group := aluOp((op - 0x80) >> 3)
		reg := op & 0x07
		c.baseOps[op] = func(cpu *CPU, bus Bus) {
			value := cpu.readReg8(bus, reg)
			cpu.performALU(group, value)
			if reg == 6 {
				cpu.tick(bus, 8)
			} else {
				cpu.tick(bus, 4)
			}
		}
	}

	immOpcodes := [8]byte{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE}
	for group, opcode := range immOpcodes {
		g := aluOp(group)
		c.baseOps[opcode] = func(cpu *CPU, bus Bus) {
			value := cpu.fetchByte(bus)
			cpu.performALU(g, value)
			cpu.tick(bus, 8)
		}
	}
}

func (c *CPU) wireRotateAccumulator() {
	c.baseOps[0x07] = func(cpu *CPU, bus Bus) { cpu.opRLCA(bus) }
	c.baseOps[0x0F] = func(cpu *CPU, bus Bus) { cpu.opRRCA(bus) }
	c.baseOps[0x17] = func(cpu *CPU, bus Bus) { cpu.opRLA(bus) }
	c.baseOps[0x1F] = func(cpu *CPU, bus Bus) { cpu.opRRA(bus) }
}

func (c *CPU) wireJumpsAndCalls() {
	c.baseOps[0xC3] = func(cpu *CPU, bus Bus) { cpu.opJPNN(bus) }
	c.baseOps[0xE9] = func(cpu *CPU, bus Bus) { cpu.opJPHL(bus) }
	c.baseOps[0xC2] = func(cpu *CPU, bus Bus) { cpu.jpCond(bus, !cpu.Flag(flagZ)) }
	c.baseOps[0xCA] = func(cpu *CPU, bus Bus) { cpu.jpCond(bus, cpu.Flag(flagZ)) }
	c.baseOps[0xD2] = func(cpu *CPU, bus Bus) { cpu.jpCond(bus, !cpu.Flag(flagC)) }
	c.baseOps[0xDA] = func(cpu *CPU, bus Bus) { cpu.jpCond(bus, cpu.Flag(flagC)) }

	c.baseOps[0x18] = func(cpu *CPU, bus Bus) { cpu.opJR(bus) }
	c.baseOps[0x20] = func(cpu *CPU, bus Bus) { cpu.jrCond(bus, !cpu.Flag(flagZ)) }
	c.baseOps[0x28] = func(cpu *CPU, bus Bus) { cpu.jrCond(bus, cpu.Flag(flagZ)) }
	c.baseOps[0x30] = func(cpu *CPU, bus Bus) { cpu.jrCond(bus, !cpu.Flag(flagC)) }
	c.baseOps[0x38] = func(cpu *CPU, bus Bus) { cpu.jrCond(bus, cpu.Flag(flagC)) }

	c.baseOps[0xCD] = func(cpu *CPU, bus Bus) { cpu.opCALLNN(bus) }
	c.baseOps[0xC4] = func(cpu *CPU, bus Bus) { cpu.callCond(bus, !cpu.Flag(flagZ)) }
	c.baseOps[0xCC] = func(cpu *CPU, bus Bus) { cpu.callCond(bus, cpu.Flag(flagZ)) }
	c.baseOps[0xD4] = func(cpu *CPU, bus Bus) { cpu.callCond(bus, !cpu.Flag(flagC)) }
	c.baseOps[0xDC] = func(cpu *CPU, bus Bus) { cpu.callCond(bus, cpu.Flag(flagC)) }

	c.baseOps[0xC9] = func(cpu *CPU, bus Bus) { cpu.opRET(bus) }
	c.baseOps[0xD9] = func(cpu *CPU, bus Bus) { cpu.opRETI(bus) }
	c.baseOps[0xC0] = func(cpu *CPU, bus Bus) { cpu.retCond(bus, !cpu.Flag(flagZ)) }
	c.baseOps[0xC8] = func(cpu *CPU, bus Bus) { cpu.retCond(bus, cpu.Flag(flagZ)) }
	c.baseOps[0xD0] = func(cpu *CPU, bus Bus) { cpu.retCond(bus, !cpu.Flag(flagC)) }
	c.baseOps[0xD8] = func(cpu *CPU, bus Bus) { cpu.retCond(bus, cpu.Flag(flagC)) }

	rstVectors := [8]byte{0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF}
	for i, opcode := range rstVectors {
		vector := uint16(i) * 8
		c.baseOps[opcode] = func(cpu *CPU, bus Bus) { cpu.opRST(bus, vector) }
	}

	c.baseOps[0xCB] = func(cpu *CPU, bus Bus) { cpu.opCBPrefix(bus) }
}

func (c *CPU) wirePushPop() {
	c.baseOps[0xC5] = func(cpu *CPU, bus Bus) { cpu.opPUSH(bus, cpu.BC()) }
	c.baseOps[0xD5] = func(cpu *CPU, bus Bus) { cpu.opPUSH(bus, cpu.DE()) }
	c.baseOps[0xE5] = func(cpu *CPU, bus Bus) { cpu.opPUSH(bus, cpu.HL()) }
	c.baseOps[0xF5] = func(cpu *CPU, bus Bus) { cpu.opPUSH(bus, cpu.AF()) }
	c.baseOps[0xC1] = func(cpu *CPU, bus Bus) { cpu.opPOPBC(bus) }
	c.baseOps[0xD1] = func(cpu *CPU, bus Bus) { cpu.opPOPDE(bus) }
	c.baseOps[0xE1] = func(cpu *CPU, bus Bus) { cpu.opPOPHL(bus) }
	c.baseOps[0xF1] = func(cpu *CPU, bus Bus) { cpu.opPOPAF(bus) }
}

func (c *CPU) wireMisc() {
	c.baseOps[0x27] = func(cpu *CPU, bus Bus) { cpu.opDAA(bus) }
	c.baseOps[0x2F] = func(cpu *CPU, bus Bus) { cpu.opCPL(bus) }
	c.baseOps[0x37] = func(cpu *CPU, bus Bus) { cpu.opSCF(bus) }
	c.baseOps[0x3F] = func(cpu *CPU, bus Bus) { cpu.opCCF(bus) }
	c.baseOps[0xF3] = func(cpu *CPU, bus Bus) { cpu.opDI(bus) }
	c.baseOps[0xFB] = func(cpu *CPU, bus Bus) { cpu.opEI(bus) }
}

// opUnknownBase handles any opcode byte with no defined instruction
// (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD on
// the real part). Per spec.md §7 this is a fatal condition.
func opUnknownBase(c *CPU, bus Bus) {
	panic(&UnknownOpcodeError{Opcode: bus.ReadByte(c.PC - 1), PC: c.PC - 1})
}
