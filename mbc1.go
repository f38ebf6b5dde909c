// mbc1.go - the MBC1 bank-control write state machine. Grounded
// directly on original_source/src/cartridge/mod.rs's write_mbc1: four
// address windows latch banking state, none of them write ROM bytes.

package main

func (c *Cartridge) writeMBC1(addr uint16, value byte) {
	switch {
	case addr <= 0x1FFF: // RAM enable
		c.ramEnabled = value&0x0F == 0x0A

	case addr <= 0x3FFF: // ROM bank number, low 5 bits
		bank := int(value & 0x1F)
		if bank == 0 {
			bank = 1
		}
		c.romBank = c.romBank&^0x1F | bank

	case addr <= 0x5FFF: // RAM bank number, or upper 2 bits of ROM bank
		bits := int(value & 0x03)
		if c.bankingMode == 0 {
			c.romBank = c.romBank&0x1F | bits<<5
		} else {
			c.ramBank = bits
		}

	case addr <= 0x7FFF: // banking mode select
		c.bankingMode = value & 0x01

	case addr >= 0xA000 && addr <= 0xBFFF: // external RAM
		if !c.ramEnabled || len(c.ram) == 0 {
			return
		}
		offset := c.ramBank*0x2000 + int(addr-0xA000)
		if offset < len(c.ram) {
			c.ram[offset] = value
		}
	}
}
