package main

import "testing"

func newMBC1Cartridge(t *testing.T, romBanks int) *Cartridge {
	t.Helper()
	rom := makeROM(byte(CartridgeMBC1RAM), 0x04, 0x03, "MBC1TEST") // 32 banks, 32KiB RAM
	cart, err := LoadCartridge(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cart
}

func TestMBC1RAMEnableRequiresLowNibbleA(t *testing.T) {
	cart := newMBC1Cartridge(t, 32)
	cart.WriteByte(0x0000, 0x0A)
	if !cart.ramEnabled {
		t.Fatal("RAM should be enabled by writing 0x0A")
	}
	cart.WriteByte(0x0000, 0x00)
	if cart.ramEnabled {
		t.Fatal("RAM should be disabled by writing anything but xA")
	}
}

func TestMBC1ROMBankZeroCorrectsToOne(t *testing.T) {
	cart := newMBC1Cartridge(t, 32)
	cart.WriteByte(0x2000, 0x00)
	if cart.romBank != 1 {
		t.Fatalf("romBank = %d, want 1 (bank 0 is not selectable)", cart.romBank)
	}
}

func TestMBC1ROMBankLowBits(t *testing.T) {
	cart := newMBC1Cartridge(t, 32)
	cart.WriteByte(0x2000, 0x05)
	if cart.romBank != 5 {
		t.Fatalf("romBank = %d, want 5", cart.romBank)
	}
}

func TestMBC1UpperBitsExtendROMBankInROMMode(t *testing.T) {
	cart := newMBC1Cartridge(t, 32)
	cart.WriteByte(0x2000, 0x01) // low 5 bits = 1
	cart.WriteByte(0x4000, 0x01) // upper 2 bits = 1 -> bank 0x21

	if cart.romBank != 0x21 {
		t.Fatalf("romBank = 0x%02X, want 0x21", cart.romBank)
	}
}

func TestMBC1UpperBitsSelectRAMBankInRAMMode(t *testing.T) {
	cart := newMBC1Cartridge(t, 32)
	cart.WriteByte(0x6000, 0x01) // switch to RAM banking mode
	cart.WriteByte(0x4000, 0x02)

	if cart.ramBank != 2 {
		t.Fatalf("ramBank = %d, want 2", cart.ramBank)
	}
	if cart.romBank != 1 {
		t.Fatalf("romBank = %d, should be untouched in RAM banking mode", cart.romBank)
	}
}

func TestMBC1RAMReadWriteWhenEnabled(t *testing.T) {
	cart := newMBC1Cartridge(t, 32)
	cart.WriteByte(0x0000, 0x0A) // enable RAM
	cart.WriteByte(0xA000, 0x77)

	requireEqualU8(t, "ram[0]", cart.ReadByte(0xA000), 0x77)
}

func TestMBC1RAMWriteIgnoredWhenDisabled(t *testing.T) {
	cart := newMBC1Cartridge(t, 32)
	cart.WriteByte(0xA000, 0x77) // RAM not enabled

	requireEqualU8(t, "disabled ram read", cart.ReadByte(0xA000), 0xFF)
}
