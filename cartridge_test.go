package main

import "testing"

func makeROM(cartType, romSizeCode, ramSizeCode byte, title string) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0134:0x0144], title)
	rom[0x0147] = cartType
	rom[0x0148] = romSizeCode
	rom[0x0149] = ramSizeCode
	return rom
}

func TestLoadCartridgeParsesHeader(t *testing.T) {
	rom := makeROM(byte(CartridgeMBC1), 0x01, 0x02, "TESTGAME")

	cart, err := LoadCartridge(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cart.Header().Title != "TESTGAME" {
		t.Fatalf("Title = %q, want TESTGAME", cart.Header().Title)
	}
	if cart.Header().ROMBanks != 4 {
		t.Fatalf("ROMBanks = %d, want 4", cart.Header().ROMBanks)
	}
	if cart.Header().RAMSize != 8192 {
		t.Fatalf("RAMSize = %d, want 8192", cart.Header().RAMSize)
	}
}

func TestLoadCartridgeTooSmallIsBadRom(t *testing.T) {
	_, err := LoadCartridge(make([]byte, 0x10))
	if err == nil {
		t.Fatal("expected BadRomError for a truncated file")
	}
	if _, ok := err.(*BadRomError); !ok {
		t.Fatalf("err = %v (%T), want *BadRomError", err, err)
	}
}

func TestLoadCartridgeInvalidSizeCodeIsBadRom(t *testing.T) {
	rom := makeROM(byte(CartridgeROMOnly), 0xFE, 0x00, "BAD")
	_, err := LoadCartridge(rom)
	if err == nil {
		t.Fatal("expected BadRomError for an invalid rom size code")
	}
}

func TestCartridgeOutOfRangeBankReadsFF(t *testing.T) {
	rom := makeROM(byte(CartridgeMBC1), 0x00, 0x00, "SMALL") // 2 banks, 32KiB total
	cart, err := LoadCartridge(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart.romBank = 5 // out of range for a 2-bank rom

	requireEqualU8(t, "out-of-range bank read", cart.ReadByte(0x4000), 0xFF)
}

func TestCartridgeRAMDisabledByDefault(t *testing.T) {
	rom := makeROM(byte(CartridgeMBC1RAM), 0x00, 0x02, "RAMTEST")
	cart, err := LoadCartridge(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	requireEqualU8(t, "disabled RAM read", cart.ReadByte(0xA000), 0xFF)
}

func TestROMOnlyCartridgeIgnoresWrites(t *testing.T) {
	rom := makeROM(byte(CartridgeROMOnly), 0x00, 0x00, "ROMONLY")
	cart, err := LoadCartridge(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart.WriteByte(0x2000, 0x03) // would select ROM bank 3 under MBC1
	requireEqualU8(t, "romBank unchanged", byte(cart.romBank), 1)
}
