// cartridge.go - ROM file loading and header parsing. Grounded on
// original_source/src/cartridge/mod.rs for the exact header field
// offsets and size tables, written in the parse-and-return-error shape
// sid_parser.go/ay_parser.go use elsewhere in the pack.

package main

import "strings"

type CartridgeType byte

const (
	CartridgeROMOnly        CartridgeType = 0x00
	CartridgeMBC1           CartridgeType = 0x01
	CartridgeMBC1RAM        CartridgeType = 0x02
	CartridgeMBC1RAMBattery CartridgeType = 0x03
)

// CartridgeHeader is the parsed subset of the 0x0100-0x014F cartridge
// header this core cares about.
type CartridgeHeader struct {
	Title string
	Type  CartridgeType
	// ROMBanks is the number of 16KiB ROM banks on the cartridge.
	ROMBanks int
	// RAMSize is the total external RAM size in bytes.
	RAMSize int
}

var romBankCounts = map[byte]int{
	0x00: 2,
	0x01: 4,
	0x02: 8,
	0x03: 16,
	0x04: 32,
	0x05: 64,
	0x06: 128,
	0x07: 256,
	0x08: 512,
}

var ramSizes = map[byte]int{
	0x00: 0,
	0x01: 2048,
	0x02: 8192,
	0x03: 32768,
	0x04: 131072,
	0x05: 65536,
}

func parseCartridgeHeader(rom []byte) (CartridgeHeader, error) {
	if len(rom) < 0x0150 {
		return CartridgeHeader{}, &BadRomError{Reason: "rom too small to contain a valid header"}
	}

	title := strings.TrimRight(string(rom[0x0134:0x0144]), "\x00")

	romBanks, ok := romBankCounts[rom[0x0148]]
	if !ok {
		return CartridgeHeader{}, &BadRomError{Reason: "unrecognised rom size code"}
	}

	ramSize, ok := ramSizes[rom[0x0149]]
	if !ok {
		return CartridgeHeader{}, &BadRomError{Reason: "unrecognised ram size code"}
	}

	return CartridgeHeader{
		Title:    title,
		Type:     CartridgeType(rom[0x0147]),
		ROMBanks: romBanks,
		RAMSize:  ramSize,
	}, nil
}

// Cartridge is the loaded ROM image plus its external RAM and MBC1
// banking state. ROM-only cartridges never touch the banking fields;
// MBC1 behavior lives in mbc1.go.
type Cartridge struct {
	rom    []byte
	ram    []byte
	header CartridgeHeader

	romBank     int
	ramBank     int
	ramEnabled  bool
	bankingMode byte // 0 = ROM banking mode, 1 = RAM banking mode
}

// LoadCartridge parses data as a cartridge image. data is not copied;
// callers should not mutate it afterward.
func LoadCartridge(data []byte) (*Cartridge, error) {
	header, err := parseCartridgeHeader(data)
	if err != nil {
		return nil, err
	}

	return &Cartridge{
		rom:     data,
		ram:     make([]byte, header.RAMSize),
		header:  header,
		romBank: 1,
	}, nil
}

func (c *Cartridge) Header() CartridgeHeader {
	return c.header
}

func (c *Cartridge) hasMBC1() bool {
	switch c.header.Type {
	case CartridgeMBC1, CartridgeMBC1RAM, CartridgeMBC1RAMBattery:
		return true
	default:
		return false
	}
}

// ReadByte reads a ROM or external-RAM address. Out-of-range bank
// access is not an error (spec.md §7): it silently returns 0xFF.
func (c *Cartridge) ReadByte(addr uint16) byte {
	switch {
	case addr <= 0x3FFF:
		return c.rom[addr]

	case addr <= 0x7FFF:
		offset := c.romBank*0x4000 + int(addr-0x4000)
		if offset >= len(c.rom) {
			return 0xFF
		}
		return c.rom[offset]

	case addr >= 0xA000 && addr <= 0xBFFF:
		if !c.ramEnabled || len(c.ram) == 0 {
			return 0xFF
		}
		offset := c.ramBank*0x2000 + int(addr-0xA000)
		if offset >= len(c.ram) {
			return 0xFF
		}
		return c.ram[offset]

	default:
		return 0xFF
	}
}

// WriteByte routes a write into cartridge address space. ROM-only
// cartridges ignore all writes; MBC1 cartridges route through mbc1.go.
func (c *Cartridge) WriteByte(addr uint16, value byte) {
	if c.hasMBC1() {
		c.writeMBC1(addr, value)
	}
}
