package main

import "testing"

func TestBusRoundTripWRAM(t *testing.T) {
	bus := NewMemoryBus()
	bus.WriteByte(0xC010, 0x42)
	requireEqualU8(t, "0xC010", bus.ReadByte(0xC010), 0x42)
}

func TestBusEchoMirrorsWRAM(t *testing.T) {
	bus := NewMemoryBus()
	bus.WriteByte(0xC010, 0x99)
	requireEqualU8(t, "echo read", bus.ReadByte(0xE010), 0x99)

	bus.WriteByte(0xE020, 0x77)
	requireEqualU8(t, "WRAM after echo write", bus.ReadByte(0xC020), 0x77)
}

func TestBusUnusableRegionReadsFF(t *testing.T) {
	bus := NewMemoryBus()
	bus.WriteByte(0xFEA0, 0x55) // discarded
	requireEqualU8(t, "0xFEA0", bus.ReadByte(0xFEA0), 0xFF)
}

func TestBusHRAMAndIE(t *testing.T) {
	bus := NewMemoryBus()
	bus.WriteByte(0xFF80, 0x11)
	bus.WriteByte(0xFFFF, 0x1F)

	requireEqualU8(t, "HRAM", bus.ReadByte(0xFF80), 0x11)
	requireEqualU8(t, "IE", bus.ReadByte(0xFFFF), 0x1F)
}

func TestBusTimerRegistersRouteToTimer(t *testing.T) {
	bus := NewMemoryBus()
	bus.WriteByte(0xFF07, 0x07)
	requireEqualU8(t, "TAC via bus", bus.ReadByte(0xFF07), 0x07)
	requireEqualU8(t, "TAC via timer", bus.Timer.ReadRegister(0xFF07), 0x07)
}

func TestBusFallsThroughToBackingArrayWithoutCartridge(t *testing.T) {
	bus := NewMemoryBus()
	bus.WriteByte(0x0100, 0xAB)
	requireEqualU8(t, "cartridge-space fallback", bus.ReadByte(0x0100), 0xAB)
}

func TestBusReadWriteWord(t *testing.T) {
	bus := NewMemoryBus()
	bus.WriteWord(0xC000, 0xBEEF)

	requireEqualU8(t, "low byte", bus.ReadByte(0xC000), 0xEF)
	requireEqualU8(t, "high byte", bus.ReadByte(0xC001), 0xBE)
	requireEqualU16(t, "word", bus.ReadWord(0xC000), 0xBEEF)
}

func TestBusRequestInterruptSetsIFBit(t *testing.T) {
	bus := NewMemoryBus()
	bus.RequestInterrupt(intVBlank)
	bus.RequestInterrupt(intTimer)

	requireEqualU8(t, "IF", bus.ReadByte(ifRegister), 0x05)
}
