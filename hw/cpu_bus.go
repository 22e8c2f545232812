package hw

import (
	"famicore/emu/log"
)

// CPUBus is the 2A03 address space. It owns the console 2 KiB internal RAM
// and routes the remaining ranges:
//
//	$0000-$1FFF  internal RAM, mirrored every 2 KiB
//	$2000-$3FFF  PPU register file, mirrored every 8 bytes
//	$4000-$4017  APU and IO registers (stubbed)
//	$4018-$401F  disabled test registers (stubbed)
//	$4020-$FFFF  cartridge
type CPUBus struct {
	RAM  [0x800]uint8
	PPU  *PPU
	Cart *Cartridge
}

func (b *CPUBus) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.RAM[addr&0x07FF]

	case addr < 0x4000:
		return b.PPU.ReadReg(uint8(addr & 7))

	case addr < 0x4020:
		// APU, controllers and test registers are not emulated.
		log.ModBus.DebugZ("read from IO stub").Hex16("addr", addr).End()
		return 0

	default:
		val, ok := b.Cart.CPURead(addr)
		if !ok {
			log.ModBus.WarnZ("unhandled bus read").Hex16("addr", addr).End()
			return 0
		}
		return val
	}
}

func (b *CPUBus) Write8(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.RAM[addr&0x07FF] = val

	case addr < 0x4000:
		b.PPU.WriteReg(uint8(addr&7), val)

	case addr < 0x4020:
		log.ModBus.DebugZ("write to IO stub").
			Hex16("addr", addr).
			Hex8("val", val).
			End()

	default:
		if !b.Cart.CPUWrite(addr, val) {
			log.ModBus.WarnZ("unhandled bus write").
				Hex16("addr", addr).
				Hex8("val", val).
				End()
		}
	}
}

// Peek8 reads without side effects, for debuggers and the disassembler.
func (b *CPUBus) Peek8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.RAM[addr&0x07FF]
	case addr < 0x4000:
		return b.PPU.PeekReg(uint8(addr & 7))
	case addr < 0x4020:
		return 0
	default:
		val, _ := b.Cart.CPURead(addr)
		return val
	}
}
