package hw

// NametableIndex locates a nametable byte inside the console 2 KiB VRAM: one
// of the two physical 1 KiB pages, and the offset inside it.
type NametableIndex struct {
	Table  uint8  // 0 or 1
	Offset uint16 // 0..1023
}

// Mapper is the cartridge-side circuitry. It owns PRG-ROM, CHR-ROM/RAM,
// PRG-RAM and any bank registers, and decides the nametable arrangement.
//
// CPURead and CPUWrite receive the full 16-bit CPU address but are only
// invoked for $4020-$FFFF; they report whether the board serviced the
// access. PPURead and PPUWrite receive the 14-bit PPU address and are only
// invoked for the pattern-table range $0000-$1FFF.
type Mapper interface {
	CPURead(addr uint16) (uint8, bool)
	CPUWrite(addr uint16, val uint8) bool
	PPURead(addr uint16) uint8
	PPUWrite(addr uint16, val uint8)

	// MirrorNametable folds a $2000-$3EFF address onto the console VRAM.
	MirrorNametable(addr uint16) NametableIndex
}

// Standard mirroring policies, shared by the mapper boards.

// HorzNametable implements horizontal mirroring: A,B on page 0, C,D on
// page 1.
func HorzNametable(addr uint16) NametableIndex {
	return NametableIndex{
		Table:  uint8((addr >> 11) & 1),
		Offset: addr & 0x03FF,
	}
}

// VertNametable implements vertical mirroring: A,C on page 0, B,D on page 1.
func VertNametable(addr uint16) NametableIndex {
	return NametableIndex{
		Table:  uint8((addr >> 10) & 1),
		Offset: addr & 0x03FF,
	}
}

// SingleNametable implements single-screen mirroring onto the given page.
func SingleNametable(table uint8, addr uint16) NametableIndex {
	return NametableIndex{
		Table:  table,
		Offset: addr & 0x03FF,
	}
}
