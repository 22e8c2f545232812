package mappers

import (
	"fmt"

	"famicore/emu/log"
	"famicore/hw"
	"famicore/ines"
)

// nrom is the mapper 0 board: no banking at all. 16 or 32 KiB of PRG-ROM at
// $8000 (16 KiB boards mirror it twice), 8 KiB of CHR-ROM or CHR-RAM, and
// 8 KiB of PRG-RAM at $6000 for Family Basic style boards.
type nrom struct {
	prgrom  []uint8
	prgram  [0x2000]uint8
	chr     []uint8
	chrram  bool
	prgmask uint16
	mirror  ines.Mirroring
}

func newNROM(rom *ines.Rom) (hw.Mapper, error) {
	switch len(rom.PRGROM) {
	case 0x4000, 0x8000:
	default:
		return nil, fmt.Errorf("%w: PRG-ROM size %d", ines.ErrUnsupportedFeature, len(rom.PRGROM))
	}

	m := &nrom{
		prgrom:  rom.PRGROM,
		prgmask: uint16(len(rom.PRGROM) - 1),
		mirror:  rom.Mirroring(),
	}

	if len(rom.CHRROM) > 0 {
		m.chr = rom.CHRROM
	} else {
		size := rom.CHRRAMSize()
		if size == 0 {
			size = 0x2000
		}
		m.chr = make([]uint8, size)
		m.chrram = true
	}
	if len(m.chr) < 0x2000 {
		return nil, fmt.Errorf("%w: CHR size %d", ines.ErrUnsupportedFeature, len(m.chr))
	}

	if m.mirror == ines.FourScreen {
		// NROM boards have no extra VRAM; treat as vertical.
		log.ModMapper.WarnZ("four-screen requested on NROM, using vertical").End()
		m.mirror = ines.VertMirroring
	}
	return m, nil
}

func (m *nrom) CPURead(addr uint16) (uint8, bool) {
	switch {
	case addr >= 0x8000:
		return m.prgrom[addr&m.prgmask], true
	case addr >= 0x6000:
		return m.prgram[addr-0x6000], true
	}
	return 0, false
}

func (m *nrom) CPUWrite(addr uint16, val uint8) bool {
	switch {
	case addr >= 0x8000:
		// PRG-ROM is not writable; the access is decoded and dropped.
		log.ModMapper.DebugZ("write to PRG-ROM ignored").
			Hex16("addr", addr).
			Hex8("val", val).
			End()
		return true
	case addr >= 0x6000:
		m.prgram[addr-0x6000] = val
		return true
	}
	return false
}

func (m *nrom) PPURead(addr uint16) uint8 {
	return m.chr[addr&0x1FFF]
}

func (m *nrom) PPUWrite(addr uint16, val uint8) {
	if !m.chrram {
		log.ModMapper.DebugZ("write to CHR-ROM ignored").
			Hex16("addr", addr).
			Hex8("val", val).
			End()
		return
	}
	m.chr[addr&0x1FFF] = val
}

func (m *nrom) MirrorNametable(addr uint16) hw.NametableIndex {
	switch m.mirror {
	case ines.VertMirroring:
		return hw.VertNametable(addr)
	case ines.OnlyAScreen:
		return hw.SingleNametable(0, addr)
	case ines.OnlyBScreen:
		return hw.SingleNametable(1, addr)
	default:
		return hw.HorzNametable(addr)
	}
}
