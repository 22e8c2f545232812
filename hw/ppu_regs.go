package hw

import (
	"famicore/emu/log"
)

// CPU-visible register file, mapped at $2000-$2007 and mirrored every 8
// bytes up to $3FFF. reg is the low 3 bits of the address.

// WriteReg writes one PPU register. Every write also refreshes the open-bus
// latch whose low 5 bits show through PPUSTATUS reads.
func (p *PPU) WriteReg(reg uint8, val uint8) {
	p.openbus = val

	switch reg {
	case 0: // PPUCTRL
		prev := p.ctrl
		p.ctrl = val

		// Nametable select goes into t[11:10].
		p.t = p.t&^0x0C00 | uint16(val&ctrlNametable)<<10

		// Toggling the NMI enable bit during VBlank without reading
		// PPUSTATUS retriggers the interrupt.
		if prev&ctrlNMIEnabled == 0 && val&ctrlNMIEnabled != 0 &&
			p.status&statusVBlank != 0 && p.signalNMI != nil {
			p.signalNMI()
		}

	case 1: // PPUMASK
		p.mask = val

	case 2: // PPUSTATUS is read-only
		log.ModPPU.DebugZ("write to PPUSTATUS ignored").Hex8("val", val).End()

	case 3: // OAMADDR
		p.oamAddr = val

	case 4: // OAMDATA. Sprites are not rendered but the memory is live.
		p.oam[p.oamAddr] = val
		p.oamAddr++

	case 5: // PPUSCROLL
		if !p.w {
			// First write: coarse X into t[4:0], fine X into x.
			p.t = p.t&^0x001F | uint16(val)>>3
			p.x = val & 0x07
		} else {
			// Second write: fine Y into t[14:12], coarse Y into t[9:5].
			p.t = p.t &^ 0x73E0
			p.t |= uint16(val&0x07) << 12
			p.t |= uint16(val&0xF8) << 2
		}
		p.w = !p.w

	case 6: // PPUADDR
		if !p.w {
			// First write: t[13:8], bit 14 cleared.
			p.t = p.t & 0x00FF
			p.t |= uint16(val&0x3F) << 8
		} else {
			// Second write: t[7:0], then v is updated at once.
			p.t = p.t&0xFF00 | uint16(val)
			p.v = p.t
		}
		p.w = !p.w

	case 7: // PPUDATA
		p.Bus.Write8(p.v&0x3FFF, val)
		p.incVRAMAddr()
	}
}

// ReadReg reads one PPU register, with the documented side effects.
func (p *PPU) ReadReg(reg uint8) uint8 {
	switch reg {
	case 2: // PPUSTATUS
		// The low 5 bits are stale register-bus contents. Reading
		// clears VBlank and the $2005/$2006 write toggle.
		ret := p.status&0xE0 | p.openbus&0x1F
		p.status &^= statusVBlank
		p.w = false
		p.openbus = ret
		return ret

	case 4: // OAMDATA
		return p.oam[p.oamAddr]

	case 7: // PPUDATA
		var ret uint8
		if p.v&0x3FFF < 0x3F00 {
			// VRAM reads are buffered: return the previous value,
			// refill from the current address.
			ret = p.readBuf
			p.readBuf = p.Bus.Read8(p.v & 0x3FFF)
		} else {
			// Palette reads are immediate; the buffer is refilled
			// from the nametable mirrored under $3F00.
			ret = p.Bus.Read8(p.v & 0x3FFF)
			p.readBuf = p.Bus.Read8(p.v&0x3FFF - 0x1000)
		}
		p.incVRAMAddr()
		p.openbus = ret
		return ret
	}

	// Write-only registers read back the open bus.
	log.ModPPU.DebugZ("read from write-only register").Uint8("reg", reg).End()
	return p.openbus
}

// PeekReg reads one PPU register without side effects.
func (p *PPU) PeekReg(reg uint8) uint8 {
	switch reg {
	case 2:
		return p.status&0xE0 | p.openbus&0x1F
	case 4:
		return p.oam[p.oamAddr]
	case 7:
		if p.v&0x3FFF < 0x3F00 {
			return p.readBuf
		}
		return p.Bus.Read8(p.v & 0x3FFF)
	}
	return p.openbus
}

// incVRAMAddr post-increments v after a PPUDATA access, by 1 or 32 per the
// PPUCTRL increment bit.
func (p *PPU) incVRAMAddr() {
	inc := uint16(1)
	if p.ctrl&ctrlIncrement != 0 {
		inc = 32
	}
	p.v = (p.v + inc) & 0x7FFF
}
