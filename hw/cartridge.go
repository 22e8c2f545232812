package hw

import (
	"famicore/ines"
)

// Cartridge binds a parsed rom image to the mapper board emulating its
// circuitry. It is created on rom load and owned by the console.
type Cartridge struct {
	Rom    *ines.Rom
	Mapper Mapper
}

func (c *Cartridge) CPURead(addr uint16) (uint8, bool) { return c.Mapper.CPURead(addr) }
func (c *Cartridge) CPUWrite(addr uint16, val uint8) bool {
	return c.Mapper.CPUWrite(addr, val)
}
func (c *Cartridge) PPURead(addr uint16) uint8       { return c.Mapper.PPURead(addr) }
func (c *Cartridge) PPUWrite(addr uint16, val uint8) { c.Mapper.PPUWrite(addr, val) }

func (c *Cartridge) MirrorNametable(addr uint16) NametableIndex {
	return c.Mapper.MirrorNametable(addr)
}
