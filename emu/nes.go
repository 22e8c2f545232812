// Package emu assembles the emulated hardware into a console and drives it
// through the master-clock scheduler.
package emu

import (
	"fmt"

	"famicore/emu/log"
	"famicore/hw"
	"famicore/hw/mappers"
	"famicore/ines"
)

// NES owns every subsystem of the console. All cross-component references
// (CPU bus → PPU registers, PPU bus → mapper, PPU → CPU NMI line) are wired
// here, once, at power-up.
type NES struct {
	CPU  *hw.CPU
	PPU  *hw.PPU
	Cart *hw.Cartridge
	Rom  *ines.Rom

	// MasterClock counts PPU dots. The CPU is clocked on every third
	// master cycle.
	MasterClock uint64
}

// Load reads a rom file and powers up a console around it.
func Load(path string) (*NES, error) {
	rom, err := ines.ReadRom(path)
	if err != nil {
		return nil, err
	}
	return PowerUp(rom)
}

// PowerUp builds and wires the console. The returned NES is ready to run:
// a failure here means the rom cannot be emulated and no console exists.
func PowerUp(rom *ines.Rom) (*NES, error) {
	mapper, err := mappers.New(rom)
	if err != nil {
		return nil, fmt.Errorf("power up: %w", err)
	}
	cart := &hw.Cartridge{Rom: rom, Mapper: mapper}

	ppu := hw.NewPPU(&hw.PPUBus{Cart: cart})
	cpu := hw.NewCPU(&hw.CPUBus{PPU: ppu, Cart: cart})

	// The PPU raises NMI through a pending flag that the CPU polls at
	// instruction boundaries.
	ppu.SetNMICallback(cpu.SignalNMI)

	nes := &NES{
		CPU:  cpu,
		PPU:  ppu,
		Cart: cart,
		Rom:  rom,
	}

	log.ModEmu.InfoZ("power up").
		Hex16("reset", cpu.PC).
		String("format", rom.Format().String()).
		End()
	return nes, nil
}

// Reset restarts execution. A hard reset restores the deterministic
// power-up state; a soft reset applies the console reset button sequence.
func (nes *NES) Reset(soft bool) {
	if soft {
		nes.PPU.Reset()
		nes.CPU.Reset()
	} else {
		nes.PPU.PowerUp()
		nes.CPU.PowerUp()
	}
	nes.MasterClock = 0

	log.ModEmu.InfoZ("reset").Bool("soft", soft).End()
}

// Tick advances the console by one master-clock cycle: the PPU outputs one
// dot, and every third cycle the CPU advances one of its own cycles.
func (nes *NES) Tick() {
	nes.MasterClock++
	nes.PPU.Tick()
	if nes.MasterClock%3 == 0 {
		nes.CPU.Clock()
	}
}

// StepInstruction runs master-clock cycles until the CPU completes an
// instruction (or interrupt sequence).
func (nes *NES) StepInstruction() {
	for {
		nes.MasterClock++
		nes.PPU.Tick()
		if nes.MasterClock%3 == 0 && nes.CPU.Clock() {
			return
		}
	}
}

// RunFrame runs master-clock cycles until the PPU reaches the first dot of
// the VBlank scanline, and returns the completed framebuffer. The buffer is
// valid until the next VBlank.
func (nes *NES) RunFrame() *[hw.Width * hw.Height]hw.RGB {
	for {
		nes.Tick()
		if nes.PPU.Scanline == 241 && nes.PPU.Dot == 0 {
			return nes.PPU.Framebuffer()
		}
	}
}

// SetFrameSink registers the external pixel consumer, invoked synchronously
// at VBlank start. The sink must copy the buffer before returning.
func (nes *NES) SetFrameSink(sink hw.FrameSink) {
	nes.PPU.SetFrameSink(sink)
}

/* debug inspection, side-effect free */

// PeekCPU reads a byte from the CPU address space without side effects.
func (nes *NES) PeekCPU(addr uint16) uint8 {
	return nes.CPU.Bus.Peek8(addr)
}

// PeekPPU reads a byte from the PPU address space.
func (nes *NES) PeekPPU(addr uint16) uint8 {
	return nes.PPU.Bus.Read8(addr)
}

// DisasmAt returns the disassembly of the instruction at pc.
func (nes *NES) DisasmAt(pc uint16) string {
	return nes.CPU.Disasm(pc).String()
}
