package hw

import (
	"testing"
)

// flatBus is a bare 64 KiB memory implementing Bus, for CPU-only tests.
type flatBus struct {
	mem [0x10000]uint8
}

func (b *flatBus) Read8(addr uint16) uint8       { return b.mem[addr] }
func (b *flatBus) Write8(addr uint16, val uint8) { b.mem[addr] = val }
func (b *flatBus) Peek8(addr uint16) uint8       { return b.mem[addr] }

// loadCPU builds a CPU over a flat bus, with prog at org and the reset
// vector pointing to it.
func loadCPU(tb testing.TB, org uint16, prog []byte) (*CPU, *flatBus) {
	tb.Helper()

	bus := &flatBus{}
	bus.mem[ResetVector] = uint8(org)
	bus.mem[ResetVector+1] = uint8(org >> 8)
	copy(bus.mem[org:], prog)

	return NewCPU(bus), bus
}

// step runs the CPU to the next instruction boundary and returns the number
// of cycles consumed.
func step(c *CPU) int {
	n := 0
	for {
		n++
		if c.Clock() {
			return n
		}
	}
}

func wantReg8(tb testing.TB, name string, got, want uint8) {
	tb.Helper()
	if got != want {
		tb.Errorf("got %s=$%02X, want $%02X", name, got, want)
	}
}

func wantReg16(tb testing.TB, name string, got, want uint16) {
	tb.Helper()
	if got != want {
		tb.Errorf("got %s=$%04X, want $%04X", name, got, want)
	}
}

func wantFlags(tb testing.TB, p P, flags map[string]bool) {
	tb.Helper()
	get := map[string]bool{
		"N": p.N(), "V": p.V(), "B": p.B(), "D": p.D(),
		"I": p.I(), "Z": p.Z(), "C": p.C(), "U": p.U(),
	}
	for name, want := range flags {
		if get[name] != want {
			tb.Errorf("got %s=%t, want %t (P=%s)", name, get[name], want, p)
		}
	}
}
