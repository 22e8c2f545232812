package hw

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"
)

// TraceFormat selects the execution trace encoding.
type TraceFormat int

const (
	TraceText TraceFormat = iota // fixed-column text, one line per op
	TraceJSON                    // one JSON object per line
)

// Tracer writes one entry per executed instruction. The PPU is optional;
// without it the scanline/dot columns read 0.
type Tracer struct {
	cpu *CPU
	ppu *PPU
	w   io.Writer

	format TraceFormat
	enc    jx.Encoder
}

func NewTracer(cpu *CPU, ppu *PPU, w io.Writer, format TraceFormat) *Tracer {
	return &Tracer{cpu: cpu, ppu: ppu, w: w, format: format}
}

// SetTracer enables (or, with nil, disables) execution tracing.
func (c *CPU) SetTracer(t *Tracer) { c.tracer = t }

// trace logs the instruction about to execute.
func (t *Tracer) trace() {
	scanline, dot := 0, 0
	if t.ppu != nil {
		scanline, dot = t.ppu.Scanline, t.ppu.Dot
	}

	if t.format == TraceJSON {
		t.writeJSON(scanline, dot)
		return
	}
	t.writeText(scanline, dot)
}

// writeText emits the fixed-column line of the canonical execution logs:
// 48 disasm columns, then registers, PPU position and cycle count.
func (t *Tracer) writeText(scanline, dot int) {
	cpu := t.cpu

	// Bytes pads to 48 columns; longer operands already end with a space.
	buf := cpu.Disasm(cpu.PC).Bytes()
	if n := len(buf); buf[n-1] != ' ' {
		buf = append(buf, ' ')
	}

	buf = fmt.Appendf(buf, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d\n",
		cpu.A, cpu.X, cpu.Y, uint8(cpu.P), cpu.SP, scanline, dot, cpu.Cycles)
	t.w.Write(buf)
}

func (t *Tracer) writeJSON(scanline, dot int) {
	cpu := t.cpu
	dis := cpu.Disasm(cpu.PC)

	e := &t.enc
	e.Reset()
	e.ObjStart()
	e.FieldStart("pc")
	e.Str(fmt.Sprintf("%04X", cpu.PC))
	e.FieldStart("op")
	e.Str(dis.Opcode)
	e.FieldStart("oper")
	e.Str(dis.Oper)
	e.FieldStart("a")
	e.Int(int(cpu.A))
	e.FieldStart("x")
	e.Int(int(cpu.X))
	e.FieldStart("y")
	e.Int(int(cpu.Y))
	e.FieldStart("p")
	e.Int(int(cpu.P))
	e.FieldStart("sp")
	e.Int(int(cpu.SP))
	e.FieldStart("scanline")
	e.Int(scanline)
	e.FieldStart("dot")
	e.Int(dot)
	e.FieldStart("cyc")
	e.Int(int(cpu.Cycles))
	e.ObjEnd()

	t.w.Write(append(e.Bytes(), '\n'))
}
