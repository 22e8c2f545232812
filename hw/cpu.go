package hw

import (
	"famicore/emu/log"
)

// Locations reserved for vector pointers.
const (
	NMIVector   = uint16(0xFFFA) // Non-Maskable Interrupt
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request / BRK
)

// Bus is the CPU-side address space. Peek8 must be free of side effects so
// that debuggers and the disassembler can inspect memory.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
	Peek8(addr uint16) uint8
}

// CPU emulates the Ricoh 2A03 core, a 6502 without decimal mode.
//
// The interpreter is clocked one cycle at a time: the first Clock call of an
// instruction fetches, decodes and executes it in full, then the remaining
// cycles of its documented duration are burned by subsequent calls. Timing
// is instruction-accurate, not bus-cycle accurate.
type CPU struct {
	Bus Bus

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	Cycles uint64 // total elapsed CPU cycles

	remaining uint32 // cycles left in the current instruction

	// current instruction scratch, filled by the addressing modes
	opcode  uint8
	mode    addrMode
	addr    uint16 // effective address
	operand uint8  // fetched operand

	// interrupt lines, polled at instruction boundaries
	nmiPending bool
	irqPending bool

	// non-nil when execution tracing is enabled
	tracer *Tracer
}

// NewCPU creates a CPU connected to bus, at power-up state.
func NewCPU(bus Bus) *CPU {
	cpu := &CPU{Bus: bus}
	cpu.PowerUp()
	return cpu
}

// PowerUp puts the CPU in the documented power-on state and loads PC from
// the reset vector.
func (c *CPU) PowerUp() {
	c.A = 0x00
	c.X = 0x00
	c.Y = 0x00
	c.SP = 0xFD
	c.P = 0x34 // I, B and U set

	// All APU channels disabled, frame IRQ disabled.
	for addr := uint16(0x4000); addr <= 0x4013; addr++ {
		c.Bus.Write8(addr, 0)
	}
	c.Bus.Write8(0x4015, 0)
	c.Bus.Write8(0x4017, 0)

	c.PC = c.Read16(ResetVector)
	c.Cycles = 7
	c.remaining = 0
	c.nmiPending = false
	c.irqPending = false
}

// Reset applies the 6502 soft-reset sequence: nothing is pushed, but the
// stack pointer drops by 3 and interrupts are disabled.
func (c *CPU) Reset() {
	c.SP -= 3
	c.P.writeBit(pbitI, true)

	c.Bus.Write8(0x4015, 0)

	c.PC = c.Read16(ResetVector)
	c.remaining = 8 // the reset sequence takes 8 cycles
	c.nmiPending = false
}

// SignalNMI pulls the NMI line low. The interrupt is serviced at the next
// instruction boundary.
func (c *CPU) SignalNMI() { c.nmiPending = true }

// SignalIRQ pulls the IRQ line low. The interrupt is serviced at the next
// instruction boundary, unless interrupts are disabled.
func (c *CPU) SignalIRQ() { c.irqPending = true }

// Clock advances the CPU by one cycle and reports whether this cycle ends an
// instruction (or interrupt sequence).
func (c *CPU) Clock() bool {
	if c.remaining > 0 {
		c.Cycles++
		c.remaining--
		return c.remaining == 0
	}

	if c.nmiPending {
		c.nmiPending = false
		c.Cycles++
		c.interrupt(NMIVector)
		c.remaining = 7 - 1
		return false
	}
	if c.irqPending && !c.P.I() {
		c.irqPending = false
		c.Cycles++
		c.interrupt(IRQVector)
		c.remaining = 7 - 1
		return false
	}

	// The trace line shows the state before the instruction executes.
	if c.tracer != nil {
		c.tracer.trace()
	}
	c.Cycles++

	c.opcode = c.Bus.Read8(c.PC)
	c.PC++

	inst := &opcodes[c.opcode]
	if inst.undocumented() {
		log.ModCPU.WarnZ("illegal opcode").
			Hex16("PC", c.PC-1).
			Hex8("opcode", c.opcode).
			End()
	}

	c.mode = inst.mode
	crossed := c.fetchOperand(inst.mode)
	extra := inst.op(c, crossed)

	c.remaining = inst.cycles + extra - 1
	return c.remaining == 0
}

// interrupt runs the common NMI/IRQ sequence: push PC and status (B clear,
// U set), disable interrupts, load PC from the vector.
func (c *CPU) interrupt(vector uint16) {
	c.push16(c.PC)

	p := c.P
	p.clearBit(pbitB)
	p.setBit(pbitU)
	c.push8(uint8(p))

	c.P.writeBit(pbitI, true)
	c.PC = c.Read16(vector)
}

func (c *CPU) Read16(addr uint16) uint16 {
	lo := c.Bus.Read8(addr)
	hi := c.Bus.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

/* stack operations */

func (c *CPU) push8(val uint8) {
	c.Bus.Write8(0x0100+uint16(c.SP), val)
	c.SP--
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val))
}

func (c *CPU) pull8() uint8 {
	c.SP++
	return c.Bus.Read8(0x0100 + uint16(c.SP))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}
