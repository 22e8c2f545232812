package hw

// addrMode identifies one of the 13 6502 addressing modes.
type addrMode uint8

const (
	IMP addrMode = iota // implied
	ACC                 // accumulator
	IMM                 // immediate
	ZP0                 // zero page
	ZPX                 // zero page, X indexed
	ZPY                 // zero page, Y indexed
	REL                 // relative (branches)
	ABS                 // absolute
	ABX                 // absolute, X indexed
	ABY                 // absolute, Y indexed
	IND                 // indirect (JMP only)
	IZX                 // indexed indirect (zp,X)
	IZY                 // indirect indexed (zp),Y
)

// fetchOperand runs the addressing mode of the current instruction. It may
// advance PC, and fills the effective address and operand scratch registers.
// The returned flag reports whether indexing crossed a page boundary, which
// costs one extra cycle on loads and branches.
func (c *CPU) fetchOperand(mode addrMode) bool {
	switch mode {
	case IMP:
		return false

	case ACC:
		c.operand = c.A
		return false

	case IMM:
		c.operand = c.Bus.Read8(c.PC)
		c.PC++
		return false

	case ZP0:
		c.addr = uint16(c.Bus.Read8(c.PC))
		c.PC++
		c.operand = c.Bus.Read8(c.addr)
		return false

	case ZPX:
		lo := c.Bus.Read8(c.PC)
		c.PC++
		c.addr = uint16(lo+c.X) & 0x00FF
		c.operand = c.Bus.Read8(c.addr)
		return false

	case ZPY:
		lo := c.Bus.Read8(c.PC)
		c.PC++
		c.addr = uint16(lo+c.Y) & 0x00FF
		c.operand = c.Bus.Read8(c.addr)
		return false

	case REL:
		// The displacement byte; sign-extended by the branch operations.
		c.operand = c.Bus.Read8(c.PC)
		c.PC++
		return false

	case ABS:
		c.addr = c.read16PC()
		c.operand = c.Bus.Read8(c.addr)
		return false

	case ABX:
		base := c.read16PC()
		c.addr = base + uint16(c.X)
		c.operand = c.Bus.Read8(c.addr)
		return base&0xFF00 != c.addr&0xFF00

	case ABY:
		base := c.read16PC()
		c.addr = base + uint16(c.Y)
		c.operand = c.Bus.Read8(c.addr)
		return base&0xFF00 != c.addr&0xFF00

	case IND:
		// JMP (addr). The 6502 does not propagate the page carry when
		// reading the high pointer byte: ($xxFF) fetches its high byte
		// from $xx00.
		ptr := c.read16PC()
		lo := c.Bus.Read8(ptr)
		hi := c.Bus.Read8(ptr&0xFF00 | (ptr+1)&0x00FF)
		c.addr = uint16(hi)<<8 | uint16(lo)
		return false

	case IZX:
		zp := c.Bus.Read8(c.PC) + c.X
		c.PC++
		lo := c.Bus.Read8(uint16(zp))
		hi := c.Bus.Read8(uint16(zp+1) & 0x00FF)
		c.addr = uint16(hi)<<8 | uint16(lo)
		c.operand = c.Bus.Read8(c.addr)
		return false

	case IZY:
		zp := c.Bus.Read8(c.PC)
		c.PC++
		lo := c.Bus.Read8(uint16(zp))
		hi := c.Bus.Read8(uint16(zp+1) & 0x00FF)
		base := uint16(hi)<<8 | uint16(lo)
		c.addr = base + uint16(c.Y)
		c.operand = c.Bus.Read8(c.addr)
		return base&0xFF00 != c.addr&0xFF00
	}
	return false
}

func (c *CPU) read16PC() uint16 {
	lo := c.Bus.Read8(c.PC)
	hi := c.Bus.Read8(c.PC + 1)
	c.PC += 2
	return uint16(hi)<<8 | uint16(lo)
}

// operandSize returns the number of operand bytes following the opcode, for
// the disassembler.
func (m addrMode) operandSize() int {
	switch m {
	case IMP, ACC:
		return 0
	case ABS, ABX, ABY, IND:
		return 2
	default:
		return 1
	}
}
