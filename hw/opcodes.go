package hw

// instruction is one entry of the decoded opcode table: mnemonic, operation,
// addressing mode and documented base cycle count. Operations return the
// number of extra cycles they incur (page crossings, taken branches).
//
// Undocumented opcodes with a stable effect (SLO, RLA, SRE, RRA, SAX, LAX,
// DCP, ISB, ANC, ALR, SBX and the NOP variants) are implemented; the
// remaining undefined opcodes behave as NOPs with their canonical cycle
// count and are reported through the log channel. No opcode halts the
// machine.
type instruction struct {
	name   string
	op     func(c *CPU, crossed bool) uint32
	mode   addrMode
	cycles uint32
}

// undocumented reports whether the table entry is an undefined opcode with
// no stable effect.
func (inst *instruction) undocumented() bool { return inst.name == "???" }

// undocOps marks every opcode outside the official 56, stable or not. The
// disassembler prefixes them with a star, as the reference trace logs do.
var undocOps [256]bool

func init() {
	stable := map[string]bool{
		"???": true, "SLO": true, "RLA": true, "SRE": true, "RRA": true,
		"SAX": true, "LAX": true, "DCP": true, "ISB": true,
		"ANC": true, "ALR": true, "SBX": true,
	}
	for op := range opcodes {
		inst := &opcodes[op]
		switch {
		case stable[inst.name]:
			undocOps[op] = true
		case inst.name == "NOP" && op != 0xEA:
			undocOps[op] = true
		case inst.name == "SBC" && op == 0xEB:
			undocOps[op] = true
		}
	}
}

var opcodes = [256]instruction{
	{"BRK", opBRK, IMP, 7}, {"ORA", opORA, IZX, 6}, {"???", opXXX, IMP, 2}, {"SLO", opSLO, IZX, 8}, {"NOP", opNOP, ZP0, 3}, {"ORA", opORA, ZP0, 3}, {"ASL", opASL, ZP0, 5}, {"SLO", opSLO, ZP0, 5}, {"PHP", opPHP, IMP, 3}, {"ORA", opORA, IMM, 2}, {"ASL", opASL, ACC, 2}, {"ANC", opANC, IMM, 2}, {"NOP", opNOP, ABS, 4}, {"ORA", opORA, ABS, 4}, {"ASL", opASL, ABS, 6}, {"SLO", opSLO, ABS, 6},
	{"BPL", opBPL, REL, 2}, {"ORA", opORA, IZY, 5}, {"???", opXXX, IMP, 2}, {"SLO", opSLO, IZY, 8}, {"NOP", opNOP, ZPX, 4}, {"ORA", opORA, ZPX, 4}, {"ASL", opASL, ZPX, 6}, {"SLO", opSLO, ZPX, 6}, {"CLC", opCLC, IMP, 2}, {"ORA", opORA, ABY, 4}, {"NOP", opNOP, IMP, 2}, {"SLO", opSLO, ABY, 7}, {"NOP", opNOP, ABX, 4}, {"ORA", opORA, ABX, 4}, {"ASL", opASL, ABX, 7}, {"SLO", opSLO, ABX, 7},
	{"JSR", opJSR, ABS, 6}, {"AND", opAND, IZX, 6}, {"???", opXXX, IMP, 2}, {"RLA", opRLA, IZX, 8}, {"BIT", opBIT, ZP0, 3}, {"AND", opAND, ZP0, 3}, {"ROL", opROL, ZP0, 5}, {"RLA", opRLA, ZP0, 5}, {"PLP", opPLP, IMP, 4}, {"AND", opAND, IMM, 2}, {"ROL", opROL, ACC, 2}, {"ANC", opANC, IMM, 2}, {"BIT", opBIT, ABS, 4}, {"AND", opAND, ABS, 4}, {"ROL", opROL, ABS, 6}, {"RLA", opRLA, ABS, 6},
	{"BMI", opBMI, REL, 2}, {"AND", opAND, IZY, 5}, {"???", opXXX, IMP, 2}, {"RLA", opRLA, IZY, 8}, {"NOP", opNOP, ZPX, 4}, {"AND", opAND, ZPX, 4}, {"ROL", opROL, ZPX, 6}, {"RLA", opRLA, ZPX, 6}, {"SEC", opSEC, IMP, 2}, {"AND", opAND, ABY, 4}, {"NOP", opNOP, IMP, 2}, {"RLA", opRLA, ABY, 7}, {"NOP", opNOP, ABX, 4}, {"AND", opAND, ABX, 4}, {"ROL", opROL, ABX, 7}, {"RLA", opRLA, ABX, 7},
	{"RTI", opRTI, IMP, 6}, {"EOR", opEOR, IZX, 6}, {"???", opXXX, IMP, 2}, {"SRE", opSRE, IZX, 8}, {"NOP", opNOP, ZP0, 3}, {"EOR", opEOR, ZP0, 3}, {"LSR", opLSR, ZP0, 5}, {"SRE", opSRE, ZP0, 5}, {"PHA", opPHA, IMP, 3}, {"EOR", opEOR, IMM, 2}, {"LSR", opLSR, ACC, 2}, {"ALR", opALR, IMM, 2}, {"JMP", opJMP, ABS, 3}, {"EOR", opEOR, ABS, 4}, {"LSR", opLSR, ABS, 6}, {"SRE", opSRE, ABS, 6},
	{"BVC", opBVC, REL, 2}, {"EOR", opEOR, IZY, 5}, {"???", opXXX, IMP, 2}, {"SRE", opSRE, IZY, 8}, {"NOP", opNOP, ZPX, 4}, {"EOR", opEOR, ZPX, 4}, {"LSR", opLSR, ZPX, 6}, {"SRE", opSRE, ZPX, 6}, {"CLI", opCLI, IMP, 2}, {"EOR", opEOR, ABY, 4}, {"NOP", opNOP, IMP, 2}, {"SRE", opSRE, ABY, 7}, {"NOP", opNOP, ABX, 4}, {"EOR", opEOR, ABX, 4}, {"LSR", opLSR, ABX, 7}, {"SRE", opSRE, ABX, 7},
	{"RTS", opRTS, IMP, 6}, {"ADC", opADC, IZX, 6}, {"???", opXXX, IMP, 2}, {"RRA", opRRA, IZX, 8}, {"NOP", opNOP, ZP0, 3}, {"ADC", opADC, ZP0, 3}, {"ROR", opROR, ZP0, 5}, {"RRA", opRRA, ZP0, 5}, {"PLA", opPLA, IMP, 4}, {"ADC", opADC, IMM, 2}, {"ROR", opROR, ACC, 2}, {"???", opXXX, IMM, 2}, {"JMP", opJMP, IND, 5}, {"ADC", opADC, ABS, 4}, {"ROR", opROR, ABS, 6}, {"RRA", opRRA, ABS, 6},
	{"BVS", opBVS, REL, 2}, {"ADC", opADC, IZY, 5}, {"???", opXXX, IMP, 2}, {"RRA", opRRA, IZY, 8}, {"NOP", opNOP, ZPX, 4}, {"ADC", opADC, ZPX, 4}, {"ROR", opROR, ZPX, 6}, {"RRA", opRRA, ZPX, 6}, {"SEI", opSEI, IMP, 2}, {"ADC", opADC, ABY, 4}, {"NOP", opNOP, IMP, 2}, {"RRA", opRRA, ABY, 7}, {"NOP", opNOP, ABX, 4}, {"ADC", opADC, ABX, 4}, {"ROR", opROR, ABX, 7}, {"RRA", opRRA, ABX, 7},
	{"NOP", opNOP, IMM, 2}, {"STA", opSTA, IZX, 6}, {"NOP", opNOP, IMM, 2}, {"SAX", opSAX, IZX, 6}, {"STY", opSTY, ZP0, 3}, {"STA", opSTA, ZP0, 3}, {"STX", opSTX, ZP0, 3}, {"SAX", opSAX, ZP0, 3}, {"DEY", opDEY, IMP, 2}, {"NOP", opNOP, IMM, 2}, {"TXA", opTXA, IMP, 2}, {"???", opXXX, IMM, 2}, {"STY", opSTY, ABS, 4}, {"STA", opSTA, ABS, 4}, {"STX", opSTX, ABS, 4}, {"SAX", opSAX, ABS, 4},
	{"BCC", opBCC, REL, 2}, {"STA", opSTA, IZY, 6}, {"???", opXXX, IMP, 2}, {"???", opXXX, IZY, 6}, {"STY", opSTY, ZPX, 4}, {"STA", opSTA, ZPX, 4}, {"STX", opSTX, ZPY, 4}, {"SAX", opSAX, ZPY, 4}, {"TYA", opTYA, IMP, 2}, {"STA", opSTA, ABY, 5}, {"TXS", opTXS, IMP, 2}, {"???", opXXX, ABY, 5}, {"???", opXXX, ABX, 5}, {"STA", opSTA, ABX, 5}, {"???", opXXX, ABY, 5}, {"???", opXXX, ABY, 5},
	{"LDY", opLDY, IMM, 2}, {"LDA", opLDA, IZX, 6}, {"LDX", opLDX, IMM, 2}, {"LAX", opLAX, IZX, 6}, {"LDY", opLDY, ZP0, 3}, {"LDA", opLDA, ZP0, 3}, {"LDX", opLDX, ZP0, 3}, {"LAX", opLAX, ZP0, 3}, {"TAY", opTAY, IMP, 2}, {"LDA", opLDA, IMM, 2}, {"TAX", opTAX, IMP, 2}, {"???", opXXX, IMM, 2}, {"LDY", opLDY, ABS, 4}, {"LDA", opLDA, ABS, 4}, {"LDX", opLDX, ABS, 4}, {"LAX", opLAX, ABS, 4},
	{"BCS", opBCS, REL, 2}, {"LDA", opLDA, IZY, 5}, {"???", opXXX, IMP, 2}, {"LAX", opLAX, IZY, 5}, {"LDY", opLDY, ZPX, 4}, {"LDA", opLDA, ZPX, 4}, {"LDX", opLDX, ZPY, 4}, {"LAX", opLAX, ZPY, 4}, {"CLV", opCLV, IMP, 2}, {"LDA", opLDA, ABY, 4}, {"TSX", opTSX, IMP, 2}, {"???", opXXX, ABY, 4}, {"LDY", opLDY, ABX, 4}, {"LDA", opLDA, ABX, 4}, {"LDX", opLDX, ABY, 4}, {"LAX", opLAX, ABY, 4},
	{"CPY", opCPY, IMM, 2}, {"CMP", opCMP, IZX, 6}, {"NOP", opNOP, IMM, 2}, {"DCP", opDCP, IZX, 8}, {"CPY", opCPY, ZP0, 3}, {"CMP", opCMP, ZP0, 3}, {"DEC", opDEC, ZP0, 5}, {"DCP", opDCP, ZP0, 5}, {"INY", opINY, IMP, 2}, {"CMP", opCMP, IMM, 2}, {"DEX", opDEX, IMP, 2}, {"SBX", opSBX, IMM, 2}, {"CPY", opCPY, ABS, 4}, {"CMP", opCMP, ABS, 4}, {"DEC", opDEC, ABS, 6}, {"DCP", opDCP, ABS, 6},
	{"BNE", opBNE, REL, 2}, {"CMP", opCMP, IZY, 5}, {"???", opXXX, IMP, 2}, {"DCP", opDCP, IZY, 8}, {"NOP", opNOP, ZPX, 4}, {"CMP", opCMP, ZPX, 4}, {"DEC", opDEC, ZPX, 6}, {"DCP", opDCP, ZPX, 6}, {"CLD", opCLD, IMP, 2}, {"CMP", opCMP, ABY, 4}, {"NOP", opNOP, IMP, 2}, {"DCP", opDCP, ABY, 7}, {"NOP", opNOP, ABX, 4}, {"CMP", opCMP, ABX, 4}, {"DEC", opDEC, ABX, 7}, {"DCP", opDCP, ABX, 7},
	{"CPX", opCPX, IMM, 2}, {"SBC", opSBC, IZX, 6}, {"NOP", opNOP, IMM, 2}, {"ISB", opISB, IZX, 8}, {"CPX", opCPX, ZP0, 3}, {"SBC", opSBC, ZP0, 3}, {"INC", opINC, ZP0, 5}, {"ISB", opISB, ZP0, 5}, {"INX", opINX, IMP, 2}, {"SBC", opSBC, IMM, 2}, {"NOP", opNOP, IMP, 2}, {"SBC", opSBC, IMM, 2}, {"CPX", opCPX, ABS, 4}, {"SBC", opSBC, ABS, 4}, {"INC", opINC, ABS, 6}, {"ISB", opISB, ABS, 6},
	{"BEQ", opBEQ, REL, 2}, {"SBC", opSBC, IZY, 5}, {"???", opXXX, IMP, 2}, {"ISB", opISB, IZY, 8}, {"NOP", opNOP, ZPX, 4}, {"SBC", opSBC, ZPX, 4}, {"INC", opINC, ZPX, 6}, {"ISB", opISB, ZPX, 6}, {"SED", opSED, IMP, 2}, {"SBC", opSBC, ABY, 4}, {"NOP", opNOP, IMP, 2}, {"ISB", opISB, ABY, 7}, {"NOP", opNOP, ABX, 4}, {"SBC", opSBC, ABX, 4}, {"INC", opINC, ABX, 7}, {"ISB", opISB, ABX, 7},
}

func b2i32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// branch adds the sign-extended displacement to PC when cond holds. A taken
// branch costs one extra cycle, two when it crosses a page.
func branch(c *CPU, cond bool) uint32 {
	if !cond {
		return 0
	}
	target := c.PC + uint16(int8(c.operand))
	crossed := target&0xFF00 != c.PC&0xFF00
	c.PC = target
	if crossed {
		return 2
	}
	return 1
}

// rmw applies f either to the accumulator or, through a read-modify-write
// sequence, to the effective address, and returns the result.
func (c *CPU) rmw(f func(uint8) uint8) uint8 {
	if c.mode == ACC {
		c.A = f(c.A)
		return c.A
	}
	v := f(c.operand)
	c.Bus.Write8(c.addr, v)
	return v
}

// compare implements the CMP/CPX/CPY flag contract.
func compare(c *CPU, reg uint8) {
	c.P.writeBit(pbitC, reg >= c.operand)
	c.P.checkNZ(reg - c.operand)
}

/* arithmetic */

func opADC(c *CPU, crossed bool) uint32 {
	sum := uint16(c.A) + uint16(c.operand) + uint16(c.P.ibit(pbitC))
	c.P.checkCV(c.A, c.operand, sum)
	c.A = uint8(sum)
	c.P.checkNZ(c.A)
	return b2i32(crossed)
}

// SBC is ADC with the operand inverted: A - M - (1-C) == A + ^M + C.
func opSBC(c *CPU, crossed bool) uint32 {
	c.operand = ^c.operand
	extra := opADC(c, crossed)
	c.operand = ^c.operand
	return extra
}

func opCMP(c *CPU, crossed bool) uint32 {
	compare(c, c.A)
	return b2i32(crossed)
}

func opCPX(c *CPU, crossed bool) uint32 { compare(c, c.X); return 0 }
func opCPY(c *CPU, crossed bool) uint32 { compare(c, c.Y); return 0 }

func opINC(c *CPU, crossed bool) uint32 {
	v := c.operand + 1
	c.Bus.Write8(c.addr, v)
	c.P.checkNZ(v)
	return 0
}

func opDEC(c *CPU, crossed bool) uint32 {
	v := c.operand - 1
	c.Bus.Write8(c.addr, v)
	c.P.checkNZ(v)
	return 0
}

func opINX(c *CPU, crossed bool) uint32 { c.X++; c.P.checkNZ(c.X); return 0 }
func opINY(c *CPU, crossed bool) uint32 { c.Y++; c.P.checkNZ(c.Y); return 0 }
func opDEX(c *CPU, crossed bool) uint32 { c.X--; c.P.checkNZ(c.X); return 0 }
func opDEY(c *CPU, crossed bool) uint32 { c.Y--; c.P.checkNZ(c.Y); return 0 }

/* logic */

func opAND(c *CPU, crossed bool) uint32 {
	c.A &= c.operand
	c.P.checkNZ(c.A)
	return b2i32(crossed)
}

func opORA(c *CPU, crossed bool) uint32 {
	c.A |= c.operand
	c.P.checkNZ(c.A)
	return b2i32(crossed)
}

func opEOR(c *CPU, crossed bool) uint32 {
	c.A ^= c.operand
	c.P.checkNZ(c.A)
	return b2i32(crossed)
}

func opBIT(c *CPU, crossed bool) uint32 {
	c.P.writeBit(pbitZ, c.A&c.operand == 0)
	c.P.writeBit(pbitV, c.operand&(1<<6) != 0)
	c.P.writeBit(pbitN, c.operand&(1<<7) != 0)
	return 0
}

/* shifts and rotates */

func opASL(c *CPU, crossed bool) uint32 {
	res := c.rmw(func(v uint8) uint8 {
		c.P.writeBit(pbitC, v&0x80 != 0)
		return v << 1
	})
	c.P.checkNZ(res)
	return 0
}

func opLSR(c *CPU, crossed bool) uint32 {
	res := c.rmw(func(v uint8) uint8 {
		c.P.writeBit(pbitC, v&0x01 != 0)
		return v >> 1
	})
	c.P.checkNZ(res)
	return 0
}

func opROL(c *CPU, crossed bool) uint32 {
	cin := c.P.ibit(pbitC)
	res := c.rmw(func(v uint8) uint8 {
		c.P.writeBit(pbitC, v&0x80 != 0)
		return v<<1 | cin
	})
	c.P.checkNZ(res)
	return 0
}

func opROR(c *CPU, crossed bool) uint32 {
	cin := c.P.ibit(pbitC)
	res := c.rmw(func(v uint8) uint8 {
		c.P.writeBit(pbitC, v&0x01 != 0)
		return cin<<7 | v>>1
	})
	c.P.checkNZ(res)
	return 0
}

/* loads, stores, transfers */

func opLDA(c *CPU, crossed bool) uint32 {
	c.A = c.operand
	c.P.checkNZ(c.A)
	return b2i32(crossed)
}

func opLDX(c *CPU, crossed bool) uint32 {
	c.X = c.operand
	c.P.checkNZ(c.X)
	return b2i32(crossed)
}

func opLDY(c *CPU, crossed bool) uint32 {
	c.Y = c.operand
	c.P.checkNZ(c.Y)
	return b2i32(crossed)
}

func opSTA(c *CPU, crossed bool) uint32 { c.Bus.Write8(c.addr, c.A); return 0 }
func opSTX(c *CPU, crossed bool) uint32 { c.Bus.Write8(c.addr, c.X); return 0 }
func opSTY(c *CPU, crossed bool) uint32 { c.Bus.Write8(c.addr, c.Y); return 0 }

func opTAX(c *CPU, crossed bool) uint32 { c.X = c.A; c.P.checkNZ(c.X); return 0 }
func opTAY(c *CPU, crossed bool) uint32 { c.Y = c.A; c.P.checkNZ(c.Y); return 0 }
func opTXA(c *CPU, crossed bool) uint32 { c.A = c.X; c.P.checkNZ(c.A); return 0 }
func opTYA(c *CPU, crossed bool) uint32 { c.A = c.Y; c.P.checkNZ(c.A); return 0 }
func opTSX(c *CPU, crossed bool) uint32 { c.X = c.SP; c.P.checkNZ(c.X); return 0 }

// TXS is the only transfer that does not touch the flags.
func opTXS(c *CPU, crossed bool) uint32 { c.SP = c.X; return 0 }

/* stack */

func opPHA(c *CPU, crossed bool) uint32 { c.push8(c.A); return 0 }

func opPHP(c *CPU, crossed bool) uint32 {
	// B and U are set in the pushed copy.
	c.push8(uint8(c.P) | 1<<pbitB | 1<<pbitU)
	return 0
}

func opPLA(c *CPU, crossed bool) uint32 {
	c.A = c.pull8()
	c.P.checkNZ(c.A)
	return 0
}

func opPLP(c *CPU, crossed bool) uint32 {
	c.P = pulledStatus(c.pull8())
	return 0
}

// pulledStatus filters a status byte restored from the stack: B is not a
// real flag and U always reads as 1.
func pulledStatus(val uint8) P {
	p := P(val)
	p.clearBit(pbitB)
	p.setBit(pbitU)
	return p
}

/* jumps and subroutines */

func opJMP(c *CPU, crossed bool) uint32 {
	c.PC = c.addr
	return 0
}

func opJSR(c *CPU, crossed bool) uint32 {
	c.push16(c.PC - 1)
	c.PC = c.addr
	return 0
}

func opRTS(c *CPU, crossed bool) uint32 {
	c.PC = c.pull16() + 1
	return 0
}

func opRTI(c *CPU, crossed bool) uint32 {
	c.P = pulledStatus(c.pull8())
	c.PC = c.pull16()
	return 0
}

// BRK pushes the address of the byte after its signature byte, then traps
// through the IRQ vector with B set in the pushed status.
func opBRK(c *CPU, crossed bool) uint32 {
	c.PC++
	c.push16(c.PC)
	c.push8(uint8(c.P) | 1<<pbitB | 1<<pbitU)
	c.P.writeBit(pbitI, true)
	c.PC = c.Read16(IRQVector)
	return 0
}

/* branches */

func opBCC(c *CPU, crossed bool) uint32 { return branch(c, !c.P.C()) }
func opBCS(c *CPU, crossed bool) uint32 { return branch(c, c.P.C()) }
func opBNE(c *CPU, crossed bool) uint32 { return branch(c, !c.P.Z()) }
func opBEQ(c *CPU, crossed bool) uint32 { return branch(c, c.P.Z()) }
func opBPL(c *CPU, crossed bool) uint32 { return branch(c, !c.P.N()) }
func opBMI(c *CPU, crossed bool) uint32 { return branch(c, c.P.N()) }
func opBVC(c *CPU, crossed bool) uint32 { return branch(c, !c.P.V()) }
func opBVS(c *CPU, crossed bool) uint32 { return branch(c, c.P.V()) }

/* flag manipulation */

func opCLC(c *CPU, crossed bool) uint32 { c.P.clearBit(pbitC); return 0 }
func opCLD(c *CPU, crossed bool) uint32 { c.P.clearBit(pbitD); return 0 }
func opCLI(c *CPU, crossed bool) uint32 { c.P.clearBit(pbitI); return 0 }
func opCLV(c *CPU, crossed bool) uint32 { c.P.clearBit(pbitV); return 0 }
func opSEC(c *CPU, crossed bool) uint32 { c.P.setBit(pbitC); return 0 }
func opSED(c *CPU, crossed bool) uint32 { c.P.setBit(pbitD); return 0 }
func opSEI(c *CPU, crossed bool) uint32 { c.P.setBit(pbitI); return 0 }

/* undocumented, stable */

// SLO: shift left memory, then OR into A.
func opSLO(c *CPU, crossed bool) uint32 {
	v := c.operand
	c.P.writeBit(pbitC, v&0x80 != 0)
	v <<= 1
	c.Bus.Write8(c.addr, v)
	c.A |= v
	c.P.checkNZ(c.A)
	return 0
}

// RLA: rotate left memory, then AND into A.
func opRLA(c *CPU, crossed bool) uint32 {
	cin := c.P.ibit(pbitC)
	v := c.operand
	c.P.writeBit(pbitC, v&0x80 != 0)
	v = v<<1 | cin
	c.Bus.Write8(c.addr, v)
	c.A &= v
	c.P.checkNZ(c.A)
	return 0
}

// SRE: shift right memory, then EOR into A.
func opSRE(c *CPU, crossed bool) uint32 {
	v := c.operand
	c.P.writeBit(pbitC, v&0x01 != 0)
	v >>= 1
	c.Bus.Write8(c.addr, v)
	c.A ^= v
	c.P.checkNZ(c.A)
	return 0
}

// RRA: rotate right memory, then add it to A with carry.
func opRRA(c *CPU, crossed bool) uint32 {
	cin := c.P.ibit(pbitC)
	v := c.operand
	c.P.writeBit(pbitC, v&0x01 != 0)
	v = cin<<7 | v>>1
	c.Bus.Write8(c.addr, v)
	c.operand = v
	opADC(c, false)
	return 0
}

// SAX: store A AND X, no flags.
func opSAX(c *CPU, crossed bool) uint32 {
	c.Bus.Write8(c.addr, c.A&c.X)
	return 0
}

// LAX: load A and X together.
func opLAX(c *CPU, crossed bool) uint32 {
	c.A = c.operand
	c.X = c.operand
	c.P.checkNZ(c.A)
	return b2i32(crossed)
}

// DCP: decrement memory, then compare with A.
func opDCP(c *CPU, crossed bool) uint32 {
	v := c.operand - 1
	c.Bus.Write8(c.addr, v)
	c.operand = v
	compare(c, c.A)
	return 0
}

// ISB: increment memory, then subtract it from A with borrow.
func opISB(c *CPU, crossed bool) uint32 {
	v := c.operand + 1
	c.Bus.Write8(c.addr, v)
	c.operand = v
	opSBC(c, false)
	return 0
}

// ANC: AND, with carry copied from the sign bit.
func opANC(c *CPU, crossed bool) uint32 {
	c.A &= c.operand
	c.P.checkNZ(c.A)
	c.P.writeBit(pbitC, c.P.N())
	return 0
}

// ALR: AND, then shift A right.
func opALR(c *CPU, crossed bool) uint32 {
	c.A &= c.operand
	c.P.writeBit(pbitC, c.A&0x01 != 0)
	c.A >>= 1
	c.P.checkNZ(c.A)
	return 0
}

// SBX: X = (A AND X) - operand, carry as in compare.
func opSBX(c *CPU, crossed bool) uint32 {
	t := c.A & c.X
	c.P.writeBit(pbitC, t >= c.operand)
	c.X = t - c.operand
	c.P.checkNZ(c.X)
	return 0
}

/* no-ops */

func opNOP(c *CPU, crossed bool) uint32 { return b2i32(crossed) }

// opXXX is the catch-all for undefined opcodes: behaves as a NOP, the hit is
// reported by the interpreter loop.
func opXXX(c *CPU, crossed bool) uint32 { return 0 }
