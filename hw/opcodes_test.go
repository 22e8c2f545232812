package hw

import (
	"testing"
)

func TestADCFlags(t *testing.T) {
	tests := []struct {
		a, operand uint8
		carry      bool
		wantA      uint8
		wantN      bool
		wantV      bool
		wantZ      bool
		wantC      bool
	}{
		{a: 0x50, operand: 0x50, wantA: 0xA0, wantN: true, wantV: true},
		{a: 0x50, operand: 0xD0, wantA: 0x20, wantC: true},
		{a: 0x00, operand: 0x00, wantA: 0x00, wantZ: true},
		{a: 0xFF, operand: 0x01, wantA: 0x00, wantZ: true, wantC: true},
		{a: 0x7F, operand: 0x00, carry: true, wantA: 0x80, wantN: true, wantV: true},
		{a: 0x80, operand: 0x80, wantA: 0x00, wantZ: true, wantV: true, wantC: true},
	}

	for _, tt := range tests {
		cpu, _ := loadCPU(t, 0x8000, []byte{0x69, tt.operand}) // ADC #imm
		cpu.A = tt.a
		cpu.P.writeBit(pbitC, tt.carry)
		step(cpu)

		wantReg8(t, "A", cpu.A, tt.wantA)
		wantFlags(t, cpu.P, map[string]bool{
			"N": tt.wantN, "V": tt.wantV, "Z": tt.wantZ, "C": tt.wantC,
		})
	}
}

func TestSBCFlags(t *testing.T) {
	tests := []struct {
		a, operand uint8
		carry      bool
		wantA      uint8
		wantC      bool
		wantV      bool
		wantN      bool
		wantZ      bool
	}{
		{a: 0x50, operand: 0x30, carry: true, wantA: 0x20, wantC: true},
		{a: 0x50, operand: 0x50, carry: true, wantA: 0x00, wantC: true, wantZ: true},
		{a: 0x30, operand: 0x50, carry: true, wantA: 0xE0, wantN: true},
		{a: 0x80, operand: 0x01, carry: true, wantA: 0x7F, wantC: true, wantV: true},
	}

	for _, tt := range tests {
		cpu, _ := loadCPU(t, 0x8000, []byte{0xE9, tt.operand}) // SBC #imm
		cpu.A = tt.a
		cpu.P.writeBit(pbitC, tt.carry)
		step(cpu)

		wantReg8(t, "A", cpu.A, tt.wantA)
		wantFlags(t, cpu.P, map[string]bool{
			"N": tt.wantN, "V": tt.wantV, "Z": tt.wantZ, "C": tt.wantC,
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		reg, operand uint8
		wantC        bool
		wantZ        bool
		wantN        bool
	}{
		{reg: 0x40, operand: 0x30, wantC: true},
		{reg: 0x40, operand: 0x40, wantC: true, wantZ: true},
		{reg: 0x30, operand: 0x40, wantN: true},
		{reg: 0x80, operand: 0x01, wantC: true},
	}

	for _, tt := range tests {
		cpu, _ := loadCPU(t, 0x8000, []byte{0xC9, tt.operand}) // CMP #imm
		cpu.A = tt.reg
		step(cpu)
		wantFlags(t, cpu.P, map[string]bool{
			"C": tt.wantC, "Z": tt.wantZ, "N": tt.wantN,
		})
	}
}

func TestShiftsAccumulator(t *testing.T) {
	// ASL A: carry takes the shifted-out bit.
	cpu, _ := loadCPU(t, 0x8000, []byte{0x0A}) // ASL A
	cpu.A = 0xC1
	step(cpu)
	wantReg8(t, "A", cpu.A, 0x82)
	wantFlags(t, cpu.P, map[string]bool{"C": true, "N": true, "Z": false})

	// LSR A.
	cpu, _ = loadCPU(t, 0x8000, []byte{0x4A})
	cpu.A = 0x01
	step(cpu)
	wantReg8(t, "A", cpu.A, 0x00)
	wantFlags(t, cpu.P, map[string]bool{"C": true, "Z": true, "N": false})

	// ROL A rotates the carry in.
	cpu, _ = loadCPU(t, 0x8000, []byte{0x2A})
	cpu.A = 0x80
	cpu.P.setBit(pbitC)
	step(cpu)
	wantReg8(t, "A", cpu.A, 0x01)
	wantFlags(t, cpu.P, map[string]bool{"C": true, "Z": false})

	// ROR A.
	cpu, _ = loadCPU(t, 0x8000, []byte{0x6A})
	cpu.A = 0x01
	cpu.P.setBit(pbitC)
	step(cpu)
	wantReg8(t, "A", cpu.A, 0x80)
	wantFlags(t, cpu.P, map[string]bool{"C": true, "N": true})
}

func TestShiftMemoryRMW(t *testing.T) {
	// ASL $10 operates through memory, not A.
	cpu, bus := loadCPU(t, 0x8000, []byte{0x06, 0x10}) // ASL $10
	bus.mem[0x10] = 0x81
	cpu.A = 0x55
	cycles := step(cpu)

	if cycles != 5 {
		t.Errorf("got %d cycles, want 5", cycles)
	}
	wantReg8(t, "$10", bus.mem[0x10], 0x02)
	wantReg8(t, "A", cpu.A, 0x55)
	wantFlags(t, cpu.P, map[string]bool{"C": true, "N": false})

	// INC $10 wraps.
	cpu, bus = loadCPU(t, 0x8000, []byte{0xE6, 0x10})
	bus.mem[0x10] = 0xFF
	step(cpu)
	wantReg8(t, "$10", bus.mem[0x10], 0x00)
	wantFlags(t, cpu.P, map[string]bool{"Z": true})
}

func TestBIT(t *testing.T) {
	cpu, bus := loadCPU(t, 0x8000, []byte{0x24, 0x10}) // BIT $10
	bus.mem[0x10] = 0xC0
	cpu.A = 0x3F
	step(cpu)
	wantFlags(t, cpu.P, map[string]bool{"Z": true, "V": true, "N": true})
}

func TestJMPIndirectPageBug(t *testing.T) {
	// The pointer high byte is fetched from the same page: ($02FF) reads
	// its high byte from $0200, not $0300.
	cpu, bus := loadCPU(t, 0x8000, []byte{0x6C, 0xFF, 0x02}) // JMP ($02FF)
	bus.mem[0x02FF] = 0x34
	bus.mem[0x0300] = 0x56
	bus.mem[0x0200] = 0x78
	cycles := step(cpu)

	wantReg16(t, "PC", cpu.PC, 0x7834)
	if cycles != 5 {
		t.Errorf("got %d cycles, want 5", cycles)
	}
}

func TestBranchCycles(t *testing.T) {
	tests := []struct {
		name       string
		org        uint16
		disp       uint8
		zero       bool
		wantPC     uint16
		wantCycles int
	}{
		{
			name: "not taken", org: 0x8000, disp: 0x05, zero: true,
			wantPC: 0x8002, wantCycles: 2,
		},
		{
			name: "taken same page", org: 0x8000, disp: 0x05, zero: false,
			wantPC: 0x8007, wantCycles: 3,
		},
		{
			name: "taken page crossed", org: 0x80FD, disp: 0x05, zero: false,
			wantPC: 0x8104, wantCycles: 4,
		},
		{
			name: "taken backwards crossed", org: 0x8000, disp: 0xF0, zero: false,
			wantPC: 0x7FF2, wantCycles: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, _ := loadCPU(t, tt.org, []byte{0xD0, tt.disp}) // BNE
			cpu.P.writeBit(pbitZ, tt.zero)
			cycles := step(cpu)

			wantReg16(t, "PC", cpu.PC, tt.wantPC)
			if cycles != tt.wantCycles {
				t.Errorf("got %d cycles, want %d", cycles, tt.wantCycles)
			}
		})
	}
}

func TestPageCrossExtraCycle(t *testing.T) {
	// LDA $80FF,X with X=1 crosses into $8100: 4+1 cycles.
	cpu, _ := loadCPU(t, 0x8000, []byte{0xBD, 0xFF, 0x80}) // LDA $80FF,X
	cpu.X = 1
	if cycles := step(cpu); cycles != 5 {
		t.Errorf("got %d cycles, want 5", cycles)
	}

	// Same read without crossing: 4 cycles.
	cpu, _ = loadCPU(t, 0x8000, []byte{0xBD, 0x00, 0x80})
	cpu.X = 1
	if cycles := step(cpu); cycles != 4 {
		t.Errorf("got %d cycles, want 4", cycles)
	}

	// Stores never take the extra cycle: STA abs,X is always 5.
	cpu, _ = loadCPU(t, 0x8000, []byte{0x9D, 0xFF, 0x80}) // STA $80FF,X
	cpu.X = 1
	if cycles := step(cpu); cycles != 5 {
		t.Errorf("got %d cycles, want 5", cycles)
	}
}

func TestStackOps(t *testing.T) {
	// PHP pushes with B and U set; PLP restores without them.
	cpu, bus := loadCPU(t, 0x8000, []byte{0x08, 0x28}) // PHP, PLP
	cpu.P = 0x01                                       // only carry
	sp := cpu.SP
	step(cpu)

	pushed := bus.mem[0x0100+uint16(sp)]
	wantReg8(t, "pushed P", pushed, 0x01|1<<pbitB|1<<pbitU)

	// Corrupt the stack copy to verify the B/U filtering on restore.
	bus.mem[0x0100+uint16(sp)] = 0xFF
	step(cpu)
	wantFlags(t, cpu.P, map[string]bool{"B": false, "U": true, "C": true, "N": true})

	// PHA/PLA round-trip through page 1.
	cpu, bus = loadCPU(t, 0x8000, []byte{0x48, 0x68}) // PHA, PLA
	cpu.A = 0x42
	sp = cpu.SP
	step(cpu)
	wantReg8(t, "pushed A", bus.mem[0x0100+uint16(sp)], 0x42)
	cpu.A = 0
	step(cpu)
	wantReg8(t, "A", cpu.A, 0x42)
	wantReg8(t, "SP", cpu.SP, sp)
}

func TestJSRandRTS(t *testing.T) {
	cpu, _ := loadCPU(t, 0x8000, []byte{0x20, 0x00, 0x90}) // JSR $9000
	cpu.Bus.Write8(0x9000, 0x60)                           // RTS
	step(cpu)
	wantReg16(t, "PC", cpu.PC, 0x9000)

	// RTS adds 1 to the full 16-bit popped address.
	step(cpu)
	wantReg16(t, "PC", cpu.PC, 0x8003)
}

func TestRTSPageBoundary(t *testing.T) {
	// Return address $90FF + 1 must carry into the high byte.
	cpu, _ := loadCPU(t, 0x90FD, []byte{0x20, 0x00, 0x80}) // JSR $8000 at $90FD
	cpu.Bus.Write8(0x8000, 0x60)                           // RTS
	step(cpu)
	step(cpu)
	wantReg16(t, "PC", cpu.PC, 0x9100)
}

func TestBRKandRTI(t *testing.T) {
	cpu, bus := loadCPU(t, 0x8000, []byte{0x00, 0xFF}) // BRK + signature byte
	bus.mem[IRQVector] = 0x00
	bus.mem[IRQVector+1] = 0x90
	bus.mem[0x9000] = 0x40 // RTI
	cpu.P = 0x20           // U only
	sp := cpu.SP

	cycles := step(cpu)
	if cycles != 7 {
		t.Errorf("got %d cycles, want 7", cycles)
	}
	wantReg16(t, "PC", cpu.PC, 0x9000)
	wantFlags(t, cpu.P, map[string]bool{"I": true})

	// Pushed PC skips the signature byte; pushed P has B and U set.
	retaddr := uint16(bus.mem[0x0100+uint16(sp)])<<8 | uint16(bus.mem[0x0100+uint16(sp)-1])
	wantReg16(t, "pushed PC", retaddr, 0x8002)
	wantReg8(t, "pushed P", bus.mem[0x0100+uint16(sp)-2], 0x20|1<<pbitB|1<<pbitU)

	// RTI restores P (sans B) and PC exactly, without the RTS increment.
	step(cpu)
	wantReg16(t, "PC", cpu.PC, 0x8002)
	wantFlags(t, cpu.P, map[string]bool{"B": false, "U": true, "I": false})
}

func TestTransfers(t *testing.T) {
	// TXS must not touch the flags, TSX must.
	cpu, _ := loadCPU(t, 0x8000, []byte{0x9A, 0xBA}) // TXS, TSX
	cpu.X = 0x00
	cpu.P = 0
	step(cpu)
	wantReg8(t, "SP", cpu.SP, 0x00)
	wantFlags(t, cpu.P, map[string]bool{"Z": false, "N": false})

	cpu.X = 0xFF
	step(cpu)
	wantReg8(t, "X", cpu.X, 0x00)
	wantFlags(t, cpu.P, map[string]bool{"Z": true})
}

func TestUndefinedOpcodeIsNOP(t *testing.T) {
	// $02 has no stable effect: 2 cycles, no state change but PC.
	cpu, _ := loadCPU(t, 0x8000, []byte{0x02, 0xEA})
	a, x, y, sp, p := cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.P

	cycles := step(cpu)
	if cycles != 2 {
		t.Errorf("got %d cycles, want 2", cycles)
	}
	wantReg16(t, "PC", cpu.PC, 0x8001)
	wantReg8(t, "A", cpu.A, a)
	wantReg8(t, "X", cpu.X, x)
	wantReg8(t, "Y", cpu.Y, y)
	wantReg8(t, "SP", cpu.SP, sp)
	wantReg8(t, "P", uint8(cpu.P), uint8(p))
}

func TestStableIllegals(t *testing.T) {
	// LAX loads A and X together.
	cpu, bus := loadCPU(t, 0x8000, []byte{0xA7, 0x10}) // LAX $10
	bus.mem[0x10] = 0x8F
	step(cpu)
	wantReg8(t, "A", cpu.A, 0x8F)
	wantReg8(t, "X", cpu.X, 0x8F)
	wantFlags(t, cpu.P, map[string]bool{"N": true})

	// SAX stores A AND X without flags.
	cpu, bus = loadCPU(t, 0x8000, []byte{0x87, 0x10}) // SAX $10
	cpu.A = 0xF0
	cpu.X = 0x3C
	step(cpu)
	wantReg8(t, "$10", bus.mem[0x10], 0x30)

	// DCP decrements then compares.
	cpu, bus = loadCPU(t, 0x8000, []byte{0xC7, 0x10}) // DCP $10
	bus.mem[0x10] = 0x41
	cpu.A = 0x40
	step(cpu)
	wantReg8(t, "$10", bus.mem[0x10], 0x40)
	wantFlags(t, cpu.P, map[string]bool{"Z": true, "C": true})

	// ISB increments then subtracts.
	cpu, bus = loadCPU(t, 0x8000, []byte{0xE7, 0x10}) // ISB $10
	bus.mem[0x10] = 0x0F
	cpu.A = 0x20
	cpu.P.setBit(pbitC)
	step(cpu)
	wantReg8(t, "$10", bus.mem[0x10], 0x10)
	wantReg8(t, "A", cpu.A, 0x10)

	// SLO shifts memory left then ORs.
	cpu, bus = loadCPU(t, 0x8000, []byte{0x07, 0x10}) // SLO $10
	bus.mem[0x10] = 0x81
	cpu.A = 0x01
	step(cpu)
	wantReg8(t, "$10", bus.mem[0x10], 0x02)
	wantReg8(t, "A", cpu.A, 0x03)
	wantFlags(t, cpu.P, map[string]bool{"C": true})
}

func TestIZYPageCross(t *testing.T) {
	// LDA ($10),Y crossing a page takes 6 cycles instead of 5.
	cpu, bus := loadCPU(t, 0x8000, []byte{0xB1, 0x10}) // LDA ($10),Y
	bus.mem[0x10] = 0xFF
	bus.mem[0x11] = 0x20 // base $20FF
	bus.mem[0x2100] = 0x77
	cpu.Y = 1
	cycles := step(cpu)

	wantReg8(t, "A", cpu.A, 0x77)
	if cycles != 6 {
		t.Errorf("got %d cycles, want 6", cycles)
	}
}

func TestIZXZeroPageWrap(t *testing.T) {
	// The pointer stays in the zero page: ($FF,X) with X=1 reads the
	// pointer from $00/$01.
	cpu, bus := loadCPU(t, 0x8000, []byte{0xA1, 0xFF}) // LDA ($FF,X)
	cpu.X = 1
	bus.mem[0x00] = 0x34
	bus.mem[0x01] = 0x12
	bus.mem[0x1234] = 0x99
	step(cpu)
	wantReg8(t, "A", cpu.A, 0x99)
}
