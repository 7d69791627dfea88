package cpu6502

// opcode binds a mnemonic's addressing mode, instruction length, and base
// cycle cost to the function that executes it. Dispatch is a flat 256-entry
// table indexed by the fetched opcode byte -- no reflection, no opcode
// class hierarchy.
type opcode struct {
	name   string
	mode   mode
	bytes  uint8
	cycles uint8
	exec   func(*CPU, mode)
}

// illegal is the fallback for opcode bytes the 6502 never officially
// defined. It behaves as a one-byte, two-cycle NOP; strict/trapping
// behavior for illegal opcodes is a host-level policy, not a core one (see
// UnsupportedOpcode in the error taxonomy).
var illegal = opcode{"???", modeImplicit, 1, 2, (*CPU).nop}

var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcode {
	var t [256]opcode
	for i := range t {
		t[i] = illegal
	}

	set := func(b byte, name string, m mode, bytes, cycles uint8, exec func(*CPU, mode)) {
		t[b] = opcode{name, m, bytes, cycles, exec}
	}

	set(0x69, "ADC", modeImmediate, 2, 2, (*CPU).adc)
	set(0x65, "ADC", modeZeroPage, 2, 3, (*CPU).adc)
	set(0x75, "ADC", modeZeroPageX, 2, 4, (*CPU).adc)
	set(0x6D, "ADC", modeAbsolute, 3, 4, (*CPU).adc)
	set(0x7D, "ADC", modeAbsoluteX, 3, 4, (*CPU).adc)
	set(0x79, "ADC", modeAbsoluteY, 3, 4, (*CPU).adc)
	set(0x61, "ADC", modeIndirectX, 2, 6, (*CPU).adc)
	set(0x71, "ADC", modeIndirectY, 2, 5, (*CPU).adc)

	set(0x29, "AND", modeImmediate, 2, 2, (*CPU).and)
	set(0x25, "AND", modeZeroPage, 2, 3, (*CPU).and)
	set(0x35, "AND", modeZeroPageX, 2, 4, (*CPU).and)
	set(0x2D, "AND", modeAbsolute, 3, 4, (*CPU).and)
	set(0x3D, "AND", modeAbsoluteX, 3, 4, (*CPU).and)
	set(0x39, "AND", modeAbsoluteY, 3, 4, (*CPU).and)
	set(0x21, "AND", modeIndirectX, 2, 6, (*CPU).and)
	set(0x31, "AND", modeIndirectY, 2, 5, (*CPU).and)

	set(0x0A, "ASL", modeAccumulator, 1, 2, (*CPU).asl)
	set(0x06, "ASL", modeZeroPage, 2, 5, (*CPU).asl)
	set(0x16, "ASL", modeZeroPageX, 2, 6, (*CPU).asl)
	set(0x0E, "ASL", modeAbsolute, 3, 6, (*CPU).asl)
	set(0x1E, "ASL", modeAbsoluteX, 3, 7, (*CPU).asl)

	set(0x90, "BCC", modeRelative, 2, 2, branchOp(FlagCarry, false))
	set(0xB0, "BCS", modeRelative, 2, 2, branchOp(FlagCarry, true))
	set(0xF0, "BEQ", modeRelative, 2, 2, branchOp(FlagZero, true))
	set(0x30, "BMI", modeRelative, 2, 2, branchOp(FlagNegative, true))
	set(0xD0, "BNE", modeRelative, 2, 2, branchOp(FlagZero, false))
	set(0x10, "BPL", modeRelative, 2, 2, branchOp(FlagNegative, false))
	set(0x50, "BVC", modeRelative, 2, 2, branchOp(FlagOverflow, false))
	set(0x70, "BVS", modeRelative, 2, 2, branchOp(FlagOverflow, true))

	set(0x24, "BIT", modeZeroPage, 2, 3, (*CPU).bit)
	set(0x2C, "BIT", modeAbsolute, 3, 4, (*CPU).bit)

	set(0x00, "BRK", modeImplicit, 2, 7, (*CPU).brk)

	set(0x18, "CLC", modeImplicit, 1, 2, flagOp(FlagCarry, false))
	set(0xD8, "CLD", modeImplicit, 1, 2, flagOp(FlagDecimal, false))
	set(0x58, "CLI", modeImplicit, 1, 2, flagOp(FlagInterruptDisable, false))
	set(0xB8, "CLV", modeImplicit, 1, 2, flagOp(FlagOverflow, false))
	set(0x38, "SEC", modeImplicit, 1, 2, flagOp(FlagCarry, true))
	set(0xF8, "SED", modeImplicit, 1, 2, flagOp(FlagDecimal, true))
	set(0x78, "SEI", modeImplicit, 1, 2, flagOp(FlagInterruptDisable, true))

	set(0xC9, "CMP", modeImmediate, 2, 2, (*CPU).cmp)
	set(0xC5, "CMP", modeZeroPage, 2, 3, (*CPU).cmp)
	set(0xD5, "CMP", modeZeroPageX, 2, 4, (*CPU).cmp)
	set(0xCD, "CMP", modeAbsolute, 3, 4, (*CPU).cmp)
	set(0xDD, "CMP", modeAbsoluteX, 3, 4, (*CPU).cmp)
	set(0xD9, "CMP", modeAbsoluteY, 3, 4, (*CPU).cmp)
	set(0xC1, "CMP", modeIndirectX, 2, 6, (*CPU).cmp)
	set(0xD1, "CMP", modeIndirectY, 2, 5, (*CPU).cmp)

	set(0xE0, "CPX", modeImmediate, 2, 2, (*CPU).cpx)
	set(0xE4, "CPX", modeZeroPage, 2, 3, (*CPU).cpx)
	set(0xEC, "CPX", modeAbsolute, 3, 4, (*CPU).cpx)

	set(0xC0, "CPY", modeImmediate, 2, 2, (*CPU).cpy)
	set(0xC4, "CPY", modeZeroPage, 2, 3, (*CPU).cpy)
	set(0xCC, "CPY", modeAbsolute, 3, 4, (*CPU).cpy)

	set(0xC6, "DEC", modeZeroPage, 2, 5, (*CPU).dec)
	set(0xD6, "DEC", modeZeroPageX, 2, 6, (*CPU).dec)
	set(0xCE, "DEC", modeAbsolute, 3, 6, (*CPU).dec)
	set(0xDE, "DEC", modeAbsoluteX, 3, 7, (*CPU).dec)
	set(0xCA, "DEX", modeImplicit, 1, 2, (*CPU).dex)
	set(0x88, "DEY", modeImplicit, 1, 2, (*CPU).dey)

	set(0x49, "EOR", modeImmediate, 2, 2, (*CPU).eor)
	set(0x45, "EOR", modeZeroPage, 2, 3, (*CPU).eor)
	set(0x55, "EOR", modeZeroPageX, 2, 4, (*CPU).eor)
	set(0x4D, "EOR", modeAbsolute, 3, 4, (*CPU).eor)
	set(0x5D, "EOR", modeAbsoluteX, 3, 4, (*CPU).eor)
	set(0x59, "EOR", modeAbsoluteY, 3, 4, (*CPU).eor)
	set(0x41, "EOR", modeIndirectX, 2, 6, (*CPU).eor)
	set(0x51, "EOR", modeIndirectY, 2, 5, (*CPU).eor)

	set(0xE6, "INC", modeZeroPage, 2, 5, (*CPU).inc)
	set(0xF6, "INC", modeZeroPageX, 2, 6, (*CPU).inc)
	set(0xEE, "INC", modeAbsolute, 3, 6, (*CPU).inc)
	set(0xFE, "INC", modeAbsoluteX, 3, 7, (*CPU).inc)
	set(0xE8, "INX", modeImplicit, 1, 2, (*CPU).inx)
	set(0xC8, "INY", modeImplicit, 1, 2, (*CPU).iny)

	set(0x4C, "JMP", modeAbsolute, 3, 3, (*CPU).jmp)
	set(0x6C, "JMP", modeIndirect, 3, 5, (*CPU).jmp)
	set(0x20, "JSR", modeAbsolute, 3, 6, (*CPU).jsr)

	set(0xA9, "LDA", modeImmediate, 2, 2, (*CPU).lda)
	set(0xA5, "LDA", modeZeroPage, 2, 3, (*CPU).lda)
	set(0xB5, "LDA", modeZeroPageX, 2, 4, (*CPU).lda)
	set(0xAD, "LDA", modeAbsolute, 3, 4, (*CPU).lda)
	set(0xBD, "LDA", modeAbsoluteX, 3, 4, (*CPU).lda)
	set(0xB9, "LDA", modeAbsoluteY, 3, 4, (*CPU).lda)
	set(0xA1, "LDA", modeIndirectX, 2, 6, (*CPU).lda)
	set(0xB1, "LDA", modeIndirectY, 2, 5, (*CPU).lda)

	set(0xA2, "LDX", modeImmediate, 2, 2, (*CPU).ldx)
	set(0xA6, "LDX", modeZeroPage, 2, 3, (*CPU).ldx)
	set(0xB6, "LDX", modeZeroPageY, 2, 4, (*CPU).ldx)
	set(0xAE, "LDX", modeAbsolute, 3, 4, (*CPU).ldx)
	set(0xBE, "LDX", modeAbsoluteY, 3, 4, (*CPU).ldx)

	set(0xA0, "LDY", modeImmediate, 2, 2, (*CPU).ldy)
	set(0xA4, "LDY", modeZeroPage, 2, 3, (*CPU).ldy)
	set(0xB4, "LDY", modeZeroPageX, 2, 4, (*CPU).ldy)
	set(0xAC, "LDY", modeAbsolute, 3, 4, (*CPU).ldy)
	set(0xBC, "LDY", modeAbsoluteX, 3, 4, (*CPU).ldy)

	set(0x4A, "LSR", modeAccumulator, 1, 2, (*CPU).lsr)
	set(0x46, "LSR", modeZeroPage, 2, 5, (*CPU).lsr)
	set(0x56, "LSR", modeZeroPageX, 2, 6, (*CPU).lsr)
	set(0x4E, "LSR", modeAbsolute, 3, 6, (*CPU).lsr)
	set(0x5E, "LSR", modeAbsoluteX, 3, 7, (*CPU).lsr)

	set(0xEA, "NOP", modeImplicit, 1, 2, (*CPU).nop)

	set(0x09, "ORA", modeImmediate, 2, 2, (*CPU).ora)
	set(0x05, "ORA", modeZeroPage, 2, 3, (*CPU).ora)
	set(0x15, "ORA", modeZeroPageX, 2, 4, (*CPU).ora)
	set(0x0D, "ORA", modeAbsolute, 3, 4, (*CPU).ora)
	set(0x1D, "ORA", modeAbsoluteX, 3, 4, (*CPU).ora)
	set(0x19, "ORA", modeAbsoluteY, 3, 4, (*CPU).ora)
	set(0x01, "ORA", modeIndirectX, 2, 6, (*CPU).ora)
	set(0x11, "ORA", modeIndirectY, 2, 5, (*CPU).ora)

	set(0x48, "PHA", modeImplicit, 1, 3, (*CPU).pha)
	set(0x08, "PHP", modeImplicit, 1, 3, (*CPU).php)
	set(0x68, "PLA", modeImplicit, 1, 4, (*CPU).pla)
	set(0x28, "PLP", modeImplicit, 1, 4, (*CPU).plp)

	set(0x2A, "ROL", modeAccumulator, 1, 2, (*CPU).rol)
	set(0x26, "ROL", modeZeroPage, 2, 5, (*CPU).rol)
	set(0x36, "ROL", modeZeroPageX, 2, 6, (*CPU).rol)
	set(0x2E, "ROL", modeAbsolute, 3, 6, (*CPU).rol)
	set(0x3E, "ROL", modeAbsoluteX, 3, 7, (*CPU).rol)

	set(0x6A, "ROR", modeAccumulator, 1, 2, (*CPU).ror)
	set(0x66, "ROR", modeZeroPage, 2, 5, (*CPU).ror)
	set(0x76, "ROR", modeZeroPageX, 2, 6, (*CPU).ror)
	set(0x6E, "ROR", modeAbsolute, 3, 6, (*CPU).ror)
	set(0x7E, "ROR", modeAbsoluteX, 3, 7, (*CPU).ror)

	set(0x40, "RTI", modeImplicit, 1, 6, (*CPU).rti)
	set(0x60, "RTS", modeImplicit, 1, 6, (*CPU).rts)

	set(0xE9, "SBC", modeImmediate, 2, 2, (*CPU).sbc)
	set(0xE5, "SBC", modeZeroPage, 2, 3, (*CPU).sbc)
	set(0xF5, "SBC", modeZeroPageX, 2, 4, (*CPU).sbc)
	set(0xED, "SBC", modeAbsolute, 3, 4, (*CPU).sbc)
	set(0xFD, "SBC", modeAbsoluteX, 3, 4, (*CPU).sbc)
	set(0xF9, "SBC", modeAbsoluteY, 3, 4, (*CPU).sbc)
	set(0xE1, "SBC", modeIndirectX, 2, 6, (*CPU).sbc)
	set(0xF1, "SBC", modeIndirectY, 2, 5, (*CPU).sbc)

	set(0x85, "STA", modeZeroPage, 2, 3, (*CPU).sta)
	set(0x95, "STA", modeZeroPageX, 2, 4, (*CPU).sta)
	set(0x8D, "STA", modeAbsolute, 3, 4, (*CPU).sta)
	set(0x9D, "STA", modeAbsoluteX, 3, 5, (*CPU).sta)
	set(0x99, "STA", modeAbsoluteY, 3, 5, (*CPU).sta)
	set(0x81, "STA", modeIndirectX, 2, 6, (*CPU).sta)
	set(0x91, "STA", modeIndirectY, 2, 6, (*CPU).sta)

	set(0x86, "STX", modeZeroPage, 2, 3, (*CPU).stx)
	set(0x96, "STX", modeZeroPageY, 2, 4, (*CPU).stx)
	set(0x8E, "STX", modeAbsolute, 3, 4, (*CPU).stx)

	set(0x84, "STY", modeZeroPage, 2, 3, (*CPU).sty)
	set(0x94, "STY", modeZeroPageX, 2, 4, (*CPU).sty)
	set(0x8C, "STY", modeAbsolute, 3, 4, (*CPU).sty)

	set(0xAA, "TAX", modeImplicit, 1, 2, (*CPU).tax)
	set(0xA8, "TAY", modeImplicit, 1, 2, (*CPU).tay)
	set(0xBA, "TSX", modeImplicit, 1, 2, (*CPU).tsx)
	set(0x8A, "TXA", modeImplicit, 1, 2, (*CPU).txa)
	set(0x9A, "TXS", modeImplicit, 1, 2, (*CPU).txs)
	set(0x98, "TYA", modeImplicit, 1, 2, (*CPU).tya)

	return t
}
