package cpu6502

// mode identifies one of the 6502's addressing modes.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type mode uint8

const (
	modeImplicit mode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

// fetchOperandByte reads the next byte and advances PC past it.
func (c *CPU) fetchOperandByte() uint8 {
	v := c.read(c.PC)
	c.PC++
	return v
}

// fetchOperandWord reads the next two bytes (low byte first) and advances
// PC past them.
func (c *CPU) fetchOperandWord() uint16 {
	v := c.read16(c.PC)
	c.PC += 2
	return v
}

// resolve consumes the operand bytes for mode from the instruction stream
// (advancing PC as it goes) and returns the effective address together
// with whether computing it crossed a page boundary. modeImplicit and
// modeAccumulator consume nothing and return a meaningless address; callers
// for those modes never call resolve.
func (c *CPU) resolve(m mode) (addr uint16, pageCrossed bool) {
	switch m {
	case modeImmediate:
		addr = c.PC
		c.PC++
	case modeZeroPage:
		addr = uint16(c.fetchOperandByte())
	case modeZeroPageX:
		addr = uint16(c.fetchOperandByte() + c.X)
	case modeZeroPageY:
		addr = uint16(c.fetchOperandByte() + c.Y)
	case modeAbsolute:
		addr = c.fetchOperandWord()
	case modeAbsoluteX:
		base := c.fetchOperandWord()
		addr = base + uint16(c.X)
		pageCrossed = !samePage(base, addr)
	case modeAbsoluteY:
		base := c.fetchOperandWord()
		addr = base + uint16(c.Y)
		pageCrossed = !samePage(base, addr)
	case modeIndirect:
		ptr := c.fetchOperandWord()
		addr = c.read16bug(ptr)
	case modeIndirectX:
		zp := c.fetchOperandByte() + c.X
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		addr = hi<<8 | lo
	case modeIndirectY:
		zp := c.fetchOperandByte()
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		pageCrossed = !samePage(base, addr)
	case modeRelative:
		offset := int8(c.fetchOperandByte())
		addr = uint16(int32(c.PC) + int32(offset))
	default:
		panic("cpu6502: resolve called with an addressing mode that needs no address")
	}
	return addr, pageCrossed
}
