package cartridge

import "github.com/8bitcore/gintendo/rom"

func init() {
	register(1, func(img *rom.Image) Mapper { return newMMC1(img) })
}

// mmc1 implements mapper 1. Software loads its four internal registers
// (control, CHR bank 0, CHR bank 1, PRG bank) one bit at a time through a
// 5-write serial shift register at any address in $8000-$FFFF; writing with
// bit 7 set resets the shift register and forces 16KB PRG mode with the
// last bank fixed, matching the power-on-equivalent reset behavior real
// software relies on.
//
// https://www.nesdev.org/wiki/MMC1
type mmc1 struct {
	board

	shift    uint8
	shiftLen uint8

	control uint8
	chrBank [2]uint8
	prgBank uint8
}

func newMMC1(img *rom.Image) *mmc1 {
	m := &mmc1{board: newBoard(img)}
	m.control = 0x0C
	return m
}

func (m *mmc1) ID() uint16   { return 1 }
func (m *mmc1) Name() string { return "MMC1" }

func (m *mmc1) Mirroring() rom.Mirroring {
	switch m.control & 0x03 {
	case 0, 1:
		return rom.MirrorFourScreen // one-screen modes; approximated
	case 2:
		return rom.MirrorVertical
	default:
		return rom.MirrorHorizontal
	}
}

func (m *mmc1) prgBankMode() uint8 { return (m.control >> 2) & 0x03 }
func (m *mmc1) chrBankMode() uint8 { return (m.control >> 4) & 0x01 }

func (m *mmc1) PRGRead(addr uint16) uint8 {
	if addr < 0x8000 {
		return m.readPRGRAM(addr)
	}
	prg := m.img.PRG()
	banks16 := uint16(len(prg) / prgBlockSize16)

	switch m.prgBankMode() {
	case 0, 1:
		bank32 := uint16(m.prgBank>>1) % (banks16 / 2)
		off := bank32*prgBlockSize16*2 + (addr - 0x8000)
		return prg[off]
	case 2:
		if addr < 0xC000 {
			return prg[addr-0x8000] // bank 0 fixed
		}
		bank := uint16(m.prgBank) % banks16
		return prg[bank*prgBlockSize16+(addr-0xC000)]
	default: // 3: switch at $8000, fix last bank at $C000
		if addr < 0xC000 {
			bank := uint16(m.prgBank) % banks16
			return prg[bank*prgBlockSize16+(addr-0x8000)]
		}
		return prg[(banks16-1)*prgBlockSize16+(addr-0xC000)]
	}
}

func (m *mmc1) PRGWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		m.writePRGRAM(addr, val)
		return
	}

	if val&0x80 != 0 {
		m.shift = 0
		m.shiftLen = 0
		m.control |= 0x0C
		return
	}

	m.shift |= (val & 0x01) << m.shiftLen
	m.shiftLen++
	if m.shiftLen < 5 {
		return
	}

	value := m.shift
	m.shift = 0
	m.shiftLen = 0

	switch {
	case addr < 0xA000:
		m.control = value
	case addr < 0xC000:
		m.chrBank[0] = value
	case addr < 0xE000:
		m.chrBank[1] = value
	default:
		m.prgBank = value & 0x0F
	}
}

func (m *mmc1) CHRRead(addr uint16) uint8 {
	if m.chrRAM != nil {
		return m.chrRead(addr)
	}
	const chrBlockSize4 = 4096
	chr := m.img.CHR()
	banks4 := uint16(len(chr) / chrBlockSize4)

	if m.chrBankMode() == 0 {
		bank8 := uint16(m.chrBank[0]>>1) % (banks4 / 2)
		return chr[bank8*chrBlockSize4*2+addr]
	}
	if addr < 0x1000 {
		bank := uint16(m.chrBank[0]) % banks4
		return chr[bank*chrBlockSize4+addr]
	}
	bank := uint16(m.chrBank[1]) % banks4
	return chr[bank*chrBlockSize4+(addr-0x1000)]
}

func (m *mmc1) CHRWrite(addr uint16, val uint8) { m.chrWrite(addr, val) }
