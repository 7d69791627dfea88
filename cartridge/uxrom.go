package cartridge

import "github.com/8bitcore/gintendo/rom"

func init() {
	register(2, func(img *rom.Image) Mapper {
		m := &uxrom{board: newBoard(img)}
		if m.chrRAM == nil {
			m.chrRAM = make([]byte, chrRAMSize)
		}
		return m
	})
}

// uxrom is mapper 2: a 16KB switchable bank at $8000-$BFFF selected by any
// write in $8000-$FFFF, with the last 16KB bank fixed at $C000-$FFFF. CHR is
// always RAM (these boards shipped with no CHR-ROM).
type uxrom struct {
	board
	bank uint8
}

func (m *uxrom) ID() uint16   { return 2 }
func (m *uxrom) Name() string { return "UxROM" }

func (m *uxrom) PRGRead(addr uint16) uint8 {
	if addr < 0x8000 {
		return m.readPRGRAM(addr)
	}
	prg := m.img.PRG()
	banks := uint16(len(prg) / prgBlockSize16)
	switch {
	case addr < 0xC000:
		off := uint16(m.bank)%banks*prgBlockSize16 + (addr - 0x8000)
		return prg[off]
	default:
		off := (banks-1)*prgBlockSize16 + (addr - 0xC000)
		return prg[off]
	}
}

func (m *uxrom) PRGWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		m.writePRGRAM(addr, val)
		return
	}
	m.bank = val & 0x0F
}

func (m *uxrom) CHRRead(addr uint16) uint8       { return m.chrRead(addr) }
func (m *uxrom) CHRWrite(addr uint16, val uint8) { m.chrWrite(addr, val) }

const prgBlockSize16 = 16384
