package cartridge

import "github.com/8bitcore/gintendo/rom"

func init() {
	register(0, func(img *rom.Image) Mapper { return &nrom{board: newBoard(img)} })
}

// nrom is mapper 0: no bank switching. 16KB PRG images are mirrored across
// both $8000-$BFFF and $C000-$FFFF; 32KB images fill the whole window.
type nrom struct {
	board
}

func (m *nrom) ID() uint16   { return 0 }
func (m *nrom) Name() string { return "NROM" }

func (m *nrom) PRGRead(addr uint16) uint8 {
	if addr < 0x8000 {
		return m.readPRGRAM(addr)
	}
	prg := m.img.PRG()
	off := (addr - 0x8000) % uint16(len(prg))
	return prg[off]
}

func (m *nrom) PRGWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		m.writePRGRAM(addr, val)
	}
	// PRG-ROM is fixed; writes above $8000 are ignored.
}

func (m *nrom) CHRRead(addr uint16) uint8        { return m.chrRead(addr) }
func (m *nrom) CHRWrite(addr uint16, val uint8)  { m.chrWrite(addr, val) }
