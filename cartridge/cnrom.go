package cartridge

import "github.com/8bitcore/gintendo/rom"

func init() {
	register(3, func(img *rom.Image) Mapper { return &cnrom{board: newBoard(img)} })
}

// cnrom is mapper 3: fixed PRG (16KB mirrored or 32KB), and a single 8KB CHR
// bank selected by any write to $8000-$FFFF.
type cnrom struct {
	board
	chrBank uint8
}

func (m *cnrom) ID() uint16   { return 3 }
func (m *cnrom) Name() string { return "CNROM" }

func (m *cnrom) PRGRead(addr uint16) uint8 {
	if addr < 0x8000 {
		return m.readPRGRAM(addr)
	}
	prg := m.img.PRG()
	off := (addr - 0x8000) % uint16(len(prg))
	return prg[off]
}

func (m *cnrom) PRGWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		m.writePRGRAM(addr, val)
		return
	}
	m.chrBank = val & 0x03
}

func (m *cnrom) CHRRead(addr uint16) uint8 {
	if m.chrRAM != nil {
		return m.chrRead(addr)
	}
	const chrBlockSize8 = 8192
	off := uint16(m.chrBank)*chrBlockSize8 + addr
	return m.img.CHR()[off]
}

func (m *cnrom) CHRWrite(addr uint16, val uint8) { m.chrWrite(addr, val) }
