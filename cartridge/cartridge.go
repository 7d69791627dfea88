// Package cartridge implements the mapper family a cartridge board presents
// to the CPU and PPU buses: bank switching, mirroring control, and optional
// battery-backed PRG RAM.
package cartridge

import (
	"fmt"

	"github.com/8bitcore/gintendo/rom"
)

const (
	prgRAMSize = 0x2000 // 8KB at $6000-$7FFF
	chrRAMSize = 0x2000 // 8KB, used when the cartridge has no CHR-ROM
)

// Mapper is the interface a cartridge board implements. The bus routes PRG
// accesses in $6000-$FFFF and CHR accesses in $0000-$1FFF here; everything
// else (RAM mirroring, PPU registers, controllers) is the bus's own job.
type Mapper interface {
	ID() uint16
	Name() string
	PRGRead(addr uint16) uint8
	PRGWrite(addr uint16, val uint8)
	CHRRead(addr uint16) uint8
	CHRWrite(addr uint16, val uint8)
	Mirroring() rom.Mirroring
	HasBattery() bool
	PRGRAM() []byte
	LoadPRGRAM(data []byte)
}

// New selects and initializes the mapper named by img's header.
func New(img *rom.Image) (Mapper, error) {
	ctor, ok := registry[img.MapperID()]
	if !ok {
		return nil, fmt.Errorf("cartridge: unsupported mapper id %d", img.MapperID())
	}
	return ctor(img), nil
}

type ctorFunc func(*rom.Image) Mapper

var registry = map[uint16]ctorFunc{}

func register(id uint16, ctor ctorFunc) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("cartridge: mapper id %d registered twice", id))
	}
	registry[id] = ctor
}

// board carries the fields every mapper needs: the backing image, a
// save-RAM region, and CHR-RAM for cartridges with chrSize==0.
type board struct {
	img     *rom.Image
	prgRAM  [prgRAMSize]byte
	chrRAM  []byte
	mirror  rom.Mirroring
}

func newBoard(img *rom.Image) board {
	b := board{img: img, mirror: img.Mirroring()}
	if img.HasCHRRAM() {
		b.chrRAM = make([]byte, chrRAMSize)
	}
	return b
}

func (b *board) Mirroring() rom.Mirroring { return b.mirror }
func (b *board) HasBattery() bool         { return b.img.HasBattery() }

func (b *board) readPRGRAM(addr uint16) uint8 {
	return b.prgRAM[addr-0x6000]
}

func (b *board) writePRGRAM(addr uint16, val uint8) {
	b.prgRAM[addr-0x6000] = val
}

// PRGRAM exposes the battery-backed save RAM so the host can persist it
// between sessions for cartridges with HasBattery set.
func (b *board) PRGRAM() []byte { return b.prgRAM[:] }

// LoadPRGRAM restores save RAM from a previous session's persisted copy.
func (b *board) LoadPRGRAM(data []byte) {
	copy(b.prgRAM[:], data)
}

// chrRead/chrWrite dispatch to CHR-RAM when the board has it, else to
// unbanked CHR-ROM; banked mappers compute their own CHR-ROM offsets and
// call these only for CHR-RAM.
func (b *board) chrRead(addr uint16) uint8 {
	if b.chrRAM != nil {
		return b.chrRAM[addr%uint16(len(b.chrRAM))]
	}
	return b.img.CHR()[addr]
}

func (b *board) chrWrite(addr uint16, val uint8) {
	if b.chrRAM != nil {
		b.chrRAM[addr%uint16(len(b.chrRAM))] = val
		return
	}
	// Writes to CHR-ROM are a no-op; some carts wire this as a bus
	// conflict, which we don't model.
}
