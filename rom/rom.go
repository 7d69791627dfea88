// Package rom parses iNES/NES 2.0 cartridge images into the PRG/CHR blocks
// and mapper metadata a cartridge.Mapper needs to initialize itself.
// https://www.nesdev.org/wiki/INES
package rom

import (
	"fmt"
	"io"
	"os"
)

const (
	headerSize   = 16
	trainerSize  = 512
	prgBlockSize = 16384
	chrBlockSize = 8192
)

// Image holds a fully loaded cartridge image: header metadata plus the raw
// PRG/CHR banks a mapper slices up.
type Image struct {
	path string
	h    *header
	prg  []byte
	chr  []byte // empty when the cartridge uses CHR-RAM
}

// Load reads path and parses it as an iNES image.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rom: open %q: %w", path, err)
	}
	defer f.Close()

	hbytes := make([]byte, headerSize)
	if _, err := io.ReadFull(f, hbytes); err != nil {
		return nil, fmt.Errorf("rom: read header: %w", err)
	}
	h := parseHeader(hbytes)
	if !h.isINes() {
		return nil, fmt.Errorf("rom: %q is not an iNES image (bad magic %q)", path, h.constant)
	}

	img := &Image{path: path, h: h}

	if h.hasTrainer() {
		trainer := make([]byte, trainerSize)
		if _, err := io.ReadFull(f, trainer); err != nil {
			return nil, fmt.Errorf("rom: read trainer: %w", err)
		}
	}

	img.prg = make([]byte, prgBlockSize*int(h.prgSize))
	if _, err := io.ReadFull(f, img.prg); err != nil {
		return nil, fmt.Errorf("rom: read %d bytes of PRG-ROM: %w", len(img.prg), err)
	}

	if h.chrSize > 0 {
		img.chr = make([]byte, chrBlockSize*int(h.chrSize))
		if _, err := io.ReadFull(f, img.chr); err != nil {
			return nil, fmt.Errorf("rom: read %d bytes of CHR-ROM: %w", len(img.chr), err)
		}
	}

	return img, nil
}

func (i *Image) Path() string           { return i.path }
func (i *Image) PRG() []byte            { return i.prg }
func (i *Image) CHR() []byte            { return i.chr }
func (i *Image) HasCHRRAM() bool        { return len(i.chr) == 0 }
func (i *Image) MapperID() uint16       { return i.h.mapperID() }
func (i *Image) Mirroring() Mirroring   { return i.h.mirroring() }
func (i *Image) HasBattery() bool       { return i.h.hasBattery() }
func (i *Image) PRGRAMUnits() uint8     { return i.h.prgRAMUnits() }
func (i *Image) String() string         { return i.h.String() }
