// Package bus implements the NES CPU memory map: 2KB of mirrored work RAM,
// the PPU register window, controller ports, the APU register range, and
// cartridge PRG space. It is the single collaborator the CPU, PPU, and APU
// all mount on.
package bus

import (
	"fmt"

	"github.com/8bitcore/gintendo/apu"
	"github.com/8bitcore/gintendo/cartridge"
	"github.com/8bitcore/gintendo/ppu"
)

const (
	ramSize = 0x0800 // 2KB built-in work RAM

	maxRAMMirrored = 0x1FFF
	maxPPUMirrored = 0x3FFF
	maxIORegisters = 0x4020
	maxCartSpace   = 0xFFFF

	regOAMDMA     = 0x4014
	regController1 = 0x4016
	regController2 = 0x4017
)

// Bus wires the CPU's view of memory to RAM, the PPU, the APU, the
// cartridge mapper, and the two controller ports.
type Bus struct {
	ram  [ramSize]uint8
	ppu  *ppu.PPU
	apu  *apu.APU
	cart cartridge.Mapper
	ctrl [2]*Controller

	dmaPage    uint8
	dmaPending bool
}

// New wires bus to the given cartridge, PPU, APU, and controllers.
func New(cart cartridge.Mapper, p *ppu.PPU, a *apu.APU, ctrl1, ctrl2 *Controller) *Bus {
	return &Bus{cart: cart, ppu: p, apu: a, ctrl: [2]*Controller{ctrl1, ctrl2}}
}

// Read implements cpu6502.Bus.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= maxRAMMirrored:
		return b.ram[addr&0x07FF]
	case addr <= maxPPUMirrored:
		return b.ppu.ReadReg(0x2000 + (addr-0x2000)&0x0007)
	case addr == regController1:
		return b.ctrl[0].Read()
	case addr == regController2:
		return b.ctrl[1].Read()
	case addr < maxIORegisters:
		return b.apu.ReadReg(addr)
	case addr < 0x6000:
		return 0 // $4020-$5FFF: expansion area, unused by the supported mappers
	case addr <= maxCartSpace:
		return b.cart.PRGRead(addr)
	}
	panic(fmt.Sprintf("bus: read from unmapped address %#04x", addr))
}

// Write implements cpu6502.Bus.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= maxRAMMirrored:
		b.ram[addr&0x07FF] = val
	case addr <= maxPPUMirrored:
		b.ppu.WriteReg(0x2000+(addr-0x2000)&0x0007, val)
	case addr == regOAMDMA:
		b.dmaPage = val
		b.dmaPending = true
	case addr == regController1:
		b.ctrl[0].Write(val)
		b.ctrl[1].Write(val)
	case addr < maxIORegisters:
		b.apu.WriteReg(addr, val)
	case addr < 0x6000:
		// $4020-$5FFF: expansion area, unused by the supported mappers.
	case addr <= maxCartSpace:
		b.cart.PRGWrite(addr, val)
	}
}

// TakeDMA reports and clears a pending $4014 write; the clock driver polls
// this once per CPU step and, if set, performs the 256-byte OAM copy
// itself so it can also charge the CPU the correct stall cycles.
func (b *Bus) TakeDMA() (page uint8, pending bool) {
	if !b.dmaPending {
		return 0, false
	}
	b.dmaPending = false
	return b.dmaPage, true
}

// PPU exposes the mounted PPU so the clock driver can tick it.
func (b *Bus) PPU() *ppu.PPU { return b.ppu }

// APU exposes the mounted APU so the clock driver can tick it.
func (b *Bus) APU() *apu.APU { return b.apu }
