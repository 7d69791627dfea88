// Package clock drives the CPU/PPU/APU trio in lockstep, the way
// console/bus.go's Run loop ticked the teacher's PPU three times per CPU
// tick -- generalized here because cpu6502.CPU.Step executes one whole
// instruction and reports how many cycles it took, rather than ticking
// one cycle at a time.
package clock

import (
	"context"
	"time"

	"github.com/8bitcore/gintendo/apu"
	"github.com/8bitcore/gintendo/bus"
	"github.com/8bitcore/gintendo/cpu6502"
	"github.com/8bitcore/gintendo/ppu"
)

// dmaStallEven/dmaStallOdd are the CPU cycles OAM DMA steals, depending on
// whether it starts on an even or odd CPU cycle.
// https://www.nesdev.org/wiki/DMA
const (
	dmaStallEven = 513
	dmaStallOdd  = 514
)

// cpuHz is the NTSC 2A03 clock rate; frames are paced against it rather
// than against ebiten's callback so BIOS/debugger-driven single stepping
// and free-run share the same cycle accounting.
const cpuHz = 1789773

// Driver ties a CPU, PPU, APU and Bus together and owns the master loop.
type Driver struct {
	CPU *cpu6502.CPU
	PPU *ppu.PPU
	APU *apu.APU
	Bus *bus.Bus

	budget float64 // fractional CPU cycles owed this tick, carried forward
}

// New wires a driver and hooks the APU's frame-IRQ callback to the CPU's
// level-triggered IRQ line.
func New(cpu *cpu6502.CPU, p *ppu.PPU, a *apu.APU, b *bus.Bus) *Driver {
	d := &Driver{CPU: cpu, PPU: p, APU: a, Bus: b}
	a.SetIRQCallback(func() { cpu.SetIRQ(true) })
	return d
}

// RunUntilStopped free-runs the system until ctx is cancelled, pacing
// itself to real time via a 60Hz ticker -- the emulation itself runs in
// its own goroutine exactly as console/bus.go's Run() did, decoupled from
// ebiten's Update callback.
func (d *Driver) RunUntilStopped(ctx context.Context) {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.RunFrame()
		}
	}
}

// RunFrame executes roughly one NTSC frame's worth of CPU cycles (cycles
// are fractional per video frame, so the remainder carries to the next
// call instead of silently rounding away).
func (d *Driver) RunFrame() {
	const cyclesPerFrame = float64(cpuHz) / 60.0
	d.budget += cyclesPerFrame
	spent := 0
	for float64(spent) < d.budget {
		spent += int(d.Step())
	}
	// saturating subtraction: never let a slow frame carry a negative
	// debt into the next one.
	overflow := float64(spent) - d.budget
	if overflow < 0 {
		overflow = 0
	}
	d.budget = -overflow
	d.APU.DrainSamples() // no audio sink is wired; drop this frame's samples
}

// Step executes exactly one CPU instruction (or one stalled cycle),
// advancing the PPU three dots and the APU one cycle per CPU cycle
// consumed, and returns the number of CPU cycles spent.
func (d *Driver) Step() uint8 {
	d.serviceDMA()

	cycles := d.CPU.Step()
	for i := uint8(0); i < cycles; i++ {
		d.PPU.Tick()
		d.PPU.Tick()
		d.PPU.Tick()
		d.APU.Step()
		d.serviceDMCFetch()
	}

	if d.PPU.NMIPending() {
		d.CPU.TriggerNMI()
	}

	return cycles
}

// serviceDMA performs a pending $4014 OAM DMA transfer by copying 256
// bytes from CPU address space into the PPU's OAM and charging the CPU
// the appropriate stall, mirroring console/bus.go's OAMDMA write handler
// but moved out of the bus so the transfer can be cycle-accounted here.
func (d *Driver) serviceDMA() {
	page, pending := d.Bus.TakeDMA()
	if !pending {
		return
	}
	base := uint16(page) << 8
	for i := uint16(0); i < 256; i++ {
		d.PPU.OAMDMAWrite(d.Bus.Read(base + i))
	}
	stall := dmaStallEven
	if d.CPU.Cycles%2 == 1 {
		stall = dmaStallOdd
	}
	d.CPU.Stall(stall)
}

// serviceDMCFetch feeds the DMC channel's sample-memory reads off the CPU
// bus; the channel itself only tracks state since it has no bus access.
func (d *Driver) serviceDMCFetch() {
	addr, need := d.APU.PendingDMCFetch()
	if !need {
		return
	}
	d.APU.FillDMCSample(d.Bus.Read(addr))
}
