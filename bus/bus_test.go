package bus

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/8bitcore/gintendo/apu"
	"github.com/8bitcore/gintendo/cartridge"
	"github.com/8bitcore/gintendo/ppu"
	"github.com/8bitcore/gintendo/rom"
)

type noButtons struct{}

func (noButtons) Pressed(Button) bool { return false }

type discardOut struct{}

func (discardOut) Emit(x, y int, c color.RGBA) {}

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	prg := make([]byte, 16384)
	chr := make([]byte, 8192)
	header := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	data := append(append(append([]byte{}, header...), prg...), chr...)

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := rom.Load(path)
	if err != nil {
		t.Fatalf("rom.Load: %v", err)
	}
	cart, err := cartridge.New(img)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	p := ppu.New(cart, discardOut{})
	a := apu.New()
	return New(cart, p, a, NewController(noButtons{}), NewController(noButtons{}))
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x0000, 0x42)
	if got := b.Read(0x0800); got != 0x42 {
		t.Fatalf("Read(0x0800) = %#x, want 0x42 (mirror of 0x0000)", got)
	}
	if got := b.Read(0x1800); got != 0x42 {
		t.Fatalf("Read(0x1800) = %#x, want 0x42 (mirror of 0x0000)", got)
	}
}

func TestOAMDMAWriteLatchesPendingTransfer(t *testing.T) {
	b := newTestBus(t)
	if _, pending := b.TakeDMA(); pending {
		t.Fatalf("expected no pending DMA before any $4014 write")
	}
	b.Write(0x4014, 0x07)
	page, pending := b.TakeDMA()
	if !pending || page != 0x07 {
		t.Fatalf("TakeDMA() = (%#x, %v), want (0x07, true)", page, pending)
	}
	if _, pending := b.TakeDMA(); pending {
		t.Fatalf("TakeDMA should clear the pending flag after being taken once")
	}
}

func TestControllerStrobeWritesBothPorts(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x4016, 0x01)
	// Both controllers observe the strobe since real hardware wires $4016
	// writes to both shift registers simultaneously.
	require.True(t, b.ctrl[0].strobe)
	require.True(t, b.ctrl[1].strobe)
	b.Write(0x4016, 0x00)
	require.False(t, b.ctrl[0].strobe)
	require.False(t, b.ctrl[1].strobe)
	_ = b.Read(0x4016)
	_ = b.Read(0x4017)
}

func TestPRGSpaceRoutesToCartridge(t *testing.T) {
	b := newTestBus(t)
	if got := b.Read(0x8000); got != 0x00 {
		t.Fatalf("Read(0x8000) = %#x, want 0x00 from a zeroed PRG image", got)
	}
}

func TestPPURegisterWindowMirrorsEvery8Bytes(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x2003, 0x05) // OAMADDR
	b.Write(0x2004, 0x42) // OAMDATA, advances OAMADDR
	b.Write(0x200B, 0x05) // mirror of $2003, OAMADDR again
	require.Equal(t, uint8(0x42), b.Read(0x200C))
}
