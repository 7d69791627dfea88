// Command gintendo loads an iNES ROM and runs it, grounded on the teacher
// repo's gintendo.go/console.Bus split: flag-parsed ROM path, mapper
// construction, then an ebiten.Game driving the window while the emulation
// itself free-runs in its own goroutine.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/8bitcore/gintendo/apu"
	"github.com/8bitcore/gintendo/bus"
	"github.com/8bitcore/gintendo/cartridge"
	"github.com/8bitcore/gintendo/clock"
	"github.com/8bitcore/gintendo/config"
	"github.com/8bitcore/gintendo/cpu6502"
	"github.com/8bitcore/gintendo/debugger"
	"github.com/8bitcore/gintendo/ppu"
	"github.com/8bitcore/gintendo/rom"
)

var (
	romPath    = flag.String("rom", "", "path to an iNES ROM file")
	configPath = flag.String("config", "./config/gintendo.json", "path to the JSON config file")
	debugMode  = flag.Bool("debug", false, "launch the bubbletea debugger instead of free-running")
)

func main() {
	flag.Parse()
	if *romPath == "" {
		log.Fatal("gintendo: -rom is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("gintendo: loading config: %v", err)
	}

	img, err := rom.Load(*romPath)
	if err != nil {
		log.Fatalf("gintendo: loading ROM: %v", err)
	}

	cart, err := cartridge.New(img)
	if err != nil {
		log.Fatalf("gintendo: %v", err)
	}

	savePath := cfg.SavePath(*romPath)
	if cart.HasBattery() {
		if data, err := os.ReadFile(savePath); err == nil {
			cart.LoadPRGRAM(data)
		}
	}

	screen := newFrameBuffer()
	a := apu.New()
	p := ppu.New(cart, screen)
	ctrl1 := bus.NewController(ebitenButtonSource{mapping: cfg.Input.Player1})
	ctrl2 := bus.NewController(ebitenButtonSource{mapping: cfg.Input.Player2})
	b := bus.New(cart, p, a, ctrl1, ctrl2)
	cpu := cpu6502.New(b, cpu6502.NESMode)
	driver := clock.New(cpu, p, a, b)

	flushSave := func() {
		if !cart.HasBattery() {
			return
		}
		if err := os.WriteFile(savePath, cart.PRGRAM(), 0o644); err != nil {
			log.Printf("gintendo: failed to persist battery save: %v", err)
		}
	}
	installShutdownHandler(flushSave)
	defer flushSave()

	if *debugMode {
		if _, err := tea.NewProgram(debugger.New(driver)).Run(); err != nil {
			log.Fatalf("gintendo: debugger: %v", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	go driver.RunUntilStopped(ctx)
	defer cancel()

	w, h := cfg.WindowResolution()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("gintendo - %s", img.String()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(&game{screen: screen}); err != nil {
		log.Fatal(err)
	}
}

func installShutdownHandler(flush func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		flush()
		os.Exit(0)
	}()
}

// game implements ebiten.Game, reading finished frames out of screen.
// Unlike console/bus.go, it owns no emulation state itself -- the clock
// driver runs independently and this just presents whatever the PPU most
// recently emitted.
type game struct {
	screen *frameBuffer
}

func (g *game) Update() error { return nil }

func (g *game) Draw(dst *ebiten.Image) {
	g.screen.draw(dst)
}

func (g *game) Layout(int, int) (int, int) {
	return ppu.Width, ppu.Height
}

// frameBuffer accumulates PPU pixel output into an image the ebiten draw
// callback can blit, matching console/bus.go's Draw loop over GetPixels.
type frameBuffer struct {
	pixels [ppu.Width * ppu.Height]color.RGBA
}

func newFrameBuffer() *frameBuffer { return &frameBuffer{} }

func (f *frameBuffer) Emit(x, y int, c color.RGBA) {
	f.pixels[y*ppu.Width+x] = c
}

func (f *frameBuffer) draw(dst *ebiten.Image) {
	for y := 0; y < ppu.Height; y++ {
		for x := 0; x < ppu.Width; x++ {
			dst.Set(x, y, f.pixels[y*ppu.Width+x])
		}
	}
}

// ebitenButtonSource adapts a config.KeyMapping to bus.ButtonSource,
// keeping the ebiten dependency entirely out of the bus package.
type ebitenButtonSource struct {
	mapping config.KeyMapping
}

func (s ebitenButtonSource) Pressed(b bus.Button) bool {
	name, ok := s.keyFor(b)
	if !ok {
		return false
	}
	key, ok := ebitenKeyByName[name]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

func (s ebitenButtonSource) keyFor(b bus.Button) (string, bool) {
	switch b {
	case bus.ButtonUp:
		return s.mapping.Up, true
	case bus.ButtonDown:
		return s.mapping.Down, true
	case bus.ButtonLeft:
		return s.mapping.Left, true
	case bus.ButtonRight:
		return s.mapping.Right, true
	case bus.ButtonA:
		return s.mapping.A, true
	case bus.ButtonB:
		return s.mapping.B, true
	case bus.ButtonStart:
		return s.mapping.Start, true
	case bus.ButtonSelect:
		return s.mapping.Select, true
	}
	return "", false
}

var ebitenKeyByName = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "D": ebiten.KeyD, "J": ebiten.KeyJ,
	"K": ebiten.KeyK, "M": ebiten.KeyM, "N": ebiten.KeyN, "S": ebiten.KeyS,
	"W": ebiten.KeyW,
	"Up": ebiten.KeyArrowUp, "Down": ebiten.KeyArrowDown,
	"Left": ebiten.KeyArrowLeft, "Right": ebiten.KeyArrowRight,
	"Enter": ebiten.KeyEnter, "Space": ebiten.KeySpace,
	"RightShift": ebiten.KeyShiftRight, "RightControl": ebiten.KeyControlRight,
}
