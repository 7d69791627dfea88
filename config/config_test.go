package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "gintendo.json")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Scale != 2 {
		t.Fatalf("Window.Scale = %d, want 2", c.Window.Scale)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config to be written to disk: %v", err)
	}
}

func TestLoadFillsMissingFieldsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gintendo.json")
	if err := os.WriteFile(path, []byte(`{"window":{"scale":4}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Scale != 4 {
		t.Fatalf("Window.Scale = %d, want 4 (from file)", c.Window.Scale)
	}
	if c.Audio.SampleRate != 44100 {
		t.Fatalf("Audio.SampleRate = %d, want default 44100", c.Audio.SampleRate)
	}
}

func TestWindowResolutionScalesNESDimensions(t *testing.T) {
	c := Default()
	c.Window.Scale = 3
	w, h := c.WindowResolution()
	if w != 768 || h != 720 {
		t.Fatalf("WindowResolution() = (%d,%d), want (768,720)", w, h)
	}
}

func TestSavePathReplacesExtension(t *testing.T) {
	c := Default()
	got := c.SavePath("/roms/SuperGame.nes")
	want := filepath.Join("./saves", "SuperGame.sav")
	if got != want {
		t.Fatalf("SavePath() = %q, want %q", got, want)
	}
}
