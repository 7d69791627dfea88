// Package config loads and saves gintendo's JSON settings file, grounded
// on RNG999-gones/internal/app/config.go's structure but scoped down to
// window scale, audio, input mapping, battery-save paths, and debug
// settings. The gintendo command reads the window, input and save-path
// settings; the audio and debug sections are stored but not read by it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds every setting the host binary reads at startup.
type Config struct {
	Window WindowConfig `json:"window"`
	Audio  AudioConfig  `json:"audio"`
	Input  InputConfig  `json:"input"`
	Paths  PathsConfig  `json:"paths"`
	Debug  DebugConfig  `json:"debug"`

	path string
}

// WindowConfig controls the ebiten window.
type WindowConfig struct {
	Scale      int  `json:"scale"` // NES 256x240 resolution multiplier
	Fullscreen bool `json:"fullscreen"`
}

// AudioConfig controls APU sample output.
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sample_rate"`
	Volume     float32 `json:"volume"`
}

// KeyMapping names the ebiten key bound to each controller button.
type KeyMapping struct {
	Up, Down, Left, Right string
	A, B, Start, Select   string
}

// InputConfig holds the key mapping for both controller ports.
type InputConfig struct {
	Player1 KeyMapping `json:"player1"`
	Player2 KeyMapping `json:"player2"`
}

// PathsConfig names where battery saves go.
type PathsConfig struct {
	SaveData string `json:"save_data"`
}

// DebugConfig holds debugger settings. The gintendo command launches the
// bubbletea debugger from its -debug flag and does not read these fields.
type DebugConfig struct {
	Enabled  bool   `json:"enabled"`
	LogLevel string `json:"log_level"` // "debug", "info", "warn", "error"
}

// Default returns the configuration used when no file is present yet.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Scale: 2},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.8,
		},
		Input: InputConfig{
			Player1: KeyMapping{
				Up: "W", Down: "S", Left: "A", Right: "D",
				A: "J", B: "K", Start: "Enter", Select: "Space",
			},
			Player2: KeyMapping{
				Up: "Up", Down: "Down", Left: "Left", Right: "Right",
				A: "N", B: "M", Start: "RightShift", Select: "RightControl",
			},
		},
		Paths: PathsConfig{SaveData: "./saves"},
		Debug: DebugConfig{Enabled: false, LogLevel: "info"},
	}
}

// Load reads config from path, writing out the default config if the file
// doesn't exist yet -- matching RNG999-gones's LoadFromFile behavior of
// seeding a config directory on first run.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c := Default()
		c.path = path
		if err := c.Save(); err != nil {
			return nil, err
		}
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	c.path = path
	c.applyDefaults()

	if err := os.MkdirAll(c.Paths.SaveData, 0o755); err != nil {
		return nil, fmt.Errorf("config: creating save directory: %w", err)
	}
	return c, nil
}

// Save writes the config back to its source path.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config: no path set")
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: creating config directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	return os.WriteFile(c.path, data, 0o644)
}

// applyDefaults fills in zero-valued fields a hand-edited config file left
// out, so a partial JSON document doesn't leave the host with a SampleRate
// of 0 or a Scale of 0.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Window.Scale <= 0 {
		c.Window.Scale = d.Window.Scale
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = d.Audio.SampleRate
	}
	if c.Audio.Volume <= 0 {
		c.Audio.Volume = d.Audio.Volume
	}
	if c.Paths.SaveData == "" {
		c.Paths.SaveData = d.Paths.SaveData
	}
}

// WindowResolution returns the host window size for the configured scale.
func (c *Config) WindowResolution() (int, int) {
	return 256 * c.Window.Scale, 240 * c.Window.Scale
}

// SavePath returns the battery-save file path for a given ROM file.
func (c *Config) SavePath(romPath string) string {
	base := filepath.Base(romPath)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)] + ".sav"
	return filepath.Join(c.Paths.SaveData, name)
}
