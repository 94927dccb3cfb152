//go:build !tinygo

package hal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HostConfig controls the desktop simulator.
type HostConfig struct {
	// Seed fixes the random source; 0 draws one from the OS.
	Seed uint64 `yaml:"seed"`

	Window   WindowConfig   `yaml:"window"`
	Keys     KeyConfig      `yaml:"keys"`
	Headless HeadlessConfig `yaml:"headless"`
	Stream   StreamConfig   `yaml:"stream"`
}

// WindowConfig controls the ebiten window.
type WindowConfig struct {
	Title string `yaml:"title"`
	// Scale is the size in pixels of one LED cell.
	Scale int `yaml:"scale"`
}

// KeyConfig lists the ebiten key names bound to each button.
type KeyConfig struct {
	ButtonA []string `yaml:"button_a"`
	ButtonB []string `yaml:"button_b"`
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool `yaml:"enabled"`
	// Hz is the terminal redraw rate; 0 disables drawing.
	Hz int `yaml:"hz"`
	// Ticks stops the runner after N ticks (0 = run forever).
	Ticks uint64 `yaml:"ticks"`
	// Fast skips the per-tick delay.
	Fast bool `yaml:"fast"`
	// Autoplay drives both buttons from fixed pulse trains instead of the terminal.
	Autoplay bool `yaml:"autoplay"`
}

// StreamConfig enables the websocket LED stream.
type StreamConfig struct {
	Addr string `yaml:"addr"`
	Hz   int    `yaml:"hz"`
}

// DefaultHostConfig returns the settings used when no file is given.
func DefaultHostConfig() HostConfig {
	return HostConfig{
		Window: WindowConfig{
			Title: "dodgebit",
			Scale: 64,
		},
		Keys: KeyConfig{
			ButtonA: []string{"A", "ArrowLeft"},
			ButtonB: []string{"B", "ArrowRight"},
		},
		Headless: HeadlessConfig{
			Hz: 30,
		},
		Stream: StreamConfig{
			Hz: 30,
		},
	}
}

// LoadHostConfig reads a YAML file on top of the defaults.
func LoadHostConfig(path string) (HostConfig, error) {
	cfg := DefaultHostConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *HostConfig) validate() error {
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %d", c.Window.Scale)
	}
	if c.Headless.Hz < 0 {
		return fmt.Errorf("headless.hz must not be negative, got %d", c.Headless.Hz)
	}
	if c.Stream.Hz <= 0 {
		c.Stream.Hz = 30
	}
	return nil
}
