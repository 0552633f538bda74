package game

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Smallest playfield that still holds the alien wave
const (
	MinWidth  = 200
	MinHeight = 210
)

// Config holds game configuration
type Config struct {
	// Width is the playfield and pixel buffer width in pixels
	Width int `yaml:"width"`

	// Height is the playfield and pixel buffer height in pixels
	Height int `yaml:"height"`

	// Scale is the number of window pixels per buffer pixel
	Scale int `yaml:"scale"`

	// TPS is the simulation rate in ticks per second
	TPS int `yaml:"tps"`

	// Title is the window title
	Title string `yaml:"title"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // console or json

	// ScreenshotDir is where F12 screenshots are written
	ScreenshotDir string `yaml:"screenshot_dir"`

	// ProfileDir is where slow-frame CPU profiles are written
	ProfileDir string `yaml:"profile_dir"`

	// SlowFrame is the average frame time that triggers a profile capture; 0 disables it
	SlowFrame time.Duration `yaml:"slow_frame"`

	// Sprites is an optional YAML sprite sheet overriding the built-in art
	Sprites string `yaml:"sprites"`

	SSH SSHConfig `yaml:"ssh"`
}

// SSHConfig configures the terminal bridge
type SSHConfig struct {
	Addr    string `yaml:"addr"`
	HostKey string `yaml:"host_key"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:         224,
		Height:        256,
		Scale:         3,
		TPS:           60,
		Title:         "Space Invaders!",
		LogLevel:      "info",
		LogFormat:     "console",
		ScreenshotDir: "screenshots",
		ProfileDir:    "profiles",
		SlowFrame:     25 * time.Millisecond,
		SSH: SSHConfig{
			Addr:    ":2222",
			HostKey: "host_key",
		},
	}
}

// Validate checks the configuration for values the engine cannot run with
func (c Config) Validate() error {
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("playfield %dx%d is smaller than %dx%d", c.Width, c.Height, MinWidth, MinHeight)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.SlowFrame < 0 {
		return errors.New("slow_frame must not be negative")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// TickDuration returns the wall-clock length of one tick
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// DecodeConfig reads YAML over the defaults. Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads the config file at path. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}
