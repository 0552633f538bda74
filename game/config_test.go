package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 224, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
	assert.Equal(t, "Space Invaders!", cfg.Title)
	assert.Equal(t, time.Second/60, cfg.TickDuration())
}

func TestDecodeConfig_OverridesDefaults(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(`
width: 240
tps: 30
log_format: json
slow_frame: 40ms
ssh:
  addr: ":2300"
`))
	require.NoError(t, err)

	assert.Equal(t, 240, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 40*time.Millisecond, cfg.SlowFrame)
	assert.Equal(t, ":2300", cfg.SSH.Addr)
	assert.Equal(t, "host_key", cfg.SSH.HostKey)
}

func TestDecodeConfig_Empty(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDecodeConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "widht: 240"},
		{"too narrow", "width: 100"},
		{"too short", "height: 50"},
		{"zero scale", "scale: 0"},
		{"negative tps", "tps: -1"},
		{"negative slow frame", "slow_frame: -1s"},
		{"bad log format", "log_format: xml"},
		{"malformed", "width: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "invaders.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scale: 4\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Scale)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Example(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "config.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
