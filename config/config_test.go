package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/bikatown/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, common.Size{W: 1008, H: 1008}, cfg.WindowSize())
	assert.Equal(t, 20, cfg.TickRate)
	assert.True(t, cfg.LegacyMove)
}

func TestLoadOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
window: [640, 480]
tick_rate: 30
legacy_move: false
map: maps/cave.tmx
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, common.Size{W: 640, H: 480}, cfg.WindowSize())
	assert.Equal(t, 30, cfg.TickRate)
	assert.False(t, cfg.LegacyMove)
	assert.Equal(t, "maps/cave.tmx", cfg.Map)
	assert.Equal(t, 2.0, cfg.Scale)
	assert.Equal(t, "Assets", cfg.AssetDir)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero_window", "window: [0, 100]"},
		{"negative_scale", "scale: -1"},
		{"zero_tick", "tick_rate: 0"},
		{"empty_assets", "asset_dir: ''"},
		{"bad_yaml", "window: [1, 2, 3]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}
