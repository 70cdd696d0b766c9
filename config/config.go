package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/bikatown/common"
	"github.com/milk9111/bikatown/prefabs"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the binary looks for its config.
const DefaultPath = "config.yaml"

type Config struct {
	Window     prefabs.SizeSpec `yaml:"window"`
	Scale      float64          `yaml:"scale"`
	TickRate   int              `yaml:"tick_rate"`
	AssetDir   string           `yaml:"asset_dir"`
	Manifest   string           `yaml:"manifest"`
	Map        string           `yaml:"map"`
	Player     string           `yaml:"player"`
	LegacyMove bool             `yaml:"legacy_move"`
	LogLevel   string           `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Window:     prefabs.SizeSpec{W: 1008, H: 1008},
		Scale:      2,
		TickRate:   20,
		AssetDir:   "Assets",
		Manifest:   "sprites.yaml",
		Player:     "player.yaml",
		LegacyMove: true,
		LogLevel:   "info",
	}
}

// WindowSize returns the logical screen size.
func (c Config) WindowSize() common.Size {
	return c.Window.Size()
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case !c.WindowSize().Positive():
		return fmt.Errorf("config: window %s must be positive", c.WindowSize())
	case c.Scale <= 0:
		return fmt.Errorf("config: scale %v must be positive", c.Scale)
	case c.TickRate <= 0:
		return fmt.Errorf("config: tick_rate %d must be positive", c.TickRate)
	case c.AssetDir == "":
		return fmt.Errorf("config: asset_dir is empty")
	}
	return nil
}
