package prefabs

import (
	"fmt"

	"github.com/milk9111/bikatown/common"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data)
}

// DecodeSpec unmarshals YAML bytes; filename only labels errors.
func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// SpriteManifest lists every texture the catalog loads at startup.
type SpriteManifest struct {
	Directional []DirectionalSpec `yaml:"directional"`
	Sprites     []SpriteSpec      `yaml:"sprites"`
	HUD         HUDSpec           `yaml:"hud"`
}

func LoadSpriteManifest(filename string) (*SpriteManifest, error) {
	m, err := LoadSpec[SpriteManifest](filename)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DirectionalSpec declares one character sprite family: a base directory
// holding Up/Down/Left/Right sub-directories, and the activity sheets inside.
type DirectionalSpec struct {
	Name       string         `yaml:"name"`
	Path       string         `yaml:"path"`
	Activities []ActivitySpec `yaml:"activities"`
}

type ActivitySpec struct {
	State string         `yaml:"state"`
	Sheet string         `yaml:"sheet"`
	Cells DirectionCells `yaml:"cells"`
}

// DirectionCells holds the cell size of each facing; side views are often
// wider than front views.
type DirectionCells struct {
	Up    SizeSpec `yaml:"up"`
	Down  SizeSpec `yaml:"down"`
	Left  SizeSpec `yaml:"left"`
	Right SizeSpec `yaml:"right"`
}

// Sizes returns the cells in Direction index order.
func (c DirectionCells) Sizes() [4]common.Size {
	return [4]common.Size{c.Up.Size(), c.Down.Size(), c.Left.Size(), c.Right.Size()}
}

type SpriteSpec struct {
	Name string   `yaml:"name"`
	Path string   `yaml:"path"`
	Cell SizeSpec `yaml:"cell"`
}

type HUDSpec struct {
	Panel      PointSpec `yaml:"panel"`
	Health     BarSpec   `yaml:"health"`
	Mana       BarSpec   `yaml:"mana"`
	Experience BarSpec   `yaml:"experience"`
	LevelLabel PointSpec `yaml:"level_label"`
}

type BarSpec struct {
	Sprite string    `yaml:"sprite"`
	At     PointSpec `yaml:"at"`
}

// SizeSpec decodes a [w, h] pair.
type SizeSpec struct {
	W int
	H int
}

func (s SizeSpec) Size() common.Size {
	return common.Size{W: s.W, H: s.H}
}

func (s *SizeSpec) UnmarshalYAML(value *yaml.Node) error {
	w, h, err := decodePair(value)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	s.W, s.H = w, h
	return nil
}

// PointSpec decodes an [x, y] pair.
type PointSpec struct {
	X int
	Y int
}

func (p *PointSpec) UnmarshalYAML(value *yaml.Node) error {
	x, y, err := decodePair(value)
	if err != nil {
		return fmt.Errorf("point: %w", err)
	}
	p.X, p.Y = x, y
	return nil
}

func decodePair(value *yaml.Node) (int, int, error) {
	if value.Kind != yaml.SequenceNode {
		return 0, 0, fmt.Errorf("line %d: expected [a, b]", value.Line)
	}
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return 0, 0, err
	}
	if len(pair) != 2 {
		return 0, 0, fmt.Errorf("line %d: expected 2 values, got %d", value.Line, len(pair))
	}
	return pair[0], pair[1], nil
}

// PlayerSpec is the player prefab.
type PlayerSpec struct {
	Name        string    `yaml:"name"`
	Class       string    `yaml:"class"`
	Gender      string    `yaml:"gender"`
	Start       PointSpec `yaml:"start"`
	Facing      string    `yaml:"facing"`
	StepPixels  int       `yaml:"step_pixels"`
	RunVelocity int       `yaml:"run_velocity"`
	Stats       StatsSpec `yaml:"stats"`
}

type StatsSpec struct {
	Health     StatSpec `yaml:"health"`
	Mana       StatSpec `yaml:"mana"`
	Experience StatSpec `yaml:"experience"`
	Level      uint32   `yaml:"level"`
}

type StatSpec struct {
	Current uint32 `yaml:"current"`
	Max     uint32 `yaml:"max"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
