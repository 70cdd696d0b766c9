package render

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/milk9111/bikatown/common"
	"github.com/milk9111/bikatown/ecs/component"
)

// TextureLoader turns an asset path into a texture.
type TextureLoader interface {
	LoadTexture(path string) (Texture, error)
}

// DirectionalAnimationSet is one named animation drawn four ways, one atlas
// per facing.
type DirectionalAnimationSet struct {
	Name    string
	atlases [4]*SpriteAtlas
}

// NewDirectionalSet wraps four ready atlases, indexed by Direction.
func NewDirectionalSet(name string, atlases [4]*SpriteAtlas) (*DirectionalAnimationSet, error) {
	for _, d := range component.Directions {
		if atlases[d] == nil {
			return nil, fmt.Errorf("%w: %s has no %s atlas", ErrMissingDirectionalAsset, name, d)
		}
	}
	return &DirectionalAnimationSet{Name: name, atlases: atlases}, nil
}

// Get returns the atlas for d. Animation playback mutates it.
func (s *DirectionalAnimationSet) Get(d component.Direction) *SpriteAtlas {
	if int(d) >= len(s.atlases) {
		return nil
	}
	return s.atlases[d]
}

// BuildDirectionalSet scans dir for the Up, Down, Left and Right
// sub-directories and loads the image named name (any extension) from each,
// cut with that direction's cell size. Other entries are skipped. The layout
// looks like:
//
//	dir/
//	├── Down/<name>.png
//	├── Left/<name>.png
//	├── Right/<name>.png
//	└── Up/<name>.png
func BuildDirectionalSet(fsys fs.FS, dir string, cells [4]common.Size, name string, loader TextureLoader) (*DirectionalAnimationSet, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrMissingDirectionalAsset, dir, err)
	}

	var atlases [4]*SpriteAtlas
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		d, ok := directionDir(entry.Name())
		if !ok {
			continue
		}

		sub := path.Join(dir, entry.Name())
		file, err := findSheet(fsys, sub, name)
		if err != nil {
			return nil, err
		}
		tex, err := loader.LoadTexture(file)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		atlas, err := NewSpriteAtlas(cells[d], tex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		atlases[d] = atlas
	}

	set, err := NewDirectionalSet(name, atlases)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, dir)
	}
	return set, nil
}

// directionDir matches the exact directory names of the asset layout.
func directionDir(name string) (component.Direction, bool) {
	switch name {
	case "Up", "Down", "Left", "Right":
		return component.ParseDirection(name)
	}
	return 0, false
}

func findSheet(fsys fs.FS, dir, name string) (string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrMissingDirectionalAsset, dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		file := entry.Name()
		if strings.TrimSuffix(file, path.Ext(file)) == name {
			return path.Join(dir, file), nil
		}
	}
	return "", fmt.Errorf("%w: no %q sheet in %s", ErrMissingDirectionalAsset, name, dir)
}
