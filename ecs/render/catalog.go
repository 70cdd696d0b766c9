package render

import (
	"context"
	"fmt"
	"io/fs"
	"path"

	"github.com/milk9111/bikatown/ecs/component"
	"github.com/milk9111/bikatown/prefabs"
)

// SpriteCatalog owns every atlas of a session. Animations are keyed by
// character key ("warrior_based"), then activity; static atlases by name.
type SpriteCatalog struct {
	atlases    map[string]*SpriteAtlas
	animations map[string]map[component.Activity]*DirectionalAnimationSet
}

func NewSpriteCatalog() *SpriteCatalog {
	return &SpriteCatalog{
		atlases:    make(map[string]*SpriteAtlas),
		animations: make(map[string]map[component.Activity]*DirectionalAnimationSet),
	}
}

// RegisterAtlas adds or replaces a static atlas.
func (c *SpriteCatalog) RegisterAtlas(name string, atlas *SpriteAtlas) {
	c.atlases[name] = atlas
}

// RegisterAnimation adds or replaces the set played for key in activity a.
func (c *SpriteCatalog) RegisterAnimation(key string, a component.Activity, set *DirectionalAnimationSet) {
	byActivity, ok := c.animations[key]
	if !ok {
		byActivity = make(map[component.Activity]*DirectionalAnimationSet)
		c.animations[key] = byActivity
	}
	byActivity[a] = set
}

func (c *SpriteCatalog) LookupAnimation(key string, a component.Activity, d component.Direction) (*SpriteAtlas, error) {
	byActivity, ok := c.animations[key]
	if !ok {
		return nil, fmt.Errorf("%w: no animations for %q", ErrLookup, key)
	}
	set, ok := byActivity[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no %s animation", ErrLookup, key, a)
	}
	atlas := set.Get(d)
	if atlas == nil {
		return nil, fmt.Errorf("%w: %q %s has no %s facing", ErrLookup, key, a, d)
	}
	return atlas, nil
}

func (c *SpriteCatalog) LookupStatic(name string) (*SpriteAtlas, error) {
	atlas, ok := c.atlases[name]
	if !ok {
		return nil, fmt.Errorf("%w: no atlas %q", ErrLookup, name)
	}
	return atlas, nil
}

// Keys returns the registered animation keys.
func (c *SpriteCatalog) Keys() []string {
	keys := make([]string, 0, len(c.animations))
	for k := range c.animations {
		keys = append(keys, k)
	}
	return keys
}

// LoadCatalog builds a catalog from a parsed manifest. Paths in the manifest
// are relative to fsys. Loading stops at the first failure or when ctx is
// cancelled.
func LoadCatalog(ctx context.Context, m *prefabs.SpriteManifest, fsys fs.FS, loader TextureLoader) (*SpriteCatalog, error) {
	c := NewSpriteCatalog()

	for _, spec := range m.Sprites {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tex, err := loader.LoadTexture(path.Clean(spec.Path))
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", spec.Name, err)
		}
		atlas, err := NewSpriteAtlas(spec.Cell.Size(), tex)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", spec.Name, err)
		}
		c.RegisterAtlas(spec.Name, atlas)
	}

	for _, dspec := range m.Directional {
		for _, aspec := range dspec.Activities {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			activity, ok := component.ParseActivity(aspec.State)
			if !ok {
				return nil, fmt.Errorf("%s: unknown activity %q", dspec.Name, aspec.State)
			}
			sheet := aspec.Sheet
			if sheet == "" {
				sheet = aspec.State
			}
			set, err := BuildDirectionalSet(fsys, path.Clean(dspec.Path), aspec.Cells.Sizes(), sheet, loader)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", dspec.Name, activity, err)
			}
			c.RegisterAnimation(dspec.Name, activity, set)
		}
	}

	return c, nil
}
