package render

import (
	"fmt"

	"github.com/milk9111/bikatown/levels"
)

// TileMapRenderer draws a decoded map with atlases taken from the catalog.
// Tileset names must match catalog atlas names.
type TileMapRenderer struct {
	Map     *levels.TileMap
	atlases []*SpriteAtlas
}

func NewTileMapRenderer(m *levels.TileMap) *TileMapRenderer {
	return &TileMapRenderer{Map: m}
}

// BindTilesets resolves every tileset to an atlas once. It must run again
// after the catalog is replaced.
func (r *TileMapRenderer) BindTilesets(c *SpriteCatalog) error {
	atlases := make([]*SpriteAtlas, len(r.Map.Tilesets))
	for i, ts := range r.Map.Tilesets {
		atlas, err := c.LookupStatic(ts.Name)
		if err != nil {
			return fmt.Errorf("tileset %s: %w", ts.Name, err)
		}
		atlases[i] = atlas
	}
	r.atlases = atlases
	return nil
}

// Draw paints the top-left viewW x viewH pixels of the map, layer by layer.
// Hidden layers and empty cells are skipped.
func (r *TileMapRenderer) Draw(c Canvas, viewW, viewH int) error {
	m := r.Map
	if len(r.atlases) != len(m.Tilesets) {
		return fmt.Errorf("render: tilesets not bound")
	}
	cols := min(viewW/m.TileWidth, m.Width)
	rows := min(viewH/m.TileHeight, m.Height)

	for li := range m.Layers {
		layer := &m.Layers[li]
		if !layer.Visible {
			continue
		}
		for j := 0; j < rows; j++ {
			for i := 0; i < cols; i++ {
				gid := levels.GID(layer.At(m.Width, i, j))
				if gid == 0 {
					continue
				}
				atlas, local, err := r.resolve(gid)
				if err != nil {
					return fmt.Errorf("layer %q cell (%d,%d): %w", layer.Name, i, j, err)
				}
				if err := atlas.Draw(c, local, i*m.TileWidth, j*m.TileHeight); err != nil {
					return fmt.Errorf("layer %q cell (%d,%d): %w", layer.Name, i, j, err)
				}
			}
		}
	}
	return nil
}

func (r *TileMapRenderer) resolve(gid uint32) (*SpriteAtlas, int, error) {
	idx, ok := r.Map.TilesetIndex(gid)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownGID, gid)
	}
	return r.atlases[idx], int(gid - r.Map.Tilesets[idx].FirstGID), nil
}
