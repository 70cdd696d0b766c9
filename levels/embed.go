package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed *.tmx
var LevelsFS embed.FS

// DefaultMap is the map loaded when the config names none.
const DefaultMap = "town.tmx"

// LoadFromFS reads and decodes a map from fsys. External tilesets are
// resolved next to the map, inside fsys.
func LoadFromFS(fsys fs.FS, name string) (*TileMap, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	m, err := decode(data, path.Dir(name), fsys)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return m, nil
}

// LoadEmbedded reads one of the maps compiled into the binary.
func LoadEmbedded(name string) (*TileMap, error) {
	return LoadFromFS(LevelsFS, name)
}
