package levels

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrUnsupportedEncoding is returned for maps the renderer cannot draw:
// infinite maps and non-orthogonal orientations.
var ErrUnsupportedEncoding = errors.New("levels: unsupported map encoding")

// Tiled stores flip and rotation flags in the top four bits of a gid.
const (
	FlippedHorizontally uint32 = 0x80000000
	FlippedVertically   uint32 = 0x40000000
	FlippedDiagonally   uint32 = 0x20000000
	RotatedHexagonal120 uint32 = 0x10000000

	gidMask = ^(FlippedHorizontally | FlippedVertically | FlippedDiagonally | RotatedHexagonal120)
)

// GID strips the flag bits from a raw cell value.
func GID(raw uint32) uint32 {
	return raw & gidMask
}

// TileMap is a decoded finite map.
type TileMap struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Layers     []Layer
	Tilesets   []Tileset
}

// Layer holds Width*Height raw gids, row-major. Flags are kept; use GID.
type Layer struct {
	Name    string
	Visible bool
	Data    []uint32
}

// At returns the raw cell at column i, row j.
func (l *Layer) At(width, i, j int) uint32 {
	return l.Data[j*width+i]
}

type Tileset struct {
	Name     string
	FirstGID uint32
	// TileCount bounds the tileset when known; zero means open-ended.
	TileCount uint32
}

// PixelSize is the map extent in pixels.
func (m *TileMap) PixelSize() (int, int) {
	return m.Width * m.TileWidth, m.Height * m.TileHeight
}

// TilesetFor finds the tileset owning gid: the last one, in map order, whose
// FirstGID is at most gid and whose range still covers it.
func (m *TileMap) TilesetFor(gid uint32) (*Tileset, bool) {
	i, ok := m.TilesetIndex(gid)
	if !ok {
		return nil, false
	}
	return &m.Tilesets[i], true
}

// TilesetIndex is TilesetFor returning a position in Tilesets.
func (m *TileMap) TilesetIndex(gid uint32) (int, bool) {
	gid = GID(gid)
	if gid == 0 {
		return 0, false
	}
	for i := len(m.Tilesets) - 1; i >= 0; i-- {
		ts := &m.Tilesets[i]
		if ts.FirstGID > gid {
			continue
		}
		if ts.TileCount > 0 && gid >= ts.FirstGID+ts.TileCount {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// Decode parses a TMX map with inline tilesets. External tilesets need
// LoadFromFS.
func Decode(data []byte) (*TileMap, error) {
	return decode(data, "", nil)
}

func decode(data []byte, baseDir string, fsys fs.FS) (*TileMap, error) {
	if err := checkHeader(data); err != nil {
		return nil, err
	}

	var opts []tiled.LoaderOption
	if fsys != nil {
		opts = append(opts, tiled.WithFileSystem(fsys))
	}
	raw, err := tiled.LoadReader(baseDir, bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}
	if raw.Width <= 0 || raw.Height <= 0 || raw.TileWidth <= 0 || raw.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d, tile %dx%d", raw.Width, raw.Height, raw.TileWidth, raw.TileHeight)
	}

	m := &TileMap{
		Width:      raw.Width,
		Height:     raw.Height,
		TileWidth:  raw.TileWidth,
		TileHeight: raw.TileHeight,
	}
	for _, ts := range raw.Tilesets {
		name := ts.Name
		if name == "" {
			name = tilesetNameFromSource(ts.Source)
		}
		m.Tilesets = append(m.Tilesets, Tileset{Name: name, FirstGID: ts.FirstGID, TileCount: uint32(ts.TileCount)})
	}

	if err := m.appendLayers(raw.Layers, true); err != nil {
		return nil, err
	}
	if err := m.appendGroups(raw.Groups, true); err != nil {
		return nil, err
	}
	return m, nil
}

// checkHeader rejects infinite and non-orthogonal maps from the root
// element alone, before any layer data is decoded.
func checkHeader(data []byte) error {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return fmt.Errorf("decode map: no map element")
		}
		if err != nil {
			return fmt.Errorf("decode map: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "map" {
			return fmt.Errorf("decode map: root element %q", start.Name.Local)
		}
		for _, a := range start.Attr {
			switch a.Name.Local {
			case "infinite":
				if inf, _ := strconv.ParseBool(a.Value); inf {
					return fmt.Errorf("%w: infinite map", ErrUnsupportedEncoding)
				}
			case "orientation":
				if a.Value != "orthogonal" {
					return fmt.Errorf("%w: %s orientation", ErrUnsupportedEncoding, a.Value)
				}
			}
		}
		return nil
	}
}

// appendGroups flattens group layers depth first. A hidden group hides
// everything inside it.
func (m *TileMap) appendGroups(groups []*tiled.Group, visible bool) error {
	for _, g := range groups {
		if err := m.appendLayers(g.Layers, visible && g.Visible); err != nil {
			return err
		}
		if err := m.appendGroups(g.Groups, visible && g.Visible); err != nil {
			return err
		}
	}
	return nil
}

func (m *TileMap) appendLayers(layers []*tiled.Layer, visible bool) error {
	for _, l := range layers {
		if len(l.Tiles) != m.Width*m.Height {
			return fmt.Errorf("layer %q: %d cells, want %d", l.Name, len(l.Tiles), m.Width*m.Height)
		}
		cells := make([]uint32, len(l.Tiles))
		for i, t := range l.Tiles {
			cells[i] = rawGID(t)
		}
		m.Layers = append(m.Layers, Layer{
			Name:    l.Name,
			Visible: visible && l.Visible,
			Data:    cells,
		})
	}
	return nil
}

// rawGID turns a decoded tile back into a map-wide gid with its flip flags.
func rawGID(t *tiled.LayerTile) uint32 {
	if t == nil || t.Nil || t.Tileset == nil {
		return 0
	}
	gid := t.Tileset.FirstGID + t.ID
	if t.HorizontalFlip {
		gid |= FlippedHorizontally
	}
	if t.VerticalFlip {
		gid |= FlippedVertically
	}
	if t.DiagonalFlip {
		gid |= FlippedDiagonally
	}
	return gid
}

// tilesetNameFromSource turns "tilesets/tiles.tsx" into "tiles".
func tilesetNameFromSource(source string) string {
	if i := strings.LastIndexAny(source, `/\`); i >= 0 {
		source = source[i+1:]
	}
	if i := strings.LastIndexByte(source, '.'); i > 0 {
		source = source[:i]
	}
	return source
}
