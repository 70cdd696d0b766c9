package levels

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeGIDs(t *testing.T, gids []uint32, compression string) string {
	t.Helper()
	raw := make([]byte, 4*len(gids))
	for i, g := range gids {
		binary.LittleEndian.PutUint32(raw[i*4:], g)
	}

	var buf bytes.Buffer
	switch compression {
	case "":
		buf.Write(raw)
	case "zlib":
		w := zlib.NewWriter(&buf)
		_, err := w.Write(raw)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case "gzip":
		w := gzip.NewWriter(&buf)
		_, err := w.Write(raw)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func mapTMX(layers string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="50" columns="10">
  <image source="tiles.png" width="160" height="80"/>
 </tileset>
%s
</map>`, layers))
}

func tileLayer(name, data string) string {
	return fmt.Sprintf(`<layer id="1" name=%q width="2" height="2">%s</layer>`, name, data)
}

func TestDecodeLayerEncodings(t *testing.T) {
	want := []uint32{1, 0, 3, 4}

	tests := []struct {
		name string
		data func(t *testing.T) string
	}{
		{
			name: "csv",
			data: func(t *testing.T) string {
				return `<data encoding="csv">1,0,
3,4</data>`
			},
		},
		{
			name: "base64",
			data: func(t *testing.T) string {
				return fmt.Sprintf(`<data encoding="base64">%s</data>`, encodeGIDs(t, want, ""))
			},
		},
		{
			name: "base64_zlib",
			data: func(t *testing.T) string {
				return fmt.Sprintf(`<data encoding="base64" compression="zlib">%s</data>`, encodeGIDs(t, want, "zlib"))
			},
		},
		{
			name: "base64_gzip",
			data: func(t *testing.T) string {
				return fmt.Sprintf(`<data encoding="base64" compression="gzip">%s</data>`, encodeGIDs(t, want, "gzip"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Decode(mapTMX(tileLayer("g", tc.data(t))))
			require.NoError(t, err)
			require.Len(t, m.Layers, 1)
			assert.Equal(t, want, m.Layers[0].Data)
			assert.True(t, m.Layers[0].Visible)
			require.Len(t, m.Tilesets, 1)
			assert.Equal(t, Tileset{Name: "tiles", FirstGID: 1, TileCount: 50}, m.Tilesets[0])
		})
	}
}

func TestDecodeKeepsFlipFlags(t *testing.T) {
	flipped := 3 | FlippedHorizontally | FlippedVertically
	data := fmt.Sprintf(`<data encoding="base64">%s</data>`, encodeGIDs(t, []uint32{1, 0, flipped, 4}, ""))

	m, err := Decode(mapTMX(tileLayer("g", data)))
	require.NoError(t, err)
	assert.Equal(t, flipped, m.Layers[0].Data[2])
	assert.Equal(t, uint32(3), GID(m.Layers[0].Data[2]))
}

func TestDecodeRejectsUnsupported(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "infinite",
			doc: `<map orientation="orthogonal" width="2" height="2" tilewidth="16" tileheight="16" infinite="1">
 <layer id="1" name="c" width="2" height="2"><data encoding="csv"><chunk x="0" y="0" width="2" height="2">1,1,1,1</chunk></data></layer>
</map>`,
		},
		{
			name: "isometric",
			doc:  `<map orientation="isometric" width="2" height="2" tilewidth="16" tileheight="16" infinite="0"></map>`,
		},
		{
			name: "hexagonal",
			doc:  `<map orientation="hexagonal" width="2" height="2" tilewidth="16" tileheight="16"></map>`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.doc))
			require.ErrorIs(t, err, ErrUnsupportedEncoding)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  []byte
	}{
		{"unknown_compression", mapTMX(tileLayer("z", `<data encoding="base64" compression="lzma">AAAA</data>`))},
		{"short_layer", mapTMX(tileLayer("short", `<data encoding="csv">1,2,3</data>`))},
		{"not_a_map", []byte(`<tileset name="x"/>`)},
		{"empty", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.doc)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrUnsupportedEncoding)
		})
	}
}

func TestDecodeFlattensGroups(t *testing.T) {
	doc := mapTMX(tileLayer("top", `<data encoding="csv">1,1,1,1</data>`) + `
 <objectgroup id="3" name="objects"/>
 <group id="4" name="grp">
  ` + tileLayer("shown", `<data encoding="csv">2,2,2,2</data>`) + `
  <group id="5" name="inner" visible="0">
   ` + tileLayer("hidden", `<data encoding="csv">3,3,3,3</data>`) + `
  </group>
 </group>`)

	m, err := Decode(doc)
	require.NoError(t, err)
	require.Len(t, m.Layers, 3)
	assert.Equal(t, []string{"top", "shown", "hidden"}, []string{m.Layers[0].Name, m.Layers[1].Name, m.Layers[2].Name})
	assert.True(t, m.Layers[1].Visible)
	assert.False(t, m.Layers[2].Visible)
}

func TestLoadFromFSExternalTileset(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/cave.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map orientation="orthogonal" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" source="sets/rock.tsx"/>
 <layer id="1" name="g" width="2" height="2"><data encoding="csv">1,2,3,4</data></layer>
</map>`)},
		"maps/sets/rock.tsx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<tileset version="1.10" name="rock" tilewidth="16" tileheight="16" tilecount="8" columns="4">
 <image source="rock.png" width="64" height="32"/>
</tileset>`)},
	}

	m, err := LoadFromFS(fsys, "maps/cave.tmx")
	require.NoError(t, err)
	require.Len(t, m.Tilesets, 1)
	assert.Equal(t, "rock", m.Tilesets[0].Name)
	assert.Equal(t, []uint32{1, 2, 3, 4}, m.Layers[0].Data)
}

func TestTilesetFor(t *testing.T) {
	m := &TileMap{Tilesets: []Tileset{
		{Name: "A", FirstGID: 1, TileCount: 50},
		{Name: "B", FirstGID: 51},
		{Name: "C", FirstGID: 200, TileCount: 10},
	}}

	tests := []struct {
		gid  uint32
		want string
		ok   bool
	}{
		{gid: 0, ok: false},
		{gid: 1, want: "A", ok: true},
		{gid: 50, want: "A", ok: true},
		{gid: 57, want: "B", ok: true},
		{gid: 57 | FlippedHorizontally, want: "B", ok: true},
		{gid: 205, want: "C", ok: true},
		{gid: 210, ok: false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.gid), func(t *testing.T) {
			ts, ok := m.TilesetFor(tc.gid)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, ts.Name)
			}
		})
	}
}

func TestGIDMasksFlags(t *testing.T) {
	raw := uint32(7) | FlippedHorizontally | FlippedVertically | FlippedDiagonally | RotatedHexagonal120
	assert.Equal(t, uint32(7), GID(raw))
}

func TestTilesetNameFromSource(t *testing.T) {
	assert.Equal(t, "tiles", tilesetNameFromSource("tilesets/tiles.tsx"))
	assert.Equal(t, "x", tilesetNameFromSource(`a\x.tsx`))
	assert.Equal(t, "plain", tilesetNameFromSource("plain"))
}

func TestLoadEmbeddedDefaultMap(t *testing.T) {
	m, err := LoadEmbedded(DefaultMap)
	require.NoError(t, err)
	assert.Equal(t, 63, m.Width)
	require.Len(t, m.Layers, 2)
	w, h := m.PixelSize()
	assert.Equal(t, 1008, w)
	assert.Equal(t, 1008, h)

	ts, ok := m.TilesetFor(m.Layers[1].At(m.Width, 10, 10))
	require.True(t, ok)
	assert.Equal(t, "tiles", ts.Name)
}
