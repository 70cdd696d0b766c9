package render

import (
	"fmt"
	"image"
	"testing/fstest"
)

type fakeTexture struct {
	path string
	w, h int
}

func (t *fakeTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.w, t.h)
}

// fakeLoader serves textures of a fixed size per path and records requests.
type fakeLoader struct {
	sizes  map[string]image.Point
	loaded []string
}

func (l *fakeLoader) LoadTexture(path string) (Texture, error) {
	l.loaded = append(l.loaded, path)
	size, ok := l.sizes[path]
	if !ok {
		return nil, fmt.Errorf("no texture %s", path)
	}
	return &fakeTexture{path: path, w: size.X, h: size.Y}, nil
}

func newTexture(w, h int) *fakeTexture {
	return &fakeTexture{w: w, h: h}
}

// directionalFS lays out dir/{Up,Down,Left,Right}/<sheet>.png and registers
// each file with the loader.
func directionalFS(fsys fstest.MapFS, loader *fakeLoader, dir, sheet string, size image.Point, dirs ...string) {
	if len(dirs) == 0 {
		dirs = []string{"Up", "Down", "Left", "Right"}
	}
	for _, d := range dirs {
		p := dir + "/" + d + "/" + sheet + ".png"
		fsys[p] = &fstest.MapFile{Data: []byte("png")}
		loader.sizes[p] = size
	}
}
