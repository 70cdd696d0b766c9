package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bikatown/ecs/render"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"
)

// Loader turns asset paths into textures. Decoded images and textures are
// cached for the life of the loader.
type Loader struct {
	fsys   fs.FS
	logger *zap.Logger

	// NewTexture uploads a decoded image. It defaults to an ebiten image.
	NewTexture func(image.Image) render.Texture

	mu       sync.Mutex
	decoded  map[string]image.Image
	textures map[string]render.Texture
}

func NewLoader(fsys fs.FS, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		fsys:   fsys,
		logger: logger.Named("assets"),
		NewTexture: func(img image.Image) render.Texture {
			return ebiten.NewImageFromImage(img)
		},
		decoded:  make(map[string]image.Image),
		textures: make(map[string]render.Texture),
	}
}

// LoadTexture returns the texture at p, decoding it first unless Preload
// already did.
func (l *Loader) LoadTexture(p string) (render.Texture, error) {
	clean := cleanAssetPath(p)

	l.mu.Lock()
	if tex, ok := l.textures[clean]; ok {
		l.mu.Unlock()
		return tex, nil
	}
	img, ok := l.decoded[clean]
	l.mu.Unlock()

	if !ok {
		var err error
		img, err = l.decode(clean)
		if err != nil {
			return nil, err
		}
	}

	tex := l.NewTexture(img)
	l.mu.Lock()
	l.textures[clean] = tex
	delete(l.decoded, clean)
	l.mu.Unlock()
	return tex, nil
}

// Preload decodes every image under the loader's root in parallel. Textures
// are still created lazily by LoadTexture.
func (l *Loader) Preload(ctx context.Context) error {
	var files []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isImage(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("assets: walk: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := l.decode(file)
			if err != nil {
				return err
			}
			l.mu.Lock()
			l.decoded[file] = img
			l.mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	l.logger.Debug("preloaded images", zap.Int("count", len(files)))
	return nil
}

// Cached reports how many images are held, decoded or uploaded.
func (l *Loader) Cached() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.decoded) + len(l.textures)
}

func (l *Loader) decode(p string) (image.Image, error) {
	b, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", p, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}
	return img, nil
}

func isImage(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".png", ".bmp":
		return true
	}
	return false
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := path.Clean(filepath.ToSlash(p))
	return strings.TrimPrefix(s, "./")
}
