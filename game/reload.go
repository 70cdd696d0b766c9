package game

import (
	"context"
	"os"
	"path/filepath"

	"github.com/milk9111/bikatown/ecs/render"
	"github.com/milk9111/bikatown/prefabs"
	"go.uber.org/zap"
)

// CatalogBuilder turns a parsed manifest into a catalog.
type CatalogBuilder func(ctx context.Context, m *prefabs.SpriteManifest) (*render.SpriteCatalog, error)

// WatchManifest rebuilds the catalog each time a file named manifest shows up
// on events, and offers the result on swap. A manifest that fails to parse or
// load is logged and skipped. It returns when ctx is done or events closes.
func WatchManifest(ctx context.Context, events <-chan string, manifest string, build CatalogBuilder, swap *Swap[CatalogUpdate], logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("reload")

	for {
		select {
		case <-ctx.Done():
			return
		case name, ok := <-events:
			if !ok {
				return
			}
			if filepath.Base(name) != filepath.Base(manifest) {
				continue
			}

			data, err := os.ReadFile(name)
			if err != nil {
				logger.Warn("read manifest", zap.String("path", name), zap.Error(err))
				continue
			}
			m, err := prefabs.DecodeSpec[prefabs.SpriteManifest](name, data)
			if err != nil {
				logger.Warn("parse manifest", zap.String("path", name), zap.Error(err))
				continue
			}
			catalog, err := build(ctx, &m)
			if err != nil {
				logger.Warn("rebuild catalog", zap.String("path", name), zap.Error(err))
				continue
			}

			swap.Offer(CatalogUpdate{Catalog: catalog, HUD: render.HUDLayoutFromSpec(m.HUD)})
			logger.Debug("catalog rebuilt", zap.String("path", name))
		}
	}
}
