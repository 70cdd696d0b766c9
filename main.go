package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bikatown/assets"
	"github.com/milk9111/bikatown/config"
	"github.com/milk9111/bikatown/ecs/render"
	"github.com/milk9111/bikatown/game"
	"github.com/milk9111/bikatown/input"
	"github.com/milk9111/bikatown/levels"
	"github.com/milk9111/bikatown/logging"
	"github.com/milk9111/bikatown/prefabs"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config.yaml")
	debug := flag.Bool("debug", false, "enable debug mode (console logs, overlay, manifest hot reload)")
	headless := flag.Bool("headless", false, "run without a window, drawing to a recorder")
	frames := flag.Int("frames", 0, "stop after this many frames (headless only, 0 = until quit)")
	legacyMove := flag.Bool("legacy-move", true, "switch to Moving even when a move is rejected")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "legacy-move" {
			cfg.LegacyMove = *legacyMove
		}
	})

	logger, err := logging.New(cfg.LogLevel, *debug)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fsys, onDisk, err := assetFS(cfg.AssetDir)
	if err != nil {
		logger.Fatal("open assets", zap.Error(err))
	}
	logger.Info("starting",
		zap.String("assets", cfg.AssetDir),
		zap.Bool("assets_on_disk", onDisk),
		zap.Stringer("window", cfg.WindowSize()),
		zap.Int("tick_rate", cfg.TickRate),
	)

	loader := assets.NewLoader(fsys, logger)
	if err := loader.Preload(ctx); err != nil {
		logger.Fatal("preload assets", zap.Error(err))
	}

	manifest, err := prefabs.LoadSpriteManifest(cfg.Manifest)
	if err != nil {
		logger.Fatal("load sprite manifest", zap.Error(err))
	}
	build := func(ctx context.Context, m *prefabs.SpriteManifest) (*render.SpriteCatalog, error) {
		return render.LoadCatalog(ctx, m, fsys, loader)
	}
	catalog, err := build(ctx, manifest)
	if err != nil {
		logger.Fatal("load sprites", zap.Error(err))
	}

	tileMap, err := loadMap(cfg.Map)
	if err != nil {
		logger.Fatal("load map", zap.Error(err))
	}
	player, err := prefabs.LoadSpec[prefabs.PlayerSpec](cfg.Player)
	if err != nil {
		logger.Fatal("load player", zap.Error(err))
	}

	var updates *game.Swap[game.CatalogUpdate]
	if *debug {
		updates = game.NewSwap[game.CatalogUpdate]()
		startManifestWatch(ctx, cfg.Manifest, build, updates, logger)
	}

	screen := cfg.WindowSize()
	gctx, err := game.New(game.Options{
		Catalog:    catalog,
		HUD:        render.HUDLayoutFromSpec(manifest.HUD),
		Map:        tileMap,
		Player:     &player,
		LegacyMove: cfg.LegacyMove,
		Input:      input.NewKeyboard(),
		View:       screen,
		Updates:    updates,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("build game", zap.Error(err))
	}

	if *headless {
		runner := &game.Runner{
			Ctx:       gctx,
			Canvas:    &render.Recorder{},
			Pacer:     game.NewPacer(cfg.TickRate),
			MaxFrames: *frames,
			Logger:    logger,
		}
		n, err := runner.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Fatal("headless run", zap.Int("frames", n), zap.Error(err))
		}
		logger.Info("headless run finished", zap.Int("frames", n))
		return
	}

	g, err := NewGame(gctx, screen, *debug, logger)
	if err != nil {
		logger.Fatal("build window", zap.Error(err))
	}

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(int(float64(screen.W)*cfg.Scale), int(float64(screen.H)*cfg.Scale))
	ebiten.SetWindowTitle("Bika Town")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run game", zap.Error(err))
	}
}

// loadMap reads a Tiled map from disk, or the embedded default when path is
// empty.
func loadMap(path string) (*levels.TileMap, error) {
	if path == "" {
		return levels.LoadEmbedded(levels.DefaultMap)
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return levels.LoadFromFS(os.DirFS(dir), name)
}

// startManifestWatch hot-reloads the sprite manifest from the prefabs
// directory, if there is one on disk.
func startManifestWatch(ctx context.Context, manifest string, build game.CatalogBuilder, updates *game.Swap[game.CatalogUpdate], logger *zap.Logger) {
	if _, err := os.Stat(prefabs.Dir); errors.Is(err, fs.ErrNotExist) {
		logger.Info("no prefabs directory, manifest reload disabled")
		return
	}
	watcher, err := prefabs.NewWatcher(prefabs.Dir)
	if err != nil {
		logger.Warn("manifest watch disabled", zap.Error(err))
		return
	}

	go func() {
		<-ctx.Done()
		_ = watcher.Close()
	}()
	go func() {
		for err := range watcher.Errors {
			logger.Warn("watch", zap.Error(err))
		}
	}()
	go game.WatchManifest(ctx, watcher.Events, manifest, build, updates, logger)
}
