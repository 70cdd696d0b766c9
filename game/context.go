package game

import (
	"fmt"

	"github.com/milk9111/bikatown/common"
	"github.com/milk9111/bikatown/ecs"
	"github.com/milk9111/bikatown/ecs/component"
	"github.com/milk9111/bikatown/ecs/entity"
	"github.com/milk9111/bikatown/ecs/render"
	"github.com/milk9111/bikatown/ecs/system"
	"github.com/milk9111/bikatown/levels"
	"github.com/milk9111/bikatown/prefabs"
	"go.uber.org/zap"
)

// Options configure a Context.
type Options struct {
	Catalog    *render.SpriteCatalog
	HUD        render.HUDLayout
	Map        *levels.TileMap
	Player     *prefabs.PlayerSpec
	LegacyMove bool
	Input      system.InputSource
	// View is the visible area in pixels; the tile map is drawn up to it.
	View    common.Size
	Updates *Swap[CatalogUpdate]
	Logger  *zap.Logger
}

// CatalogUpdate is a rebuilt catalog handed over from a background loader.
type CatalogUpdate struct {
	Catalog *render.SpriteCatalog
	HUD     render.HUDLayout
}

// Context owns everything one session mutates. Only the frame goroutine may
// call its methods.
type Context struct {
	World    *ecs.World
	Catalog  *render.SpriteCatalog
	Queue    *render.RenderQueue
	Map      *levels.TileMap
	Tiles    *render.TileMapRenderer
	Renderer *render.Renderer
	Control  component.Control
	Player   ecs.Entity
	View     common.Size

	pipeline *ecs.Scheduler
	updates  *Swap[CatalogUpdate]
	logger   *zap.Logger
	ticks    uint64

	// frame holds the sprite commands of the last drained tick. Draws that
	// happen before the next tick replay it, so animations advance once per
	// tick however often the backend draws.
	frame render.Recorder
	stale bool
}

func New(opts Options) (*Context, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("game: nil catalog")
	}
	if opts.Map == nil {
		return nil, fmt.Errorf("game: nil map")
	}
	if !opts.View.Positive() {
		return nil, fmt.Errorf("game: view %s must be positive", opts.View)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Context{
		World:   ecs.NewWorld(),
		Catalog: opts.Catalog,
		Queue:   &render.RenderQueue{},
		Map:     opts.Map,
		Tiles:   render.NewTileMapRenderer(opts.Map),
		View:    opts.View,
		updates: opts.Updates,
		logger:  logger.Named("game"),
	}
	c.Renderer = render.NewRenderer(opts.Catalog, opts.HUD)

	if err := c.Tiles.BindTilesets(opts.Catalog); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewLevel(c.World, opts.Map); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	spec := opts.Player
	if spec == nil {
		var err error
		if spec, err = prefabs.LoadPlayerSpec(); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}
	player, err := entity.NewPlayer(c.World, spec, entity.PlayerOptions{LegacyMove: opts.LegacyMove})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	c.Player = player

	c.pipeline = system.NewPipeline(opts.Input, &c.Control, c.Queue, logger)
	return c, nil
}

// Tick runs one simulation step. Requests left over from a tick that was
// never drawn are dropped first.
func (c *Context) Tick() {
	c.pollUpdates()
	c.Queue.Clear()
	c.pipeline.Update(c.World)
	c.stale = true
	c.ticks++
}

// Render draws the tile map, then the sprites of the latest tick, then
// presents. The first Render after a Tick drains the queue; later ones
// redraw the same sprites until the next Tick.
func (c *Context) Render(canvas render.Canvas) error {
	if c.stale || c.Queue.Len() > 0 {
		c.frame.Reset()
		c.stale = false
		if err := c.Renderer.Drain(c.Queue, &c.frame); err != nil {
			c.frame.Reset()
			return fmt.Errorf("draw queue: %w", err)
		}
	}
	if err := c.Tiles.Draw(canvas, c.View.W, c.View.H); err != nil {
		return fmt.Errorf("draw map: %w", err)
	}
	c.frame.Replay(canvas)
	canvas.Present()
	return nil
}

// Ticks returns how many times Tick has run.
func (c *Context) Ticks() uint64 {
	return c.ticks
}

// PlayerPosition returns the player's current position.
func (c *Context) PlayerPosition() (component.Position, bool) {
	pos, ok := ecs.Get(c.World, c.Player, component.PositionComponent.Kind())
	if !ok {
		return component.Position{}, false
	}
	return *pos, true
}

// SetCatalog replaces the catalog and rebinds the map tilesets. The old
// catalog stays in place when binding fails.
func (c *Context) SetCatalog(u CatalogUpdate) error {
	tiles := render.NewTileMapRenderer(c.Map)
	if err := tiles.BindTilesets(u.Catalog); err != nil {
		return err
	}
	c.Catalog = u.Catalog
	c.Tiles = tiles
	c.Renderer.Catalog = u.Catalog
	c.Renderer.Layout = u.HUD
	return nil
}

func (c *Context) pollUpdates() {
	if c.updates == nil {
		return
	}
	u, ok := c.updates.Poll()
	if !ok {
		return
	}
	if err := c.SetCatalog(u); err != nil {
		c.logger.Warn("catalog reload rejected", zap.Error(err))
		return
	}
	c.logger.Info("catalog reloaded", zap.Strings("animations", u.Catalog.Keys()))
}
