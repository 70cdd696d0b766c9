package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bikatown/common"
	"github.com/milk9111/bikatown/game"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// Game adapts a game.Context to ebiten.
type Game struct {
	ctx    *game.Context
	canvas *game.EbitenCanvas
	screen common.Size
	logger *zap.Logger

	face      text.Face
	level     uint32
	levelAt   image.Point
	showLevel bool

	debug     bool
	showDebug bool
	drawErr   error
}

func NewGame(ctx *game.Context, screen common.Size, debug bool, logger *zap.Logger) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	g := &Game{
		ctx:       ctx,
		canvas:    &game.EbitenCanvas{},
		screen:    screen,
		logger:    logger,
		face:      &text.GoTextFace{Source: src, Size: 12},
		debug:     debug,
		showDebug: debug,
	}
	ctx.Renderer.OnLevel = func(level uint32, at image.Point) {
		g.level, g.levelAt, g.showLevel = level, at, true
	}
	return g, nil
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if g.drawErr != nil {
		return g.drawErr
	}
	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	g.ctx.Tick()
	// The next Draw drains the new tick and reports the level again.
	g.showLevel = false
	if g.ctx.Control.Quit {
		g.logger.Info("quit requested", zap.Uint64("ticks", g.ctx.Ticks()))
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	g.canvas.Screen = screen
	if err := g.ctx.Render(g.canvas); err != nil {
		// Surfaced by the next Update, which ends the run.
		g.drawErr = err
		return
	}

	if g.showLevel {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(g.levelAt.X), float64(g.levelAt.Y))
		op.ColorScale.ScaleWithColor(colornames.Gold)
		text.Draw(screen, fmt.Sprintf("Lv %d", g.level), g.face, op)
	}

	if g.showDebug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	if pos, ok := g.ctx.PlayerPosition(); ok {
		vector.StrokeRect(screen, float32(pos.X), float32(pos.Y), 32, 32, 1, color.RGBA{R: 255, G: 0, B: 255, A: 200}, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f  ticks: %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.ctx.Ticks()), 4, g.screen.H-16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screen.W, g.screen.H
}
