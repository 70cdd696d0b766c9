package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bikatown/assets"
	"github.com/milk9111/bikatown/common"
	"github.com/milk9111/bikatown/ecs/render"
	"github.com/milk9111/bikatown/game"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const previewSize = 256

// previewGame plays every cell of one sheet in order, one cell per tick.
type previewGame struct {
	atlas  *render.SpriteAtlas
	canvas *game.EbitenCanvas
	ticks  int
}

// Update steps the preview one cell; Draw runs at the display rate and only
// shows the current cell.
func (g *previewGame) Update() error {
	g.ticks++
	return nil
}

func (g *previewGame) cell() int {
	return g.ticks % g.atlas.CellCount()
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	g.canvas.Screen = screen
	cell := g.atlas.CellSize()
	if err := g.atlas.Draw(g.canvas, g.cell(), (previewSize-cell.W)/2, (previewSize-cell.H)/2); err != nil {
		log.Print(err)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	sheet := flag.String("sheet", "Assets/Sprites/Warrior/Based/Down/Movement.png", "sprite sheet to preview")
	cellW := flag.Int("w", 32, "cell width")
	cellH := flag.Int("h", 32, "cell height")
	tps := flag.Int("tps", 8, "cells per second")
	flag.Parse()

	dir, name := filepath.Split(*sheet)
	if dir == "" {
		dir = "."
	}
	loader := assets.NewLoader(os.DirFS(dir), zap.NewNop())
	tex, err := loader.LoadTexture(name)
	if err != nil {
		log.Fatal(err)
	}
	atlas, err := render.NewSpriteAtlas(common.Size{W: *cellW, H: *cellH}, tex)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(previewSize*2, previewSize*2)
	ebiten.SetWindowTitle(fmt.Sprintf("%s (%d cells)", name, atlas.CellCount()))
	if err := ebiten.RunGame(&previewGame{atlas: atlas, canvas: &game.EbitenCanvas{}}); err != nil {
		log.Fatal(err)
	}
}
