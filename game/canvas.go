package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bikatown/ecs/render"
)

// EbitenCanvas draws onto an ebiten screen. Screen is set per frame.
type EbitenCanvas struct {
	Screen *ebiten.Image
}

func (c *EbitenCanvas) Copy(tex render.Texture, src, dst image.Rectangle) {
	img, ok := tex.(*ebiten.Image)
	if !ok || c.Screen == nil || src.Empty() || dst.Empty() {
		return
	}
	sub := img.SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	op.Filter = ebiten.FilterNearest
	c.Screen.DrawImage(sub, op)
}

// Present is a no-op; ebiten presents after Draw returns.
func (c *EbitenCanvas) Present() {}
