package render

import (
	"fmt"
	"image"

	"github.com/milk9111/bikatown/common"
)

// SpriteAtlas cuts one texture into a grid of equally sized cells, numbered
// row-major from the top-left corner. Remainder pixels on the right and bottom
// edges are ignored.
type SpriteAtlas struct {
	texture Texture
	cell    common.Size
	cells   []image.Rectangle
	// counter is the next animation frame; only DrawAnimated moves it.
	counter uint32
}

// NewSpriteAtlas partitions tex into cells of the given size.
func NewSpriteAtlas(cell common.Size, tex Texture) (*SpriteAtlas, error) {
	if tex == nil {
		return nil, fmt.Errorf("%w: nil texture", ErrInvalidCellSize)
	}
	if !cell.Positive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCellSize, cell)
	}
	b := tex.Bounds()
	cols, rows := b.Dx()/cell.W, b.Dy()/cell.H
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: %s cell does not fit %dx%d texture", ErrInvalidCellSize, cell, b.Dx(), b.Dy())
	}

	cells := make([]image.Rectangle, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			x := b.Min.X + i*cell.W
			y := b.Min.Y + j*cell.H
			cells = append(cells, image.Rect(x, y, x+cell.W, y+cell.H))
		}
	}

	return &SpriteAtlas{texture: tex, cell: cell, cells: cells}, nil
}

func (a *SpriteAtlas) Texture() Texture      { return a.texture }
func (a *SpriteAtlas) CellSize() common.Size { return a.cell }
func (a *SpriteAtlas) CellCount() int        { return len(a.cells) }

// Counter returns how many times DrawAnimated has run, modulo 2^32.
func (a *SpriteAtlas) Counter() uint32 { return a.counter }

// Region returns the source rectangle of cell i.
func (a *SpriteAtlas) Region(i int) (image.Rectangle, error) {
	if i < 0 || i >= len(a.cells) {
		return image.Rectangle{}, fmt.Errorf("%w: %d of %d", ErrRegionIndex, i, len(a.cells))
	}
	return a.cells[i], nil
}

// Draw copies cell i to (x, y) at its native size.
func (a *SpriteAtlas) Draw(c Canvas, i, x, y int) error {
	src, err := a.Region(i)
	if err != nil {
		return err
	}
	c.Copy(a.texture, src, image.Rect(x, y, x+a.cell.W, y+a.cell.H))
	return nil
}

// DrawPortion copies the top-left floor(pctW*w) x floor(pctH*h) part of cell
// i to (x, y). Nothing is drawn when the portion is empty.
func (a *SpriteAtlas) DrawPortion(c Canvas, i, x, y int, pctW, pctH float64) error {
	src, err := a.Region(i)
	if err != nil {
		return err
	}
	w := common.ScaleFloor(pctW, a.cell.W)
	h := common.ScaleFloor(pctH, a.cell.H)
	if w == 0 || h == 0 {
		return nil
	}
	src.Max = image.Pt(src.Min.X+w, src.Min.Y+h)
	c.Copy(a.texture, src, image.Rect(x, y, x+w, y+h))
	return nil
}

// DrawAnimated draws cell counter%CellCount and advances the counter by one.
// Playback speed is one cell per call.
func (a *SpriteAtlas) DrawAnimated(c Canvas, x, y int) {
	i := int(a.counter % uint32(len(a.cells)))
	a.counter++
	c.Copy(a.texture, a.cells[i], image.Rect(x, y, x+a.cell.W, y+a.cell.H))
}
