package component

// LevelBounds is the pixel size of the loaded map. Positions stay within
// [0, Width) x [0, Height).
type LevelBounds struct {
	Width  int
	Height int
}

// Contains reports whether (x, y) lies inside the bounds.
func (b LevelBounds) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
