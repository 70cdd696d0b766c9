package common

import (
	"fmt"
	"math"
)

// Size is a width/height pair in pixels.
type Size struct {
	W int
	H int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Positive reports whether both dimensions are at least one pixel.
func (s Size) Positive() bool {
	return s.W > 0 && s.H > 0
}

// Clamp01 limits v to [0, 1]. NaN reads as 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ScaleFloor returns floor(pct * n) with pct clamped to [0, 1].
func ScaleFloor(pct float64, n int) int {
	return int(math.Floor(Clamp01(pct) * float64(n)))
}
