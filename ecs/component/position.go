package component

import (
	"fmt"
	"strings"
)

// Direction is a facing. The values double as indexes into a
// DirectionalAnimationSet, so the order is fixed.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Directions lists every facing in index order.
var Directions = [4]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the unit vector for d in screen space (y grows downwards).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection accepts the asset directory names (Up, Down, Left, Right),
// case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "up":
		return DirectionUp, true
	case "down":
		return DirectionDown, true
	case "left":
		return DirectionLeft, true
	case "right":
		return DirectionRight, true
	}
	return 0, false
}

// Position is an entity's pixel location plus its movement modifiers.
type Position struct {
	X        int
	Y        int
	Velocity int
	Facing   Direction
}

var PositionComponent = NewComponent[Position]()
