package entity

import (
	"fmt"

	"github.com/milk9111/bikatown/ecs"
	"github.com/milk9111/bikatown/ecs/component"
	"github.com/milk9111/bikatown/levels"
)

// NewLevel creates the level entity carrying the map's pixel bounds.
func NewLevel(w *ecs.World, m *levels.TileMap) (ecs.Entity, error) {
	if m == nil {
		return 0, fmt.Errorf("level: nil map")
	}
	width, height := m.PixelSize()

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelTagComponent.Kind(), &component.LevelTag{}); err != nil {
		return 0, fmt.Errorf("level: %w", err)
	}
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("level: %w", err)
	}
	return e, nil
}
