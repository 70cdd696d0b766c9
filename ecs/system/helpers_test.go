package system

import (
	"testing"

	"github.com/milk9111/bikatown/ecs"
	"github.com/milk9111/bikatown/ecs/component"
	"github.com/stretchr/testify/require"
)

// scriptedSource returns one batch of inputs per Poll.
type scriptedSource struct {
	batches [][]component.Input
}

func (s *scriptedSource) Poll() []component.Input {
	if len(s.batches) == 0 {
		return nil
	}
	next := s.batches[0]
	s.batches = s.batches[1:]
	return next
}

func newTestWorld(t *testing.T, w, h int) *ecs.World {
	t.Helper()
	world := ecs.NewWorld()
	level := ecs.CreateEntity(world)
	require.NoError(t, ecs.Add(world, level, component.LevelTagComponent.Kind(), &component.LevelTag{}))
	require.NoError(t, ecs.Add(world, level, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: w, Height: h}))
	return world
}

func addPlayer(t *testing.T, w *ecs.World, x, y int, legacy bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{X: x, Y: y, Velocity: 1, Facing: component.DirectionDown}))
	require.NoError(t, ecs.Add(w, e, component.ActivityComponent.Kind(), &component.ActivityState{Current: component.ActivityIdle}))
	require.NoError(t, ecs.Add(w, e, component.InputQueueComponent.Kind(), &component.InputQueue{}))
	require.NoError(t, ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{Class: component.ClassWarrior, Gender: component.GenderBased}))
	stats := component.DefaultPlayerStats()
	require.NoError(t, ecs.Add(w, e, component.PlayerStatsComponent.Kind(), &stats))
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		StepPixels:               4,
		BaseVelocity:             1,
		RunVelocity:              2,
		MarkMovingOnRejectedMove: legacy,
	}))
	return e
}

func position(t *testing.T, w *ecs.World, e ecs.Entity) component.Position {
	t.Helper()
	pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
	require.True(t, ok)
	return *pos
}

func activity(t *testing.T, w *ecs.World, e ecs.Entity) component.Activity {
	t.Helper()
	act, ok := ecs.Get(w, e, component.ActivityComponent.Kind())
	require.True(t, ok)
	return act.Current
}
