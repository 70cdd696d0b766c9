package entity

import (
	"testing"

	"github.com/milk9111/bikatown/ecs"
	"github.com/milk9111/bikatown/ecs/component"
	"github.com/milk9111/bikatown/levels"
	"github.com/milk9111/bikatown/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Name:        "player",
		Class:       "fire_mage",
		Gender:      "cringe",
		Start:       prefabs.PointSpec{X: 16, Y: 32},
		Facing:      "left",
		StepPixels:  4,
		RunVelocity: 2,
	}
}

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayer(w, testSpec(), PlayerOptions{LegacyMove: true})
	require.NoError(t, err)

	pos, ok := ecs.Get(w, e, component.PositionComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.Position{X: 16, Y: 32, Velocity: 1, Facing: component.DirectionLeft}, *pos)

	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "fire_mage_cringe", ch.Key())

	stats, ok := ecs.Get(w, e, component.PlayerStatsComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.DefaultPlayerStats(), *stats)

	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	require.True(t, ok)
	assert.True(t, p.MarkMovingOnRejectedMove)

	assert.True(t, ecs.Has(w, e, component.InputQueueComponent.Kind()))
	assert.True(t, ecs.Has(w, e, component.PlayerTagComponent.Kind()))
}

func TestNewPlayerFromEmbeddedPrefab(t *testing.T) {
	spec, err := prefabs.LoadPlayerSpec()
	require.NoError(t, err)

	w := ecs.NewWorld()
	e, err := NewPlayer(w, spec, PlayerOptions{})
	require.NoError(t, err)
	act, ok := ecs.Get(w, e, component.ActivityComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.ActivityIdle, act.Current)
}

func TestNewPlayerErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*prefabs.PlayerSpec)
	}{
		{"bad_class", func(s *prefabs.PlayerSpec) { s.Class = "bard" }},
		{"bad_gender", func(s *prefabs.PlayerSpec) { s.Gender = "x" }},
		{"bad_facing", func(s *prefabs.PlayerSpec) { s.Facing = "north" }},
		{"outside_level", func(s *prefabs.PlayerSpec) { s.Start = prefabs.PointSpec{X: 500, Y: 0} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := NewLevel(w, &levels.TileMap{Width: 4, Height: 4, TileWidth: 16, TileHeight: 16})
			require.NoError(t, err)

			spec := testSpec()
			tc.mutate(spec)
			_, err = NewPlayer(w, spec, PlayerOptions{})
			require.Error(t, err)
			assert.Empty(t, w.Query(component.PlayerTagComponent.Kind()))
		})
	}
}

func TestStatsFromSpecClamps(t *testing.T) {
	stats := statsFromSpec(prefabs.StatsSpec{
		Health: prefabs.StatSpec{Current: 80, Max: 50},
	})
	assert.Equal(t, uint32(50), stats.Health.Current)
	assert.Equal(t, uint32(1), stats.Level)
}

func TestNewLevelBounds(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewLevel(w, &levels.TileMap{Width: 63, Height: 40, TileWidth: 16, TileHeight: 16})
	require.NoError(t, err)

	b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.LevelBounds{Width: 1008, Height: 640}, *b)
}
