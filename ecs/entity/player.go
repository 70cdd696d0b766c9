package entity

import (
	"fmt"

	"github.com/milk9111/bikatown/ecs"
	"github.com/milk9111/bikatown/ecs/component"
	"github.com/milk9111/bikatown/prefabs"
)

// PlayerOptions are run-time overrides applied on top of the prefab.
type PlayerOptions struct {
	// LegacyMove marks a rejected move as Moving.
	LegacyMove bool
}

// NewPlayer builds the controllable character described by spec. When the
// world already has level bounds, the start position must lie inside them.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, opts PlayerOptions) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	class, err := component.ParseClass(spec.Class)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	gender, err := component.ParseGender(spec.Gender)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	facing := component.DirectionDown
	if spec.Facing != "" {
		d, ok := component.ParseDirection(spec.Facing)
		if !ok {
			return 0, fmt.Errorf("player: unknown facing %q", spec.Facing)
		}
		facing = d
	}

	if be, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		bounds, _ := ecs.Get(w, be, component.LevelBoundsComponent.Kind())
		if !bounds.Contains(spec.Start.X, spec.Start.Y) {
			return 0, fmt.Errorf("player: start (%d,%d) outside level %dx%d", spec.Start.X, spec.Start.Y, bounds.Width, bounds.Height)
		}
	}

	player := component.Player{
		StepPixels:               spec.StepPixels,
		BaseVelocity:             1,
		RunVelocity:              spec.RunVelocity,
		MarkMovingOnRejectedMove: opts.LegacyMove,
	}
	if player.StepPixels <= 0 {
		player.StepPixels = 4
	}
	if player.RunVelocity <= 0 {
		player.RunVelocity = 2
	}

	stats := statsFromSpec(spec.Stats)

	e := ecs.CreateEntity(w)
	steps := []func() error{
		func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) },
		func() error { return ecs.Add(w, e, component.PlayerComponent.Kind(), &player) },
		func() error {
			return ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{
				X: spec.Start.X, Y: spec.Start.Y, Velocity: player.BaseVelocity, Facing: facing,
			})
		},
		func() error {
			return ecs.Add(w, e, component.ActivityComponent.Kind(), &component.ActivityState{Current: component.ActivityIdle})
		},
		func() error {
			return ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{Class: class, Gender: gender})
		},
		func() error { return ecs.Add(w, e, component.PlayerStatsComponent.Kind(), &stats) },
		func() error { return ecs.Add(w, e, component.InputQueueComponent.Kind(), &component.InputQueue{}) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("player: %w", err)
		}
	}
	return e, nil
}

// statsFromSpec falls back to the default stats when the prefab omits them.
func statsFromSpec(spec prefabs.StatsSpec) component.PlayerStats {
	if spec == (prefabs.StatsSpec{}) {
		return component.DefaultPlayerStats()
	}
	level := spec.Level
	if level == 0 {
		level = 1
	}
	return component.PlayerStats{
		Health:     component.NewPrimaryStat(spec.Health.Current, spec.Health.Max),
		Mana:       component.NewPrimaryStat(spec.Mana.Current, spec.Mana.Max),
		Experience: component.NewPrimaryStat(spec.Experience.Current, spec.Experience.Max),
		Level:      level,
	}
}
