package system

import (
	"slices"

	"github.com/milk9111/bikatown/ecs"
	"github.com/milk9111/bikatown/ecs/component"
)

// RunModifierSystem sets this tick's velocity: the run velocity while Run is
// queued, the base velocity otherwise. It leaves the queue untouched.
type RunModifierSystem struct{}

func NewRunModifierSystem() *RunModifierSystem {
	return &RunModifierSystem{}
}

func (s *RunModifierSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PositionComponent.Kind(),
		component.InputQueueComponent.Kind(),
		component.PlayerComponent.Kind(),
		func(_ ecs.Entity, pos *component.Position, q *component.InputQueue, p *component.Player) {
			if slices.Contains(q.Pending, component.InputRun) {
				pos.Velocity = p.RunVelocity
				return
			}
			pos.Velocity = p.BaseVelocity
		})
}
