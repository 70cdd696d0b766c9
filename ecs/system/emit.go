package system

import (
	"github.com/milk9111/bikatown/ecs"
	"github.com/milk9111/bikatown/ecs/component"
	"github.com/milk9111/bikatown/ecs/render"
)

// AnimationEmitSystem queues one PlayerRequest per drawable character.
type AnimationEmitSystem struct {
	queue *render.RenderQueue
}

func NewAnimationEmitSystem(queue *render.RenderQueue) *AnimationEmitSystem {
	return &AnimationEmitSystem{queue: queue}
}

func (s *AnimationEmitSystem) Update(w *ecs.World) {
	if w == nil || s.queue == nil {
		return
	}

	ecs.ForEach3(w,
		component.PositionComponent.Kind(),
		component.CharacterComponent.Kind(),
		component.ActivityComponent.Kind(),
		func(_ ecs.Entity, pos *component.Position, ch *component.Character, act *component.ActivityState) {
			s.queue.Push(render.PlayerRequest{Character: *ch, Position: *pos, Activity: act.Current})
		})
}

// HUDEmitSystem queues one HUDRequest per entity with stats.
type HUDEmitSystem struct {
	queue *render.RenderQueue
}

func NewHUDEmitSystem(queue *render.RenderQueue) *HUDEmitSystem {
	return &HUDEmitSystem{queue: queue}
}

func (s *HUDEmitSystem) Update(w *ecs.World) {
	if w == nil || s.queue == nil {
		return
	}

	ecs.ForEach2(w,
		component.PlayerStatsComponent.Kind(),
		component.CharacterComponent.Kind(),
		func(_ ecs.Entity, stats *component.PlayerStats, ch *component.Character) {
			s.queue.Push(render.HUDRequest{Character: *ch, Stats: *stats})
		})
}
