package system

import (
	"github.com/milk9111/bikatown/ecs"
	"github.com/milk9111/bikatown/ecs/component"
	"github.com/milk9111/bikatown/ecs/render"
	"go.uber.org/zap"
)

// Stage names, in run order.
const (
	StageInput         = "input"
	StageRunModifier   = "run_modifier"
	StageMovement      = "movement"
	StageAnimationEmit = "animation_emit"
	StageHUDEmit       = "hud_emit"
)

// NewPipeline wires the per-tick systems. Movement reads the velocity set by
// the run modifier, and both emitters read the state movement leaves behind,
// so the order must not change.
func NewPipeline(source InputSource, control *component.Control, queue *render.RenderQueue, logger *zap.Logger) *ecs.Scheduler {
	return ecs.NewScheduler(
		ecs.Stage{Name: StageInput, System: NewInputSystem(source, control)},
		ecs.Stage{Name: StageRunModifier, System: NewRunModifierSystem()},
		ecs.Stage{Name: StageMovement, System: NewMovementSystem(logger)},
		ecs.Stage{Name: StageAnimationEmit, System: NewAnimationEmitSystem(queue)},
		ecs.Stage{Name: StageHUDEmit, System: NewHUDEmitSystem(queue)},
	)
}
