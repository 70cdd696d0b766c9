package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/bikatown/ecs"
	"github.com/milk9111/bikatown/ecs/component"
	"go.uber.org/zap"
)

// ErrInvalidMove is returned by MoveTo for targets outside the level, diagonal
// moves, and moves longer than one step on either axis.
var ErrInvalidMove = errors.New("system: invalid move")

const defaultStepPixels = 4

// MoveTo moves pos to (x, y) when the target is inside bounds and at most one
// step away along a single axis. pos is untouched on error.
func MoveTo(pos *component.Position, x, y, step int, bounds component.LevelBounds) error {
	dx, dy := x-pos.X, y-pos.Y
	switch {
	case !bounds.Contains(x, y):
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrInvalidMove, x, y, bounds.Width, bounds.Height)
	case dx != 0 && dy != 0:
		return fmt.Errorf("%w: diagonal (%d,%d)", ErrInvalidMove, dx, dy)
	case abs(dx) > step || abs(dy) > step:
		return fmt.Errorf("%w: (%d,%d) exceeds step %d", ErrInvalidMove, dx, dy, step)
	}
	pos.X, pos.Y = x, y
	return nil
}

// MovementSystem drains each player's input queue and applies it. Every move
// target is measured from the tick-start position, so several moves in one
// tick replace each other instead of adding up.
type MovementSystem struct {
	logger *zap.Logger
}

func NewMovementSystem(logger *zap.Logger) *MovementSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MovementSystem{logger: logger.Named("movement")}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var bounds component.LevelBounds
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); ok {
			bounds = *b
		}
	}

	ecs.ForEach4(w,
		component.PositionComponent.Kind(),
		component.InputQueueComponent.Kind(),
		component.ActivityComponent.Kind(),
		component.PlayerComponent.Kind(),
		func(e ecs.Entity, pos *component.Position, q *component.InputQueue, act *component.ActivityState, p *component.Player) {
			s.apply(e, pos, q.Drain(), act, p, bounds)
		})
}

func (s *MovementSystem) apply(e ecs.Entity, pos *component.Position, inputs []component.Input, act *component.ActivityState, p *component.Player, bounds component.LevelBounds) {
	start := *pos
	stepPixels := p.StepPixels
	if stepPixels <= 0 {
		stepPixels = defaultStepPixels
	}
	velocity := max(pos.Velocity, 1)
	acted := false

	for _, in := range inputs {
		if in == component.InputAttack {
			acted = true
			act.Current = component.ActivityAttack
			continue
		}

		d, ok := in.Direction()
		if !ok {
			continue
		}
		acted = true
		pos.Facing = d

		step := velocity * stepPixels
		dx, dy := d.Delta()
		from := start
		if err := MoveTo(&from, start.X+dx*step, start.Y+dy*step, step, bounds); err != nil {
			s.logger.Debug("move rejected",
				zap.Stringer("entity", e),
				zap.Stringer("direction", d),
				zap.Error(err),
			)
			if p.MarkMovingOnRejectedMove {
				act.Current = component.ActivityMoving
			}
			continue
		}
		pos.X, pos.Y = from.X, from.Y
		act.Current = component.ActivityMoving
	}

	if !acted {
		act.Current = component.ActivityIdle
		pos.Velocity = max(p.BaseVelocity, 1)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
