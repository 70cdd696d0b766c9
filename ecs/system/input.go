package system

import (
	"github.com/milk9111/bikatown/ecs"
	"github.com/milk9111/bikatown/ecs/component"
)

// InputSource yields the abstract inputs observed since the last poll.
type InputSource interface {
	Poll() []component.Input
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func() []component.Input

func (f InputSourceFunc) Poll() []component.Input { return f() }

// InputSystem copies polled inputs into every InputQueue and raises the quit
// flag on Control.
type InputSystem struct {
	source  InputSource
	control *component.Control
}

func NewInputSystem(source InputSource, control *component.Control) *InputSystem {
	return &InputSystem{source: source, control: control}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}

	inputs := s.source.Poll()
	if len(inputs) == 0 {
		return
	}

	for _, in := range inputs {
		if in == component.InputQuit && s.control != nil {
			s.control.Quit = true
		}
	}

	ecs.ForEach(w, component.InputQueueComponent.Kind(), func(_ ecs.Entity, q *component.InputQueue) {
		q.Push(inputs...)
	})
}
