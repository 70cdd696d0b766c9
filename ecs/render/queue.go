package render

import "github.com/milk9111/bikatown/ecs/component"

// RenderRequest is one deferred draw, emitted during update and resolved
// against the catalog during the draw phase.
type RenderRequest interface {
	isRenderRequest()
}

// PlayerRequest draws a character's current animation frame.
type PlayerRequest struct {
	Character component.Character
	Position  component.Position
	Activity  component.Activity
}

// HUDRequest draws the status panel and its bars.
type HUDRequest struct {
	Character component.Character
	Stats     component.PlayerStats
}

func (PlayerRequest) isRenderRequest() {}
func (HUDRequest) isRenderRequest()    {}

// RenderQueue is a FIFO of requests for one frame.
type RenderQueue struct {
	items []RenderRequest
}

func (q *RenderQueue) Push(r RenderRequest) {
	q.items = append(q.items, r)
}

func (q *RenderQueue) Len() int {
	return len(q.items)
}

// Drain hands every request to fn in push order. It stops at the first
// error; the queue is empty afterwards either way.
func (q *RenderQueue) Drain(fn func(RenderRequest) error) error {
	items := q.items
	q.items = nil
	for _, r := range items {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

// Clear drops every pending request without drawing it.
func (q *RenderQueue) Clear() {
	q.items = nil
}
