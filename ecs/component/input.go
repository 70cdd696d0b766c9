package component

import "fmt"

// Input is one abstract command produced by the keyboard poller.
type Input uint8

const (
	InputMoveUp Input = iota + 1
	InputMoveDown
	InputMoveLeft
	InputMoveRight
	InputAttack
	InputRun
	InputQuit
)

func (i Input) String() string {
	switch i {
	case InputMoveUp:
		return "MoveUp"
	case InputMoveDown:
		return "MoveDown"
	case InputMoveLeft:
		return "MoveLeft"
	case InputMoveRight:
		return "MoveRight"
	case InputAttack:
		return "Attack"
	case InputRun:
		return "Run"
	case InputQuit:
		return "Quit"
	}
	return fmt.Sprintf("Input(%d)", uint8(i))
}

// Direction reports the facing of a move input.
func (i Input) Direction() (Direction, bool) {
	switch i {
	case InputMoveUp:
		return DirectionUp, true
	case InputMoveDown:
		return DirectionDown, true
	case InputMoveLeft:
		return DirectionLeft, true
	case InputMoveRight:
		return DirectionRight, true
	}
	return 0, false
}

// MoveInput returns the move command for d.
func MoveInput(d Direction) Input {
	return InputMoveUp + Input(d)
}

// InputQueue buffers the commands an entity received this tick.
type InputQueue struct {
	Pending []Input
}

func (q *InputQueue) Push(in ...Input) {
	q.Pending = append(q.Pending, in...)
}

// Drain returns every pending input and empties the queue.
func (q *InputQueue) Drain() []Input {
	if len(q.Pending) == 0 {
		return nil
	}
	out := q.Pending
	q.Pending = nil
	return out
}

var InputQueueComponent = NewComponent[InputQueue]()

// Control carries loop-level requests out of the systems.
type Control struct {
	Quit bool
}
