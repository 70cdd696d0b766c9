package component

// Player holds the movement tuning of a controllable character.
type Player struct {
	// StepPixels is the distance of one move at velocity 1.
	StepPixels   int
	BaseVelocity int
	RunVelocity  int
	// MarkMovingOnRejectedMove keeps the legacy behaviour of switching to
	// Moving even when the move itself was rejected.
	MarkMovingOnRejectedMove bool
}

var PlayerComponent = NewComponent[Player]()
