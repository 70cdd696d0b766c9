package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type LevelTag struct{}

var LevelTagComponent = NewComponent[LevelTag]()
