package ecs

import "fmt"

// Entity packs a slot id (low 32 bits) and a generation (high 32 bits).
// The zero Entity is never handed out.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.id(), e.generation())
}

// Valid reports whether e could refer to an entity at all. It does not check
// liveness; use IsAlive for that.
func (e Entity) Valid() bool {
	return e.id() > 0
}
