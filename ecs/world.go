package ecs

import "github.com/milk9111/bikatown/ecs/component"

// World owns entities and their component stores. It is not safe for
// concurrent use; all access happens on the frame goroutine.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
}

// Kind is satisfied by every component.ComponentKind.
type Kind interface {
	ID() component.ComponentID
	Valid() bool
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all of its components. It returns false when e
// was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Query returns the live entities holding every listed kind.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		sets = append(sets, w.store(k.ID(), false))
	}
	return w.live(intersectIDs(sets...))
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) live(ids []entityID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.entityFor(id); ok {
			out = append(out, e)
		}
	}
	return out
}
