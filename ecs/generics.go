package ecs

import (
	"fmt"

	"github.com/milk9111/bikatown/ecs/component"
)

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("add to %s: %w", e, component.ErrEntityNotAlive)
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// Remove detaches the kind from e. It reports whether anything was removed.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

// Has reports whether e holds the kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

// Get returns e's component of the given kind.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	return v, ok
}

// First returns the first live entity holding the kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, id := range w.store(kind.ID(), false).ids() {
		if e, ok := w.entities.entityFor(id); ok {
			return e, true
		}
	}
	return 0, false
}

// ForEach calls fn for every live entity holding kind, in storage order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil {
		return
	}
	s := w.store(kind.ID(), false)
	ids := append([]entityID(nil), s.ids()...)
	for _, e := range w.live(ids) {
		if v, ok := s.Get(e.id()).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every live entity holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil {
		return
	}
	sa, sb := w.store(ka.ID(), false), w.store(kb.ID(), false)
	for _, e := range w.live(intersectIDs(sa, sb)) {
		a, okA := sa.Get(e.id()).(*A)
		b, okB := sb.Get(e.id()).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 calls fn for every live entity holding all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil {
		return
	}
	sa, sb, sc := w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false)
	for _, e := range w.live(intersectIDs(sa, sb, sc)) {
		a, okA := sa.Get(e.id()).(*A)
		b, okB := sb.Get(e.id()).(*B)
		c, okC := sc.Get(e.id()).(*C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// ForEach4 calls fn for every live entity holding all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil {
		return
	}
	sa, sb := w.store(ka.ID(), false), w.store(kb.ID(), false)
	sc, sd := w.store(kc.ID(), false), w.store(kd.ID(), false)
	for _, e := range w.live(intersectIDs(sa, sb, sc, sd)) {
		a, okA := sa.Get(e.id()).(*A)
		b, okB := sb.Get(e.id()).(*B)
		c, okC := sc.Get(e.id()).(*C)
		d, okD := sd.Get(e.id()).(*D)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}
