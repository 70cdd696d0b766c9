package ecs

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Stage is a named system slot in a Scheduler.
type Stage struct {
	Name   string
	System System
}

// Scheduler runs its stages in registration order. The order is part of the
// caller's contract, so stages are never reordered.
type Scheduler struct {
	stages []Stage
}

func NewScheduler(stages ...Stage) *Scheduler {
	s := &Scheduler{}
	for _, st := range stages {
		s.Add(st.Name, st.System)
	}
	return s
}

func (s *Scheduler) Add(name string, system System) {
	if system == nil {
		return
	}
	s.stages = append(s.stages, Stage{Name: name, System: system})
}

func (s *Scheduler) Update(w *World) {
	for _, st := range s.stages {
		st.System.Update(w)
	}
}

// Stages returns a copy of the stage list.
func (s *Scheduler) Stages() []Stage {
	stages := make([]Stage, 0, len(s.stages))
	return append(stages, s.stages...)
}
