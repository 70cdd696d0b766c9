package game

import "time"

// Pacer holds a loop to a fixed tick rate. It only pads short ticks; a slow
// tick is not made up for later.
type Pacer struct {
	budget time.Duration
	now    func() time.Time
	sleep  func(time.Duration)
	start  time.Time
}

func NewPacer(tickRate int) *Pacer {
	if tickRate <= 0 {
		tickRate = 20
	}
	return &Pacer{
		budget: time.Second / time.Duration(tickRate),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Budget is the duration of one tick.
func (p *Pacer) Budget() time.Duration {
	return p.budget
}

// Begin marks the start of a tick.
func (p *Pacer) Begin() {
	p.start = p.now()
}

// Remaining is what is left of the budget after elapsed, never negative.
func (p *Pacer) Remaining(elapsed time.Duration) time.Duration {
	if elapsed >= p.budget {
		return 0
	}
	return p.budget - elapsed
}

// Wait sleeps out the rest of the tick started by Begin and returns the
// duration slept.
func (p *Pacer) Wait() time.Duration {
	d := p.Remaining(p.now().Sub(p.start))
	if d > 0 {
		p.sleep(d)
	}
	return d
}
