package game

// Swap is a single-slot mailbox between a producer goroutine and the frame
// goroutine. A newer value replaces one that was never taken.
type Swap[T any] struct {
	ch chan T
}

func NewSwap[T any]() *Swap[T] {
	return &Swap[T]{ch: make(chan T, 1)}
}

// Offer stores v, discarding any pending value. It never blocks as long as
// there is a single producer.
func (s *Swap[T]) Offer(v T) {
	for {
		select {
		case s.ch <- v:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

// Poll takes the pending value, if any, without blocking.
func (s *Swap[T]) Poll() (T, bool) {
	select {
	case v := <-s.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}
