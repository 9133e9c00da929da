package nav

// Scheduler defers an effect to the next frame boundary. Deferred effects
// are fire-and-forget: nothing cancels them.
type Scheduler interface {
	Schedule(fn func())
}

// FrameQueue is a Scheduler whose effects run when the host calls Flush.
type FrameQueue struct {
	pending []func()
}

func (q *FrameQueue) Schedule(fn func()) {
	q.pending = append(q.pending, fn)
}

// Len reports how many effects wait for the next frame.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Flush runs every queued effect in scheduling order. Effects scheduled
// while flushing wait for the next frame.
func (q *FrameQueue) Flush() int {
	pending := q.pending
	q.pending = nil
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}
