// Package timer provides the resettable waiter that paces gravity: a wait
// either runs its full duration or is cut short by Reset, and the caller
// learns which.
package timer

import (
	"context"
	"time"
)

// Timer is a resettable periodic waiter. One goroutine waits; any number of
// goroutines may reset it.
type Timer struct {
	reset chan struct{}
}

// New creates a Timer.
func New() *Timer {
	return &Timer{
		// One pending reset is enough; extra resets coalesce.
		reset: make(chan struct{}, 1),
	}
}

// Wait blocks for d. It returns true if d elapsed and false if Reset was
// called or ctx was cancelled first. A Reset issued while nobody waits makes
// the next Wait return false immediately.
func (t *Timer) Wait(ctx context.Context, d time.Duration) bool {
	tm := time.NewTimer(d)
	defer tm.Stop()

	select {
	case <-tm.C:
		return true
	case <-t.reset:
		return false
	case <-ctx.Done():
		return false
	}
}

// Reset cuts the current wait short. It never blocks.
func (t *Timer) Reset() {
	select {
	case t.reset <- struct{}{}:
	default:
		// A reset is already pending
	}
}
