package llm

import (
	"context"
	"sync"
	"time"
)

// windowLimiter gates outbound provider calls behind a sliding window:
// at most maxRequests in the trailing window, and no two calls closer
// together than minInterval. Acquire blocks in short poll steps until both
// conditions clear; the mutex is never held across a sleep.
//
// Admission under contention is unordered; simultaneous waiters may be
// served in any order once capacity frees up.
type windowLimiter struct {
	mu          sync.Mutex
	window      time.Duration
	maxRequests int
	minInterval time.Duration
	poll        time.Duration

	recent []time.Time
	last   time.Time

	now func() time.Time
}

func newWindowLimiter(maxRequests int, minInterval, window, poll time.Duration) *windowLimiter {
	if maxRequests <= 0 {
		maxRequests = 20
	}
	if window <= 0 {
		window = time.Minute
	}
	if poll <= 0 {
		poll = 500 * time.Millisecond
	}
	return &windowLimiter{
		window:      window,
		maxRequests: maxRequests,
		minInterval: minInterval,
		poll:        poll,
		now:         time.Now,
	}
}

// Acquire blocks until the caller is authorized to issue exactly one
// outbound request, or the context is canceled. It never fails otherwise,
// only delays; there is no maximum wait.
func (l *windowLimiter) Acquire(ctx context.Context) error {
	for {
		if l.tryAcquire() {
			return nil
		}
		timer := time.NewTimer(l.poll)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *windowLimiter) tryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.pruneLocked(now)

	if len(l.recent) >= l.maxRequests {
		return false
	}
	if !l.last.IsZero() && now.Sub(l.last) < l.minInterval {
		return false
	}

	l.recent = append(l.recent, now)
	l.last = now
	return true
}

// pruneLocked drops timestamps that have slid out of the trailing window.
func (l *windowLimiter) pruneLocked(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.recent) && !l.recent[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.recent = append(l.recent[:0], l.recent[i:]...)
	}
}
