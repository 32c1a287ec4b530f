package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowLimiter_CapBlocksUntilWindowSlides(t *testing.T) {
	// Two slots in a 400ms window; the third acquire must wait for the
	// first timestamp to slide out.
	l := newWindowLimiter(2, 0, 400*time.Millisecond, 20*time.Millisecond)

	ctx := context.Background()
	start := time.Now()
	require.NoError(t, l.Acquire(ctx))
	require.NoError(t, l.Acquire(ctx))
	require.NoError(t, l.Acquire(ctx))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 380*time.Millisecond,
		"third acquire should block until the window has room")
}

func TestWindowLimiter_MinIntervalSpacing(t *testing.T) {
	l := newWindowLimiter(100, 150*time.Millisecond, time.Minute, 20*time.Millisecond)

	ctx := context.Background()
	start := time.Now()
	require.NoError(t, l.Acquire(ctx))
	require.NoError(t, l.Acquire(ctx))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 140*time.Millisecond,
		"consecutive passes must honor the minimum spacing")
}

func TestWindowLimiter_NeverExceedsCapInWindow(t *testing.T) {
	const capacity = 3
	window := 500 * time.Millisecond
	l := newWindowLimiter(capacity, 0, window, 10*time.Millisecond)

	ctx := context.Background()
	times := make(chan time.Time, 32)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			_ = l.Acquire(ctx)
			times <- time.Now()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	close(times)

	var stamps []time.Time
	for ts := range times {
		stamps = append(stamps, ts)
	}
	require.Len(t, stamps, 8)

	// Admission order is not guaranteed, so check every trailing window over
	// the recorded admission times. A small tolerance absorbs the gap
	// between the limiter stamping a slot and the goroutine reading the
	// clock.
	tolerance := 50 * time.Millisecond
	for _, anchor := range stamps {
		count := 0
		for _, ts := range stamps {
			if !ts.Before(anchor) && ts.Sub(anchor) < window-tolerance {
				count++
			}
		}
		assert.LessOrEqual(t, count, capacity, "trailing window holds more than the cap")
	}
}

func TestWindowLimiter_AcquireHonorsContext(t *testing.T) {
	l := newWindowLimiter(1, 0, time.Minute, 10*time.Millisecond)
	ctx := context.Background()
	require.NoError(t, l.Acquire(ctx))

	// Window is full for a minute; a canceled context must unblock the wait.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := l.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
