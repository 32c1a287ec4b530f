package llm

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayCounters_Rollover(t *testing.T) {
	var buf bytes.Buffer
	day1 := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	now := day1
	c := newDayCounters(log.New(&buf, "", 0), func() time.Time { return now })

	c.recordRequest()
	c.recordRequest()
	c.recordCacheHit()
	c.recordModelSwitch()

	snap := c.snapshot()
	assert.Equal(t, "2025-06-01", snap.Date)
	assert.Equal(t, int64(3), snap.Requests)
	assert.Equal(t, int64(1), snap.CacheHits)
	assert.Equal(t, int64(1), snap.ModelSwitches)
	assert.Empty(t, buf.String(), "no rollover yet, nothing reported")

	// First access on the next day reports the prior totals once and resets.
	now = day1.Add(2 * time.Hour)
	c.recordRequest()

	logged := buf.String()
	require.Contains(t, logged, "2025-06-01")
	require.Contains(t, logged, "requests=3")
	require.Contains(t, logged, "cache_hits=1")
	require.Contains(t, logged, "model_switches=1")

	snap = c.snapshot()
	assert.Equal(t, "2025-06-02", snap.Date)
	assert.Equal(t, int64(1), snap.Requests)
	assert.Zero(t, snap.CacheHits)
	assert.Zero(t, snap.ModelSwitches)

	// The report happens exactly once.
	assert.Equal(t, 1, strings.Count(logged, "2025-06-01"))
}

func TestDayCounters_CacheHitCountsAsOneRequest(t *testing.T) {
	c := newDayCounters(log.New(testWriter{}, "", 0), nil)
	c.recordCacheHit()

	snap := c.snapshot()
	assert.Equal(t, int64(1), snap.Requests)
	assert.Equal(t, int64(1), snap.CacheHits)
}

func TestModelStats_Snapshot(t *testing.T) {
	s := newModelStats()
	s.recordAttempt("b-model")
	s.recordAttempt("a-model")
	s.recordAttempt("a-model")
	s.recordSuccess("a-model")

	snap := s.snapshot()
	require.Len(t, snap, 2)
	// Sorted by model name.
	assert.Equal(t, "a-model", snap[0].Model)
	assert.Equal(t, int64(2), snap[0].Attempts)
	assert.Equal(t, int64(1), snap[0].Successes)
	assert.Equal(t, "b-model", snap[1].Model)
	assert.Zero(t, snap[1].Successes)
}
