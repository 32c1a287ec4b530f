package llm

import (
	"log"
	"sort"
	"sync"
	"time"
)

// dayFormat is the UTC day bucket key.
const dayFormat = "2006-01-02"

// dayCounters tracks advisory per-day counters. All counters belong to
// exactly one calendar day; on first access of a new day the prior day's
// totals are logged once and the counters reset. No control-flow decision
// anywhere reads these.
type dayCounters struct {
	mu  sync.Mutex
	log *log.Logger
	now func() time.Time

	day           string
	requests      int64
	cacheHits     int64
	modelSwitches int64
}

func newDayCounters(logger *log.Logger, now func() time.Time) *dayCounters {
	if logger == nil {
		logger = log.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &dayCounters{log: logger, now: now}
}

func (c *dayCounters) rollLocked() {
	today := c.now().UTC().Format(dayFormat)
	if c.day == today {
		return
	}
	if c.day != "" {
		c.log.Printf("usage %s: requests=%d cache_hits=%d model_switches=%d",
			c.day, c.requests, c.cacheHits, c.modelSwitches)
	}
	c.day = today
	c.requests = 0
	c.cacheHits = 0
	c.modelSwitches = 0
}

// recordRequest counts one logical request served by a live model call.
func (c *dayCounters) recordRequest() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollLocked()
	c.requests++
}

// recordCacheHit counts one logical request served from cache. The request
// counter still moves so cache hits and live calls add up to total traffic.
func (c *dayCounters) recordCacheHit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollLocked()
	c.requests++
	c.cacheHits++
}

// recordModelSwitch counts a cascade success on a non-primary model.
func (c *dayCounters) recordModelSwitch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollLocked()
	c.modelSwitches++
}

// DailyUsage is a point-in-time snapshot of the current day's counters.
type DailyUsage struct {
	Date          string
	Requests      int64
	CacheHits     int64
	ModelSwitches int64
}

func (c *dayCounters) snapshot() DailyUsage {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollLocked()
	return DailyUsage{
		Date:          c.day,
		Requests:      c.requests,
		CacheHits:     c.cacheHits,
		ModelSwitches: c.modelSwitches,
	}
}

// modelStats accumulates per-model attempts and successes for the process
// lifetime. Read-only reporting; never drives control flow.
type modelStats struct {
	mu      sync.Mutex
	byModel map[string]*modelStat
}

type modelStat struct {
	attempts  int64
	successes int64
}

func newModelStats() *modelStats {
	return &modelStats{byModel: map[string]*modelStat{}}
}

func (s *modelStats) recordAttempt(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statLocked(model).attempts++
}

func (s *modelStats) recordSuccess(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statLocked(model).successes++
}

func (s *modelStats) statLocked(model string) *modelStat {
	st, ok := s.byModel[model]
	if !ok {
		st = &modelStat{}
		s.byModel[model] = st
	}
	return st
}

// ModelUsage is a snapshot of one model's lifetime attempt counters.
type ModelUsage struct {
	Model     string
	Attempts  int64
	Successes int64
}

func (s *modelStats) snapshot() []ModelUsage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ModelUsage, 0, len(s.byModel))
	for name, st := range s.byModel {
		out = append(out, ModelUsage{Model: name, Attempts: st.attempts, Successes: st.successes})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out
}
