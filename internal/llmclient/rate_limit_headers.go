package llmclient

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// RateLimitHeaders represents normalized provider rate-limit signals.
type RateLimitHeaders struct {
	RetryAfterSeconds int

	LimitRequests     int
	RemainingRequests int
	ResetRequests     time.Duration
}

// RateLimitHeaderAwareClient is an optional interface for clients that expose
// the rate-limit headers of their most recent response.
type RateLimitHeaderAwareClient interface {
	LastRateLimitHeaders() (RateLimitHeaders, bool)
}

// parseRateLimitHeaders reads the OpenAI-compatible rate-limit response
// headers OpenRouter emits. Reset values are reported as epoch milliseconds
// and normalized to a duration from now.
func parseRateLimitHeaders(h http.Header) (RateLimitHeaders, bool) {
	out := RateLimitHeaders{}
	found := false

	readInt := func(keys ...string) (int, bool) {
		for _, key := range keys {
			v := strings.TrimSpace(h.Get(key))
			if v == "" {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				continue
			}
			return n, true
		}
		return 0, false
	}

	if v, ok := readInt("Retry-After"); ok {
		out.RetryAfterSeconds = v
		found = true
	}
	if v, ok := readInt("X-RateLimit-Limit-Requests", "X-RateLimit-Limit"); ok {
		out.LimitRequests = v
		found = true
	}
	if v, ok := readInt("X-RateLimit-Remaining-Requests", "X-RateLimit-Remaining"); ok {
		out.RemainingRequests = v
		found = true
	}
	if v, ok := readInt("X-RateLimit-Reset-Requests", "X-RateLimit-Reset"); ok {
		reset := time.UnixMilli(int64(v))
		if d := time.Until(reset); d > 0 {
			out.ResetRequests = d
		}
		found = true
	}

	return out, found
}
