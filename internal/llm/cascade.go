package llm

import (
	"context"
	"log"
	"sort"
	"time"

	"jobalert/internal/llmclient"
)

// Descriptor is the static configuration for one backend model. Constructed
// once at startup and never mutated.
type Descriptor struct {
	// Name is the opaque model identifier sent to the provider.
	Name string
	// Provider selects the client the attempt goes through.
	Provider string
	// MaxOutputTokens caps the completion length.
	MaxOutputTokens int
	// Temperature in [0.0, 2.0].
	Temperature float32
	// Priority orders the cascade; lower is tried first.
	Priority int
	// Retries is the extra attempt budget after the first try.
	Retries int
}

// cascade attempts delivery across the ordered descriptor list until one
// succeeds or all are exhausted. The order is fixed for every call; a model
// that just failed is still tried from the top on the next request.
type cascade struct {
	clients map[string]llmclient.Client
	descs   []Descriptor
	backoff time.Duration
	stats   *modelStats
	log     *log.Logger
}

func newCascade(clients map[string]llmclient.Client, descs []Descriptor, backoff time.Duration, stats *modelStats, logger *log.Logger) *cascade {
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	sorted := make([]Descriptor, len(descs))
	copy(sorted, descs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })
	return &cascade{
		clients: clients,
		descs:   sorted,
		backoff: backoff,
		stats:   stats,
		log:     logger,
	}
}

// execute returns the first successful response together with the winning
// descriptor's position in the cascade. ok=false means every descriptor
// exhausted its budget; that is an expected, recoverable outcome, not an
// error.
func (c *cascade) execute(ctx context.Context, msgs []llmclient.Message) (resp *llmclient.Response, winner Descriptor, pos int, ok bool) {
	for i, d := range c.descs {
		cli, found := c.clients[d.Provider]
		if !found {
			c.log.Printf("cascade: no client for provider %q, skipping %s", d.Provider, d.Name)
			continue
		}
		for attempt := 0; attempt <= d.Retries; attempt++ {
			select {
			case <-ctx.Done():
				return nil, Descriptor{}, 0, false
			default:
			}

			c.stats.recordAttempt(d.Name)
			out, err := cli.Complete(ctx, llmclient.Request{
				Model:       d.Name,
				Messages:    msgs,
				MaxTokens:   d.MaxOutputTokens,
				Temperature: d.Temperature,
			})
			if err == nil {
				c.stats.recordSuccess(d.Name)
				return out, d, i, true
			}

			c.log.Printf("cascade: %s attempt %d/%d failed: %v", d.Name, attempt+1, d.Retries+1, err)
			if llmclient.IsRateLimited(err) || llmclient.IsPermanent(err) {
				// No point burning the remaining retry budget on this model.
				break
			}
			if attempt < d.Retries {
				time.Sleep(c.backoff)
			}
		}
	}
	return nil, Descriptor{}, 0, false
}
