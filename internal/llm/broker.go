package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobalert/internal/cache/memory"
	"jobalert/internal/llmclient"
)

// FallbackMessage is the static answer returned when no real answer could be
// obtained. It is never cached; it reflects transient provider exhaustion,
// not a real answer.
const FallbackMessage = "I'm having trouble connecting to my AI assistant right now. Please try again later, or feel free to ask me about our job categories!"

// UserContext carries the per-user state that shapes an answer. Nil means
// no context.
type UserContext struct {
	Interest string
	Balance  int
	// History holds recent conversation turns, oldest first. Only the last
	// few feed the prompt and the cache key.
	History []string
}

// Answer is what Ask always returns: a real answer, a cached one, or the
// static fallback. Reasoning is auxiliary text from reasoning models and may
// be empty. Model names the descriptor that produced the answer; it is empty
// for fallbacks.
type Answer struct {
	Content   string
	Reasoning string
	Model     string
	Cached    bool
}

// Options tunes the broker. The zero value gives the production defaults:
// 20 requests per trailing minute, 2s spacing, 30m cache TTL, 100 cache
// entries, 500ms retry backoff.
type Options struct {
	SystemPrompt string

	MaxRequestsPerMinute int
	MinInterval          time.Duration
	Window               time.Duration
	PollInterval         time.Duration

	CacheTTL      time.Duration
	CacheCapacity int

	RetryBackoff time.Duration

	Logger *log.Logger
	Now    func() time.Time
}

// Broker is the single entry point for asking the shared text-generation
// backend. It owns the rate window, the response cache, and the usage
// counters; callers only see Ask and Stats.
type Broker struct {
	log     *log.Logger
	system  string
	limiter *windowLimiter
	cascade *cascade
	cache   *memory.TTLStore[string, Answer]
	usage   *dayCounters
	stats   *modelStats
}

// NewBroker wires the broker from provider clients and the ordered model
// descriptors. Every descriptor's provider must have a client.
func NewBroker(clients map[string]llmclient.Client, descs []Descriptor, opts Options) (*Broker, error) {
	if len(descs) == 0 {
		return nil, fmt.Errorf("llm: at least one model descriptor is required")
	}
	for _, d := range descs {
		if strings.TrimSpace(d.Name) == "" {
			return nil, fmt.Errorf("llm: descriptor with empty model name")
		}
		if _, ok := clients[d.Provider]; !ok {
			return nil, fmt.Errorf("llm: no client for provider %q (model %s)", d.Provider, d.Name)
		}
		if d.Temperature < 0 || d.Temperature > 2 {
			return nil, fmt.Errorf("llm: model %s: temperature %v out of range [0,2]", d.Name, d.Temperature)
		}
		if d.Retries < 0 {
			return nil, fmt.Errorf("llm: model %s: negative retry count", d.Name)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.MinInterval == 0 {
		opts.MinInterval = 2 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Minute
	}
	if opts.CacheCapacity <= 0 {
		opts.CacheCapacity = 100
	}

	stats := newModelStats()
	return &Broker{
		log:     logger,
		system:  opts.SystemPrompt,
		limiter: newWindowLimiter(opts.MaxRequestsPerMinute, opts.MinInterval, opts.Window, opts.PollInterval),
		cascade: newCascade(clients, descs, opts.RetryBackoff, stats, logger),
		cache:   memory.NewTTLStore[string, Answer](opts.CacheCapacity, opts.CacheTTL),
		usage:   newDayCounters(logger, opts.Now),
		stats:   stats,
	}, nil
}

// Ask answers a prompt through the cache, the rate limiter, and the model
// cascade, in that order. It always returns a usable answer and never
// panics; every failure mode below this boundary resolves to the static
// fallback.
func (b *Broker) Ask(ctx context.Context, prompt string, uctx *UserContext) (ans Answer) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Printf("llm: recovered from panic in Ask: %v", r)
			ans = Answer{Content: FallbackMessage}
		}
	}()

	key := Fingerprint(prompt, uctx)
	if cached, ok := b.cache.Get(key); ok {
		b.usage.recordCacheHit()
		cached.Cached = true
		return cached
	}

	b.usage.recordRequest()
	msgs := b.buildMessages(prompt, uctx)

	if err := b.limiter.Acquire(ctx); err != nil {
		b.log.Printf("llm: rate limiter wait aborted: %v", err)
		return Answer{Content: FallbackMessage}
	}

	resp, winner, pos, ok := b.cascade.execute(ctx, msgs)
	if !ok {
		b.log.Printf("llm: all models exhausted, returning fallback")
		return Answer{Content: FallbackMessage}
	}
	if pos > 0 {
		b.usage.recordModelSwitch()
	}

	ans = Answer{Content: resp.Content, Reasoning: resp.Reasoning, Model: winner.Name}
	b.cache.Set(key, ans)
	return ans
}

// buildMessages assembles the provider payload: the configured system prompt
// plus the user prompt enriched with interest, balance, and recent turns.
func (b *Broker) buildMessages(prompt string, uctx *UserContext) []llmclient.Message {
	enhanced := prompt
	if uctx != nil {
		enhanced += fmt.Sprintf("\n\nUser context: Interest=%s, Balance=%d credits",
			orDefault(uctx.Interest, "Not set"), uctx.Balance)
		if turns := lastTurns(uctx.History, historyDepth); len(turns) > 0 {
			enhanced += "\n\nRecent conversation: " + strings.Join(turns, " | ")
		}
	}

	msgs := make([]llmclient.Message, 0, 2)
	if b.system != "" {
		msgs = append(msgs, llmclient.Message{Role: "system", Content: b.system})
	}
	return append(msgs, llmclient.Message{Role: "user", Content: enhanced})
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// StatsReport is a read-only snapshot for operational dashboards. Taking it
// never blocks on the limiter, the cache, or the provider.
type StatsReport struct {
	Daily  DailyUsage
	Models []ModelUsage
}

func (b *Broker) Stats() StatsReport {
	return StatsReport{
		Daily:  b.usage.snapshot(),
		Models: b.stats.snapshot(),
	}
}
