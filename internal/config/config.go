package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"jobalert/internal/llm"
)

// ModelConfig is one backend model descriptor as configured.
type ModelConfig struct {
	Name            string  `yaml:"name"`
	Provider        string  `yaml:"provider"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
	Temperature     float32 `yaml:"temperature"`
	Priority        int     `yaml:"priority"`
	Retries         int     `yaml:"retries"`
}

// Config holds all jobalert configuration.
type Config struct {
	OpenRouterAPIKey string `yaml:"-"`
	GeminiAPIKey     string `yaml:"-"`

	MaxRequestsPerMinute int           `yaml:"max_requests_per_minute"`
	MinInterval          time.Duration `yaml:"min_interval"`
	CacheTTL             time.Duration `yaml:"cache_ttl"`
	CacheCapacity        int           `yaml:"cache_capacity"`
	RetryBackoff         time.Duration `yaml:"retry_backoff"`

	Models []ModelConfig `yaml:"models"`
}

// Default returns the production defaults: the free DeepSeek reasoner first,
// a cheaper chat model second, Gemini as the last resort.
func Default() *Config {
	return &Config{
		MaxRequestsPerMinute: 20,
		MinInterval:          2 * time.Second,
		CacheTTL:             30 * time.Minute,
		CacheCapacity:        100,
		RetryBackoff:         500 * time.Millisecond,
		Models: []ModelConfig{
			{
				Name:            "deepseek/deepseek-r1:free",
				Provider:        "openrouter",
				MaxOutputTokens: 1000,
				Temperature:     0.7,
				Priority:        1,
				Retries:         2,
			},
			{
				Name:            "deepseek/deepseek-chat:free",
				Provider:        "openrouter",
				MaxOutputTokens: 1000,
				Temperature:     0.7,
				Priority:        2,
				Retries:         1,
			},
			{
				Name:            "gemini-2.0-flash",
				Provider:        "gemini",
				MaxOutputTokens: 1000,
				Temperature:     0.7,
				Priority:        3,
				Retries:         1,
			},
		},
	}
}

// Load builds the config from defaults, an optional YAML file, and env vars,
// in that order. A .env file is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = strings.TrimSpace(os.Getenv("JOBALERT_CONFIG"))
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.OpenRouterAPIKey = firstNonEmpty(os.Getenv("OPENROUTER_API_KEY"), os.Getenv("DEEPSEEK_API_KEY"))
	cfg.GeminiAPIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))

	if v, ok := envInt("AI_MAX_REQUESTS_PER_MINUTE"); ok {
		cfg.MaxRequestsPerMinute = v
	}
	if v, ok := envDuration("AI_MIN_INTERVAL"); ok {
		cfg.MinInterval = v
	}
	if v, ok := envDuration("AI_CACHE_TTL"); ok {
		cfg.CacheTTL = v
	}
	if v, ok := envInt("AI_CACHE_CAPACITY"); ok {
		cfg.CacheCapacity = v
	}

	if len(cfg.Models) == 0 {
		return nil, fmt.Errorf("config: at least one model is required")
	}
	return cfg, nil
}

// Descriptors converts the configured models into cascade descriptors.
func (c *Config) Descriptors() []llm.Descriptor {
	out := make([]llm.Descriptor, 0, len(c.Models))
	for _, m := range c.Models {
		provider := m.Provider
		if provider == "" {
			provider = "openrouter"
		}
		out = append(out, llm.Descriptor{
			Name:            m.Name,
			Provider:        provider,
			MaxOutputTokens: m.MaxOutputTokens,
			Temperature:     m.Temperature,
			Priority:        m.Priority,
			Retries:         m.Retries,
		})
	}
	return out
}

// BrokerOptions maps the config onto broker tuning knobs.
func (c *Config) BrokerOptions() llm.Options {
	return llm.Options{
		MaxRequestsPerMinute: c.MaxRequestsPerMinute,
		MinInterval:          c.MinInterval,
		CacheTTL:             c.CacheTTL,
		CacheCapacity:        c.CacheCapacity,
		RetryBackoff:         c.RetryBackoff,
	}
}

func envInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envDuration(key string) (time.Duration, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	return d, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
