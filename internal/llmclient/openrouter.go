package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// OpenRouterClient calls the OpenRouter Chat Completions API
// (OpenAI-compatible). See: https://openrouter.ai/docs/api-reference
type OpenRouterClient struct {
	http    *http.Client
	apiKey  string
	baseURL string

	rlMu      sync.RWMutex
	rlLast    RateLimitHeaders
	rlHasLast bool
}

// NewOpenRouterClient creates an OpenRouter client. If apiKey is empty, it
// falls back to the OPENROUTER_API_KEY / DEEPSEEK_API_KEY env vars.
func NewOpenRouterClient(apiKey string) (*OpenRouterClient, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("DEEPSEEK_API_KEY")
	}
	return &OpenRouterClient{
		http:    &http.Client{Timeout: 30 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://openrouter.ai/api/v1/chat/completions",
	}, nil
}

// SetBaseURL overrides the endpoint. Used for tests and self-hosted gateways.
func (c *OpenRouterClient) SetBaseURL(u string) { c.baseURL = u }

func (c *OpenRouterClient) Name() string { return "openrouter" }
func (c *OpenRouterClient) Close() error { return nil }

func (c *OpenRouterClient) LastRateLimitHeaders() (RateLimitHeaders, bool) {
	c.rlMu.RLock()
	defer c.rlMu.RUnlock()
	return c.rlLast, c.rlHasLast
}

type chatReq struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float32   `json:"temperature"`
}

type chatResp struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			Reasoning string `json:"reasoning"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete issues one chat-completion request and returns the first choice.
func (c *OpenRouterClient) Complete(ctx context.Context, in Request) (*Response, error) {
	b, _ := json.Marshal(chatReq{
		Model:       in.Model,
		Messages:    in.Messages,
		MaxTokens:   in.MaxTokens,
		Temperature: in.Temperature,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if headers, ok := parseRateLimitHeaders(resp.Header); ok {
		c.rlMu.Lock()
		c.rlLast = headers
		c.rlHasLast = true
		c.rlMu.Unlock()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		const max = 2048
		if len(body) > max {
			body = body[:max]
		}
		err := fmt.Errorf("openrouter: unexpected status %s: %s", resp.Status, string(body))
		return nil, classifyHTTPError(resp.StatusCode, string(body), err)
	}

	var out chatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}
	return &Response{
		Content:   out.Choices[0].Message.Content,
		Reasoning: out.Choices[0].Message.Reasoning,
	}, nil
}

// classifyHTTPError splits provider failures into the binary taxonomy the
// cascade needs: quota signals versus everything else. Context overflow is
// additionally marked permanent so retries are skipped.
func classifyHTTPError(status int, body string, err error) error {
	if status == http.StatusTooManyRequests {
		return NewRateLimitError(err)
	}
	lower := strings.ToLower(body)
	if strings.Contains(lower, "rate_limit") || strings.Contains(lower, "quota") {
		return NewRateLimitError(err)
	}
	if status == http.StatusBadRequest && strings.Contains(lower, "context_length_exceeded") {
		return NewPermanentError(err)
	}
	return err
}
