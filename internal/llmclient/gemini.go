package llmclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client, used as an
// interchangeable backend alongside the OpenRouter models.
type GeminiClient struct {
	cli *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	// The genai client reads GEMINI_API_KEY from env when apiKey is empty.
	cfg := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	cli, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli}, nil
}

func (g *GeminiClient) Name() string { return "gemini" }
func (g *GeminiClient) Close() error { return nil }

// Complete flattens the chat messages into a single content block and asks
// for plain text. Gemini has no reasoning channel; Reasoning stays empty.
func (g *GeminiClient) Complete(ctx context.Context, in Request) (*Response, error) {
	var sb strings.Builder
	for _, m := range in.Messages {
		if m.Role == "system" {
			sb.WriteString(m.Content)
			sb.WriteString("\n\n")
			continue
		}
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}

	cfg := &genai.GenerateContentConfig{}
	if in.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(in.MaxTokens)
	}
	temp := in.Temperature
	cfg.Temperature = &temp

	resp, err := g.cli.Models.GenerateContent(ctx, in.Model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: sb.String()}}}},
		cfg,
	)
	if err != nil {
		return nil, classifyGeminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}
	txt := resp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(txt) == "" {
		return nil, ErrEmptyResponse
	}
	return &Response{Content: txt}, nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED") {
			return NewRateLimitError(err)
		}
	}
	return err
}
