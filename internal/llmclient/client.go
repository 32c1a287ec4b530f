package llmclient

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider answered 2xx but produced
// no usable content.
var ErrEmptyResponse = errors.New("empty response from provider")

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single completion attempt. Model, MaxTokens and Temperature
// come from the model descriptor driving the attempt, not from the client.
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// Response is the provider's answer. Reasoning is optional auxiliary text
// (reasoning models only) and may be empty.
type Response struct {
	Content   string
	Reasoning string
}

// Client is a thin provider wrapper. It only focuses on the API call itself;
// cross-cutting concerns (rate limiting, retries, caching, accounting) live
// in the broker on top.
type Client interface {
	Name() string
	Complete(ctx context.Context, req Request) (*Response, error)
	Close() error
}

// RateLimitError indicates the provider signaled quota exhaustion for this
// request. Callers should stop retrying the same model and move on.
type RateLimitError struct {
	Err error
}

func (e *RateLimitError) Error() string { return e.Err.Error() }
func (e *RateLimitError) Unwrap() error { return e.Err }

func NewRateLimitError(err error) error {
	return &RateLimitError{Err: err}
}

// IsRateLimited reports whether err is a provider quota signal.
func IsRateLimited(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}

// PermanentError indicates an error that will not resolve with retries
// against the same model (e.g. the prompt exceeds its context window).
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err is unrecoverable by retry.
func IsPermanent(err error) bool {
	var pErr *PermanentError
	return errors.As(err, &pErr)
}
