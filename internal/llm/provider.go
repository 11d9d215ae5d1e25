// Package llm is the text-generation capability: a Provider sends one prompt
// to a model and returns its text.
package llm

import (
	"context"
)

// Provider is the interface all generation backends implement.
type Provider interface {
	// Name returns the provider identifier.
	Name() string

	// Generate sends a prompt and returns the full response text.
	Generate(ctx context.Context, req *Request) (*Response, error)
}

// Request is one generation call.
type Request struct {
	Prompt string
	// Model overrides the provider's configured model when set.
	Model string
	// Temperature is passed through when non-nil.
	Temperature *float64
	// MaxTokens caps the output; zero leaves it to the model.
	MaxTokens int
}

// Response is the generated text.
type Response struct {
	RequestID    string
	Text         string
	Model        string
	FinishReason string
}

// NewRequest creates a request for prompt with provider defaults.
func NewRequest(prompt string) *Request {
	return &Request{Prompt: prompt}
}
