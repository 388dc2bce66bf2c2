// Package ai provides the completion gateway interface and implementations.
package ai

import "context"

// CompletionRequest is one prompt pair with its sampling settings.
// A zero MaxTokens falls back to the configured ceiling; Temperature is
// always set explicitly by the prompt builders.
type CompletionRequest struct {
	// System is the system prompt defining the model's role.
	System string

	// User is the user prompt carrying the document or question.
	User string

	// MaxTokens caps the response length. Zero means the configured default.
	MaxTokens int

	// Temperature is the sampling temperature for this call.
	Temperature float64
}

// Gateway is the sole abstraction over the chat-completion endpoint.
// Every AI-dependent component formats its own prompts and calls Complete;
// no other code talks to the model provider directly.
type Gateway interface {
	// Complete performs one completion call and returns the trimmed
	// response text. The context carries timeout and cancellation.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
