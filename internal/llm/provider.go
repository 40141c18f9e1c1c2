// Package llm implements the text-completion capability behind the
// enhancement step: three interchangeable HTTP backends and the merge logic
// that applies their output to a parsed intent.
package llm

import "context"

// CallOptions tune a single completion request.
type CallOptions struct {
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

// Provider is one text-completion backend. Callers never branch on which
// backend is active; a prompt in, completion text out.
type Provider interface {
	Name() string
	IsConfigured() bool
	Call(ctx context.Context, prompt string, opts CallOptions) (string, error)
}
