// Package ai wraps the text-completion collaborator behind a narrow
// interface. The provider is a black box: prompts in, text out. All
// higher-level operations degrade to static fallbacks when it fails.
package ai

import "context"

// ChatMessage is one turn of prompt context sent to the provider.
type ChatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// CompletionRequest is a single generation call.
type CompletionRequest struct {
	Messages    []ChatMessage
	MaxTokens   int
	Temperature float64
	JSONMode    bool
}

// Provider produces a text completion for a prompt context.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
