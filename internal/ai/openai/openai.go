// Package openai implements the ai.Provider interface against the OpenAI
// chat-completions API.
package openai

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/moodmate/backend/internal/ai"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Provider calls the chat-completions endpoint for a fixed model.
type Provider struct {
	client *resty.Client
	model  string
}

// New creates a provider for the given model. baseURL may be empty to use
// the public API endpoint.
func New(apiKey, model, baseURL string) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
	return &Provider{client: client, model: model}
}

type chatRequest struct {
	Model          string           `json:"model"`
	Messages       []ai.ChatMessage `json:"messages"`
	MaxTokens      int              `json:"max_tokens,omitempty"`
	Temperature    float64          `json:"temperature,omitempty"`
	ResponseFormat *responseFormat  `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one chat-completion request and returns the first choice.
func (p *Provider) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	body := chatRequest{
		Model:       p.model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var out chatResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("openai: %s", out.Error.Message)
		}
		return "", fmt.Errorf("openai: status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return out.Choices[0].Message.Content, nil
}

// HealthPing verifies the API is reachable by listing models.
func (p *Provider) HealthPing(ctx context.Context) error {
	resp, err := p.client.R().SetContext(ctx).Get("/models")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("openai: status %d", resp.StatusCode())
	}
	return nil
}
