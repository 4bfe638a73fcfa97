package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// groqClient talks to an OpenAI-compatible chat-completions endpoint
// (Groq, OpenRouter, and the like).
type groqClient struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewGroqClient creates a CompletionClient for an OpenAI-compatible API.
func NewGroqClient(baseURL, apiKey, model string, timeout time.Duration) CompletionClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &groqClient{
		client: client,
		apiKey: apiKey,
		model:  model,
	}
}

// Complete implements CompletionClient.
func (g *groqClient) Complete(ctx context.Context, systemPrompt, userPrompt string, mode CompletionMode) (string, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": g.model,
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": userPrompt},
			},
			"temperature": temperatureFor(mode),
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode(), resp.String())
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return "", fmt.Errorf("%w: no completion choices in response", ErrUpstream)
	}

	return content, nil
}
