package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// CompletionMode selects the decoding temperature of a completion call.
type CompletionMode string

const (
	// ModeStructured is near-deterministic, used whenever the response must
	// be parseable JSON.
	ModeStructured CompletionMode = "structured"
	// ModeCreative allows higher variance, used for natural-language prose
	// such as ideal answers.
	ModeCreative CompletionMode = "creative"
)

const (
	structuredTemperature = float32(0.1)
	creativeTemperature   = float32(0.5)
)

// CompletionClient wraps a single external text-completion endpoint.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, mode CompletionMode) (string, error)
}

func temperatureFor(mode CompletionMode) float32 {
	if mode == ModeCreative {
		return creativeTemperature
	}
	return structuredTemperature
}

type geminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a CompletionClient backed by the Gemini API.
// Every call is bounded by the given timeout; expiry surfaces as ErrUpstream.
func NewGeminiClient(apiKey, model string, timeout time.Duration) (CompletionClient, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Complete implements CompletionClient.
func (g *geminiClient) Complete(ctx context.Context, systemPrompt, userPrompt string, mode CompletionMode) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(temperatureFor(mode)),
		MaxOutputTokens:   4096,
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userPrompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrUpstream)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrUpstream)
	}

	return text, nil
}
