package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiOptions configures the Gemini backend.
type GeminiOptions struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
}

// GeminiGenerator calls the Gemini API directly.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewGeminiGenerator creates a Gemini client for the given model.
func NewGeminiGenerator(ctx context.Context, opts GeminiOptions) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	temperature := opts.Temperature
	return &GeminiGenerator{
		client: client,
		model:  opts.Model,
		config: &genai.GenerateContentConfig{
			Temperature:     &temperature,
			MaxOutputTokens: int32(opts.MaxTokens),
		},
	}, nil
}

// Generate implements Generator.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}
