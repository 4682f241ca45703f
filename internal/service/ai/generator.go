package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/zhouzirui/health-assistant/backend/internal/config"
)

// ErrUnknownProvider is returned when the configured provider has no implementation.
var ErrUnknownProvider = errors.New("ai: unknown provider")

// Generator turns a fully assembled prompt into the model's raw text answer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerator builds the generator selected by cfg.
// It returns (nil, nil) when no provider has credentials.
func NewGenerator(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	switch provider := cfg.ResolvedProvider(); provider {
	case config.ProviderArk:
		chatModel, err := cfg.NewChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create chat model: %w", err)
		}
		gen, err := NewChainGenerator(ctx, chatModel)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderGemini:
		gen, err := NewGeminiGenerator(ctx, GeminiOptions{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(OpenAIOptions{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.OpenAIModel,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}
