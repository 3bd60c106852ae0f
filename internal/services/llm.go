package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/virtual-panel/internal/config"
)

// LLMClient is the generative model as seen by the gateway and the
// knowledge base. Gemini and OpenAI both satisfy it.
type LLMClient interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxAttempts int) (string, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// NewLLMClient builds the client for the configured provider. It returns
// nil when the credential is missing or a placeholder, which the gateway
// treats as "always fall back".
func NewLLMClient(ctx context.Context, cfg config.AIConfig) (LLMClient, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case config.ProviderGemini, "":
		return NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.EmbedModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

type generateFunc func(ctx context.Context, prompt string, temperature float32) (string, error)

func generateWithRetry(ctx context.Context, generate generateFunc, prompt string, temperature float32, maxAttempts int) (string, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := generate(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxAttempts {
			log.Printf("⚠️ Attempt %d failed: %v. Retrying...", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}
