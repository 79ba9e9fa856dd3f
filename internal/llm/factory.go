package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/wardrobe/internal/config"
	"github.com/agenthands/wardrobe/internal/logger"
)

func NewClient(ctx context.Context, cfg config.LLMConfig, log *logger.Logger) (TextCompletionClient, error) {
	provider := strings.ToLower(cfg.Provider)

	var client TextCompletionClient
	switch provider {
	case "openai":
		client = NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL)

	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		client = c

	case "claude":
		client = NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL)

	case "ollama":
		// Ollama exposes an OpenAI-compatible API under /v1.
		baseURL := cfg.BaseURL
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		client = NewOpenAIClient(apiKey, cfg.Model, baseURL)

	case "stub", "offline":
		client = &StubClient{}

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}

	log.Info("llm client ready", "provider", provider, "model", cfg.Model, "timeout", cfg.Timeout)
	return WithTimeout(client, cfg.TimeoutDuration()), nil
}
