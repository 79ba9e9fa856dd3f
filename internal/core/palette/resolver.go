package palette

import (
	"context"
	"fmt"

	"github.com/agenthands/wardrobe/internal/config"
	"github.com/agenthands/wardrobe/internal/core/common"
	"github.com/agenthands/wardrobe/internal/llm"
	"github.com/agenthands/wardrobe/internal/logger"
	"github.com/agenthands/wardrobe/internal/metrics"
)

// FallbackColors are returned whenever the completion call fails.
var FallbackColors = []string{"BLACK", "WHITE", "GRAY", "NAVY", "BEIGE"}

type Resolver struct {
	LLM         llm.TextCompletionClient
	Prompt      string
	MaxTokens   int
	Temperature float32
	Log         *logger.Logger
	Metrics     *metrics.Collector
}

func NewResolver(client llm.TextCompletionClient, cfg *config.Config, log *logger.Logger, m *metrics.Collector) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{
		LLM:         client,
		Prompt:      cfg.Prompts.Colors,
		MaxTokens:   cfg.LLM.ColorMaxTokens,
		Temperature: cfg.LLM.ColorTemp(),
		Log:         log,
		Metrics:     m,
	}
}

// Suggest asks the LLM for colors that coordinate with baseColor. It makes a
// single attempt and never fails: any error yields FallbackColors.
func (r *Resolver) Suggest(ctx context.Context, baseColor string) []string {
	colors, err := r.suggest(ctx, baseColor)
	if err != nil {
		r.Log.Warn("color suggestion failed, using fallback", "base_color", baseColor, "error", err)
		r.Metrics.ObserveAI("colors", false)
		return append([]string(nil), FallbackColors...)
	}
	r.Metrics.ObserveAI("colors", true)
	return colors
}

func (r *Resolver) suggest(ctx context.Context, baseColor string) ([]string, error) {
	if r.LLM == nil {
		return nil, llm.ErrOffline
	}
	prompt := fmt.Sprintf(r.Prompt, common.Normalize(baseColor))

	response, err := r.LLM.Complete(ctx, prompt, r.MaxTokens, r.Temperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate colors: %w", err)
	}

	colors := common.Dedupe(common.ParseTokenList(response))
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colors in response %q", response)
	}
	return colors, nil
}
