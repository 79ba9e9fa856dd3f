package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/wardrobe/internal/config"
	"github.com/agenthands/wardrobe/internal/core/common"
	"github.com/agenthands/wardrobe/internal/llm"
	"github.com/agenthands/wardrobe/internal/logger"
	"github.com/agenthands/wardrobe/internal/metrics"
)

// DefaultQuestion stands in for an empty customer question.
const DefaultQuestion = "Give complete styling advice for this item."

type Generator struct {
	LLM         llm.TextCompletionClient
	Prompt      string
	MaxTokens   int
	Temperature float32
	Log         *logger.Logger
	Metrics     *metrics.Collector
}

func NewGenerator(client llm.TextCompletionClient, cfg *config.Config, log *logger.Logger, m *metrics.Collector) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{
		LLM:         client,
		Prompt:      cfg.Prompts.Advice,
		MaxTokens:   cfg.LLM.AdviceMaxTokens,
		Temperature: cfg.LLM.AdviceTemp(),
		Log:         log,
		Metrics:     m,
	}
}

// Generate returns stylist advice for the product. It never fails; when the
// LLM is unavailable the answer comes from Fallback.
func (g *Generator) Generate(ctx context.Context, color, category, productName, question string) string {
	if strings.TrimSpace(question) == "" {
		question = DefaultQuestion
	}

	text, err := g.generate(ctx, BuildPrompt(g.Prompt, color, category, productName, question))
	if err != nil {
		g.Log.Warn("advice generation failed, using fallback", "product", productName, "error", err)
		g.Metrics.ObserveAI("advice", false)
		return Fallback(color, category, productName)
	}
	g.Metrics.ObserveAI("advice", true)
	return text
}

// BuildPrompt fills template with product name, category, color and question.
func BuildPrompt(template, color, category, productName, question string) string {
	return fmt.Sprintf(template, productName, common.Normalize(category), common.Normalize(color), strings.TrimSpace(question))
}

func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	if g.LLM == nil {
		return "", llm.ErrOffline
	}
	response, err := g.LLM.Complete(ctx, prompt, g.MaxTokens, g.Temperature)
	if err != nil {
		return "", fmt.Errorf("failed to generate advice: %w", err)
	}
	text := strings.TrimSpace(response)
	if text == "" {
		return "", llm.ErrEmptyCompletion
	}
	return text, nil
}
