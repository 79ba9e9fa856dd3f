package chat

import (
	"context"
	"fmt"

	"github.com/agenthands/wardrobe/internal/core/model"
	"github.com/agenthands/wardrobe/internal/logger"
	"github.com/agenthands/wardrobe/internal/metrics"
)

type Matcher interface {
	FindMatchesFor(ctx context.Context, ref model.Product, categoryFilter string) (model.Recommendation, error)
}

type Advisor interface {
	Generate(ctx context.Context, color, category, productName, question string) string
}

type Dispatcher struct {
	Matcher Matcher
	Advisor Advisor
	Log     *logger.Logger
	Metrics *metrics.Collector
}

func NewDispatcher(m Matcher, a Advisor, log *logger.Logger, mc *metrics.Collector) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{Matcher: m, Advisor: a, Log: log, Metrics: mc}
}

// Dispatch classifies message and produces the reply for the shopper looking
// at ref.
func (d *Dispatcher) Dispatch(ctx context.Context, ref model.Product, message string) (model.Recommendation, error) {
	intent := Classify(message)
	d.Metrics.ObserveIntent(intent.Kind.String())
	d.Log.Debug("chat message classified", "product_id", ref.ID, "intent", intent.Kind.String(), "category", intent.Category)

	switch intent.Kind {
	case model.IntentGreeting:
		return canned(fmt.Sprintf("Hello! I'm your personal stylist. Ask me how to wear the %s, or say something like \"show me shoes\".", ref.Name)), nil
	case model.IntentThanks:
		return canned("You're welcome! Let me know if you'd like more ideas."), nil
	case model.IntentGoodbye:
		return canned("Goodbye! Come back any time you need styling help."), nil
	case model.IntentCategoryRequest:
		return d.Matcher.FindMatchesFor(ctx, ref, intent.Category)
	default:
		advice := d.Advisor.Generate(ctx, ref.Color, ref.Category.Name, ref.Name, intent.Text)
		return canned(advice), nil
	}
}

func canned(message string) model.Recommendation {
	return model.Recommendation{Message: message, Products: []model.Product{}}
}
