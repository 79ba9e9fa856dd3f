package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/wardrobe/internal/catalog"
	"github.com/agenthands/wardrobe/internal/config"
	"github.com/agenthands/wardrobe/internal/core/advice"
	"github.com/agenthands/wardrobe/internal/core/chat"
	"github.com/agenthands/wardrobe/internal/core/compat"
	"github.com/agenthands/wardrobe/internal/core/matcher"
	"github.com/agenthands/wardrobe/internal/core/model"
	"github.com/agenthands/wardrobe/internal/core/palette"
	"github.com/agenthands/wardrobe/internal/llm"
	"github.com/agenthands/wardrobe/internal/logger"
	"github.com/agenthands/wardrobe/internal/metrics"
)

// Result is what every Stylist entry point returns.
type Result struct {
	Message  string
	Products []model.ProductSummary
}

// Stylist is the recommendation engine's public surface.
type Stylist struct {
	Catalog    catalog.Catalog
	Graph      *compat.Graph
	Colors     *palette.Resolver
	Matcher    *matcher.Matcher
	Advisor    *advice.Generator
	Dispatcher *chat.Dispatcher
	Log        *logger.Logger
}

func NewStylist(c catalog.Catalog, llmClient llm.TextCompletionClient, cfg *config.Config, log *logger.Logger, m *metrics.Collector) *Stylist {
	if log == nil {
		log = logger.Nop()
	}
	graph := compat.Default()
	colors := palette.NewResolver(llmClient, cfg, log, m)
	match := matcher.NewMatcher(c, graph, colors)
	advisor := advice.NewGenerator(llmClient, cfg, log, m)

	return &Stylist{
		Catalog:    c,
		Graph:      graph,
		Colors:     colors,
		Matcher:    match,
		Advisor:    advisor,
		Dispatcher: chat.NewDispatcher(match, advisor, log, m),
		Log:        log,
	}
}

// GetMatchingProducts recommends products that pair with productID,
// optionally narrowed to categories matching categoryFilter.
func (s *Stylist) GetMatchingProducts(ctx context.Context, productID int64, categoryFilter string) (res Result, err error) {
	defer s.recoverInto(&err, "GetMatchingProducts")

	rec, err := s.Matcher.FindMatches(ctx, productID, categoryFilter)
	if err != nil {
		return Result{}, err
	}
	return toResult(rec), nil
}

// GetFashionAdvice returns styling advice for productID. The product list
// is always empty.
func (s *Stylist) GetFashionAdvice(ctx context.Context, productID int64, question string) (res Result, err error) {
	defer s.recoverInto(&err, "GetFashionAdvice")

	ref, err := s.Catalog.GetProductByID(ctx, productID)
	if err != nil {
		return Result{}, err
	}
	text := s.Advisor.Generate(ctx, ref.Color, ref.Category.Name, ref.Name, question)
	return Result{Message: text, Products: []model.ProductSummary{}}, nil
}

// ProcessChatMessage answers a free-text message about productID.
func (s *Stylist) ProcessChatMessage(ctx context.Context, productID int64, userMessage string) (res Result, err error) {
	defer s.recoverInto(&err, "ProcessChatMessage")

	ref, err := s.Catalog.GetProductByID(ctx, productID)
	if err != nil {
		return Result{}, err
	}
	rec, err := s.Dispatcher.Dispatch(ctx, ref, userMessage)
	if err != nil {
		return Result{}, err
	}
	return toResult(rec), nil
}

// Chat routes empty messages and requests for style or fashion tips to
// GetFashionAdvice and everything else to ProcessChatMessage.
func (s *Stylist) Chat(ctx context.Context, productID int64, userMessage string) (Result, error) {
	if WantsAdvice(userMessage) {
		return s.GetFashionAdvice(ctx, productID, "")
	}
	return s.ProcessChatMessage(ctx, productID, userMessage)
}

func WantsAdvice(userMessage string) bool {
	msg := strings.ToLower(strings.TrimSpace(userMessage))
	return msg == "" || strings.Contains(msg, "style tips") || strings.Contains(msg, "fashion tips")
}

func (s *Stylist) recoverInto(err *error, op string) {
	if r := recover(); r != nil {
		s.Log.Error("recovered from panic", "op", op, "panic", r)
		*err = fmt.Errorf("%s: unexpected failure: %v", op, r)
	}
}

func toResult(rec model.Recommendation) Result {
	return Result{Message: rec.Message, Products: model.Summaries(rec.Products)}
}
