package matcher

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/agenthands/wardrobe/internal/catalog"
	"github.com/agenthands/wardrobe/internal/core/common"
	"github.com/agenthands/wardrobe/internal/core/compat"
	"github.com/agenthands/wardrobe/internal/core/model"
)

// ColorSuggester returns colors that coordinate with a base color. It must
// not fail; implementations fall back to static data.
type ColorSuggester interface {
	Suggest(ctx context.Context, baseColor string) []string
}

// ShuffleFunc permutes n elements through swap, with the contract of
// rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

type Matcher struct {
	Catalog catalog.Catalog
	Graph   *compat.Graph
	Colors  ColorSuggester
	Shuffle ShuffleFunc
}

func NewMatcher(c catalog.Catalog, g *compat.Graph, colors ColorSuggester) *Matcher {
	return &Matcher{
		Catalog: c,
		Graph:   g,
		Colors:  colors,
		Shuffle: rand.Shuffle,
	}
}

// FindMatches loads the reference product and returns up to
// model.MaxRecommendations products that pair with it. An empty filter means
// every compatible category.
func (m *Matcher) FindMatches(ctx context.Context, referenceID int64, categoryFilter string) (model.Recommendation, error) {
	ref, err := m.Catalog.GetProductByID(ctx, referenceID)
	if err != nil {
		return model.Recommendation{}, err
	}
	return m.FindMatchesFor(ctx, ref, categoryFilter)
}

// FindMatchesFor is FindMatches for an already loaded reference product.
func (m *Matcher) FindMatchesFor(ctx context.Context, ref model.Product, categoryFilter string) (model.Recommendation, error) {
	compatible := m.Graph.Compatible(ref.Category.Name)

	filter := strings.TrimSpace(categoryFilter)
	if filter != "" {
		compatible = FilterCategories(compatible, filter)
		if len(compatible) == 0 {
			return model.Recommendation{
				Message: fmt.Sprintf("Sorry, %s don't pair with %s in our style guide. Try another category.",
					strings.ToLower(filter), strings.ToLower(ref.Category.Name)),
				Products: []model.Product{},
			}, nil
		}
	}

	colors := m.colorSet(ctx, ref.Color)

	candidates, err := m.Catalog.QueryProducts(ctx, catalog.Query{
		ExcludeID:  ref.ID,
		Categories: compatible,
		Colors:     colors,
	})
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to find matches for product %d: %w", ref.ID, err)
	}

	products := m.pick(candidates)
	return model.Recommendation{
		Message:  message(ref, filter, len(products)),
		Products: products,
	}, nil
}

// FilterCategories keeps the categories that contain filter or are contained
// in it, ignoring case.
func FilterCategories(categories []string, filter string) []string {
	f := common.Normalize(filter)
	var out []string
	for _, c := range categories {
		n := common.Normalize(c)
		if strings.Contains(n, f) || strings.Contains(f, n) {
			out = append(out, c)
		}
	}
	return out
}

func (m *Matcher) colorSet(ctx context.Context, base string) []string {
	colors := []string{common.Normalize(base)}
	if m.Colors != nil {
		colors = append(colors, m.Colors.Suggest(ctx, base)...)
	}
	for i := range colors {
		colors[i] = common.Normalize(colors[i])
	}
	return common.Dedupe(colors)
}

func (m *Matcher) pick(candidates []model.Product) []model.Product {
	out := append([]model.Product{}, candidates...)
	shuffle := m.Shuffle
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if len(out) > model.MaxRecommendations {
		out = out[:model.MaxRecommendations]
	}
	return out
}

func message(ref model.Product, filter string, n int) string {
	item := fmt.Sprintf("%s %s", common.Normalize(ref.Color), ref.Name)
	switch {
	case n == 0 && filter != "":
		return fmt.Sprintf("I couldn't find %s that match your %s right now.", strings.ToLower(filter), item)
	case n == 0:
		return fmt.Sprintf("I couldn't find items that match your %s right now.", item)
	case filter != "":
		return fmt.Sprintf("Here are some %s that pair well with your %s.", strings.ToLower(filter), item)
	default:
		return fmt.Sprintf("Here are some items that pair well with your %s.", item)
	}
}
