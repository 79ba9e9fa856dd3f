// Package catalog is the read side of the product catalog used by the
// recommendation engine.
package catalog

import (
	"context"

	"github.com/agenthands/wardrobe/internal/core/common"
	"github.com/agenthands/wardrobe/internal/core/model"
)

// Catalog is safe for concurrent use by every implementation in this package.
type Catalog interface {
	// GetProductByID returns the product with its category attached, or an
	// error wrapping model.ErrProductNotFound.
	GetProductByID(ctx context.Context, id int64) (model.Product, error)
	QueryProducts(ctx context.Context, q Query) ([]model.Product, error)
}

// Query selects products whose id differs from ExcludeID, whose category
// name is in Categories and whose color is in Colors. Names and colors are
// compared case-insensitively.
type Query struct {
	ExcludeID  int64
	Categories []string
	Colors     []string
}

// Normalized returns a copy of q with every name upper-cased and deduplicated.
func (q Query) Normalized() Query {
	return Query{
		ExcludeID:  q.ExcludeID,
		Categories: normalizeAll(q.Categories),
		Colors:     normalizeAll(q.Colors),
	}
}

// Matches reports whether p satisfies q. q must be normalized.
func (q Query) Matches(p model.Product) bool {
	if p.ID == q.ExcludeID {
		return false
	}
	return contains(q.Categories, common.Normalize(p.Category.Name)) &&
		contains(q.Colors, common.Normalize(p.Color))
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := common.Normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return common.Dedupe(out)
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
