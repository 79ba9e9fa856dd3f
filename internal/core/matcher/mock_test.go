package matcher

import (
	"context"

	"github.com/agenthands/wardrobe/internal/catalog"
	"github.com/agenthands/wardrobe/internal/core/model"
)

type MockColors struct {
	Colors []string
	Calls  int
}

func (m *MockColors) Suggest(ctx context.Context, baseColor string) []string {
	m.Calls++
	return append([]string(nil), m.Colors...)
}

type FailingCatalog struct {
	catalog.Catalog
	Err error
}

func (f *FailingCatalog) QueryProducts(ctx context.Context, q catalog.Query) ([]model.Product, error) {
	return nil, f.Err
}

func noShuffle(n int, swap func(i, j int)) {}

func reverseShuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}
