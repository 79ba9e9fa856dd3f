package catalog

import (
	"context"
	"testing"

	"github.com/agenthands/wardrobe/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	blazers = model.Category{ID: 1, Name: "BLAZERS"}
	bags    = model.Category{ID: 2, Name: "Bags"}
	shirts  = model.Category{ID: 3, Name: "SHIRTS"}
	shoes   = model.Category{ID: 4, Name: "SHOES"}
)

func fixtureProducts() []model.Product {
	return []model.Product{
		{ID: 5, Name: "Tailored Blazer", Color: "RED", Price: 129.9, Category: blazers},
		{ID: 6, Name: "Leather Tote", Color: "black", Price: 89, Category: bags},
		{ID: 7, Name: "Oxford Shirt", Color: "White", Price: 49.5, Category: shirts},
		{ID: 8, Name: "Silk Shirt", Color: "RED", Price: 79, Category: shirts},
		{ID: 9, Name: "Green Clutch", Color: "GREEN", Price: 39, Category: bags},
		{ID: 10, Name: "Loafers", Color: "BLACK", Price: 99, Category: shoes},
		{ID: 11, Name: "Second Blazer", Color: "RED", Price: 139, Category: blazers},
	}
}

func ids(products []model.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

var matchingQuery = Query{
	ExcludeID:  5,
	Categories: []string{"bags", "SHIRTS"},
	Colors:     []string{"RED", "black", "WHITE"},
}

func TestQueryNormalized(t *testing.T) {
	q := Query{ExcludeID: 1, Categories: []string{" bags", "BAGS", ""}, Colors: []string{"red"}}.Normalized()

	assert.Equal(t, []string{"BAGS"}, q.Categories)
	assert.Equal(t, []string{"RED"}, q.Colors)
	assert.Equal(t, int64(1), q.ExcludeID)
}

func TestMemoryCatalog(t *testing.T) {
	c := NewMemoryCatalog(fixtureProducts()...)
	ctx := context.Background()

	p, err := c.GetProductByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Tailored Blazer", p.Name)
	assert.Equal(t, "BLAZERS", p.Category.Name)

	_, err = c.GetProductByID(ctx, 999)
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	got, err := c.QueryProducts(ctx, matchingQuery)
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 7, 8}, ids(got))

	c.Put(model.Product{ID: 12, Name: "Red Bag", Color: "red", Category: bags})
	got, err = c.QueryProducts(ctx, matchingQuery)
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 7, 8, 12}, ids(got))
}

func TestMemoryCatalog_EmptyQuery(t *testing.T) {
	c := NewMemoryCatalog(fixtureProducts()...)

	got, err := c.QueryProducts(context.Background(), Query{ExcludeID: 5})
	require.NoError(t, err)
	assert.Empty(t, got)
}
