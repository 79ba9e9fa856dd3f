package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/agenthands/wardrobe/internal/core/model"
	"github.com/agenthands/wardrobe/internal/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordKeys = []string{
	"id", "name", "description", "price", "color", "image_url", "size",
	"category_id", "category_name", "category_description",
}

func productRecord(p model.Product) *neo4j.Record {
	return &neo4j.Record{
		Keys: recordKeys,
		Values: []any{
			p.ID, p.Name, p.Description, p.Price, p.Color, p.ImageURL, p.Size,
			p.Category.ID, p.Category.Name, nil,
		},
	}
}

func TestGraphCatalog_GetProductByID(t *testing.T) {
	want := model.Product{ID: 5, Name: "Tailored Blazer", Color: "RED", Price: 129.9, Size: "M", Category: blazers}
	d := &MockDriver{MockResult: neo4j.EagerResult{Records: []*neo4j.Record{productRecord(want)}}}
	c := NewGraphCatalog(d)

	got, err := c.GetProductByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, driver.GetProductByIDQuery, d.QueriesExecuted[0])
	assert.Equal(t, int64(5), d.QueryParams[0]["id"])
}

func TestGraphCatalog_GetProductByID_NotFound(t *testing.T) {
	c := NewGraphCatalog(&MockDriver{})

	_, err := c.GetProductByID(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestGraphCatalog_GetProductByID_DriverError(t *testing.T) {
	c := NewGraphCatalog(&MockDriver{Err: errors.New("bolt down")})

	_, err := c.GetProductByID(context.Background(), 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrProductNotFound)
}

func TestGraphCatalog_QueryProducts(t *testing.T) {
	fx := fixtureProducts()
	d := &MockDriver{MockResult: neo4j.EagerResult{Records: []*neo4j.Record{
		productRecord(fx[1]), productRecord(fx[2]),
	}}}
	c := NewGraphCatalog(d)

	got, err := c.QueryProducts(context.Background(), matchingQuery)

	require.NoError(t, err)
	assert.Equal(t, []int64{6, 7}, ids(got))
	assert.Equal(t, "Bags", got[0].Category.Name)

	params := d.QueryParams[0]
	assert.Equal(t, int64(5), params["exclude_id"])
	assert.Equal(t, []string{"BAGS", "SHIRTS"}, params["categories"])
	assert.Equal(t, []string{"RED", "BLACK", "WHITE"}, params["colors"])
}

func TestGraphCatalog_QueryProducts_SkipsEmptyQuery(t *testing.T) {
	d := &MockDriver{}
	c := NewGraphCatalog(d)

	got, err := c.QueryProducts(context.Background(), Query{ExcludeID: 1, Colors: []string{"RED"}})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, d.QueriesExecuted)
}

func TestGraphCatalog_SaveProduct(t *testing.T) {
	d := &MockDriver{}
	c := NewGraphCatalog(d)

	require.NoError(t, c.SaveProduct(context.Background(), fixtureProducts()[0]))

	require.Len(t, d.QueriesExecuted, 2)
	assert.Equal(t, driver.SaveCategoryQuery, d.QueriesExecuted[0])
	assert.Equal(t, driver.SaveProductQuery, d.QueriesExecuted[1])
	assert.Equal(t, int64(1), d.QueryParams[1]["category_id"])
}
