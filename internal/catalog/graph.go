package catalog

import (
	"context"
	"fmt"

	"github.com/agenthands/wardrobe/internal/core/model"
	"github.com/agenthands/wardrobe/internal/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphCatalog reads (:Product)-[:IN_CATEGORY]->(:Category) from Memgraph
// or Neo4j.
type GraphCatalog struct {
	Driver driver.GraphDriver
}

func NewGraphCatalog(d driver.GraphDriver) *GraphCatalog {
	return &GraphCatalog{Driver: d}
}

func (c *GraphCatalog) GetProductByID(ctx context.Context, id int64) (model.Product, error) {
	res, err := c.Driver.ExecuteQuery(ctx, driver.GetProductByIDQuery, map[string]interface{}{"id": id})
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	if len(res.Records) == 0 {
		return model.Product{}, fmt.Errorf("product %d: %w", id, model.ErrProductNotFound)
	}
	return productFromRecord(res.Records[0]), nil
}

func (c *GraphCatalog) QueryProducts(ctx context.Context, q Query) ([]model.Product, error) {
	q = q.Normalized()
	if len(q.Categories) == 0 || len(q.Colors) == 0 {
		return nil, nil
	}

	params := map[string]interface{}{
		"exclude_id": q.ExcludeID,
		"categories": q.Categories,
		"colors":     q.Colors,
	}
	res, err := c.Driver.ExecuteQuery(ctx, driver.QueryProductsQuery, params)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	out := make([]model.Product, 0, len(res.Records))
	for _, rec := range res.Records {
		out = append(out, productFromRecord(rec))
	}
	return out, nil
}

// SaveProduct upserts p and its category node.
func (c *GraphCatalog) SaveProduct(ctx context.Context, p model.Product) error {
	_, err := c.Driver.ExecuteQuery(ctx, driver.SaveCategoryQuery, map[string]interface{}{
		"id":          p.Category.ID,
		"name":        p.Category.Name,
		"description": p.Category.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to save category %q: %w", p.Category.Name, err)
	}

	_, err = c.Driver.ExecuteQuery(ctx, driver.SaveProductQuery, map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"color":       p.Color,
		"image_url":   p.ImageURL,
		"size":        p.Size,
		"category_id": p.Category.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to save product %d: %w", p.ID, err)
	}
	return nil
}

func productFromRecord(rec *neo4j.Record) model.Product {
	return model.Product{
		ID:          int64Value(rec, "id"),
		Name:        stringValue(rec, "name"),
		Description: stringValue(rec, "description"),
		Price:       floatValue(rec, "price"),
		Color:       stringValue(rec, "color"),
		ImageURL:    stringValue(rec, "image_url"),
		Size:        stringValue(rec, "size"),
		Category: model.Category{
			ID:          int64Value(rec, "category_id"),
			Name:        stringValue(rec, "category_name"),
			Description: stringValue(rec, "category_description"),
		},
	}
}

func stringValue(rec *neo4j.Record, key string) string {
	v, _ := rec.Get(key)
	s, _ := v.(string)
	return s
}

func int64Value(rec *neo4j.Record, key string) int64 {
	v, _ := rec.Get(key)
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func floatValue(rec *neo4j.Record, key string) float64 {
	v, _ := rec.Get(key)
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}
