package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/agenthands/wardrobe/internal/core/model"
)

// MemoryCatalog keeps products in a map. It backs tests and the "memory"
// catalog driver.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[int64]model.Product
}

func NewMemoryCatalog(products ...model.Product) *MemoryCatalog {
	c := &MemoryCatalog{products: make(map[int64]model.Product, len(products))}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

// Put inserts or replaces p.
func (c *MemoryCatalog) Put(p model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.ID] = p
}

func (c *MemoryCatalog) GetProductByID(ctx context.Context, id int64) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("product %d: %w", id, model.ErrProductNotFound)
	}
	return p, nil
}

func (c *MemoryCatalog) QueryProducts(ctx context.Context, q Query) ([]model.Product, error) {
	q = q.Normalized()

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []model.Product
	for _, p := range c.products {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
