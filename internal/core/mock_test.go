package core

import (
	"context"

	"github.com/agenthands/wardrobe/internal/catalog"
	"github.com/agenthands/wardrobe/internal/core/model"
)

type PanickingCatalog struct{}

func (PanickingCatalog) GetProductByID(ctx context.Context, id int64) (model.Product, error) {
	panic("corrupt row")
}

func (PanickingCatalog) QueryProducts(ctx context.Context, q catalog.Query) ([]model.Product, error) {
	panic("corrupt row")
}
