package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/agenthands/wardrobe/internal/core/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type CategoryRecord struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
}

func (CategoryRecord) TableName() string { return "categories" }

type ProductRecord struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	Description string
	Price       float64
	Color       string `gorm:"index;not null"`
	ImageURL    string
	Size        string
	CategoryID  int64          `gorm:"index;not null"`
	Category    CategoryRecord `gorm:"foreignKey:CategoryID"`
}

func (ProductRecord) TableName() string { return "products" }

func (r ProductRecord) toModel() model.Product {
	return model.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Color:       r.Color,
		ImageURL:    r.ImageURL,
		Size:        r.Size,
		Category: model.Category{
			ID:          r.Category.ID,
			Name:        r.Category.Name,
			Description: r.Category.Description,
		},
	}
}

// OpenDB opens a gorm connection for driver "sqlite" or "postgres".
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql catalog driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s catalog: %w", driver, err)
	}
	return db, nil
}

// GormCatalog reads products from a relational store.
type GormCatalog struct {
	DB *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{DB: db}
}

func (c *GormCatalog) Migrate(ctx context.Context) error {
	return c.DB.WithContext(ctx).AutoMigrate(&CategoryRecord{}, &ProductRecord{})
}

func (c *GormCatalog) GetProductByID(ctx context.Context, id int64) (model.Product, error) {
	var rec ProductRecord
	err := c.DB.WithContext(ctx).Preload("Category").First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, fmt.Errorf("product %d: %w", id, model.ErrProductNotFound)
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	return rec.toModel(), nil
}

func (c *GormCatalog) QueryProducts(ctx context.Context, q Query) ([]model.Product, error) {
	q = q.Normalized()
	if len(q.Categories) == 0 || len(q.Colors) == 0 {
		return nil, nil
	}

	var recs []ProductRecord
	err := c.DB.WithContext(ctx).
		Preload("Category").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.id <> ?", q.ExcludeID).
		Where("UPPER(TRIM(categories.name)) IN ?", q.Categories).
		Where("UPPER(TRIM(products.color)) IN ?", q.Colors).
		Order("products.id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	out := make([]model.Product, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toModel())
	}
	return out, nil
}

// SaveProduct upserts p and its category. A category without an ID is
// matched by name, so products can share it.
func (c *GormCatalog) SaveProduct(ctx context.Context, p model.Product) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cat, err := saveCategory(tx, p.Category)
		if err != nil {
			return fmt.Errorf("failed to save category %q: %w", p.Category.Name, err)
		}
		rec := ProductRecord{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Color:       p.Color,
			ImageURL:    p.ImageURL,
			Size:        p.Size,
			CategoryID:  cat.ID,
		}
		if err := tx.Omit("Category").Save(&rec).Error; err != nil {
			return fmt.Errorf("failed to save product %d: %w", p.ID, err)
		}
		return nil
	})
}

func saveCategory(tx *gorm.DB, c model.Category) (CategoryRecord, error) {
	cat := CategoryRecord{ID: c.ID, Name: c.Name, Description: c.Description}
	if c.ID != 0 {
		return cat, tx.Save(&cat).Error
	}
	err := tx.Where(CategoryRecord{Name: c.Name}).
		Assign(CategoryRecord{Description: c.Description}).
		FirstOrCreate(&cat).Error
	return cat, err
}
