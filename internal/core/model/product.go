package model

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Color       string   `json:"color"`
	ImageURL    string   `json:"image_url,omitempty"`
	Size        string   `json:"size,omitempty"`
	Category    Category `json:"category"`
}

// ProductSummary is the shape of a recommended product on the wire.
type ProductSummary struct {
	ProductID    int64   `json:"productId"`
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl"`
	CategoryName string  `json:"categoryName"`
}

func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ProductID:    p.ID,
		Name:         p.Name,
		Color:        p.Color,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		CategoryName: p.Category.Name,
	}
}

func Summaries(products []Product) []ProductSummary {
	out := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		out = append(out, p.Summary())
	}
	return out
}
