package catalog

import "github.com/agenthands/wardrobe/internal/core/model"

// SampleProducts is a small demo assortment for the "memory" driver.
func SampleProducts() []model.Product {
	var (
		bags     = model.Category{ID: 1, Name: "BAGS", Description: "Totes, clutches and shoulder bags"}
		blazers  = model.Category{ID: 2, Name: "BLAZERS", Description: "Tailored and relaxed blazers"}
		shoes    = model.Category{ID: 3, Name: "SHOES", Description: "Heels, flats and sneakers"}
		shirts   = model.Category{ID: 4, Name: "SHIRTS", Description: "Shirts and blouses"}
		trousers = model.Category{ID: 5, Name: "TROUSERS", Description: "Tailored and wide-leg trousers"}
		dresses  = model.Category{ID: 6, Name: "DRESSES/JUMPSUITS", Description: "Dresses and jumpsuits"}
		jeans    = model.Category{ID: 7, Name: "JEANS", Description: "Denim"}
	)

	return []model.Product{
		{ID: 1, Name: "Leather Tote", Color: "BLACK", Price: 89, Size: "ONE SIZE", ImageURL: "/images/leather-tote.jpg", Category: bags},
		{ID: 2, Name: "Chain Clutch", Color: "GOLD", Price: 59, Size: "ONE SIZE", ImageURL: "/images/chain-clutch.jpg", Category: bags},
		{ID: 3, Name: "Double-Breasted Blazer", Color: "NAVY", Price: 149, Size: "M", ImageURL: "/images/db-blazer.jpg", Category: blazers},
		{ID: 4, Name: "Linen Blazer", Color: "BEIGE", Price: 129, Size: "S", ImageURL: "/images/linen-blazer.jpg", Category: blazers},
		{ID: 5, Name: "Tailored Blazer", Color: "RED", Price: 139, Size: "M", ImageURL: "/images/tailored-blazer.jpg", Category: blazers},
		{ID: 6, Name: "Pointed Pumps", Color: "BLACK", Price: 99, Size: "38", ImageURL: "/images/pumps.jpg", Category: shoes},
		{ID: 7, Name: "Leather Loafers", Color: "BROWN", Price: 119, Size: "39", ImageURL: "/images/loafers.jpg", Category: shoes},
		{ID: 8, Name: "Poplin Shirt", Color: "WHITE", Price: 49, Size: "M", ImageURL: "/images/poplin-shirt.jpg", Category: shirts},
		{ID: 9, Name: "Satin Blouse", Color: "RED", Price: 69, Size: "S", ImageURL: "/images/satin-blouse.jpg", Category: shirts},
		{ID: 10, Name: "Wide-Leg Trousers", Color: "GRAY", Price: 79, Size: "M", ImageURL: "/images/wide-leg.jpg", Category: trousers},
		{ID: 11, Name: "Pleated Trousers", Color: "BLACK", Price: 89, Size: "L", ImageURL: "/images/pleated.jpg", Category: trousers},
		{ID: 12, Name: "Wrap Dress", Color: "GREEN", Price: 109, Size: "M", ImageURL: "/images/wrap-dress.jpg", Category: dresses},
		{ID: 13, Name: "Straight Jeans", Color: "BLUE", Price: 69, Size: "30", ImageURL: "/images/straight-jeans.jpg", Category: jeans},
		{ID: 14, Name: "Black Skinny Jeans", Color: "BLACK", Price: 65, Size: "28", ImageURL: "/images/skinny-jeans.jpg", Category: jeans},
	}
}
