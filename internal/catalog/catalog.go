package catalog

import "minimart_back_end/internal/models"

// products is the single source of truth for the storefront and the listing
// API. Loaded once, never mutated after init.
var products = []models.Product{
	{ID: 1, Name: "Mì tôm Hảo Hảo ly", Price: 5000, Emoji: "🍜", Category: "Mì"},
	{ID: 2, Name: "Phở bò ăn liền", Price: 8000, Emoji: "🍲", Category: "Mì"},
	{ID: 3, Name: "Coca Cola lon", Price: 10000, Emoji: "🥤", Category: "Nước"},
	{ID: 4, Name: "Pepsi lon", Price: 10000, Emoji: "🥤", Category: "Nước"},
	{ID: 5, Name: "Nước suối Aquafina", Price: 5000, Emoji: "💧", Category: "Nước"},
	{ID: 6, Name: "Bánh mì sandwich", Price: 15000, Emoji: "🥪", Category: "Bánh"},
	{ID: 7, Name: "Bánh bao nhân thịt", Price: 12000, Emoji: "🥟", Category: "Bánh"},
	{ID: 8, Name: "Snack khoai tây", Price: 8000, Emoji: "🍟", Category: "Snack"},
	{ID: 9, Name: "Kẹo dẻo Haribo", Price: 15000, Emoji: "🍬", Category: "Snack"},
	{ID: 10, Name: "Trà sữa trân châu", Price: 25000, Emoji: "🧋", Category: "Nước"},
	{ID: 11, Name: "Cà phê sữa đá", Price: 20000, Emoji: "☕", Category: "Nước"},
	{ID: 12, Name: "Xúc xích nướng", Price: 10000, Emoji: "🌭", Category: "Đồ ăn"},
}

// All returns the full catalog. Callers must treat the slice as read-only.
func All() []models.Product {
	return products
}

// FindByID looks a product up by its stable id.
func FindByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
