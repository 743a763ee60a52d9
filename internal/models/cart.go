package models

// CartItem is one line of a session cart. There is at most one line per
// product; a line whose quantity reaches zero is removed, never stored.
type CartItem struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Emoji     string `json:"emoji"`
	Quantity  int    `json:"quantity"`
}
