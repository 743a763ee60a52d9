package models

// OrderItem is the transfer form of one cart line. Product id and category
// are dropped before the snapshot leaves the cart.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// OrderRequest is the normalized order handed to the payment provider,
// immutable once built and sent exactly once per checkout attempt.
type OrderRequest struct {
	OrderCode   int64       `json:"order_code"`
	Amount      int64       `json:"amount"`
	Description string      `json:"description"`
	Items       []OrderItem `json:"items"`
}
