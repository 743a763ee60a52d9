package cart

import "minimart_back_end/internal/models"

// Cart is the per-session aggregate. Lines keep their first-added order and
// there is at most one line per product. Mutations have no rendering or
// storage side effects so the aggregate can be tested in isolation.
type Cart struct {
	Items []models.CartItem `json:"items"`
}

func New() *Cart {
	return &Cart{Items: []models.CartItem{}}
}

// Add puts one unit of product in the cart, merging into the existing line
// when the product is already there.
func (c *Cart) Add(p models.Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Emoji:     p.Emoji,
		Quantity:  1,
	})
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op.
func (c *Cart) Remove(productID int) {
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// AdjustQuantity adds delta to the line's quantity. A result of zero or less
// removes the line entirely; an absent product is a no-op.
func (c *Cart) AdjustQuantity(productID, delta int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += delta
			if c.Items[i].Quantity <= 0 {
				c.Remove(productID)
			}
			return
		}
	}
}

// Clear empties the cart. The destructive-action confirmation lives in the
// storefront, not here.
func (c *Cart) Clear() {
	c.Items = []models.CartItem{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems recomputes the quantity sum from the full line set on every
// call. Carts are small, so no caching.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalAmount recomputes Σ quantity×price over all lines.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// Snapshot returns the transfer form of the cart for checkout. Product id
// and category do not cross the boundary.
func (c *Cart) Snapshot() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, models.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return items
}
