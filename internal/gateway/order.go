package gateway

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"minimart_back_end/internal/models"
)

const (
	// MinAmount is the smallest amount PayOS will transact (VND). Totals
	// below it are clamped up, not rejected.
	MinAmount int64 = 2000

	// maxDescriptionLen caps the payment description. Past it the joined
	// item list is replaced with a generic summary so a product name is
	// never cut in half.
	maxDescriptionLen = 25

	// Order codes are uniform 10-digit random numbers. The window is wide
	// enough that collisions inside the provider's deduplication window are
	// negligible.
	orderCodeMin  int64 = 1_000_000_000
	orderCodeSpan int64 = 9_000_000_000
)

// BuildOrder normalizes a line set into the order handed to the provider:
// recomputed total with the minimum-amount clamp, a capped description and a
// fresh order code.
func BuildOrder(items []models.OrderItem) models.OrderRequest {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	if total < MinAmount {
		total = MinAmount
	}

	return models.OrderRequest{
		OrderCode:   NewOrderCode(),
		Amount:      total,
		Description: Describe(items),
		Items:       items,
	}
}

// Describe joins "<name> x<quantity>" per line. When the joined form is
// longer than the provider allows it falls back to a generic item count.
func Describe(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}
	joined := strings.Join(parts, ", ")
	if utf8.RuneCountInString(joined) > maxDescriptionLen {
		return fmt.Sprintf("Thanh toan %d san pham", len(items))
	}
	return joined
}

// NewOrderCode returns a random order code. The original scheme truncated a
// timestamp, which collides for orders created in the same millisecond
// window; a random draw over ten digits does not.
func NewOrderCode() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(orderCodeSpan))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; degrade to the clock rather than refuse the order.
		return orderCodeMin + time.Now().UnixNano()%orderCodeSpan
	}
	return orderCodeMin + n.Int64()
}

// DecodeItems accepts the checkout transfer in either wire shape: a JSON
// array, or a JSON string that itself holds the encoded array (the storefront
// form posts the latter).
func DecodeItems(data []byte) ([]models.OrderItem, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		data = []byte(s)
	}

	var items []models.OrderItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("malformed items payload: %w", err)
	}
	return items, nil
}

// FallbackItems is the backward-compatibility order used when a checkout
// request carries no items at all.
func FallbackItems() []models.OrderItem {
	return []models.OrderItem{{Name: "Sản phẩm demo", Quantity: 1, Price: 2000}}
}
