package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"minimart_back_end/internal/cart"
	"minimart_back_end/internal/models"
)

// The storefront is a pure projection of catalog and cart state, rebuilt in
// full after every mutation. Templates only read from these types.

type ProductCard struct {
	ID       int
	Name     string
	Emoji    string
	Category string
	Price    string
}

type CartLine struct {
	ProductID int
	Name      string
	Emoji     string
	Quantity  int
	UnitPrice string
	LineTotal string
}

// CartPanel renders either the empty state or the line list, never both.
// BadgeVisible hides the badge outright at zero instead of showing "0".
type CartPanel struct {
	Empty        bool
	BadgeVisible bool
	Badge        int
	Lines        []CartLine
	Subtotal     string
	Total        string
}

type Flash struct {
	Message string
	Kind    string // "success" or "error"
}

type Storefront struct {
	Products []ProductCard
	Cart     CartPanel
	Flash    *Flash
}

var printer = message.NewPrinter(language.Vietnamese)

// FormatPrice renders an amount the way the storefront shows money: vi-VN
// digit grouping with the đồng sign appended.
func FormatPrice(amount int64) string {
	return printer.Sprintf("%d", amount) + "₫"
}

// BuildStorefront projects the catalog and a cart into the display model.
func BuildStorefront(products []models.Product, c *cart.Cart, flash *Flash) Storefront {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Emoji:    p.Emoji,
			Category: p.Category,
			Price:    FormatPrice(p.Price),
		})
	}

	return Storefront{
		Products: cards,
		Cart:     buildCartPanel(c),
		Flash:    flash,
	}
}

func buildCartPanel(c *cart.Cart) CartPanel {
	totalItems := c.TotalItems()
	totalAmount := c.TotalAmount()

	lines := make([]CartLine, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, CartLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Emoji:     item.Emoji,
			Quantity:  item.Quantity,
			UnitPrice: FormatPrice(item.Price),
			LineTotal: FormatPrice(item.Price * int64(item.Quantity)),
		})
	}

	return CartPanel{
		Empty:        c.IsEmpty(),
		BadgeVisible: totalItems > 0,
		Badge:        totalItems,
		Lines:        lines,
		Subtotal:     FormatPrice(totalAmount),
		Total:        FormatPrice(totalAmount),
	}
}
