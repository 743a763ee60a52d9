package payment

import (
	"context"
	"fmt"
	"os"

	"github.com/payOSHQ/payos-lib-golang"

	"minimart_back_end/internal/models"
)

// Provider is the hosted-checkout boundary: one capability, turning an order
// into a checkout URL the browser can be redirected to. Provider faults come
// back as plain errors and are surfaced to the user verbatim.
type Provider interface {
	CreatePaymentLink(ctx context.Context, order models.OrderRequest, returnURL, cancelURL string) (string, error)
}

// PayOS delegates to the official PayOS SDK, which owns the checksum and
// wire-format details.
type PayOS struct{}

// Init wires the PayOS SDK from the environment. All three keys are required
// for payment links to be created.
func Init() error {
	clientID := os.Getenv("PAYOS_CLIENT_ID")
	apiKey := os.Getenv("PAYOS_API_KEY")
	checksumKey := os.Getenv("PAYOS_CHECKSUM_KEY")

	if clientID == "" || apiKey == "" || checksumKey == "" {
		return fmt.Errorf("PAYOS_CLIENT_ID, PAYOS_API_KEY and PAYOS_CHECKSUM_KEY must be set")
	}
	return payos.Key(clientID, apiKey, checksumKey)
}

func (PayOS) CreatePaymentLink(_ context.Context, order models.OrderRequest, returnURL, cancelURL string) (string, error) {
	items := make([]payos.Item, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, payos.Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    int(item.Price),
		})
	}

	data, err := payos.CreatePaymentLink(payos.CheckoutRequestType{
		OrderCode:   order.OrderCode,
		Amount:      int(order.Amount),
		Description: order.Description,
		Items:       items,
		ReturnUrl:   returnURL,
		CancelUrl:   cancelURL,
	})
	if err != nil {
		return "", err
	}
	return data.CheckoutUrl, nil
}
