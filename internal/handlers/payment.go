package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"minimart_back_end/internal/gateway"
	"minimart_back_end/internal/models"
)

// Checkout submits the session cart. An empty cart blocks the flow with a
// warning before anything is built or sent.
func (h *Handler) Checkout(c *gin.Context) {
	ct := h.loadCart(c)
	if ct.IsEmpty() {
		redirectWithFlash(c, "Giỏ hàng trống!", "error")
		return
	}

	h.delegatePayment(c, ct.Snapshot())
}

// CreatePaymentLink is the original checkout contract: an optional items
// field, as a JSON body or a form field holding a JSON string. A malformed
// transfer is fatal for the request; an absent one falls back to the fixed
// demo order.
func (h *Handler) CreatePaymentLink(c *gin.Context) {
	items, err := itemsFromRequest(c)
	if err != nil {
		log.Println("❌ Bad checkout transfer:", err)
		h.renderPaymentError(c, err)
		return
	}
	if items == nil {
		items = gateway.FallbackItems()
	}

	h.delegatePayment(c, items)
}

// delegatePayment runs the single-pass order flow: normalize, describe,
// identify, delegate, redirect. No retries, nothing persisted.
func (h *Handler) delegatePayment(c *gin.Context, items []models.OrderItem) {
	order := gateway.BuildOrder(items)

	returnURL := fmt.Sprintf("%s/success?amount=%d&items=%d", h.BaseURL, order.Amount, len(order.Items))
	cancelURL := fmt.Sprintf("%s/cancel?amount=%d&items=%d", h.BaseURL, order.Amount, len(order.Items))

	log.Printf("💳 Creating payment link: order %d, %d VND, %q", order.OrderCode, order.Amount, order.Description)

	checkoutURL, err := h.Provider.CreatePaymentLink(c.Request.Context(), order, returnURL, cancelURL)
	if err != nil {
		log.Println("❌ PayOS error:", err)
		h.renderPaymentError(c, err)
		return
	}

	log.Println("✅ Payment link created:", checkoutURL)
	c.Redirect(http.StatusFound, checkoutURL)
}

// renderPaymentError terminates the request with the fatal-error page. The
// provider message goes through verbatim.
func (h *Handler) renderPaymentError(c *gin.Context, err error) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Message": err.Error(),
	})
}

// itemsFromRequest extracts the optional items transfer. A nil, nil return
// means the field was entirely absent.
func itemsFromRequest(c *gin.Context) ([]models.OrderItem, error) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		body, err := c.GetRawData()
		if err != nil {
			return nil, fmt.Errorf("reading body failed: %w", err)
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, nil
		}

		var req struct {
			Items json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("malformed request body: %w", err)
		}
		if len(req.Items) == 0 || string(req.Items) == "null" {
			return nil, nil
		}
		return gateway.DecodeItems(req.Items)
	}

	raw := c.PostForm("items")
	if raw == "" {
		return nil, nil
	}
	return gateway.DecodeItems([]byte(raw))
}
