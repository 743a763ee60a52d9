package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"minimart_back_end/internal/cart"
	"minimart_back_end/internal/middleware"
	"minimart_back_end/internal/payment"
	"minimart_back_end/internal/view"
)

// Handler bundles the dependencies of the HTTP surface. Handlers share no
// mutable state; each request loads its own cart, mutates it and saves it
// back.
type Handler struct {
	Carts    cart.Store
	Provider payment.Provider
	BaseURL  string
}

func (h *Handler) loadCart(c *gin.Context) *cart.Cart {
	ct, err := h.Carts.Get(c.Request.Context(), c.GetString(middleware.CartIDKey))
	if err != nil {
		log.Println("⚠️ Could not load cart:", err)
		return cart.New()
	}
	return ct
}

func (h *Handler) saveCart(c *gin.Context, ct *cart.Cart) {
	if err := h.Carts.Save(c.Request.Context(), c.GetString(middleware.CartIDKey), ct); err != nil {
		log.Println("⚠️ Could not save cart:", err)
	}
}

func (h *Handler) deleteCart(c *gin.Context) {
	if err := h.Carts.Delete(c.Request.Context(), c.GetString(middleware.CartIDKey)); err != nil {
		log.Println("⚠️ Could not delete cart:", err)
	}
}

// redirectWithFlash sends the browser back to the storefront with a
// transient notification carried in the query string.
func redirectWithFlash(c *gin.Context, message, kind string) {
	c.Redirect(http.StatusFound, "/?msg="+url.QueryEscape(message)+"&kind="+kind)
}

func flashFrom(c *gin.Context) *view.Flash {
	msg := c.Query("msg")
	if msg == "" {
		return nil
	}
	kind := c.Query("kind")
	if kind != "error" {
		kind = "success"
	}
	return &view.Flash{Message: msg, Kind: kind}
}
