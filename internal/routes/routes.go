package routes

import (
	"github.com/gin-gonic/gin"

	"minimart_back_end/internal/handlers"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	// Storefront
	r.GET("/", h.ShowStorefront)
	r.GET("/success", h.SuccessPage)
	r.GET("/cancel", h.CancelPage)

	// Cart mutations (each redirects back to the storefront)
	r.POST("/cart/add", h.AddToCart)
	r.POST("/cart/remove", h.RemoveFromCart)
	r.POST("/cart/adjust", h.AdjustQuantity)
	r.POST("/cart/clear", h.ClearCart)

	// Checkout
	r.POST("/checkout", h.Checkout)
	r.POST("/create-payment-link", h.CreatePaymentLink)

	// JSON API
	r.GET("/api/products", h.GetProducts)
	r.GET("/api/cart", h.GetCart)
}
