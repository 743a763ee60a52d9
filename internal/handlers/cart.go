package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"minimart_back_end/internal/catalog"
	"minimart_back_end/internal/view"
)

// ShowStorefront renders the whole page from catalog and cart state. Every
// cart mutation redirects back here, so each mutation is a full re-render.
func (h *Handler) ShowStorefront(c *gin.Context) {
	ct := h.loadCart(c)
	vm := view.BuildStorefront(catalog.All(), ct, flashFrom(c))
	c.HTML(http.StatusOK, "storefront.html", vm)
}

// GetCart returns the session cart as JSON.
func (h *Handler) GetCart(c *gin.Context) {
	ct := h.loadCart(c)
	c.JSON(http.StatusOK, gin.H{"items": ct.Items})
}

// AddToCart adds one unit of the posted product. Unknown products are a
// silent no-op.
func (h *Handler) AddToCart(c *gin.Context) {
	id, err := strconv.Atoi(c.PostForm("product_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	product, ok := catalog.FindByID(id)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	ct := h.loadCart(c)
	ct.Add(product)
	h.saveCart(c, ct)

	redirectWithFlash(c, "Đã thêm "+product.Name, "success")
}

// RemoveFromCart deletes the posted product's line.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.PostForm("product_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	ct := h.loadCart(c)
	ct.Remove(id)
	h.saveCart(c, ct)

	c.Redirect(http.StatusFound, "/")
}

// AdjustQuantity applies a signed delta to the posted product's line.
func (h *Handler) AdjustQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.PostForm("product_id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	delta, err := strconv.Atoi(c.PostForm("delta"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	ct := h.loadCart(c)
	ct.AdjustQuantity(id, delta)
	h.saveCart(c, ct)

	c.Redirect(http.StatusFound, "/")
}

// ClearCart empties the cart by dropping its key outright, so no empty blob
// lingers in the store. The confirmation guard is on the form itself;
// clearing an already-empty cart is a no-op without a notification.
func (h *Handler) ClearCart(c *gin.Context) {
	ct := h.loadCart(c)
	if ct.IsEmpty() {
		c.Redirect(http.StatusFound, "/")
		return
	}

	h.deleteCart(c)

	redirectWithFlash(c, "Đã xóa giỏ hàng", "success")
}
