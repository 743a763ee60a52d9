package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"minimart_back_end/internal/view"
)

// SuccessPage and CancelPage are the post-payment confirmation pages. The
// callback URLs carry amount and item count as query parameters purely for
// display.

func (h *Handler) SuccessPage(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", callbackData(c))
}

func (h *Handler) CancelPage(c *gin.Context) {
	c.HTML(http.StatusOK, "cancel.html", callbackData(c))
}

func callbackData(c *gin.Context) gin.H {
	amount, _ := strconv.ParseInt(c.Query("amount"), 10, 64)
	items, _ := strconv.Atoi(c.Query("items"))
	return gin.H{
		"Amount":    view.FormatPrice(amount),
		"ItemCount": items,
	}
}
