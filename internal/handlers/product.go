package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minimart_back_end/internal/catalog"
)

// GetProducts returns the full catalog. No input, no side effects.
func (h *Handler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": catalog.All(),
	})
}
