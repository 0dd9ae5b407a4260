package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth handles GET /api/v1/health.
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"app_name":    h.app.Name,
		"version":     h.app.Version,
		"environment": h.app.Environment,
	})
}
