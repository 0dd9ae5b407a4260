package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTrendingResources handles GET /api/v1/trending-resources.
func (h *Handler) GetTrendingResources(c *gin.Context) {
	trends, err := h.predictor.TrendingResources(c.Request.Context())
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}
