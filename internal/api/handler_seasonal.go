package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSeasonalPatterns handles GET /api/v1/seasonal-patterns.
func (h *Handler) GetSeasonalPatterns(c *gin.Context) {
	patterns, err := h.predictor.SeasonalPatterns(c.Request.Context())
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusOK, patterns)
}
