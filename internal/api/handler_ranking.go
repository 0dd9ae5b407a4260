package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetOccupancyRanking handles GET /api/v1/occupancy-ranking.
func (h *Handler) GetOccupancyRanking(c *gin.Context) {
	ranking, err := h.predictor.PredictWeeklyRanking(c.Request.Context())
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}
