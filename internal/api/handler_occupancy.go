package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type occupancyRequest struct {
	Room          string `json:"room" binding:"required"`
	DateHourStart string `json:"date_hour_start" binding:"required"`
	DateHourEnd   string `json:"date_hour_end" binding:"required"`
}

// PredictOccupancy handles POST /api/v1/occupancy.
func (h *Handler) PredictOccupancy(c *gin.Context) {
	var req occupancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Fields are missing in the request body."})
		return
	}

	forecast, err := h.predictor.PredictOccupancy(c.Request.Context(), req.Room, req.DateHourStart, req.DateHourEnd)
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}
