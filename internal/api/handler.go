package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservation-prediction-backend/config"
	"reservation-prediction-backend/internal/predict"
	"reservation-prediction-backend/internal/store"
)

// Collector triggers one ingestion cycle on demand.
type Collector interface {
	CollectOnce(ctx context.Context) (int, error)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	predictor *predict.Service
	collector Collector
	app       config.AppConfig
}

// NewHandler creates a new API handler.
func NewHandler(predictor *predict.Service, collector Collector, app config.AppConfig) *Handler {
	return &Handler{
		predictor: predictor,
		collector: collector,
		app:       app,
	}
}

// abortForError maps engine errors onto transport-level responses.
func abortForError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, predict.ErrInvalidDate):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, predict.ErrNoData):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "No historical data found."})
	case errors.Is(err, store.ErrUnavailable):
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database connection error."})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
	}
}
