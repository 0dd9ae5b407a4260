package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"reservation-prediction-backend/config"
	"reservation-prediction-backend/internal/mw"
	"reservation-prediction-backend/internal/predict"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, predictor *predict.Service, collector Collector) *gin.Engine {
	r := gin.Default()
	r.Use(mw.RequestID())

	handler := NewHandler(predictor, collector, cfg.App)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api/v1")
	api.Use(rateLimiter)

	// Health stays reachable without a token.
	api.GET("/health", handler.GetHealth)

	protected := api.Group("")
	if cfg.Auth.Enabled {
		protected.Use(mw.Auth(&cfg.Auth))
	}
	{
		protected.POST("/occupancy", handler.PredictOccupancy)
		protected.GET("/occupancy-ranking", caching, handler.GetOccupancyRanking)
		protected.GET("/seasonal-patterns", caching, handler.GetSeasonalPatterns)
		protected.GET("/trending-resources", caching, handler.GetTrendingResources)
		protected.POST("/sync", handler.TriggerSync)
	}

	return r
}
