package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TriggerSync handles POST /api/v1/sync: it runs one collection cycle against
// the upstream reservations service.
func (h *Handler) TriggerSync(c *gin.Context) {
	imported, err := h.collector.CollectOnce(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to collect reservations from upstream."})
		return
	}
	if imported == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "records_imported": imported})
}
