package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/timmy/machines-eye/internal/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	registry *service.Registry
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(registry *service.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Health returns the health status of the service along with the
// snapshot currently being served.
func (h *HealthHandler) Health(c *gin.Context) {
	snap := h.registry.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   snap.Version,
		"works":     snap.Corpus.Len(),
		"loaded_at": snap.LoadedAt.Format(time.RFC3339),
	})
}
