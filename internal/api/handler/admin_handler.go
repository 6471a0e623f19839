package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/timmy/machines-eye/internal/api/middleware"
	"github.com/timmy/machines-eye/internal/logger"
	"github.com/timmy/machines-eye/internal/service"
)

// reloadTimeout bounds a reload triggered over HTTP.
const reloadTimeout = 2 * time.Minute

// AdminHandler handles admin operations.
type AdminHandler struct {
	registry *service.Registry

	// Reload state
	mu            sync.RWMutex
	isRunning     bool
	lastRunTime   time.Time
	lastRunStatus string
}

// ReloadResponse represents the reload API response.
type ReloadResponse struct {
	Message    string `json:"message"`
	Version    int64  `json:"version"`
	Works      int    `json:"works"`
	Sections   int    `json:"sections"`
	Unresolved int    `json:"unresolved_pairs"`
}

// ReloadStatusResponse represents the reload status.
type ReloadStatusResponse struct {
	IsRunning     bool   `json:"is_running"`
	Version       int64  `json:"version"`
	LoadedAt      string `json:"loaded_at"`
	LastRunTime   string `json:"last_run_time,omitempty"`
	LastRunStatus string `json:"last_run_status,omitempty"`
}

// NewAdminHandler creates a new admin handler.
// Parameters:
//   - registry: snapshot registry to reload.
// Returns:
//   - *AdminHandler: initialized handler.
func NewAdminHandler(registry *service.Registry) *AdminHandler {
	return &AdminHandler{registry: registry}
}

// Reload handles POST /api/v1/admin/reload.
// The new snapshot is published only when both documents load; readers keep
// the previous one otherwise.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *AdminHandler) Reload(c *gin.Context) {
	ctx := c.Request.Context()
	log := middleware.GetLogger(c)

	h.mu.Lock()
	if h.isRunning {
		h.mu.Unlock()
		logger.CtxWarn(ctx, "Reload request rejected: already running, client_ip=%s", c.ClientIP())
		c.JSON(http.StatusConflict, gin.H{"error": "Reload is already running"})
		return
	}
	h.isRunning = true
	h.mu.Unlock()

	log.Infof("Reload requested: client_ip=%s", c.ClientIP())

	// Detached from the request so a client disconnect does not abort a reload.
	reloadCtx, cancel := context.WithTimeout(logger.FromContext(ctx).WithContext(context.Background()), reloadTimeout)
	defer cancel()

	startTime := time.Now()
	snap, err := h.registry.Reload(reloadCtx)
	duration := time.Since(startTime)

	h.mu.Lock()
	h.isRunning = false
	h.lastRunTime = time.Now()
	if err != nil {
		h.lastRunStatus = "failed: " + err.Error()
	} else {
		h.lastRunStatus = "success"
	}
	h.mu.Unlock()

	if err != nil {
		logger.With(logger.Fields{
			logger.FieldDurationMs: duration.Milliseconds(),
		}).Error(ctx, "Reload failed: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReloadResponse{
		Message:    "Reload completed successfully",
		Version:    snap.Version,
		Works:      snap.Corpus.Len(),
		Sections:   len(snap.Exhibition.Sections()),
		Unresolved: len(snap.UnresolvedReferences()),
	})
}

// GetReloadStatus handles GET /api/v1/admin/reload/status.
func (h *AdminHandler) GetReloadStatus(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	snap := h.registry.Snapshot()
	resp := ReloadStatusResponse{
		IsRunning:     h.isRunning,
		Version:       snap.Version,
		LoadedAt:      snap.LoadedAt.Format(time.RFC3339),
		LastRunStatus: h.lastRunStatus,
	}
	if !h.lastRunTime.IsZero() {
		resp.LastRunTime = h.lastRunTime.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, resp)
}
