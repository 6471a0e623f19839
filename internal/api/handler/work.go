package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/timmy/machines-eye/internal/domain"
	"github.com/timmy/machines-eye/internal/service"
)

const (
	defaultWorkLimit = 50
	maxWorkLimit     = 500
)

// WorkHandler serves individual works, their lens views and comparisons.
type WorkHandler struct {
	registry *service.Registry
}

// WorkListItem is one row of the works listing.
type WorkListItem struct {
	ObjectID        int     `json:"object_id"`
	Title           string  `json:"title"`
	Photographer    string  `json:"photographer"`
	StudyGroup      string  `json:"study_group"`
	HasHumanSubject bool    `json:"has_human_subject"`
	Humanization    float64 `json:"humanization"`
	Othering        float64 `json:"othering"`
}

// WorkListResponse is a page of works.
type WorkListResponse struct {
	Works  []WorkListItem `json:"works"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// NewWorkHandler creates a new work handler.
// Parameters:
//   - registry: snapshot registry.
// Returns:
//   - *WorkHandler: initialized handler.
func NewWorkHandler(registry *service.Registry) *WorkHandler {
	return &WorkHandler{registry: registry}
}

// ListWorks handles GET /api/v1/works.
// Supports study_group filtering and limit/offset paging in load order.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *WorkHandler) ListWorks(c *gin.Context) {
	group := c.Query("study_group")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultWorkLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = defaultWorkLimit
	}
	if limit > maxWorkLimit {
		limit = maxWorkLimit
	}
	if offset < 0 {
		offset = 0
	}

	var matched []domain.ArtworkRecord
	for _, w := range h.registry.Snapshot().Corpus.GetAllWorks() {
		if group != "" && w.StudyGroup != group {
			continue
		}
		matched = append(matched, w)
	}

	items := make([]WorkListItem, 0, limit)
	for i := offset; i < len(matched) && len(items) < limit; i++ {
		w := matched[i]
		items = append(items, WorkListItem{
			ObjectID:        w.ObjectID,
			Title:           w.Title,
			Photographer:    w.Photographer,
			StudyGroup:      w.StudyGroup,
			HasHumanSubject: w.HasHumanSubject,
			Humanization:    w.Scores.Humanization,
			Othering:        w.Scores.Othering,
		})
	}

	c.JSON(http.StatusOK, WorkListResponse{
		Works:  items,
		Total:  len(matched),
		Limit:  limit,
		Offset: offset,
	})
}

// GetWork handles GET /api/v1/works/:id and returns the raw annotation.
func (h *WorkHandler) GetWork(c *gin.Context) {
	id, ok := objectIDParam(c, c.Param("id"), "object id")
	if !ok {
		return
	}

	record, found := h.registry.Snapshot().Corpus.GetByObjectID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Work not found",
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetLens handles GET /api/v1/works/:id/lens.
func (h *WorkHandler) GetLens(c *gin.Context) {
	id, ok := objectIDParam(c, c.Param("id"), "object id")
	if !ok {
		return
	}

	view, found := h.registry.Snapshot().Lens.GetLensData(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Work not found",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Compare handles GET /api/v1/compare?left=&right=.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *WorkHandler) Compare(c *gin.Context) {
	leftID, ok := objectIDParam(c, c.Query("left"), "left")
	if !ok {
		return
	}
	rightID, ok := objectIDParam(c, c.Query("right"), "right")
	if !ok {
		return
	}

	summary, found := h.registry.Snapshot().Comparison.GetComparisonSummary(leftID, rightID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "One or both works not found",
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}
