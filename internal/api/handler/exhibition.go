package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/machines-eye/internal/domain"
	"github.com/timmy/machines-eye/internal/service"
	"github.com/timmy/machines-eye/internal/storage"
)

// ExhibitionHandler serves the curated structure: landing page, sections
// and pairs.
type ExhibitionHandler struct {
	registry *service.Registry
	present  presenter
}

// ExhibitionResponse is the landing payload.
type ExhibitionResponse struct {
	Title       string                   `json:"title"`
	Subtitle    string                   `json:"subtitle"`
	Mantlepiece MantlepieceResponse      `json:"mantlepiece"`
	Sections    []SectionSummaryResponse `json:"sections"`
	Stats       domain.CorpusStats       `json:"stats"`
	Version     int64                    `json:"version"`
}

// NewExhibitionHandler creates a new exhibition handler.
// Parameters:
//   - registry: snapshot registry.
//   - images: storage used to resolve image URLs; may be nil.
// Returns:
//   - *ExhibitionHandler: initialized handler.
func NewExhibitionHandler(registry *service.Registry, images storage.ObjectStorage) *ExhibitionHandler {
	return &ExhibitionHandler{
		registry: registry,
		present:  presenter{images: images},
	}
}

// GetExhibition handles GET /api/v1/exhibition.
func (h *ExhibitionHandler) GetExhibition(c *gin.Context) {
	snap := h.registry.Snapshot()

	c.JSON(http.StatusOK, ExhibitionResponse{
		Title:       snap.Exhibition.Title(),
		Subtitle:    snap.Exhibition.Subtitle(),
		Mantlepiece: h.present.mantlepiece(snap.Exhibition.Mantlepiece()),
		Sections:    sectionSummaries(snap.Exhibition.Sections()),
		Stats:       snap.Corpus.Stats(),
		Version:     snap.Version,
	})
}

// ListSections handles GET /api/v1/sections.
func (h *ExhibitionHandler) ListSections(c *gin.Context) {
	snap := h.registry.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"sections": sectionSummaries(snap.Exhibition.Sections()),
	})
}

// GetSection handles GET /api/v1/sections/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ExhibitionHandler) GetSection(c *gin.Context) {
	section, ok := h.registry.Snapshot().Exhibition.GetSection(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Section not found",
		})
		return
	}

	c.JSON(http.StatusOK, h.present.section(section))
}

// GetPair handles GET /api/v1/sections/:id/pairs/:pairId.
// Sides missing from the corpus are reported in "missing" rather than
// failing the request.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ExhibitionHandler) GetPair(c *gin.Context) {
	report, ok := h.registry.Snapshot().PairReport(c.Param("id"), c.Param("pairId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Pair not found",
		})
		return
	}

	c.JSON(http.StatusOK, h.present.pairReport(report))
}

// GetStats handles GET /api/v1/stats.
func (h *ExhibitionHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Snapshot().Corpus.Stats())
}
