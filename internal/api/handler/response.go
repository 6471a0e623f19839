package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/timmy/machines-eye/internal/domain"
	"github.com/timmy/machines-eye/internal/service"
	"github.com/timmy/machines-eye/internal/storage"
)

// SummaryResponse is an artwork summary with its image resolved to a URL.
type SummaryResponse struct {
	domain.ArtworkSummary
	ImageURL string `json:"image_url"`
}

// MantlepieceResponse is the landing pairing.
type MantlepieceResponse struct {
	Asian              SummaryResponse `json:"asian"`
	Western            SummaryResponse `json:"western"`
	CuratorialNote     string          `json:"curatorial_note,omitempty"`
	CuratorialNoteHTML string          `json:"curatorial_note_html,omitempty"`
	Gap                float64         `json:"gap"`
}

// PairResponse is a curated pair as presented on a section page.
type PairResponse struct {
	ID           string           `json:"id"`
	WallText     string           `json:"wall_text"`
	WallTextHTML string           `json:"wall_text_html"`
	Left         SummaryResponse  `json:"left"`
	Right        SummaryResponse  `json:"right"`
	Gap          domain.GapResult `json:"gap"`
}

// SectionSummaryResponse is a section entry in the exhibition index.
type SectionSummaryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thesis    string `json:"thesis"`
	PairCount int    `json:"pair_count"`
}

// SectionResponse is a full section page.
type SectionResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Thesis    string         `json:"thesis"`
	IntroText string         `json:"intro_text"`
	IntroHTML string         `json:"intro_html"`
	Pairs     []PairResponse `json:"pairs"`
}

// PairReportResponse is a pair with both lens views and the comparison.
type PairReportResponse struct {
	SectionID  string                    `json:"section_id"`
	Pair       PairResponse              `json:"pair"`
	Left       *domain.LensView          `json:"left_lens,omitempty"`
	Right      *domain.LensView          `json:"right_lens,omitempty"`
	Comparison *domain.ComparisonSummary `json:"comparison,omitempty"`
	Missing    []int                     `json:"missing,omitempty"`
}

// presenter turns domain values into response bodies.
// images may be nil, in which case image paths pass through unchanged.
type presenter struct {
	images storage.ObjectStorage
}

func (p presenter) imageURL(path string) string {
	if p.images == nil {
		return path
	}
	return storage.ResolveImageURL(p.images, path)
}

func (p presenter) summary(s domain.ArtworkSummary) SummaryResponse {
	return SummaryResponse{ArtworkSummary: s, ImageURL: p.imageURL(s.ImagePath)}
}

func (p presenter) mantlepiece(m domain.Mantlepiece) MantlepieceResponse {
	return MantlepieceResponse{
		Asian:              p.summary(m.Asian),
		Western:            p.summary(m.Western),
		CuratorialNote:     m.CuratorialNote,
		CuratorialNoteHTML: service.RenderWallText(m.CuratorialNote),
		Gap:                m.Gap,
	}
}

func (p presenter) pair(pair domain.Pair) PairResponse {
	return PairResponse{
		ID:           pair.ID,
		WallText:     pair.WallText,
		WallTextHTML: service.RenderWallText(pair.WallText),
		Left:         p.summary(pair.Left),
		Right:        p.summary(pair.Right),
		Gap:          service.ComputeGap(pair),
	}
}

func (p presenter) section(s *domain.Section) SectionResponse {
	pairs := make([]PairResponse, 0, len(s.Pairs))
	for _, pair := range s.Pairs {
		pairs = append(pairs, p.pair(pair))
	}
	return SectionResponse{
		ID:        s.ID,
		Title:     s.Title,
		Thesis:    s.Thesis,
		IntroText: s.IntroText,
		IntroHTML: service.RenderWallText(s.IntroText),
		Pairs:     pairs,
	}
}

func (p presenter) pairReport(r *domain.PairReport) PairReportResponse {
	return PairReportResponse{
		SectionID:  r.SectionID,
		Pair:       p.pair(r.Pair),
		Left:       r.Left,
		Right:      r.Right,
		Comparison: r.Comparison,
		Missing:    r.Missing,
	}
}

func sectionSummaries(sections []domain.Section) []SectionSummaryResponse {
	out := make([]SectionSummaryResponse, 0, len(sections))
	for _, s := range sections {
		out = append(out, SectionSummaryResponse{
			ID:        s.ID,
			Title:     s.Title,
			Thesis:    s.Thesis,
			PairCount: len(s.Pairs),
		})
	}
	return out
}

// objectIDParam parses an integer object ID, writing a 400 when it is not one.
func objectIDParam(c *gin.Context, raw, name string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + ": " + raw,
		})
		return 0, false
	}
	return id, true
}
