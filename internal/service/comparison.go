package service

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/timmy/machines-eye/internal/domain"
)

const (
	// insightGapThreshold is the humanization gap above which the gap
	// itself becomes an insight.
	insightGapThreshold = 2.0

	maxContrastPoints = 3
)

// ComputeGap measures a curated pair from its own summaries.
// A positive gap means the left side humanizes more and others less.
func ComputeGap(pair domain.Pair) domain.GapResult {
	humanization := pair.Left.Humanization - pair.Right.Humanization
	othering := pair.Right.Othering - pair.Left.Othering
	return domain.GapResult{
		HumanizationGap: humanization,
		OtheringGap:     othering,
		ContrastScore:   humanization + othering,
	}
}

// ComparisonService contrasts two works from the corpus.
type ComparisonService struct {
	works WorkLookup
	lens  *LensService
}

// NewComparisonService creates a new ComparisonService.
// Parameters:
//   - works: corpus lookup used for both sides.
// Returns:
//   - *ComparisonService: service bound to works.
func NewComparisonService(works WorkLookup) *ComparisonService {
	return &ComparisonService{works: works, lens: NewLensService(works)}
}

// GetContrastPoints returns up to three contrast points recorded on the
// left work. The right ID is accepted for symmetry and unused.
func (s *ComparisonService) GetContrastPoints(leftID, rightID int) []string {
	record, ok := s.works.GetByObjectID(leftID)
	if !ok {
		return []string{}
	}
	return firstN(record.Comparative.KeyContrastPoints, maxContrastPoints)
}

// GetComparisonSummary builds both lens views and the generated insights.
// Parameters:
//   - leftID: object_id of the insider side.
//   - rightID: object_id of the outsider side.
// Returns:
//   - *domain.ComparisonSummary: summary with insights in a fixed order.
//   - bool: false if either work is missing from the corpus.
func (s *ComparisonService) GetComparisonSummary(leftID, rightID int) (*domain.ComparisonSummary, bool) {
	left, ok := s.lens.GetLensData(leftID)
	if !ok {
		return nil, false
	}
	right, ok := s.lens.GetLensData(rightID)
	if !ok {
		return nil, false
	}

	gap := left.HumanizationScore - right.HumanizationScore

	return &domain.ComparisonSummary{
		Left:            *left,
		Right:           *right,
		HumanizationGap: gap,
		Insights:        buildInsights(left, right, gap),
		ContrastPoints:  s.GetContrastPoints(leftID, rightID),
	}, true
}

func buildInsights(left, right *domain.LensView, gap float64) []string {
	insights := []string{}

	if left.TitleType.IsHumanizing && !right.TitleType.IsHumanizing {
		name := ""
		if left.SubjectName != nil {
			name = fmt.Sprintf(" (%s)", *left.SubjectName)
		}
		insights = append(insights, fmt.Sprintf("%s names their subject%s. %s uses a %s title.",
			left.Photographer, name, right.Photographer, strings.ToLower(right.TitleType.Label)))
	}

	if left.CameraAngle.IsHumanizing && !right.CameraAngle.IsHumanizing {
		insights = append(insights, fmt.Sprintf("%s shoots at %s. %s %s.",
			left.Photographer, strings.ToLower(left.CameraAngle.Label),
			right.Photographer, strings.ToLower(right.CameraAngle.Meaning)))
	}

	if gap > insightGapThreshold {
		insights = append(insights, fmt.Sprintf("Humanization gap: +%s points.", formatOneDecimal(gap)))
	}

	return insights
}

// formatOneDecimal formats x with one decimal, rounding exact binary ties
// away from zero instead of to even.
func formatOneDecimal(x float64) string {
	exact := new(big.Float).SetFloat64(x).Text('f', 64)
	if dot := strings.IndexByte(exact, '.'); dot >= 0 && len(exact) > dot+2 {
		rest := strings.TrimRight(exact[dot+2:], "0")
		if rest == "5" {
			return strconv.FormatFloat(math.Copysign(math.Ceil(math.Abs(x)*10)/10, x), 'f', 1, 64)
		}
	}
	return strconv.FormatFloat(x, 'f', 1, 64)
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
