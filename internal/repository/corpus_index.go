package repository

import (
	"github.com/timmy/machines-eye/internal/domain"
)

// CorpusIndex is an immutable id-keyed view over the loaded corpus.
// It is safe for concurrent readers once constructed.
type CorpusIndex struct {
	works []domain.ArtworkRecord
	byID  map[int]*domain.ArtworkRecord
}

// NewCorpusIndex builds the index from records in load order.
// Parameters:
//   - works: corpus records; the slice is copied.
// Returns:
//   - *CorpusIndex: index where a duplicate object_id resolves to the last record seen.
func NewCorpusIndex(works []domain.ArtworkRecord) *CorpusIndex {
	copied := make([]domain.ArtworkRecord, len(works))
	copy(copied, works)

	byID := make(map[int]*domain.ArtworkRecord, len(copied))
	for i := range copied {
		byID[copied[i].ObjectID] = &copied[i]
	}

	return &CorpusIndex{works: copied, byID: byID}
}

// GetByObjectID retrieves a record by its object ID.
// Parameters:
//   - id: object_id to look up.
// Returns:
//   - *domain.ArtworkRecord: the record if present.
//   - bool: false when the corpus has no such work.
func (c *CorpusIndex) GetByObjectID(id int) (*domain.ArtworkRecord, bool) {
	record, ok := c.byID[id]
	return record, ok
}

// GetAllWorks returns every record in load order.
// Callers must treat the result as read-only.
func (c *CorpusIndex) GetAllWorks() []domain.ArtworkRecord {
	return c.works
}

// Len returns the number of records loaded, duplicates included.
func (c *CorpusIndex) Len() int {
	return len(c.works)
}

// Stats derives the methodology figures from the indexed records.
// Duplicate IDs count once, using the record the index resolves to.
func (c *CorpusIndex) Stats() domain.CorpusStats {
	stats := domain.CorpusStats{
		ByStudyGroup:   make(map[string]int),
		MeanHumanizing: make(map[string]float64),
		MeanOthering:   make(map[string]float64),
	}

	for _, record := range c.byID {
		stats.TotalWorks++
		if record.HasHumanSubject {
			stats.HumanSubjects++
		}
		stats.ByStudyGroup[record.StudyGroup]++
		stats.MeanHumanizing[record.StudyGroup] += record.Scores.Humanization
		stats.MeanOthering[record.StudyGroup] += record.Scores.Othering
	}

	for group, count := range stats.ByStudyGroup {
		stats.MeanHumanizing[group] /= float64(count)
		stats.MeanOthering[group] /= float64(count)
	}

	return stats
}
