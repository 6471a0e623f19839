package repository

import (
	"github.com/timmy/machines-eye/internal/domain"
)

// Exhibition exposes the curated section/pair structure.
type Exhibition struct {
	info        domain.ExhibitionInfo
	mantlepiece domain.Mantlepiece
	sections    []domain.Section
	sectionByID map[string]int
}

// NewExhibition wraps a decoded exhibition document and derives the
// mantlepiece gap. A repeated section ID resolves to its first occurrence.
func NewExhibition(doc domain.ExhibitionDocument) *Exhibition {
	sections := make([]domain.Section, len(doc.Sections))
	copy(sections, doc.Sections)

	byID := make(map[string]int, len(sections))
	for i, s := range sections {
		if _, exists := byID[s.ID]; !exists {
			byID[s.ID] = i
		}
	}

	mantlepiece := doc.Mantlepiece
	mantlepiece.Gap = mantlepiece.Asian.Humanization - mantlepiece.Western.Humanization

	return &Exhibition{
		info:        doc.Exhibition,
		mantlepiece: mantlepiece,
		sections:    sections,
		sectionByID: byID,
	}
}

func (e *Exhibition) Title() string    { return e.info.Title }
func (e *Exhibition) Subtitle() string { return e.info.Subtitle }

// Mantlepiece returns the landing pairing with its humanization gap.
func (e *Exhibition) Mantlepiece() domain.Mantlepiece {
	return e.mantlepiece
}

// Sections returns the sections in display order.
func (e *Exhibition) Sections() []domain.Section {
	return e.sections
}

// GetSection finds a section by ID.
func (e *Exhibition) GetSection(id string) (*domain.Section, bool) {
	i, ok := e.sectionByID[id]
	if !ok {
		return nil, false
	}
	return &e.sections[i], true
}

// GetPair finds a pair within a section.
func (e *Exhibition) GetPair(sectionID, pairID string) (*domain.Pair, bool) {
	section, ok := e.GetSection(sectionID)
	if !ok {
		return nil, false
	}
	for i := range section.Pairs {
		if section.Pairs[i].ID == pairID {
			return &section.Pairs[i], true
		}
	}
	return nil, false
}

// AllPairs flattens every section's pairs in section order.
func (e *Exhibition) AllPairs() []domain.Pair {
	var pairs []domain.Pair
	for _, s := range e.sections {
		pairs = append(pairs, s.Pairs...)
	}
	return pairs
}
