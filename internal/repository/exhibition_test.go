package repository

import (
	"testing"

	"github.com/timmy/machines-eye/internal/domain"
)

func sampleDocument() domain.ExhibitionDocument {
	return domain.ExhibitionDocument{
		Exhibition: domain.ExhibitionInfo{Title: "The Machine's Eye", Subtitle: "VLM-Curated Photography"},
		Mantlepiece: domain.Mantlepiece{
			Asian:   domain.ArtworkSummary{ObjectID: 1, Humanization: 4.5},
			Western: domain.ArtworkSummary{ObjectID: 2, Humanization: 1.5},
		},
		Sections: []domain.Section{
			{ID: "section_1", Title: "The Politics of Names", Pairs: []domain.Pair{
				{ID: "pair_1a", Left: domain.ArtworkSummary{ObjectID: 1}, Right: domain.ArtworkSummary{ObjectID: 2}},
				{ID: "pair_1b", Left: domain.ArtworkSummary{ObjectID: 3}, Right: domain.ArtworkSummary{ObjectID: 4}},
			}},
			{ID: "section_2", Title: "Who Looks Down?", Pairs: []domain.Pair{
				{ID: "pair_2a", Left: domain.ArtworkSummary{ObjectID: 5}, Right: domain.ArtworkSummary{ObjectID: 6}},
			}},
			{ID: "section_3", Title: "Empty Room"},
		},
	}
}

func TestExhibition_Accessors(t *testing.T) {
	ex := NewExhibition(sampleDocument())

	if ex.Title() != "The Machine's Eye" || ex.Subtitle() != "VLM-Curated Photography" {
		t.Errorf("unexpected headline: %q / %q", ex.Title(), ex.Subtitle())
	}
	if gap := ex.Mantlepiece().Gap; gap != 3.0 {
		t.Errorf("expected mantlepiece gap 3.0, got %v", gap)
	}

	sections := ex.Sections()
	if len(sections) != 3 || sections[0].ID != "section_1" || sections[2].ID != "section_3" {
		t.Errorf("expected sections in document order, got %+v", sections)
	}
}

func TestExhibition_GetSectionAndPair(t *testing.T) {
	ex := NewExhibition(sampleDocument())

	if _, ok := ex.GetSection("section_9"); ok {
		t.Error("expected missing section")
	}
	section, ok := ex.GetSection("section_2")
	if !ok || section.Title != "Who Looks Down?" {
		t.Fatalf("expected section_2, got %+v", section)
	}

	tests := []struct {
		name      string
		sectionID string
		pairID    string
		wantLeft  int
		wantFound bool
	}{
		{name: "first pair", sectionID: "section_1", pairID: "pair_1a", wantLeft: 1, wantFound: true},
		{name: "second pair", sectionID: "section_1", pairID: "pair_1b", wantLeft: 3, wantFound: true},
		{name: "pair in wrong section", sectionID: "section_2", pairID: "pair_1a"},
		{name: "missing section", sectionID: "nope", pairID: "pair_1a"},
		{name: "empty section", sectionID: "section_3", pairID: "pair_3a"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pair, ok := ex.GetPair(tc.sectionID, tc.pairID)
			if ok != tc.wantFound {
				t.Fatalf("expected found=%v, got %v", tc.wantFound, ok)
			}
			if ok && pair.Left.ObjectID != tc.wantLeft {
				t.Errorf("expected left %d, got %d", tc.wantLeft, pair.Left.ObjectID)
			}
		})
	}
}

func TestExhibition_AllPairs(t *testing.T) {
	pairs := NewExhibition(sampleDocument()).AllPairs()

	expected := []string{"pair_1a", "pair_1b", "pair_2a"}
	if len(pairs) != len(expected) {
		t.Fatalf("expected %d pairs, got %d", len(expected), len(pairs))
	}
	for i, id := range expected {
		if pairs[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, pairs[i].ID)
		}
	}
}
