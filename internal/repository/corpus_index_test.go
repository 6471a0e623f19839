package repository

import (
	"testing"

	"github.com/timmy/machines-eye/internal/domain"
)

func sampleWorks() []domain.ArtworkRecord {
	return []domain.ArtworkRecord{
		{ObjectID: 1, Title: "Portrait of a Fisherman", StudyGroup: domain.StudyGroupAsianOnAsian, HasHumanSubject: true,
			Scores: domain.Scores{Humanization: 4.5, Othering: 1}},
		{ObjectID: 2, Title: "Native Type", StudyGroup: domain.StudyGroupWesternOnAsian, HasHumanSubject: true,
			Scores: domain.Scores{Humanization: 1.5, Othering: 4}},
		{ObjectID: 3, Title: "Harbor at Dusk", StudyGroup: domain.StudyGroupWesternOnAsian, HasHumanSubject: false,
			Scores: domain.Scores{Humanization: 2.5, Othering: 2}},
	}
}

func TestCorpusIndex_GetByObjectID(t *testing.T) {
	index := NewCorpusIndex(sampleWorks())

	tests := []struct {
		name      string
		id        int
		wantFound bool
		wantTitle string
	}{
		{name: "first record", id: 1, wantFound: true, wantTitle: "Portrait of a Fisherman"},
		{name: "last record", id: 3, wantFound: true, wantTitle: "Harbor at Dusk"},
		{name: "absent id", id: 99, wantFound: false},
		{name: "zero id", id: 0, wantFound: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record, ok := index.GetByObjectID(tc.id)
			if ok != tc.wantFound {
				t.Fatalf("expected found=%v, got %v", tc.wantFound, ok)
			}
			if !ok {
				if record != nil {
					t.Errorf("expected nil record for absent id, got %+v", record)
				}
				return
			}
			if record.ObjectID != tc.id || record.Title != tc.wantTitle {
				t.Errorf("expected %d/%q, got %d/%q", tc.id, tc.wantTitle, record.ObjectID, record.Title)
			}
		})
	}
}

func TestCorpusIndex_EveryRecordRetrievable(t *testing.T) {
	works := sampleWorks()
	index := NewCorpusIndex(works)

	for _, w := range works {
		got, ok := index.GetByObjectID(w.ObjectID)
		if !ok || got.ObjectID != w.ObjectID {
			t.Errorf("record %d not retrievable", w.ObjectID)
		}
	}
}

func TestCorpusIndex_LoadOrderAndDuplicates(t *testing.T) {
	works := append(sampleWorks(), domain.ArtworkRecord{ObjectID: 2, Title: "Native Type (reprint)"})
	index := NewCorpusIndex(works)

	all := index.GetAllWorks()
	if len(all) != 4 || index.Len() != 4 {
		t.Fatalf("expected 4 records in load order, got %d", len(all))
	}
	for i, id := range []int{1, 2, 3, 2} {
		if all[i].ObjectID != id {
			t.Errorf("position %d: expected id %d, got %d", i, id, all[i].ObjectID)
		}
	}

	record, ok := index.GetByObjectID(2)
	if !ok || record.Title != "Native Type (reprint)" {
		t.Errorf("expected last duplicate to win, got %+v", record)
	}
}

func TestCorpusIndex_CopiesInput(t *testing.T) {
	works := sampleWorks()
	index := NewCorpusIndex(works)
	works[0].Title = "mutated"

	record, _ := index.GetByObjectID(1)
	if record.Title == "mutated" {
		t.Error("index must not alias the caller's slice")
	}
}

func TestCorpusIndex_Stats(t *testing.T) {
	stats := NewCorpusIndex(sampleWorks()).Stats()

	if stats.TotalWorks != 3 {
		t.Errorf("expected 3 works, got %d", stats.TotalWorks)
	}
	if stats.HumanSubjects != 2 {
		t.Errorf("expected 2 human subjects, got %d", stats.HumanSubjects)
	}
	if stats.ByStudyGroup[domain.StudyGroupWesternOnAsian] != 2 {
		t.Errorf("expected 2 western works, got %d", stats.ByStudyGroup[domain.StudyGroupWesternOnAsian])
	}
	if got := stats.MeanHumanizing[domain.StudyGroupWesternOnAsian]; got != 2.0 {
		t.Errorf("expected western mean humanization 2.0, got %v", got)
	}
	if got := stats.MeanOthering[domain.StudyGroupAsianOnAsian]; got != 1.0 {
		t.Errorf("expected asian mean othering 1.0, got %v", got)
	}

	empty := NewCorpusIndex(nil).Stats()
	if empty.TotalWorks != 0 || len(empty.ByStudyGroup) != 0 {
		t.Errorf("expected empty stats, got %+v", empty)
	}
}
