package service

import "github.com/timmy/machines-eye/internal/domain"

func strPtr(s string) *string { return &s }

func namedInsider() domain.ArtworkRecord {
	return domain.ArtworkRecord{
		ObjectID:        100,
		Title:           "Portrait of Mei Lin",
		Photographer:    "Insider Photographer",
		StudyGroup:      domain.StudyGroupAsianOnAsian,
		HasHumanSubject: true,
		Scores:          domain.Scores{Humanization: 4.5, Othering: 1.0, NetScore: 3.5},
		Subject: domain.Subject{
			TitleCategorization: "INDIVIDUAL_NAME",
			NameIfPresent:       strPtr("Mei Lin"),
			GazeDirection:       strPtr("CAMERA"),
			ApparentAwareness:   strPtr("AWARE_CONSENTING"),
		},
		Composition: domain.Composition{CropType: "HEAD_SHOULDERS", CameraAngle: "EYE_LEVEL"},
		Lighting:    domain.Lighting{KeyDirection: "REMBRANDT", KeyQuality: "SOFT"},
		WallText:    domain.WallText{Observation: "She meets the lens.", Question: "Who is looking?"},
		Comparative: domain.Comparative{
			KeyContrastPoints: []string{"one", "two", "three", "four"},
			ThesisSupport:     domain.ThesisSupportExemplary,
		},
	}
}

func genericOutsider() domain.ArtworkRecord {
	return domain.ArtworkRecord{
		ObjectID:        200,
		Title:           "Native Woman",
		Photographer:    "Outsider Photographer",
		StudyGroup:      domain.StudyGroupWesternOnAsian,
		HasHumanSubject: true,
		Scores:          domain.Scores{Humanization: 1.5, Othering: 4.0, NetScore: -2.5},
		Subject:         domain.Subject{TitleCategorization: "GENERIC_TYPE"},
		Composition:     domain.Composition{CropType: "FULL_BODY", CameraAngle: "HIGH_DOMINANT"},
		Lighting:        domain.Lighting{KeyDirection: "FRONT", KeyQuality: "HARD"},
		Comparative:     domain.Comparative{KeyContrastPoints: []string{"costume"}},
	}
}

// sparse has every optional annotation left empty.
func sparse() domain.ArtworkRecord {
	return domain.ArtworkRecord{
		ObjectID:     300,
		Title:        "Street",
		Photographer: "Unknown Hand",
		StudyGroup:   "other_cohort",
	}
}

func fixtureWorks() []domain.ArtworkRecord {
	return []domain.ArtworkRecord{namedInsider(), genericOutsider(), sparse()}
}

func fixtureDocument() domain.ExhibitionDocument {
	left := domain.ArtworkSummary{ObjectID: 100, Title: "Portrait of Mei Lin", Humanization: 4.5, Othering: 1.0}
	right := domain.ArtworkSummary{ObjectID: 200, Title: "Native Woman", Humanization: 1.5, Othering: 4.0}
	return domain.ExhibitionDocument{
		Exhibition:  domain.ExhibitionInfo{Title: "The Machine's Eye", Subtitle: "VLM-Curated Photography"},
		Mantlepiece: domain.Mantlepiece{Asian: left, Western: right},
		Sections: []domain.Section{
			{ID: "section_1", Title: "The Politics of Names", Pairs: []domain.Pair{
				{ID: "pair_1", Left: left, Right: right},
				{ID: "pair_dangling", Left: left, Right: domain.ArtworkSummary{ObjectID: 999, Humanization: 2, Othering: 2}},
			}},
		},
	}
}
