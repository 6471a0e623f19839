package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StudyGroup labels the cohort a photograph belongs to.
type StudyGroup = string

const (
	StudyGroupAsianOnAsian   StudyGroup = "asian_on_asian"
	StudyGroupWesternOnAsian StudyGroup = "western_on_asian"
)

// Thesis support categories assigned by the comparative pass.
const (
	ThesisSupportNeutral       = "NEUTRAL"
	ThesisSupportStrongSupport = "STRONG_SUPPORT"
	ThesisSupportExemplary     = "EXEMPLARY"
)

// CorpusDocument is the top-level shape of the VLM corpus file.
type CorpusDocument struct {
	Works []ArtworkRecord `json:"works"`
}

// ArtworkRecord is the full VLM annotation of one photograph.
// Records are immutable once loaded; ObjectID is unique across the corpus.
type ArtworkRecord struct {
	ObjectID        int         `json:"object_id" parquet:"object_id"`
	Title           string      `json:"title" parquet:"title"`
	Photographer    string      `json:"photographer" parquet:"photographer"`
	Nationality     []string    `json:"nationality" parquet:"nationality,list"`
	StudyGroup      StudyGroup  `json:"study_group" parquet:"study_group"`
	HasHumanSubject bool        `json:"has_human_subject" parquet:"has_human_subject"`
	Scores          Scores      `json:"scores" parquet:"scores"`
	Subject         Subject     `json:"subject" parquet:"subject"`
	Composition     Composition `json:"composition" parquet:"composition"`
	Lighting        Lighting    `json:"lighting" parquet:"lighting"`
	WallText        WallText    `json:"vlm_wall_text" parquet:"vlm_wall_text"`
	Comparative     Comparative `json:"vlm_comparative" parquet:"vlm_comparative"`
}

// Scores holds the precomputed 0-5 ratings. Humanization and othering are
// independent axes; NetScore is opaque and never recomputed.
type Scores struct {
	Humanization float64 `json:"humanization" parquet:"humanization"`
	Othering     float64 `json:"othering" parquet:"othering"`
	NetScore     float64 `json:"net_score" parquet:"net_score"`
}

// Subject describes who (if anyone) is depicted and how the title frames them.
type Subject struct {
	TitleCategorization  string  `json:"title_categorization" parquet:"title_categorization"`
	NameIfPresent        *string `json:"name_if_present" parquet:"name_if_present,optional"`
	DressType            *string `json:"dress_type" parquet:"dress_type,optional"`
	EnvironmentalContext string  `json:"environmental_context" parquet:"environmental_context"`
	GazeDirection        *string `json:"gaze_direction" parquet:"gaze_direction,optional"`
	ApparentAwareness    *string `json:"apparent_awareness" parquet:"apparent_awareness,optional"`
}

type Composition struct {
	CropType       string `json:"crop_type" parquet:"crop_type"`
	CameraAngle    string `json:"camera_angle" parquet:"camera_angle"`
	BackgroundType string `json:"background_type" parquet:"background_type"`
}

type Lighting struct {
	KeyDirection string `json:"key_direction" parquet:"key_direction"`
	KeyQuality   string `json:"key_quality" parquet:"key_quality"`
}

// WallText is the VLM-drafted label copy for a single work.
type WallText struct {
	Observation string   `json:"observation" parquet:"observation"`
	Question    string   `json:"question" parquet:"question"`
	AvoidTerms  []string `json:"avoid_terms" parquet:"avoid_terms,list"`
}

// Comparative carries the cross-work judgments made in the comparative pass.
type Comparative struct {
	PairingCandidates ObjectIDList `json:"pairing_candidates" parquet:"pairing_candidates,list"`
	KeyContrastPoints []string     `json:"key_contrast_points" parquet:"key_contrast_points,list"`
	ThesisSupport     string       `json:"thesis_support" parquet:"thesis_support"`
}

// ObjectIDList is a list of artwork IDs. The corpus writes them either as
// numbers or as numeric strings, so decoding accepts both.
type ObjectIDList []int

// UnmarshalJSON implements json.Unmarshaler.
func (l *ObjectIDList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pairing candidates: %w", err)
	}

	ids := make(ObjectIDList, 0, len(raw))
	for _, item := range raw {
		var n int
		if err := json.Unmarshal(item, &n); err == nil {
			ids = append(ids, n)
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			return fmt.Errorf("pairing candidate %s: not a number or string", string(item))
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("pairing candidate %q: %w", s, err)
		}
		ids = append(ids, n)
	}

	*l = ids
	return nil
}

// IsInsider reports whether the photographer belongs to the depicted culture.
func (r *ArtworkRecord) IsInsider() bool {
	return r.StudyGroup == StudyGroupAsianOnAsian
}

// Summary projects the record onto the reduced view used inside pairs.
func (r *ArtworkRecord) Summary(imagePath string) ArtworkSummary {
	return ArtworkSummary{
		ObjectID:     r.ObjectID,
		Title:        r.Title,
		Photographer: r.Photographer,
		Humanization: r.Scores.Humanization,
		Othering:     r.Scores.Othering,
		ImagePath:    imagePath,
	}
}

// StringValue dereferences an optional string, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
