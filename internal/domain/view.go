package domain

// CameraAngleLabel is the decoded presentation of a camera angle code.
type CameraAngleLabel struct {
	Label        string `json:"label"`
	Meaning      string `json:"meaning"`
	IsHumanizing bool   `json:"is_humanizing"`
}

// TitleTypeLabel is the decoded presentation of a title categorization.
type TitleTypeLabel struct {
	Label        string `json:"label"`
	Detail       string `json:"detail"`
	IsHumanizing bool   `json:"is_humanizing"`
}

// AngleRhetoric explains what a camera angle communicates.
type AngleRhetoric struct {
	Meaning  string `json:"meaning" yaml:"meaning"`
	Cultural string `json:"cultural" yaml:"cultural"`
	Effect   string `json:"effect" yaml:"effect"`
}

// LightingRhetoric explains what a lighting pattern communicates.
type LightingRhetoric struct {
	Meaning string `json:"meaning" yaml:"meaning"`
	Style   string `json:"style" yaml:"style"`
	Effect  string `json:"effect" yaml:"effect"`
}

// CropRhetoric explains what a crop distance communicates.
type CropRhetoric struct {
	Meaning  string `json:"meaning" yaml:"meaning"`
	Distance string `json:"distance" yaml:"distance"`
	Effect   string `json:"effect" yaml:"effect"`
}

// LensView is the presentation-ready analysis of a single work.
type LensView struct {
	ObjectID          int             `json:"object_id" yaml:"object_id"`
	Title             string          `json:"title" yaml:"title"`
	Photographer      string          `json:"photographer" yaml:"photographer"`
	IsInsider         bool            `json:"is_insider" yaml:"is_insider"`
	HumanizationScore float64         `json:"humanization_score" yaml:"humanization_score"`
	OtheringScore     float64         `json:"othering_score" yaml:"othering_score"`
	CameraAngle       LensCameraAngle `json:"camera_angle" yaml:"camera_angle"`
	TitleType         LensTitleType   `json:"title_type" yaml:"title_type"`
	HasHumanSubject   bool            `json:"has_human_subject" yaml:"has_human_subject"`
	SubjectName       *string         `json:"subject_name" yaml:"subject_name"`
	Gaze              *string         `json:"gaze" yaml:"gaze"`
	Awareness         *string         `json:"awareness" yaml:"awareness"`
	Lighting          LensLighting    `json:"lighting" yaml:"lighting"`
	CameraSetup       CameraSetup     `json:"camera_setup" yaml:"camera_setup"`
	Observation       string          `json:"observation" yaml:"observation"`
	Question          string          `json:"question" yaml:"question"`
	KeyContrastPoints []string        `json:"key_contrast_points" yaml:"key_contrast_points"`
	ThesisSupport     string          `json:"thesis_support" yaml:"thesis_support"`
}

type LensCameraAngle struct {
	Raw          string `json:"raw" yaml:"raw"`
	Label        string `json:"label" yaml:"label"`
	Meaning      string `json:"meaning" yaml:"meaning"`
	IsHumanizing bool   `json:"is_humanizing" yaml:"is_humanizing"`
}

type LensTitleType struct {
	Raw          string `json:"raw" yaml:"raw"`
	Label        string `json:"label" yaml:"label"`
	Detail       string `json:"detail" yaml:"detail"`
	IsHumanizing bool   `json:"is_humanizing" yaml:"is_humanizing"`
}

type LensLighting struct {
	Direction string `json:"direction" yaml:"direction"`
	Quality   string `json:"quality" yaml:"quality"`
}

// CameraSetup groups the rhetoric of angle, lighting and crop.
type CameraSetup struct {
	Angle    SetupAngle    `json:"angle" yaml:"angle"`
	Lighting SetupLighting `json:"lighting" yaml:"lighting"`
	Crop     SetupCrop     `json:"crop" yaml:"crop"`
	Quality  string        `json:"quality" yaml:"quality"`
}

type SetupAngle struct {
	Type          string `json:"type" yaml:"type"`
	AngleRhetoric `yaml:",inline"`
	IsHumanizing  bool `json:"is_humanizing" yaml:"is_humanizing"`
}

type SetupLighting struct {
	Type             string `json:"type" yaml:"type"`
	LightingRhetoric `yaml:",inline"`
}

type SetupCrop struct {
	Type         string `json:"type" yaml:"type"`
	CropRhetoric `yaml:",inline"`
}

// GapResult measures how far apart two sides of a pair sit.
// HumanizationGap is positive when the left side humanizes more;
// OtheringGap is positive when the right side others more.
type GapResult struct {
	HumanizationGap float64 `json:"humanization_gap" yaml:"humanization_gap"`
	OtheringGap     float64 `json:"othering_gap" yaml:"othering_gap"`
	ContrastScore   float64 `json:"contrast_score" yaml:"contrast_score"`
}

// ComparisonSummary contrasts two lens views with generated insights.
type ComparisonSummary struct {
	Left            LensView `json:"left" yaml:"left"`
	Right           LensView `json:"right" yaml:"right"`
	HumanizationGap float64  `json:"humanization_gap" yaml:"humanization_gap"`
	Insights        []string `json:"insights" yaml:"insights"`
	ContrastPoints  []string `json:"contrast_points" yaml:"contrast_points"`
}

// PairReport joins a curated pair with whatever the corpus knows about it.
// Missing lists the object IDs that did not resolve.
type PairReport struct {
	SectionID  string             `json:"section_id" yaml:"section_id"`
	Pair       Pair               `json:"pair" yaml:"pair"`
	Gap        GapResult          `json:"gap" yaml:"gap"`
	Left       *LensView          `json:"left_lens,omitempty" yaml:"left_lens,omitempty"`
	Right      *LensView          `json:"right_lens,omitempty" yaml:"right_lens,omitempty"`
	Comparison *ComparisonSummary `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Missing    []int              `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// CorpusStats are the methodology figures derived from the loaded corpus.
type CorpusStats struct {
	TotalWorks     int                `json:"total_works" yaml:"total_works"`
	HumanSubjects  int                `json:"human_subjects" yaml:"human_subjects"`
	ByStudyGroup   map[string]int     `json:"by_study_group" yaml:"by_study_group"`
	MeanHumanizing map[string]float64 `json:"mean_humanization" yaml:"mean_humanization"`
	MeanOthering   map[string]float64 `json:"mean_othering" yaml:"mean_othering"`
}
