// Package rhetoric decodes the VLM's enum codes into curatorial language.
package rhetoric

import (
	"strings"

	"github.com/timmy/machines-eye/internal/domain"
)

// Unknown stands in for an annotation code the VLM left empty.
const Unknown = "UNKNOWN"

var cameraAngles = map[string]domain.CameraAngleLabel{
	"EYE_LEVEL":      {Label: "Eye Level", Meaning: "Equals the subject", IsHumanizing: true},
	"LOW_HEROIC":     {Label: "Low Angle", Meaning: "Elevates the subject", IsHumanizing: true},
	"HIGH_DOMINANT":  {Label: "High Angle", Meaning: "Looks down on subject", IsHumanizing: false},
	"SLIGHTLY_ABOVE": {Label: "Slightly Above", Meaning: "Subtle dominance", IsHumanizing: false},
}

var titleTypes = map[string]domain.TitleTypeLabel{
	"INDIVIDUAL_NAME": {Label: "Named", Detail: "Individual identified", IsHumanizing: true},
	"LOCATION":        {Label: "Location", Detail: "Place-based title", IsHumanizing: false},
	"GENERIC_TYPE":    {Label: "Type", Detail: "Anonymous category", IsHumanizing: false},
	"OCCUPATION":      {Label: "Role", Detail: "Occupation-based", IsHumanizing: false},
	"ETHNICITY":       {Label: "Ethnicity", Detail: "Ethnic category", IsHumanizing: false},
	"UNTITLED":        {Label: "Untitled", Detail: "No identification", IsHumanizing: false},
}

var angleRhetoric = map[string]domain.AngleRhetoric{
	"EYE_LEVEL": {
		Meaning:  "Equality, mutual recognition",
		Cultural: "The 'democratic' angle—peer relationship",
		Effect:   "Humanizing: grants equal status",
	},
	"HIGH_DOMINANT": {
		Meaning:  "Power over subject, surveillance",
		Cultural: "Diminishes, creates hierarchy",
		Effect:   "Can objectify OR show vulnerability with empathy",
	},
	"LOW_HEROIC": {
		Meaning:  "Elevation, monumentalization",
		Cultural: "Grants stature and dignity",
		Effect:   "Humanizing: elevates subject",
	},
	"SLIGHTLY_ABOVE": {
		Meaning:  "Subtle dominance",
		Cultural: "Common in casual portraits",
		Effect:   "Mild power differential",
	},
}

var lightingRhetoric = map[string]domain.LightingRhetoric{
	"FRONT": {
		Meaning: "Direct, revealing",
		Style:   "Flat, minimal shadows",
		Effect:  "Clinical or honest—nothing hidden",
	},
	"LOOP": {
		Meaning: "Classic portrait lighting",
		Style:   "Small shadow under nose",
		Effect:  "Flattering, conventional dignity",
	},
	"REMBRANDT": {
		Meaning: "Chiaroscuro mastery",
		Style:   "Triangle of light on cheek",
		Effect:  "Artistic, grants gravitas",
	},
	"SPLIT": {
		Meaning: "Dramatic contrast",
		Style:   "Half face in shadow",
		Effect:  "Reveals duality, internal conflict",
	},
	"BUTTERFLY": {
		Meaning: "Glamour, beauty",
		Style:   "Shadow under nose like butterfly",
		Effect:  "Idealizing, Hollywood portrait",
	},
	"RIM": {
		Meaning: "Separation, drama",
		Style:   "Light from behind edges subject",
		Effect:  "Creates presence, sculptural",
	},
}

var cropRhetoric = map[string]domain.CropRhetoric{
	"EXTREME_CLOSEUP": {
		Meaning:  "Intimacy, confrontation",
		Distance: "Intimate zone—inside personal space",
		Effect:   "Psychological access OR intrusion",
	},
	"HEAD_SHOULDERS": {
		Meaning:  "Traditional portrait",
		Distance: "Personal zone—conversational",
		Effect:   "Balanced, recognizes personhood",
	},
	"THREE_QUARTER": {
		Meaning:  "Body language visible",
		Distance: "Social zone—observational",
		Effect:   "Context without losing face",
	},
	"FULL_BODY": {
		Meaning:  "Subject in space",
		Distance: "Public zone—documentary",
		Effect:   "Shows how they carry themselves",
	},
	"ENVIRONMENTAL": {
		Meaning:  "Person in their world",
		Distance: "Public zone—contextual",
		Effect:   "Can humanize (belonging) OR diminish (lost in scene)",
	},
}

// Humanize lower-cases a code and replaces underscores with spaces.
func Humanize(code string) string {
	return strings.ToLower(strings.ReplaceAll(code, "_", " "))
}

// DecodeCameraAngle maps a camera angle code to its display label.
// Unknown codes get a humanized label, no meaning, and are not humanizing.
func DecodeCameraAngle(code string) domain.CameraAngleLabel {
	if label, ok := cameraAngles[code]; ok {
		return label
	}
	return domain.CameraAngleLabel{Label: Humanize(code)}
}

// IsHumanizingAngle reports whether the angle places the viewer level with
// or below the subject.
func IsHumanizingAngle(code string) bool {
	return cameraAngles[code].IsHumanizing
}

// DecodeTitleType maps a title categorization to its display label.
// A named individual carries the name itself as the detail.
// Parameters:
//   - categorization: title_categorization code from the subject annotation.
//   - name: name_if_present, nil when the VLM found no name.
// Returns:
//   - domain.TitleTypeLabel: decoded label; unknown codes get a humanized label.
func DecodeTitleType(categorization string, name *string) domain.TitleTypeLabel {
	if categorization == "INDIVIDUAL_NAME" && name != nil && *name != "" {
		return domain.TitleTypeLabel{Label: "Named", Detail: *name, IsHumanizing: true}
	}
	if label, ok := titleTypes[categorization]; ok {
		return label
	}
	return domain.TitleTypeLabel{Label: Humanize(categorization)}
}

// AngleRhetoric returns the rhetoric for a camera angle, or the zero value.
func AngleRhetoric(code string) domain.AngleRhetoric {
	return angleRhetoric[code]
}

// LightingRhetoric returns the rhetoric for a key light direction, or the zero value.
func LightingRhetoric(code string) domain.LightingRhetoric {
	return lightingRhetoric[code]
}

// CropRhetoric returns the rhetoric for a crop type, or the zero value.
func CropRhetoric(code string) domain.CropRhetoric {
	return cropRhetoric[code]
}

// OrUnknown substitutes Unknown for an empty code.
func OrUnknown(code string) string {
	if code == "" {
		return Unknown
	}
	return code
}
