package rhetoric

import "testing"

func TestDecodeCameraAngle(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		label        string
		meaning      string
		isHumanizing bool
	}{
		{"eye level", "EYE_LEVEL", "Eye Level", "Equals the subject", true},
		{"low heroic", "LOW_HEROIC", "Low Angle", "Elevates the subject", true},
		{"high dominant", "HIGH_DOMINANT", "High Angle", "Looks down on subject", false},
		{"slightly above", "SLIGHTLY_ABOVE", "Slightly Above", "Subtle dominance", false},
		{"unknown code", "DUTCH_TILT", "dutch tilt", "", false},
		{"missing code", Unknown, "unknown", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeCameraAngle(tc.code)
			if got.Label != tc.label {
				t.Errorf("expected label %q, got %q", tc.label, got.Label)
			}
			if got.Meaning != tc.meaning {
				t.Errorf("expected meaning %q, got %q", tc.meaning, got.Meaning)
			}
			if got.IsHumanizing != tc.isHumanizing {
				t.Errorf("expected is_humanizing %v, got %v", tc.isHumanizing, got.IsHumanizing)
			}
			if IsHumanizingAngle(tc.code) != tc.isHumanizing {
				t.Errorf("IsHumanizingAngle(%q) disagrees with decoder", tc.code)
			}
		})
	}
}

func TestDecodeTitleType(t *testing.T) {
	name := "Li Wei"
	empty := ""

	tests := []struct {
		name         string
		code         string
		subject      *string
		label        string
		detail       string
		isHumanizing bool
	}{
		{"named with name", "INDIVIDUAL_NAME", &name, "Named", "Li Wei", true},
		{"named without name", "INDIVIDUAL_NAME", nil, "Named", "Individual identified", true},
		{"named with empty name", "INDIVIDUAL_NAME", &empty, "Named", "Individual identified", true},
		{"location", "LOCATION", nil, "Location", "Place-based title", false},
		{"generic type", "GENERIC_TYPE", nil, "Type", "Anonymous category", false},
		{"occupation", "OCCUPATION", nil, "Role", "Occupation-based", false},
		{"ethnicity", "ETHNICITY", nil, "Ethnicity", "Ethnic category", false},
		{"untitled", "UNTITLED", nil, "Untitled", "No identification", false},
		{"name ignored for other codes", "LOCATION", &name, "Location", "Place-based title", false},
		{"unknown code", "EVENT_NAME", nil, "event name", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeTitleType(tc.code, tc.subject)
			if got.Label != tc.label || got.Detail != tc.detail || got.IsHumanizing != tc.isHumanizing {
				t.Errorf("expected {%q %q %v}, got {%q %q %v}",
					tc.label, tc.detail, tc.isHumanizing, got.Label, got.Detail, got.IsHumanizing)
			}
		})
	}
}

func TestRhetoricTables(t *testing.T) {
	if got := AngleRhetoric("HIGH_DOMINANT"); got.Meaning != "Power over subject, surveillance" {
		t.Errorf("unexpected angle rhetoric: %+v", got)
	}
	if got := LightingRhetoric("REMBRANDT"); got.Style != "Triangle of light on cheek" {
		t.Errorf("unexpected lighting rhetoric: %+v", got)
	}
	if got := CropRhetoric("ENVIRONMENTAL"); got.Distance != "Public zone—contextual" {
		t.Errorf("unexpected crop rhetoric: %+v", got)
	}

	// Unknown codes are total and degrade to empty fields.
	if got := AngleRhetoric(Unknown); got.Meaning != "" || got.Cultural != "" || got.Effect != "" {
		t.Errorf("expected empty angle rhetoric, got %+v", got)
	}
	if got := LightingRhetoric("NATURAL"); got.Meaning != "" || got.Style != "" || got.Effect != "" {
		t.Errorf("expected empty lighting rhetoric, got %+v", got)
	}
	if got := CropRhetoric(""); got.Meaning != "" || got.Distance != "" || got.Effect != "" {
		t.Errorf("expected empty crop rhetoric, got %+v", got)
	}
}

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"EYE_LEVEL":       "eye level",
		"HEAD_SHOULDERS":  "head shoulders",
		"FRONT":           "front",
		"":                "",
		"ALREADY lower_x": "already lower x",
	}
	for in, want := range tests {
		if got := Humanize(in); got != want {
			t.Errorf("Humanize(%q): expected %q, got %q", in, want, got)
		}
	}
	if OrUnknown("") != Unknown || OrUnknown("RIM") != "RIM" {
		t.Error("OrUnknown did not substitute as expected")
	}
}
