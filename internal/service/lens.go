package service

import (
	"strings"

	"github.com/timmy/machines-eye/internal/domain"
	"github.com/timmy/machines-eye/internal/rhetoric"
)

// WorkLookup resolves artwork records by object ID.
type WorkLookup interface {
	GetByObjectID(id int) (*domain.ArtworkRecord, bool)
}

// LensService assembles presentation-ready analyses of single works.
type LensService struct {
	works WorkLookup
}

// NewLensService creates a new LensService.
// Parameters:
//   - works: corpus lookup the views are built from.
// Returns:
//   - *LensService: service bound to works.
func NewLensService(works WorkLookup) *LensService {
	return &LensService{works: works}
}

// GetLensData builds the lens view for a work.
// Parameters:
//   - objectID: object_id of the work.
// Returns:
//   - *domain.LensView: assembled view.
//   - bool: false when the corpus has no such work.
func (s *LensService) GetLensData(objectID int) (*domain.LensView, bool) {
	record, ok := s.works.GetByObjectID(objectID)
	if !ok {
		return nil, false
	}
	view := BuildLensView(record)
	return &view, true
}

// BuildLensView derives a lens view from a single record. Missing codes
// decode as rhetoric.Unknown and scores pass through untouched.
func BuildLensView(record *domain.ArtworkRecord) domain.LensView {
	angleRaw := rhetoric.OrUnknown(record.Composition.CameraAngle)
	titleRaw := rhetoric.OrUnknown(record.Subject.TitleCategorization)
	lightingRaw := rhetoric.OrUnknown(record.Lighting.KeyDirection)
	cropRaw := rhetoric.OrUnknown(record.Composition.CropType)

	angle := rhetoric.DecodeCameraAngle(angleRaw)
	title := rhetoric.DecodeTitleType(titleRaw, record.Subject.NameIfPresent)

	setupQuality := "unknown"
	if record.Lighting.KeyQuality != "" {
		setupQuality = strings.ToLower(record.Lighting.KeyQuality)
	}

	contrast := record.Comparative.KeyContrastPoints
	if contrast == nil {
		contrast = []string{}
	}

	thesis := record.Comparative.ThesisSupport
	if thesis == "" {
		thesis = domain.ThesisSupportNeutral
	}

	return domain.LensView{
		ObjectID:          record.ObjectID,
		Title:             record.Title,
		Photographer:      record.Photographer,
		IsInsider:         record.IsInsider(),
		HumanizationScore: record.Scores.Humanization,
		OtheringScore:     record.Scores.Othering,
		CameraAngle: domain.LensCameraAngle{
			Raw:          angleRaw,
			Label:        angle.Label,
			Meaning:      angle.Meaning,
			IsHumanizing: angle.IsHumanizing,
		},
		TitleType: domain.LensTitleType{
			Raw:          titleRaw,
			Label:        title.Label,
			Detail:       title.Detail,
			IsHumanizing: title.IsHumanizing,
		},
		HasHumanSubject: record.HasHumanSubject,
		SubjectName:     nonEmpty(record.Subject.NameIfPresent),
		Gaze:            nonEmpty(record.Subject.GazeDirection),
		Awareness:       nonEmpty(record.Subject.ApparentAwareness),
		Lighting: domain.LensLighting{
			Direction: lightingRaw,
			Quality:   rhetoric.OrUnknown(record.Lighting.KeyQuality),
		},
		CameraSetup: domain.CameraSetup{
			Angle: domain.SetupAngle{
				Type:          rhetoric.Humanize(angleRaw),
				AngleRhetoric: rhetoric.AngleRhetoric(angleRaw),
				IsHumanizing:  rhetoric.IsHumanizingAngle(angleRaw),
			},
			Lighting: domain.SetupLighting{
				Type:             rhetoric.Humanize(lightingRaw),
				LightingRhetoric: rhetoric.LightingRhetoric(lightingRaw),
			},
			Crop: domain.SetupCrop{
				Type:         rhetoric.Humanize(cropRaw),
				CropRhetoric: rhetoric.CropRhetoric(cropRaw),
			},
			Quality: setupQuality,
		},
		Observation:       record.WallText.Observation,
		Question:          record.WallText.Question,
		KeyContrastPoints: contrast,
		ThesisSupport:     thesis,
	}
}

// nonEmpty treats an empty optional string as absent.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
