package domain

// ExhibitionDocument is the top-level shape of the curated gallery file.
type ExhibitionDocument struct {
	Exhibition  ExhibitionInfo `json:"exhibition"`
	Mantlepiece Mantlepiece    `json:"mantlepiece"`
	Sections    []Section      `json:"sections"`
}

// ExhibitionInfo holds the headline copy.
type ExhibitionInfo struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Mantlepiece is the landing pairing shown in the hero.
// Gap is derived at load time and not read from the document.
type Mantlepiece struct {
	Asian          ArtworkSummary `json:"asian"`
	Western        ArtworkSummary `json:"western"`
	CuratorialNote string         `json:"curatorial_note,omitempty"`
	Gap            float64        `json:"gap" jsonschema:"-"`
}

// ArtworkSummary is a projection of ArtworkRecord carried by pairs.
type ArtworkSummary struct {
	ObjectID     int     `json:"object_id"`
	Title        string  `json:"title"`
	Photographer string  `json:"photographer"`
	Humanization float64 `json:"humanization"`
	Othering     float64 `json:"othering"`
	ImagePath    string  `json:"image_path"`
}

// Pair is a curated side-by-side comparison. Left is the insider side and
// Right the outsider side by content convention only.
type Pair struct {
	ID       string         `json:"id"`
	WallText string         `json:"wall_text"`
	Left     ArtworkSummary `json:"left"`
	Right    ArtworkSummary `json:"right"`
}

// Section is a thematic group of pairs. Pair order is display order.
type Section struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thesis    string `json:"thesis"`
	IntroText string `json:"intro_text"`
	Pairs     []Pair `json:"pairs"`
}
