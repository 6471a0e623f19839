package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// WorkPayload stores a full ArtworkRecord as JSON in the database.
type WorkPayload ArtworkRecord

// Value implements the driver.Valuer interface for database serialization.
// Parameters: none.
// Returns:
//   - driver.Value: JSON-encoded string representation of the record.
//   - error: non-nil if marshaling fails.
func (p WorkPayload) Value() (driver.Value, error) {
	b, err := json.Marshal(ArtworkRecord(p))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
// Parameters:
//   - value: raw database value to decode.
// Returns:
//   - error: non-nil if decoding fails or the type is unexpected.
func (p *WorkPayload) Scan(value interface{}) error {
	if value == nil {
		*p = WorkPayload{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan WorkPayload")
		}
		bytes = []byte(str)
	}
	var record ArtworkRecord
	if err := json.Unmarshal(bytes, &record); err != nil {
		return err
	}
	*p = WorkPayload(record)
	return nil
}

// WorkRow is one corpus entry persisted in the SQL store.
// The indexed columns mirror fields of the payload so the table can be
// browsed without decoding JSON; the payload is the source of truth.
type WorkRow struct {
	ObjectID     int         `gorm:"primaryKey;autoIncrement:false" json:"object_id"`
	Position     int         `gorm:"not null;index:idx_works_position" json:"position"`
	Title        string      `gorm:"type:text" json:"title"`
	Photographer string      `gorm:"type:text;index:idx_works_photographer" json:"photographer"`
	StudyGroup   string      `gorm:"type:text;index:idx_works_study_group" json:"study_group"`
	Payload      WorkPayload `gorm:"type:text;not null" json:"payload"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName returns the database table name for WorkRow.
func (WorkRow) TableName() string {
	return "works"
}

// NewWorkRow builds a row for the record at the given corpus position.
func NewWorkRow(position int, record ArtworkRecord) WorkRow {
	return WorkRow{
		ObjectID:     record.ObjectID,
		Position:     position,
		Title:        record.Title,
		Photographer: record.Photographer,
		StudyGroup:   record.StudyGroup,
		Payload:      WorkPayload(record),
	}
}

// Record returns the decoded artwork record.
func (w WorkRow) Record() ArtworkRecord {
	return ArtworkRecord(w.Payload)
}
