package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/timmy/machines-eye/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedBatchSize bounds the rows written per INSERT statement.
const seedBatchSize = 100

// WorkRepository persists the corpus in the SQL store.
// The store is a publishing target; the running service only reads it.
type WorkRepository struct {
	db *gorm.DB
}

// NewWorkRepository creates a new WorkRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *WorkRepository: repository instance bound to db.
func NewWorkRepository(db *gorm.DB) *WorkRepository {
	return &WorkRepository{db: db}
}

// UpsertAll writes every record keyed by object_id, keeping corpus order
// in the position column.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - works: records in corpus order.
// Returns:
//   - error: non-nil if any batch fails; the transaction is rolled back.
func (r *WorkRepository) UpsertAll(ctx context.Context, works []domain.ArtworkRecord) error {
	if len(works) == 0 {
		return nil
	}

	rows := make([]domain.WorkRow, len(works))
	for i, w := range works {
		rows[i] = domain.NewWorkRow(i, w)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "object_id"}},
			UpdateAll: true,
		}).CreateInBatches(rows, seedBatchSize).Error
	})
}

// ReplaceAll removes every stored work and writes the given records.
func (r *WorkRepository) ReplaceAll(ctx context.Context, works []domain.ArtworkRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.WorkRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear works: %w", err)
		}
		return NewWorkRepository(tx).UpsertAll(ctx, works)
	})
}

// ListAll returns every stored record in corpus order.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []domain.ArtworkRecord: decoded records.
//   - error: non-nil if the query fails.
func (r *WorkRepository) ListAll(ctx context.Context) ([]domain.ArtworkRecord, error) {
	var rows []domain.WorkRow
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	works := make([]domain.ArtworkRecord, len(rows))
	for i, row := range rows {
		works[i] = row.Record()
	}
	return works, nil
}

// GetByObjectID retrieves a stored record.
// Returns:
//   - *domain.ArtworkRecord: record if found.
//   - bool: false when no row exists.
//   - error: non-nil if the query fails for another reason.
func (r *WorkRepository) GetByObjectID(ctx context.Context, id int) (*domain.ArtworkRecord, bool, error) {
	var row domain.WorkRow
	err := r.db.WithContext(ctx).First(&row, "object_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	record := row.Record()
	return &record, true, nil
}

// CountByStudyGroup returns how many stored works belong to a study group.
func (r *WorkRepository) CountByStudyGroup(ctx context.Context, group string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.WorkRow{}).Where("study_group = ?", group).Count(&count).Error
	return count, err
}

// Count returns the number of stored works.
func (r *WorkRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.WorkRow{}).Count(&count).Error
	return count, err
}
