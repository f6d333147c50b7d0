// Package sequencerepo keeps the per-period order counters.
package sequencerepo

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceDTO is one counter row. LastNumber is the highest number handed out
// for Period.
type SequenceDTO struct {
	Period     string `gorm:"primaryKey;size:6"`
	LastNumber int64  `gorm:"not null"`
}

// TableName overrides GORM's pluralization.
func (SequenceDTO) TableName() string {
	return "order_sequences"
}

// GormSequenceRepository implements ports.SequenceRepository using GORM.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a sequence repository bound to db, which
// should be the caller's transaction.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next reserves the next number of period.
//
// The row is created at zero if missing, then read under a row lock and
// incremented. Concurrent callers queue on the lock (PostgreSQL, MySQL) or on
// the immediate write transaction (SQLite), so no number is handed out twice.
func (r *GormSequenceRepository) Next(ctx context.Context, period kernel.Period) (int64, error) {
	db := r.db.WithContext(ctx)

	seed := SequenceDTO{Period: period.String()}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, fmt.Errorf("seed sequence %s: %w", period, err)
	}

	var row SequenceDTO
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "period = ?", period.String()).Error; err != nil {
		return 0, fmt.Errorf("lock sequence %s: %w", period, err)
	}

	next := row.LastNumber + 1
	if err := db.Model(&SequenceDTO{}).
		Where("period = ?", period.String()).
		Update("last_number", next).Error; err != nil {
		return 0, fmt.Errorf("advance sequence %s: %w", period, err)
	}

	return next, nil
}
