package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vladimiradmaev/bp-monitor/internal/database"
)

// MeasurementRepository handles blood pressure readings
type MeasurementRepository struct {
	db *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

// Create inserts a reading
func (r *MeasurementRepository) Create(ctx context.Context, m *database.Measurement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Latest returns the most recent reading of a user, or nil when there is none
func (r *MeasurementRepository) Latest(ctx context.Context, userID uuid.UUID) (*database.Measurement, error) {
	recent, err := r.Recent(ctx, userID, 1)
	if err != nil || len(recent) == 0 {
		return nil, err
	}
	return &recent[0], nil
}

// Recent returns up to n readings of a user, newest first
func (r *MeasurementRepository) Recent(ctx context.Context, userID uuid.UUID, n int) ([]database.Measurement, error) {
	measurements := []database.Measurement{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(n).
		Find(&measurements).Error
	return measurements, err
}

// AllForUser returns the complete history of a user
func (r *MeasurementRepository) AllForUser(ctx context.Context, userID uuid.UUID) ([]database.Measurement, error) {
	measurements := []database.Measurement{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&measurements).Error
	return measurements, err
}
