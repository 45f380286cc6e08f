package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("record not found")

// Store groups the repositories that share one database handle
type Store struct {
	db           *gorm.DB
	Users        *UserRepository
	Measurements *MeasurementRepository
}

// NewStore creates repositories over db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Users:        NewUserRepository(db),
		Measurements: NewMeasurementRepository(db),
	}
}

// GetDB returns the underlying GORM database instance
func (s *Store) GetDB() *gorm.DB {
	return s.db
}

// Transaction runs fn as one unit of work. Repositories handed to fn are
// bound to the transaction; returning an error rolls it back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
