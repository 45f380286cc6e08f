package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vladimiradmaev/bp-monitor/internal/database"
	"github.com/vladimiradmaev/bp-monitor/internal/domain"
)

// UserRepository handles user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate returns the user with telegramID, registering a patient on first contact
func (r *UserRepository) GetOrCreate(ctx context.Context, telegramID int64, fullName string) (*database.User, bool, error) {
	user, err := r.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return user, false, nil
	}
	if err != ErrNotFound {
		return nil, false, err
	}

	user = &database.User{
		TelegramID: telegramID,
		FullName:   fullName,
		Role:       domain.RolePatient,
	}
	if err := r.Create(ctx, user); err != nil {
		return nil, false, err
	}

	return user, true, nil
}

// Create inserts a user
func (r *UserRepository) Create(ctx context.Context, user *database.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByTelegramID gets a user by their Telegram ID
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*database.User, error) {
	var user database.User
	if err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// ListPatients returns one page of patients in registration order
func (r *UserRepository) ListPatients(ctx context.Context, skip, limit int) ([]database.User, error) {
	users := []database.User{}
	err := r.db.WithContext(ctx).
		Where("role = ?", domain.RolePatient).
		Order("created_at, id").
		Offset(skip).
		Limit(limit).
		Find(&users).Error
	return users, err
}

// AllPatients returns every patient
func (r *UserRepository) AllPatients(ctx context.Context) ([]database.User, error) {
	users := []database.User{}
	err := r.db.WithContext(ctx).
		Where("role = ?", domain.RolePatient).
		Order("created_at, id").
		Find(&users).Error
	return users, err
}
