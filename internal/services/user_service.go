package services

import (
	"context"

	"github.com/vladimiradmaev/bp-monitor/internal/database"
	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
	"github.com/vladimiradmaev/bp-monitor/internal/repository"
)

type UserService struct {
	store *repository.Store
}

func NewUserService(store *repository.Store) *UserService {
	return &UserService{store: store}
}

// Register creates a patient on first contact. Repeated calls return the existing user.
func (s *UserService) Register(ctx context.Context, telegramID int64, fullName string) (*database.User, error) {
	user, created, err := s.store.Users.GetOrCreate(ctx, telegramID, fullName)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err).WithContext("telegram_id", telegramID)
	}

	if created {
		logger.Info("Registered new patient", "telegram_id", telegramID, "user_id", user.ID)
	}

	return user, nil
}
