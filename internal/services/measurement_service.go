package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/vladimiradmaev/bp-monitor/internal/database"
	"github.com/vladimiradmaev/bp-monitor/internal/domain"
	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
	"github.com/vladimiradmaev/bp-monitor/internal/repository"
)

type MeasurementService struct {
	store *repository.Store
}

func NewMeasurementService(store *repository.Store) *MeasurementService {
	return &MeasurementService{store: store}
}

// ParseReading turns "sys dia pulse" into a Reading. Tokens are separated by
// any whitespace and must consist of ASCII digits only.
func ParseReading(text string) (domain.Reading, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return domain.Reading{}, apperrors.ErrInvalidReading
	}

	values := make([]int, 0, 3)
	for _, field := range fields {
		if !isDigits(field) {
			return domain.Reading{}, apperrors.ErrInvalidReading
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return domain.Reading{}, apperrors.Wrap(err, apperrors.ErrorTypeValidation, apperrors.ErrInvalidReading.Code, "Value is out of range").
				WithContext("token", field)
		}
		values = append(values, v)
	}

	return domain.Reading{Sys: values[0], Dia: values[1], Pulse: values[2]}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// Record validates text and stores it as a new reading of the user.
// Nothing is written when validation fails or the user is unknown.
func (s *MeasurementService) Record(ctx context.Context, telegramID int64, text string) (*domain.Reading, error) {
	reading, err := ParseReading(text)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		user, err := tx.Users.GetByTelegramID(ctx, telegramID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.NewNotRegisteredError(telegramID)
			}
			return apperrors.NewDatabaseError(err)
		}

		measurement := &database.Measurement{
			UserID: user.ID,
			Sys:    reading.Sys,
			Dia:    reading.Dia,
			Pulse:  reading.Pulse,
		}
		if err := tx.Measurements.Create(ctx, measurement); err != nil {
			return apperrors.NewDatabaseError(err).WithContext("telegram_id", telegramID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Measurement recorded", "telegram_id", telegramID, "sys", reading.Sys, "dia", reading.Dia, "pulse", reading.Pulse)
	return &reading, nil
}

// History returns up to n readings of the user, newest first
func (s *MeasurementService) History(ctx context.Context, telegramID int64, n int) ([]database.Measurement, error) {
	user, err := s.store.Users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotRegisteredError(telegramID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	measurements, err := s.store.Measurements.Recent(ctx, user.ID, n)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err).WithContext("telegram_id", telegramID)
	}
	return measurements, nil
}
