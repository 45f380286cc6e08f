package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vladimiradmaev/bp-monitor/internal/database"
	"github.com/vladimiradmaev/bp-monitor/internal/domain"
	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
	"github.com/vladimiradmaev/bp-monitor/internal/repository"
)

// Bounds for the doctor facing read paths
const (
	MaxSummaryLimit = 200
	MaxStatsLimit   = 500
)

// PatientService builds the doctor's view of patients
type PatientService struct {
	store *repository.Store
}

func NewPatientService(store *repository.Store) *PatientService {
	return &PatientService{store: store}
}

// ListSummaries returns one page of patients with their latest reading
func (s *PatientService) ListSummaries(ctx context.Context, skip, limit int) ([]domain.PatientSummary, error) {
	if skip < 0 || limit < 1 || limit > MaxSummaryLimit {
		return nil, apperrors.NewValidationError(apperrors.ErrInvalidPagination.Code,
			fmt.Sprintf("skip must be >= 0 and limit between 1 and %d", MaxSummaryLimit))
	}

	patients, err := s.store.Users.ListPatients(ctx, skip, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	summaries := make([]domain.PatientSummary, 0, len(patients))
	for _, p := range patients {
		latest, err := s.store.Measurements.Latest(ctx, p.ID)
		if err != nil {
			return nil, apperrors.NewDatabaseError(err).WithContext("user_id", p.ID)
		}
		summaries = append(summaries, summarize(p, latest))
	}

	return summaries, nil
}

func summarize(u database.User, latest *database.Measurement) domain.PatientSummary {
	summary := domain.PatientSummary{
		ID:         u.ID,
		FullName:   u.FullName,
		TelegramID: u.TelegramID,
		TargetSys:  u.TargetSys,
		TargetDia:  u.TargetDia,
	}
	if latest != nil {
		sys, dia := latest.Sys, latest.Dia
		summary.LastSys = &sys
		summary.LastDia = &dia
		summary.IsCritical = domain.IsCritical(sys, dia)
	}
	return summary
}

// GetPatientStats returns the user with telegramID and up to limit readings, newest first.
// Any role is accepted.
func (s *PatientService) GetPatientStats(ctx context.Context, telegramID int64, limit int) (*domain.PatientStats, error) {
	if limit < 1 || limit > MaxStatsLimit {
		return nil, apperrors.NewValidationError(apperrors.ErrInvalidPagination.Code,
			fmt.Sprintf("limit must be between 1 and %d", MaxStatsLimit))
	}

	user, err := s.store.Users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(telegramID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	measurements, err := s.store.Measurements.Recent(ctx, user.ID, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err).WithContext("telegram_id", telegramID)
	}

	entries := make([]domain.MeasurementEntry, 0, len(measurements))
	for _, m := range measurements {
		entries = append(entries, domain.MeasurementEntry{
			ID:         m.ID,
			Sys:        m.Sys,
			Dia:        m.Dia,
			Pulse:      m.Pulse,
			Comment:    m.Comment,
			CreatedAt:  m.CreatedAt,
			IsCritical: domain.IsCritical(m.Sys, m.Dia),
		})
	}

	return &domain.PatientStats{
		ID:           user.ID,
		FullName:     user.FullName,
		TelegramID:   user.TelegramID,
		TargetSys:    user.TargetSys,
		TargetDia:    user.TargetDia,
		Measurements: entries,
	}, nil
}
