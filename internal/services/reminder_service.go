package services

import (
	"context"
	"time"

	"github.com/vladimiradmaev/bp-monitor/internal/domain"
	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
	"github.com/vladimiradmaev/bp-monitor/internal/repository"
	"github.com/vladimiradmaev/bp-monitor/internal/utils"
)

// ReminderText is sent to patients who have not logged a reading today
const ReminderText = "🔔 Ви сьогодні ще не записували показники тиску. Будь ласка, зробіть це!"

// SweepResult counts what one reminder sweep did
type SweepResult struct {
	Checked  int
	Notified int
	Failed   int
	Skipped  int
}

// ReminderService nudges patients that have not measured on the current day
type ReminderService struct {
	store    *repository.Store
	notifier domain.Notifier
	location *time.Location
	now      func() time.Time
	errs     *apperrors.Handler
}

// ReminderOption customizes a ReminderService
type ReminderOption func(*ReminderService)

// WithClock replaces time.Now
func WithClock(now func() time.Time) ReminderOption {
	return func(s *ReminderService) {
		s.now = now
	}
}

// NewReminderService creates a sweep that compares calendar dates in loc
func NewReminderService(store *repository.Store, notifier domain.Notifier, loc *time.Location, opts ...ReminderOption) *ReminderService {
	if loc == nil {
		loc = time.UTC
	}
	s := &ReminderService{
		store:    store,
		notifier: notifier,
		location: loc,
		now:      time.Now,
		errs:     apperrors.NewHandler(logger.GetLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendDailyReminders notifies every patient without a reading today.
// A failure for one patient never stops the sweep.
func (s *ReminderService) SendDailyReminders(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	patients, err := s.store.Users.AllPatients(ctx)
	if err != nil {
		return result, apperrors.NewDatabaseError(err)
	}

	today := s.now()
	for _, patient := range patients {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		result.Checked++

		measurements, err := s.store.Measurements.AllForUser(ctx, patient.ID)
		if err != nil {
			s.errs.Handle(ctx, apperrors.NewDatabaseError(err).WithContext("telegram_id", patient.TelegramID))
			result.Skipped++
			continue
		}

		measuredToday := false
		for _, m := range measurements {
			if utils.SameDay(m.CreatedAt, today, s.location) {
				measuredToday = true
				break
			}
		}
		if measuredToday {
			continue
		}

		if err := s.notifier.Notify(ctx, patient.TelegramID, ReminderText); err != nil {
			s.errs.Handle(ctx, apperrors.NewDeliveryError(err, patient.TelegramID))
			result.Failed++
			continue
		}
		result.Notified++
	}

	logger.Info("Daily reminder sweep finished",
		"checked", result.Checked,
		"notified", result.Notified,
		"failed", result.Failed,
		"skipped", result.Skipped)

	return result, nil
}
