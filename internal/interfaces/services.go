package interfaces

import (
	"context"

	"github.com/vladimiradmaev/bp-monitor/internal/database"
	"github.com/vladimiradmaev/bp-monitor/internal/domain"
	"github.com/vladimiradmaev/bp-monitor/internal/services"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// UserServiceInterface defines the contract for user operations
type UserServiceInterface interface {
	Register(ctx context.Context, telegramID int64, fullName string) (*database.User, error)
}

// MeasurementServiceInterface defines the contract for recording and reading back measurements
type MeasurementServiceInterface interface {
	Record(ctx context.Context, telegramID int64, text string) (*domain.Reading, error)
	History(ctx context.Context, telegramID int64, n int) ([]database.Measurement, error)
}

// PatientServiceInterface defines the contract for the doctor's read paths
type PatientServiceInterface interface {
	ListSummaries(ctx context.Context, skip, limit int) ([]domain.PatientSummary, error)
	GetPatientStats(ctx context.Context, telegramID int64, limit int) (*domain.PatientStats, error)
}

// ReminderServiceInterface defines the contract for the daily reminder sweep
type ReminderServiceInterface interface {
	SendDailyReminders(ctx context.Context) (services.SweepResult, error)
}

var (
	_ UserServiceInterface        = (*services.UserService)(nil)
	_ MeasurementServiceInterface = (*services.MeasurementService)(nil)
	_ PatientServiceInterface     = (*services.PatientService)(nil)
	_ ReminderServiceInterface    = (*services.ReminderService)(nil)
)
