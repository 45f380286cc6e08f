package services_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"github.com/vladimiradmaev/bp-monitor/internal/database"
	"github.com/vladimiradmaev/bp-monitor/internal/database/dbtest"
	"github.com/vladimiradmaev/bp-monitor/internal/domain"
	"github.com/vladimiradmaev/bp-monitor/internal/domain/mocks"
	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
	"github.com/vladimiradmaev/bp-monitor/internal/repository"
	"github.com/vladimiradmaev/bp-monitor/internal/services"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewStore(dbtest.New(t))
}

func addPatient(t *testing.T, store *repository.Store, telegramID int64, name string) *database.User {
	t.Helper()
	user := &database.User{TelegramID: telegramID, FullName: name}
	require.NoError(t, store.Users.Create(context.Background(), user))
	return user
}

func addMeasurement(t *testing.T, store *repository.Store, user *database.User, sys, dia int, at time.Time) {
	t.Helper()
	require.NoError(t, store.Measurements.Create(context.Background(), &database.Measurement{
		UserID: user.ID, Sys: sys, Dia: dia, Pulse: 70, CreatedAt: at,
	}))
}

func countMeasurements(t *testing.T, store *repository.Store) int64 {
	t.Helper()
	var count int64
	require.NoError(t, store.GetDB().Model(&database.Measurement{}).Count(&count).Error)
	return count
}

func TestParseReading(t *testing.T) {
	valid := map[string]domain.Reading{
		"120 80 70":        {Sys: 120, Dia: 80, Pulse: 70},
		"  135\t85\n72  ":  {Sys: 135, Dia: 85, Pulse: 72},
		"99999 0 007":      {Sys: 99999, Dia: 0, Pulse: 7},
		"120    80     70": {Sys: 120, Dia: 80, Pulse: 70},
	}
	for input, want := range valid {
		got, err := services.ParseReading(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	invalid := []string{
		"",
		"120 80",
		"120 80 70 60",
		"120/80 70",
		"-120 80 70",
		"+120 80 70",
		"120 80 7a",
		"١٢٠ 80 70",
		"120.5 80 70",
		strconv.FormatUint(math.MaxUint64, 10) + "0 80 70",
	}
	for _, input := range invalid {
		_, err := services.ParseReading(input)
		assert.ErrorIs(t, err, apperrors.ErrInvalidReading, "%q", input)
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err), "%q", input)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	users := services.NewUserService(store)

	first, err := users.Register(ctx, 10, "Olena Koval")
	require.NoError(t, err)
	second, err := users.Register(ctx, 10, "Olena Koval")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.RolePatient, second.Role)
}

func TestRecordStoresReading(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	addPatient(t, store, 10, "Olena")
	svc := services.NewMeasurementService(store)

	reading, err := svc.Record(ctx, 10, "145 85 70")
	require.NoError(t, err)
	assert.Equal(t, domain.Reading{Sys: 145, Dia: 85, Pulse: 70}, *reading)
	assert.Equal(t, int64(1), countMeasurements(t, store))

	history, err := svc.History(ctx, 10, 5)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 145, history[0].Sys)
	assert.Nil(t, history[0].Comment)
}

func TestRecordRejectsWithoutWriting(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	addPatient(t, store, 10, "Olena")
	svc := services.NewMeasurementService(store)

	_, err := svc.Record(ctx, 10, "120 80")
	assert.ErrorIs(t, err, apperrors.ErrInvalidReading)

	// validation happens before the registration check
	_, err = svc.Record(ctx, 999, "abc")
	assert.ErrorIs(t, err, apperrors.ErrInvalidReading)

	_, err = svc.Record(ctx, 999, "120 80 70")
	assert.ErrorIs(t, err, apperrors.ErrNotRegistered)

	assert.Zero(t, countMeasurements(t, store))
}

func TestHistoryNewestFirstAndNotRegistered(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	user := addPatient(t, store, 10, "Olena")
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		addMeasurement(t, store, user, 110+i, 70, base.Add(time.Duration(i)*time.Hour))
	}
	svc := services.NewMeasurementService(store)

	history, err := svc.History(ctx, 10, 5)
	require.NoError(t, err)
	require.Len(t, history, 5)
	for i, m := range history {
		assert.Equal(t, 116-i, m.Sys)
	}

	_, err = svc.History(ctx, 11, 5)
	assert.ErrorIs(t, err, apperrors.ErrNotRegistered)
}

func TestListSummaries(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, store.Users.Create(ctx, &database.User{TelegramID: 1, FullName: "Doctor", Role: domain.RoleDoctor, CreatedAt: base}))
	quiet := &database.User{TelegramID: 2, FullName: "Quiet", CreatedAt: base.Add(time.Minute)}
	require.NoError(t, store.Users.Create(ctx, quiet))
	busy := &database.User{TelegramID: 3, FullName: "Busy", CreatedAt: base.Add(2 * time.Minute)}
	require.NoError(t, store.Users.Create(ctx, busy))

	addMeasurement(t, store, busy, 150, 95, base)
	addMeasurement(t, store, busy, 118, 76, base.Add(time.Hour))

	summaries, err := services.NewPatientService(store).ListSummaries(ctx, 0, 50)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, int64(2), summaries[0].TelegramID)
	assert.Nil(t, summaries[0].LastSys)
	assert.Nil(t, summaries[0].LastDia)
	assert.False(t, summaries[0].IsCritical)
	assert.Equal(t, 120, summaries[0].TargetSys)

	assert.Equal(t, int64(3), summaries[1].TelegramID)
	require.NotNil(t, summaries[1].LastSys)
	assert.Equal(t, 118, *summaries[1].LastSys)
	assert.Equal(t, 76, *summaries[1].LastDia)
	assert.False(t, summaries[1].IsCritical, "only the latest reading counts")
}

func TestListSummariesCriticalFromLatest(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	user := addPatient(t, store, 3, "Busy")
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	addMeasurement(t, store, user, 120, 80, base)
	addMeasurement(t, store, user, 141, 80, base.Add(time.Hour))

	summaries, err := services.NewPatientService(store).ListSummaries(ctx, 0, 50)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].IsCritical)
}

func TestListSummariesEmptyAndBounds(t *testing.T) {
	ctx := context.Background()
	svc := services.NewPatientService(newStore(t))

	summaries, err := svc.ListSummaries(ctx, 0, 50)
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)

	for _, c := range []struct{ skip, limit int }{{-1, 10}, {0, 0}, {0, 201}} {
		_, err := svc.ListSummaries(ctx, c.skip, c.limit)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPagination, "skip=%d limit=%d", c.skip, c.limit)
	}

	_, err = svc.ListSummaries(ctx, 0, 200)
	assert.NoError(t, err)
}

func TestGetPatientStats(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	doctor := &database.User{TelegramID: 1, FullName: "Doctor", Role: domain.RoleDoctor}
	require.NoError(t, store.Users.Create(ctx, doctor))
	addMeasurement(t, store, doctor, 141, 80, base)
	addMeasurement(t, store, doctor, 140, 90, base.Add(time.Hour))
	addMeasurement(t, store, doctor, 120, 91, base.Add(2*time.Hour))

	svc := services.NewPatientService(store)

	stats, err := svc.GetPatientStats(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, stats.ID)
	assert.Equal(t, "Doctor", stats.FullName)
	require.Len(t, stats.Measurements, 3)
	assert.Equal(t, 120, stats.Measurements[0].Sys)
	assert.True(t, stats.Measurements[0].IsCritical)
	assert.False(t, stats.Measurements[1].IsCritical)
	assert.True(t, stats.Measurements[2].IsCritical)

	limited, err := svc.GetPatientStats(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, limited.Measurements, 2)

	_, err = svc.GetPatientStats(ctx, 404, 100)
	assert.ErrorIs(t, err, apperrors.ErrPatientNotFound)

	_, err = svc.GetPatientStats(ctx, 1, 501)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPagination)
	_, err = svc.GetPatientStats(ctx, 1, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPagination)
}

func TestGetPatientStatsWithoutReadings(t *testing.T) {
	store := newStore(t)
	addPatient(t, store, 5, "New")

	stats, err := services.NewPatientService(store).GetPatientStats(context.Background(), 5, 100)
	require.NoError(t, err)
	assert.NotNil(t, stats.Measurements)
	assert.Empty(t, stats.Measurements)
}

func TestSendDailyReminders(t *testing.T) {
	var logs bytes.Buffer
	logger.SetTestCaptureLogger(&logs, zapcore.DebugLevel)
	t.Cleanup(logger.SetTestLoggerNop)

	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)
	now := time.Date(2026, 5, 12, 19, 0, 0, 0, kyiv)

	ctx := context.Background()
	store := newStore(t)
	measured := addPatient(t, store, 101, "Measured")
	failing := addPatient(t, store, 102, "Failing")
	addPatient(t, store, 103, "Idle")
	require.NoError(t, store.Users.Create(ctx, &database.User{TelegramID: 1, FullName: "Doctor", Role: domain.RoleDoctor}))

	addMeasurement(t, store, measured, 120, 80, now.Add(-2*time.Hour))
	// measured yesterday only
	addMeasurement(t, store, failing, 120, 80, time.Date(2026, 5, 11, 23, 30, 0, 0, kyiv))

	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), int64(102), services.ReminderText).Return(errors.New("bot was blocked by the user"))
	notifier.EXPECT().Notify(gomock.Any(), int64(103), services.ReminderText).Return(nil)

	svc := services.NewReminderService(store, notifier, kyiv, services.WithClock(func() time.Time { return now }))
	result, err := svc.SendDailyReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, services.SweepResult{Checked: 3, Notified: 1, Failed: 1}, result)

	assert.Contains(t, logs.String(), "bot was blocked by the user")
	assert.Contains(t, logs.String(), "Daily reminder sweep finished")
}

func TestSendDailyRemindersUsesReminderTimezone(t *testing.T) {
	logger.SetTestLoggerNop()
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	store := newStore(t)
	user := addPatient(t, store, 7, "Late")
	// 00:30 in Kyiv is still the previous day in UTC
	now := time.Date(2026, 5, 12, 0, 30, 0, 0, kyiv)
	addMeasurement(t, store, user, 120, 80, now.Add(-10*time.Minute))

	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)

	svc := services.NewReminderService(store, notifier, kyiv, services.WithClock(func() time.Time { return now }))
	result, err := svc.SendDailyReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Notified)

	notifier.EXPECT().Notify(gomock.Any(), int64(7), gomock.Any()).Return(nil)
	later := services.NewReminderService(store, notifier, kyiv, services.WithClock(func() time.Time { return now.Add(24 * time.Hour) }))
	result, err = later.SendDailyReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Notified)
}

func TestSendDailyRemindersNoPatients(t *testing.T) {
	logger.SetTestLoggerNop()
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)

	svc := services.NewReminderService(newStore(t), notifier, time.UTC)
	result, err := svc.SendDailyReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, services.SweepResult{}, result)
}

func TestSendDailyRemindersManyPatients(t *testing.T) {
	logger.SetTestLoggerNop()
	store := newStore(t)
	for i := 0; i < 10; i++ {
		addPatient(t, store, int64(1000+i), fmt.Sprintf("P%d", i))
	}

	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(10)

	result, err := services.NewReminderService(store, notifier, time.UTC).SendDailyReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, result.Notified)
}
