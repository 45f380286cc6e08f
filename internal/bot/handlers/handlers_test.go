package handlers_test

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimiradmaev/bp-monitor/internal/bot/handlers"
	"github.com/vladimiradmaev/bp-monitor/internal/database"
	"github.com/vladimiradmaev/bp-monitor/internal/database/dbtest"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
	"github.com/vladimiradmaev/bp-monitor/internal/repository"
	"github.com/vladimiradmaev/bp-monitor/internal/services"
)

type recordingSender struct {
	sent []tgbotapi.MessageConfig
}

func (s *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.sent = append(s.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func (s *recordingSender) last(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	require.NotEmpty(t, s.sent)
	return s.sent[len(s.sent)-1]
}

type fixture struct {
	store   *repository.Store
	sender  *recordingSender
	handler *handlers.UpdateHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger.SetTestLoggerNop()

	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	store := repository.NewStore(dbtest.New(t))
	sender := &recordingSender{}
	deps := handlers.Dependencies{
		UserService:    services.NewUserService(store),
		MeasurementSvc: services.NewMeasurementService(store),
		Location:       kyiv,
	}
	return &fixture{store: store, sender: sender, handler: handlers.NewUpdateHandler(sender, deps)}
}

func (f *fixture) send(t *testing.T, userID int64, text string) tgbotapi.MessageConfig {
	t.Helper()
	msg := &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: userID},
		From: &tgbotapi.User{ID: userID, FirstName: "Olena", LastName: "Koval"},
	}
	if len(text) > 0 && text[0] == '/' {
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}}
	}
	require.NoError(t, f.handler.Handle(context.Background(), tgbotapi.Update{Message: msg}))
	return f.sender.last(t)
}

func (f *fixture) measurementCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.store.GetDB().Model(&database.Measurement{}).Count(&count).Error)
	return count
}

func TestStartRegistersOnce(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, 10, "/start")
	assert.Contains(t, reply.Text, "Привіт, Olena Koval!")
	assert.IsType(t, tgbotapi.ReplyKeyboardMarkup{}, reply.ReplyMarkup)

	f.send(t, 10, "/start")

	var count int64
	require.NoError(t, f.store.GetDB().Model(&database.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	user, err := f.store.Users.GetByTelegramID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Olena Koval", user.FullName)
}

func TestReadingBeforeRegistration(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, 10, "120 80 70")
	assert.Contains(t, reply.Text, "/start")
	assert.Zero(t, f.measurementCount(t))

	reply = f.send(t, 10, "/history")
	assert.Contains(t, reply.Text, "не зареєстровані")
}

func TestReadingIsRecorded(t *testing.T) {
	f := newFixture(t)
	f.send(t, 10, "/start")

	reply := f.send(t, 10, "120 80 70")
	assert.Contains(t, reply.Text, "Тиск: 120/80")
	assert.Contains(t, reply.Text, "Пульс: 70")
	assert.NotContains(t, reply.Text, "Увага")
	assert.Equal(t, int64(1), f.measurementCount(t))
}

func TestBoundaryReadingGetsWarning(t *testing.T) {
	f := newFixture(t)
	f.send(t, 10, "/start")

	reply := f.send(t, 10, "140 80 70")
	assert.Contains(t, reply.Text, "Увага")

	reply = f.send(t, 10, "139 89 70")
	assert.NotContains(t, reply.Text, "Увага")
}

func TestInvalidReadingIsRejected(t *testing.T) {
	f := newFixture(t)
	f.send(t, 10, "/start")

	for _, text := range []string{"120 80", "hello", "120/80 70", "120 80 70 1"} {
		reply := f.send(t, 10, text)
		assert.Contains(t, reply.Text, "рівно 3 числа", text)
	}
	assert.Zero(t, f.measurementCount(t))
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	f.send(t, 10, "/start")

	reply := f.send(t, 10, "/history")
	assert.Contains(t, reply.Text, "немає збережених записів")

	user, err := f.store.Users.GetByTelegramID(context.Background(), 10)
	require.NoError(t, err)
	base := time.Date(2026, 7, 4, 6, 5, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		require.NoError(t, f.store.Measurements.Create(context.Background(), &database.Measurement{
			UserID: user.ID, Sys: 110 + i, Dia: 70, Pulse: 60, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	reply = f.send(t, 10, "/history")
	assert.Contains(t, reply.Text, "04.07.2026 09:10 | 🩸 115/70 | ❤️ 60")
	assert.Contains(t, reply.Text, "04.07.2026 09:06 | 🩸 111/70 | ❤️ 60")
	assert.NotContains(t, reply.Text, "110/70")
}

func TestHelpAndUnknownCommand(t *testing.T) {
	f := newFixture(t)

	reply := f.send(t, 10, "/help")
	assert.Contains(t, reply.Text, "/history")

	reply = f.send(t, 10, "/weather")
	assert.Contains(t, reply.Text, "Невідома команда")
}

func TestIgnoresUpdatesWithoutMessage(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.handler.Handle(context.Background(), tgbotapi.Update{UpdateID: 1}))
	assert.Empty(t, f.sender.sent)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Olena Koval", handlers.FullName(&tgbotapi.User{FirstName: "Olena", LastName: "Koval"}))
	assert.Equal(t, "Olena", handlers.FullName(&tgbotapi.User{FirstName: "Olena"}))
	assert.Equal(t, "okoval", handlers.FullName(&tgbotapi.User{UserName: "okoval"}))
}
