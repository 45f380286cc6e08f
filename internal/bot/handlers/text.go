package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/bp-monitor/internal/bot/menus"
	"github.com/vladimiradmaev/bp-monitor/internal/domain"
	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
)

// TextHandler records readings sent as free text
type TextHandler struct {
	api  menus.Sender
	deps Dependencies
	errs *apperrors.Handler
}

// NewTextHandler creates a new text handler
func NewTextHandler(api menus.Sender, deps Dependencies, errs *apperrors.Handler) *TextHandler {
	return &TextHandler{
		api:  api,
		deps: deps,
		errs: errs,
	}
}

// Handle processes a text message
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message) error {
	reading, err := h.deps.MeasurementSvc.Record(ctx, message.From.ID, message.Text)
	if err != nil {
		h.errs.Handle(ctx, err)
		return menus.SendText(h.api, message.Chat.ID, replyForError(err))
	}

	return menus.SendText(h.api, message.Chat.ID, confirmation(*reading))
}

func replyForError(err error) string {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		return msgInvalidReading
	case apperrors.ErrorTypeNotRegistered:
		return msgRegisterFirst
	default:
		return msgTryAgain
	}
}

func confirmation(r domain.Reading) string {
	text := fmt.Sprintf("✅ Дані збережено!\n🩸 Тиск: %d/%d\n❤️ Пульс: %d", r.Sys, r.Dia, r.Pulse)
	if domain.NeedsAttention(r.Sys, r.Dia) {
		text += msgPressureWarning
	}
	return text
}
