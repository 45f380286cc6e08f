package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/bp-monitor/internal/bot/menus"
	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
)

// UpdateHandler handles telegram updates and coordinates other handlers
type UpdateHandler struct {
	commandHandler *CommandHandler
	textHandler    *TextHandler
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(api menus.Sender, deps Dependencies) *UpdateHandler {
	errs := apperrors.NewHandler(logger.GetLogger())
	return &UpdateHandler{
		commandHandler: NewCommandHandler(api, deps, errs),
		textHandler:    NewTextHandler(api, deps, errs),
	}
}

// Handle processes a telegram update. Users are registered only by /start.
func (h *UpdateHandler) Handle(ctx context.Context, update tgbotapi.Update) error {
	message := update.Message
	if message == nil || message.From == nil || message.Chat == nil {
		return nil
	}

	if message.IsCommand() {
		return h.commandHandler.Handle(ctx, message)
	}

	if message.Text != "" {
		return h.textHandler.Handle(ctx, message)
	}

	return nil
}
