package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/bp-monitor/internal/bot/menus"
	apperrors "github.com/vladimiradmaev/bp-monitor/internal/errors"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api  menus.Sender
	deps Dependencies
	errs *apperrors.Handler
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api menus.Sender, deps Dependencies, errs *apperrors.Handler) *CommandHandler {
	return &CommandHandler{
		api:  api,
		deps: deps,
		errs: errs,
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message) error {
	logger.Infof("Handling command %s from user %d", message.Command(), message.From.ID)

	switch message.Command() {
	case "start":
		return h.handleStart(ctx, message)
	case "history":
		return h.handleHistory(ctx, message)
	case "help":
		return menus.SendText(h.api, message.Chat.ID, menus.HelpText)
	default:
		return menus.SendText(h.api, message.Chat.ID, msgUnknownCommand)
	}
}

func (h *CommandHandler) handleStart(ctx context.Context, message *tgbotapi.Message) error {
	fullName := FullName(message.From)
	if _, err := h.deps.UserService.Register(ctx, message.From.ID, fullName); err != nil {
		h.errs.Handle(ctx, err)
		return menus.SendText(h.api, message.Chat.ID, msgTryAgain)
	}
	return menus.SendMainMenu(h.api, message.Chat.ID, fullName)
}

func (h *CommandHandler) handleHistory(ctx context.Context, message *tgbotapi.Message) error {
	measurements, err := h.deps.MeasurementSvc.History(ctx, message.From.ID, historySize)
	if err != nil {
		h.errs.Handle(ctx, err)
		if apperrors.TypeOf(err) == apperrors.ErrorTypeNotRegistered {
			return menus.SendText(h.api, message.Chat.ID, msgNotRegistered)
		}
		return menus.SendText(h.api, message.Chat.ID, msgTryAgain)
	}

	if len(measurements) == 0 {
		return menus.SendText(h.api, message.Chat.ID, msgNoReadings)
	}
	return menus.SendHistory(h.api, message.Chat.ID, measurements, h.deps.Location)
}

// FullName joins the first and last name of a Telegram user
func FullName(u *tgbotapi.User) string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		name = u.UserName
	}
	return name
}
