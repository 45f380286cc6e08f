package bot

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/bp-monitor/internal/bot/handlers"
	"github.com/vladimiradmaev/bp-monitor/internal/bot/menus"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
)

// requestTimeout bounds every Bot API call and must exceed the long-poll timeout
const requestTimeout = 90 * time.Second

type Bot struct {
	api           *tgbotapi.BotAPI
	updateHandler *handlers.UpdateHandler
}

func NewBot(token string, deps handlers.Dependencies) (*Bot, error) {
	client := &http.Client{Timeout: requestTimeout}
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Info("Bot authorized", "account", api.Self.UserName)
	return &Bot{
		api:           api,
		updateHandler: handlers.NewUpdateHandler(api, deps),
	}, nil
}

// Notifier returns a notifier that sends through this bot's account
func (b *Bot) Notifier() *Notifier {
	return NewNotifier(b.api)
}

// Start long-polls for updates until ctx is cancelled
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("Bot is now listening for updates")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot is shutting down")
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message != nil && update.Message.From != nil {
				logger.Debug("Received message", "user_id", update.Message.From.ID, "text", update.Message.Text)
			}
			if err := b.updateHandler.Handle(ctx, update); err != nil {
				logger.Error("Error handling update", "update_id", update.UpdateID, "error", err)
			}
		}
	}
}

// Notifier delivers plain text messages to Telegram chats
type Notifier struct {
	api menus.Sender
}

func NewNotifier(api menus.Sender) *Notifier {
	return &Notifier{api: api}
}

// Notify sends text to chatID
func (n *Notifier) Notify(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return menus.SendText(n.api, chatID, text)
}
