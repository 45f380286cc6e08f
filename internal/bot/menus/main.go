package menus

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/bp-monitor/internal/bot/keyboards"
	"github.com/vladimiradmaev/bp-monitor/internal/database"
	"github.com/vladimiradmaev/bp-monitor/internal/utils"
)

// Sender is the part of tgbotapi.BotAPI used to reply
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// HelpText explains how to use the bot
const HelpText = `Доступні команди:
/start - Реєстрація та головне меню
/history - Останні 5 замірів
/help - Показати це повідомлення

Щоб записати тиск, відправте 3 числа через пробіл:
верхній (САТ), нижній (ДАТ) та пульс.
Наприклад: 120 80 70`

// SendMainMenu greets the user and attaches the reply keyboard
func SendMainMenu(api Sender, chatID int64, fullName string) error {
	text := fmt.Sprintf(`Привіт, %s! 👋

Я ваш особистий щоденник тиску.
🔹 Щоб записати дані, відправте 3 цифри: 120 80 70
🔹 Щоб подивитися історію, натисніть /history`, fullName)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// SendHistory lists readings newest first, rendering times in loc
func SendHistory(api Sender, chatID int64, measurements []database.Measurement, loc *time.Location) error {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Ваші останні %d замірів:\n\n", len(measurements))
	for _, m := range measurements {
		fmt.Fprintf(&b, "📅 %s | 🩸 %d/%d | ❤️ %d\n", utils.FormatReadingTime(m.CreatedAt, loc), m.Sys, m.Dia, m.Pulse)
	}

	_, err := api.Send(tgbotapi.NewMessage(chatID, b.String()))
	return err
}

// SendText sends a plain message
func SendText(api Sender, chatID int64, text string) error {
	_, err := api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
