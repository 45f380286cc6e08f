package keyboards

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MainMenu creates the persistent reply keyboard shown after /start
func MainMenu() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/history"),
			tgbotapi.NewKeyboardButton("/help"),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}
