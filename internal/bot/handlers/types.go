package handlers

import (
	"time"

	"github.com/vladimiradmaev/bp-monitor/internal/interfaces"
)

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	UserService    interfaces.UserServiceInterface
	MeasurementSvc interfaces.MeasurementServiceInterface
	// Location is used to render reading times
	Location *time.Location
}

// Replies shared by several handlers
const (
	msgNotRegistered   = "❌ Ви ще не зареєстровані. Натисніть /start"
	msgRegisterFirst   = "❌ Будь ласка, спочатку натисніть /start для реєстрації."
	msgInvalidReading  = "❌ Введіть рівно 3 числа через пробіл.\nНаприклад: 120 80 70"
	msgNoReadings      = "У вас ще немає збережених записів. Відправте мені свої показники (наприклад: 120 80 70)."
	msgTryAgain        = "Сталася помилка. Будь ласка, спробуйте ще раз пізніше."
	msgUnknownCommand  = "Невідома команда. Скористайтеся /help, щоб переглянути доступні команди."
	msgPressureWarning = "\n\n⚠️ Увага: Ваш тиск вище норми."
	historySize        = 5
)
