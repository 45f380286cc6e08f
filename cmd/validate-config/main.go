package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vladimiradmaev/bp-monitor/internal/config"
)

func main() {
	fmt.Println("🔍 Перевірка конфігурації...")

	// Завантажуємо .env файл, якщо він є
	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  .env файл не знайдено: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Помилка валідації конфігурації:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Конфігурація валідна!")
	fmt.Printf("📋 Деталі конфігурації:\n")
	fmt.Printf("  - Environment: %s\n", cfg.Env)
	fmt.Printf("  - Telegram Token: %s\n", maskToken(cfg.TelegramToken))
	fmt.Printf("  - Dashboard Password: %s\n", maskToken(cfg.Dashboard.Password))
	fmt.Printf("  - DB Driver: %s\n", cfg.DB.Driver)
	if cfg.DB.Driver == "sqlite" {
		fmt.Printf("  - DB Path: %s\n", cfg.DB.Path)
	} else {
		fmt.Printf("  - DB Host: %s\n", cfg.DB.Host)
		fmt.Printf("  - DB Port: %s\n", cfg.DB.Port)
		fmt.Printf("  - DB User: %s\n", cfg.DB.User)
		fmt.Printf("  - DB Password: %s\n", maskToken(cfg.DB.Password))
		fmt.Printf("  - DB Name: %s\n", cfg.DB.DBName)
	}
	fmt.Printf("  - HTTP: %s (rate %.2f/s, burst %d)\n", cfg.HTTP.HostPort, cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	fmt.Printf("  - Reminder: %q in %s\n", cfg.Reminder.Cron, cfg.Reminder.Timezone)
	if addr := cfg.Redis.Addr(); addr != "" {
		fmt.Printf("  - Redis: %s\n", addr)
	} else {
		fmt.Printf("  - Redis: <не налаштовано, сесії в пам'яті>\n")
	}
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}

func maskToken(token string) string {
	if token == "" {
		return "<не встановлено>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
