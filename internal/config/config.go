package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/vladimiradmaev/bp-monitor/internal/logger"
)

type Config struct {
	TelegramToken string
	Env           string
	DB            DBConfig
	HTTP          HTTPConfig
	Dashboard     DashboardConfig
	Reminder      ReminderConfig
	Redis         RedisConfig
	Logger        LoggerConfig
}

type DBConfig struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string // sqlite file path
}

type HTTPConfig struct {
	HostPort       string
	RateLimitRPS   float64
	RateLimitBurst int
}

type DashboardConfig struct {
	Password string
}

type ReminderConfig struct {
	Cron     string
	Timezone string
	Location *time.Location
}

// RedisConfig is optional; an empty Host selects in-memory dashboard sessions.
type RedisConfig struct {
	Host string
	Port string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	var errs []error

	rps, err := strconv.ParseFloat(getEnvOrDefault("RATE_LIMIT_RPS", "10"), 64)
	if err != nil || rps < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS must be a non-negative number"))
	}
	burst, err := strconv.Atoi(getEnvOrDefault("RATE_LIMIT_BURST", "20"))
	if err != nil || burst < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be a non-negative integer"))
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		Env:           getEnvOrDefault("GO_ENV", "development"),
		DB: DBConfig{
			Driver:   strings.ToLower(getEnvOrDefault("DB_DRIVER", "postgres")),
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "bp_monitor"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
			Path:     getEnvOrDefault("DB_PATH", "bp_monitor.db"),
		},
		HTTP: HTTPConfig{
			HostPort:       getEnvOrDefault("HTTP_HOST_PORT", ":8000"),
			RateLimitRPS:   rps,
			RateLimitBurst: burst,
		},
		Dashboard: DashboardConfig{
			Password: os.Getenv("DASHBOARD_PASSWORD"),
		},
		Reminder: ReminderConfig{
			Cron:     getEnvOrDefault("REMINDER_CRON", "0 19 * * *"),
			Timezone: getEnvOrDefault("REMINDER_TIMEZONE", "Europe/Kyiv"),
		},
		Redis: RedisConfig{
			Host: os.Getenv("REDIS_HOST"),
			Port: getEnvOrDefault("REDIS_PORT", "6379"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	if cfg.TelegramToken == "" {
		errs = append(errs, fmt.Errorf("TELEGRAM_BOT_TOKEN is required"))
	}
	if cfg.Dashboard.Password == "" {
		errs = append(errs, fmt.Errorf("DASHBOARD_PASSWORD is required"))
	}
	if cfg.DB.Driver != "postgres" && cfg.DB.Driver != "sqlite" {
		errs = append(errs, fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", cfg.DB.Driver))
	}

	loc, err := time.LoadLocation(cfg.Reminder.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("REMINDER_TIMEZONE %q: %w", cfg.Reminder.Timezone, err))
	}
	cfg.Reminder.Location = loc

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// IsProduction reports whether GO_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN builds the postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Addr returns host:port of the redis server, or "" when redis is not configured.
func (c RedisConfig) Addr() string {
	if c.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
