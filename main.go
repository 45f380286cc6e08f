package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vladimiradmaev/bp-monitor/internal/api"
	"github.com/vladimiradmaev/bp-monitor/internal/bot"
	"github.com/vladimiradmaev/bp-monitor/internal/bot/handlers"
	"github.com/vladimiradmaev/bp-monitor/internal/config"
	"github.com/vladimiradmaev/bp-monitor/internal/dashboard"
	"github.com/vladimiradmaev/bp-monitor/internal/database"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
	"github.com/vladimiradmaev/bp-monitor/internal/ratelimit"
	"github.com/vladimiradmaev/bp-monitor/internal/repository"
	"github.com/vladimiradmaev/bp-monitor/internal/scheduler"
	"github.com/vladimiradmaev/bp-monitor/internal/services"
	"github.com/vladimiradmaev/bp-monitor/internal/session"
)

// Five dashboard login attempts per minute per client
const (
	loginRatePerSecond = 5.0 / 60
	loginBurst         = 5
)

// Idle per-client limiters are forgotten after limiterMaxIdle
const (
	limiterPruneInterval = 10 * time.Minute
	limiterMaxIdle       = time.Hour
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting BP-Monitor", "env", cfg.Env, "db_driver", cfg.DB.Driver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	store := repository.NewStore(db)

	// Initialize services
	userService := services.NewUserService(store)
	measurementService := services.NewMeasurementService(store)
	patientService := services.NewPatientService(store)
	logger.Info("Services initialized successfully")

	telegramBot, err := bot.NewBot(cfg.TelegramToken, handlers.Dependencies{
		UserService:    userService,
		MeasurementSvc: measurementService,
		Location:       cfg.Reminder.Location,
	})
	if err != nil {
		logger.Fatal("Failed to create bot", "error", err)
	}

	reminderService := services.NewReminderService(store, telegramBot.Notifier(), cfg.Reminder.Location)
	sched, err := scheduler.New(cfg.Reminder.Cron, cfg.Reminder.Location, reminderService)
	if err != nil {
		logger.Fatal("Failed to create scheduler", "error", err)
	}

	sessions, closeSessions := newSessionStore(cfg.Redis)
	defer closeSessions()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	apiLimiter := ratelimit.NewStore(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	loginLimiter := ratelimit.NewStore(loginRatePerSecond, loginBurst)

	rs := &api.RestfulServer{
		Server:           api.NewEngine(),
		Patients:         patientService,
		RateLimiterStore: apiLimiter,
	}
	rs.Setup()

	doctorDashboard := &dashboard.Dashboard{
		Patients:     patientService,
		Sessions:     sessions,
		Credentials:  dashboard.NewStaticPassword(cfg.Dashboard.Password),
		LoginLimiter: loginLimiter,
		Location:     cfg.Reminder.Location,
		SecureCookie: cfg.IsProduction(),
	}
	doctorDashboard.Register(rs.Server)

	srv := &http.Server{
		Addr:              cfg.HTTP.HostPort,
		Handler:           rs.Server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting HTTP server", "addr", cfg.HTTP.HostPort, "rate_limit_rps", cfg.HTTP.RateLimitRPS, "rate_limit_burst", cfg.HTTP.RateLimitBurst)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		sched.Start(ctx)
	}()

	for _, limiter := range []*ratelimit.Store{apiLimiter, loginLimiter} {
		limiter := limiter
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter.RunPruner(ctx, limiterPruneInterval, limiterMaxIdle)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Bot stopped with error", "error", err)
			stop()
		}
	}()

	logger.Info("BP-Monitor is running. Press Ctrl+C to stop.")
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	wg.Wait()
	logger.Info("BP-Monitor stopped")
}

func newSessionStore(cfg config.RedisConfig) (session.Store, func()) {
	addr := cfg.Addr()
	if addr == "" {
		logger.Info("Using in-memory dashboard sessions")
		return session.NewMemoryStore(session.DefaultTTL), func() {}
	}

	store, err := session.NewRedisStore(addr, session.DefaultTTL)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "addr", addr, "error", err)
	}
	logger.Info("Using Redis dashboard sessions", "addr", addr)
	return store, func() { _ = store.Close() }
}
