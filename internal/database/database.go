package database

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vladimiradmaev/bp-monitor/internal/config"
	"github.com/vladimiradmaev/bp-monitor/internal/database/migrations"
	"github.com/vladimiradmaev/bp-monitor/internal/logger"
)

// Open connects to the configured database and brings the schema up to date.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		return NewSQLiteDB(cfg.Path)
	case "postgres", "":
		return NewPostgresDB(cfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Info("Database connection established and migrations completed", "dialector", db.Dialector.Name())
	return db, nil
}

// NewSQLiteDB opens a sqlite database file. Foreign keys are switched on per
// connection through the DSN so cascades behave as on postgres.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(SQLiteDSN(path)), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("failed to set sqlite journal mode: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Info("Database connection established and migrations completed", "dialector", db.Dialector.Name(), "path", path)
	return db, nil
}

// SQLiteDSN appends the foreign key switch to a sqlite file name or URI.
func SQLiteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=1"
	}
	return path + "?_foreign_keys=1"
}

// Migrate creates the tables and applies pending SQL migrations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &Measurement{}, &Reminder{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	registry, err := migrations.Default()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	if err := registry.Run(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// gormConfig routes gorm's own messages into the application logger.
// A missing row is ordinary traffic (unknown telegram ids), so it is not logged.
func gormConfig() *gorm.Config {
	writer := zap.NewStdLog(logger.GetLogger().Desugar().Named("gorm"))
	return &gorm.Config{
		Logger: gormlogger.New(writer, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}
