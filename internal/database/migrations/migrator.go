package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/vladimiradmaev/bp-monitor/internal/logger"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration represents a database migration
type Migration struct {
	ID string
	Up func(*gorm.DB) error
}

// Registry holds migrations keyed by id; ids are applied in lexical order.
type Registry struct {
	migrations map[string]Migration
}

func NewRegistry() *Registry {
	return &Registry{migrations: make(map[string]Migration)}
}

// Register adds a new migration to the registry
func (r *Registry) Register(id string, up func(*gorm.DB) error) {
	r.migrations[id] = Migration{
		ID: id,
		Up: up,
	}
}

// IDs returns the registered migration ids in execution order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.migrations))
	for id := range r.migrations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MigrationRecord represents a record of executed migrations
type MigrationRecord struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

// Run executes all pending migrations
func (r *Registry) Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var executed []MigrationRecord
	if err := db.Find(&executed).Error; err != nil {
		return fmt.Errorf("failed to get executed migrations: %w", err)
	}

	executedMap := make(map[string]bool)
	for _, m := range executed {
		executedMap[m.ID] = true
	}

	for _, id := range r.IDs() {
		if executedMap[id] {
			continue
		}

		migration := r.migrations[id]
		logger.Info("Running migration", "id", id)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			return tx.Create(&MigrationRecord{ID: id}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to run migration %s: %w", id, err)
		}
		logger.Info("Completed migration", "id", id)
	}

	return nil
}

// LoadSQLMigrations registers every .sql file found at the root of fsys
func (r *Registry) LoadSQLMigrations(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		statement := string(content)
		r.Register(strings.TrimSuffix(entry.Name(), ".sql"), func(db *gorm.DB) error {
			return db.Exec(statement).Error
		})
	}

	return nil
}

// Default returns a registry loaded with the embedded SQL migrations.
func Default() (*Registry, error) {
	sub, err := fs.Sub(sqlFiles, "sql")
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	if err := r.LoadSQLMigrations(sub); err != nil {
		return nil, err
	}
	return r, nil
}
