package migration

import (
	"context"
	"errors"

	coreport "github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
	"github.com/mkarimi-dev/finance-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"
)

// Manager creates the schema on startup. Creation is idempotent: running it
// against an up-to-date database is a no-op.
type Manager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema to the current version. A failure here is
// fatal to the caller: the service must not serve requests over a store
// with a missing or partial schema.
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.SchemaVersion{}); err != nil {
		m.logger.Error("Failed to create schema version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.currentVersion(context.Background())
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.db.AutoMigrate(&model.Transaction{}); err != nil {
		m.logger.Error("Failed to migrate transactions table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.setVersion(context.Background(), CurrentSchemaVersion, "transactions table"); err != nil {
		m.logger.Error("Failed to record schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// currentVersion gets the most recently applied schema version
func (m *Manager) currentVersion(ctx context.Context) (string, error) {
	var version model.SchemaVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return version.Version, nil
}

// setVersion records a newly applied schema version
func (m *Manager) setVersion(ctx context.Context, version string, details string) error {
	record := model.SchemaVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}
	return m.db.WithContext(ctx).Create(&record).Error
}
