package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"casefile/internal/infrastructure/persistence/models"
	"casefile/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a new migration manager for the given environment
func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case "debug", "development":
		strategy = NewGormAutoMigrateStrategy()
	default:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGooseStrategy(scriptsPath)
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Run executes pending migrations for all persistence models
func (m *Manager) Run(db *gorm.DB) error {
	m.logger.Infow("running migrations", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, allModels()...); err != nil {
		return fmt.Errorf("migration strategy %s failed: %w", m.strategy.GetName(), err)
	}

	return nil
}

// allModels returns every model the schema consists of, in dependency order.
func allModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CaseModel{},
		&models.RespondentModel{},
		&models.AttachmentModel{},
	}
}
