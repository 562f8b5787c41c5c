package migration

import (
	"fmt"

	"gorm.io/gorm"

	"bureau/internal/shared/logger"
)

// Manager handles database migrations with a selectable strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(strategyName, scriptsPath string) (*Manager, error) {
	var strategy Strategy
	switch strategyName {
	case "goose":
		strategy = NewGooseStrategy(scriptsPath)
	case "automigrate", "":
		strategy = NewAutoMigrateStrategy()
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", strategyName)
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration"),
	}, nil
}

func (m *Manager) Run(db *gorm.DB) error {
	m.logger.Infow("running migrations", "strategy", m.strategy.GetName())
	return m.strategy.Migrate(db, AutoMigrateModels()...)
}
