package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// models lists the schema in dependency order: referenced tables first.
func models() []modelInfo {
	return []modelInfo{
		{&domain.Account{}, "accounts"},
		{&domain.Game{}, "games"},
		{&domain.Location{}, "locations"},
		{&domain.Event{}, "events"},
		{&domain.Participant{}, "participants"},
		{&domain.Favorite{}, "favorites"},
	}
}

// AutoMigrate creates or updates every table, index and foreign key
// declared on the domain structs. It is the only migration path.
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	for _, m := range models() {
		existed := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Debug("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", existed),
		)
	}

	logger.Info("Auto-migration completed", zap.Int("tables", len(models())))
	return nil
}
