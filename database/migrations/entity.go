package migrations

import (
	"stagedesk/configs/configslog"
	"stagedesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateEntityTables creates the abstract entities table and every concrete
// extension keyed by it.
func MigrateEntityTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating entities and concrete record tables...")
	err := db.AutoMigrate(
		&models.Entity{},
		&models.Person{},
		&models.Organization{},
		&models.Product{},
		&models.Entertainer{},
		&models.Event{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate entity tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Entity tables migrated successfully")
	return nil
}
