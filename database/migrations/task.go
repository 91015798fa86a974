package migrations

import (
	"stagedesk/configs/configslog"
	"stagedesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateTaskTables creates the tasks table and its link tables.
func MigrateTaskTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating tasks table...")
	if err := db.AutoMigrate(&models.Task{}); err != nil {
		configslog.Log.Error("Failed to migrate tasks table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("tasks table migrated successfully")
	return nil
}
