package migrations

import (
	"stagedesk/configs/configslog"
	"stagedesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateEventProductTable creates the booking line items. Events and products
// must already exist.
func MigrateEventProductTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating event_products table...")
	if err := db.AutoMigrate(&models.EventProduct{}); err != nil {
		configslog.Log.Error("Failed to migrate event_products table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("event_products table migrated successfully")
	return nil
}
