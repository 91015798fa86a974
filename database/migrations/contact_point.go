package migrations

import (
	"stagedesk/configs/configslog"
	"stagedesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateContactPointTables creates the dependent rows keyed by entity id.
func MigrateContactPointTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating addresses, phones and electronic_addresses tables...")
	err := db.AutoMigrate(
		&models.Address{},
		&models.Phone{},
		&models.ElectronicAddress{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate contact point tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Contact point tables migrated successfully")
	return nil
}
