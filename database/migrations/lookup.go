package migrations

import (
	"stagedesk/configs/configslog"
	"stagedesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateLookupTables creates every fixed-vocabulary table. These carry no
// foreign keys and must exist before the entity tables reference them.
func MigrateLookupTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating lookup tables...")
	err := db.AutoMigrate(
		&models.EntityType{},
		&models.PhoneType{},
		&models.ElectronicAddressType{},
		&models.OrganizationType{},
		&models.EventType{},
		&models.EventStatus{},
		&models.ReferralSource{},
		&models.Role{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate lookup tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Lookup tables migrated successfully")
	return nil
}
