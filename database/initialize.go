package database

import (
	"stagedesk/configs/configslog"
	"stagedesk/database/migrations"
	"stagedesk/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders inside one transaction. A panic or
// a recorded error rolls everything back.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither -migrate nor -seed given, nothing to do.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Could not begin database transaction", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization failed (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Rolling back after initialization error.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback failed", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		configslog.SLog.Info("Running migrations...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migration failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrations finished.")
	} else {
		configslog.SLog.Info("Migrate flag not set, skipping migrations.")
	}

	if seed {
		configslog.SLog.Info("Running seeders...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeders finished.")
	} else {
		configslog.SLog.Info("Seed flag not set, skipping seeders.")
	}

	configslog.SLog.Info("Committing...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit failed", zap.Error(err))
		return
	}

	configslog.SLog.Info("Database initialization finished successfully")
}

// RunMigrationsInOrder creates the tables parents-first: lookups, then the
// entity tables, then every dependent table keyed by them.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateLookupTables(db); err != nil {
		configslog.Log.Error("Lookup table migration failed", zap.Error(err))
		return err
	}
	if err := migrations.MigrateEntityTables(db); err != nil {
		configslog.Log.Error("Entity table migration failed", zap.Error(err))
		return err
	}
	if err := migrations.MigrateContactPointTables(db); err != nil {
		configslog.Log.Error("Contact point table migration failed", zap.Error(err))
		return err
	}
	if err := migrations.MigrateEventProductTable(db); err != nil {
		configslog.Log.Error("event_products table migration failed", zap.Error(err))
		return err
	}
	if err := migrations.MigrateTaskTables(db); err != nil {
		configslog.Log.Error("tasks table migration failed", zap.Error(err))
		return err
	}
	configslog.SLog.Info("All migrations ran successfully.")
	return nil
}

// CheckAndRunSeeders fills the lookup vocabularies. All seeders are no-ops for
// rows that already exist.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Seeding entity types...")
	if err := seeders.SeedEntityTypes(db); err != nil {
		configslog.Log.Error("Entity type seeding failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Seeding lookup vocabularies...")
	if err := seeders.SeedLookupTables(db); err != nil {
		configslog.Log.Error("Lookup table seeding failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info("All seeders checked/ran successfully.")
	return nil
}
