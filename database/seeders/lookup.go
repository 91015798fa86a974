package seeders

import (
	"errors"

	"stagedesk/configs/configslog"
	"stagedesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedEntityTypes writes the four discriminator rows with their fixed ids.
// Every concrete record references one of these by constant, so the ids must
// never drift.
func SeedEntityTypes(db *gorm.DB) error {
	entityTypes := []models.EntityType{
		{BaseModel: models.BaseModel{ID: models.EntityTypePerson}, Name: models.EntityTypeNamePerson, Description: "A single human contact"},
		{BaseModel: models.BaseModel{ID: models.EntityTypeOrganization}, Name: models.EntityTypeNameOrganization, Description: "A company, venue or client body"},
		{BaseModel: models.BaseModel{ID: models.EntityTypeProduct}, Name: models.EntityTypeNameProduct, Description: "A bookable product or act"},
		{BaseModel: models.BaseModel{ID: models.EntityTypeEvent}, Name: models.EntityTypeNameEvent, Description: "A dated engagement"},
	}

	for _, entityType := range entityTypes {
		var existing models.EntityType
		result := db.Where("id = ?", entityType.ID).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Entity type check failed", zap.Uint("id", entityType.ID), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&entityType).Error; err != nil {
			configslog.Log.Error("Entity type could not be created", zap.String("name", entityType.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Entity type '%s' created (ID: %d).", entityType.Name, entityType.ID)
	}
	return nil
}

// SeedLookupTables fills every descriptive vocabulary used by the forms.
// Existing rows are left alone so reseeding is safe.
func SeedLookupTables(db *gorm.DB) error {
	if err := seedByDescription(db, "phone types", []string{"Office", "Mobile", "Home", "Fax"}, func(d string) models.PhoneType {
		return models.PhoneType{Description: d}
	}); err != nil {
		return err
	}
	if err := seedByDescription(db, "electronic address types", []string{"Email", "Website"}, func(d string) models.ElectronicAddressType {
		return models.ElectronicAddressType{Description: d}
	}); err != nil {
		return err
	}
	if err := seedByDescription(db, "event types", []string{"Wedding", "Corporate", "Festival", "Private Party", "Fundraiser"}, func(d string) models.EventType {
		return models.EventType{Description: d}
	}); err != nil {
		return err
	}
	if err := seedByDescription(db, "event statuses", []string{"Tentative", "Confirmed", "Contracted", "Completed", "Cancelled"}, func(d string) models.EventStatus {
		return models.EventStatus{Description: d}
	}); err != nil {
		return err
	}
	if err := seedByDescription(db, "referral sources", []string{"Word of Mouth", "Website", "Repeat Client", "Advertisement"}, func(d string) models.ReferralSource {
		return models.ReferralSource{Description: d}
	}); err != nil {
		return err
	}
	if err := seedByDescription(db, "roles", []string{"Agent", "Booker", "Accounting"}, func(d string) models.Role {
		return models.Role{Description: d}
	}); err != nil {
		return err
	}
	return seedOrganizationTypes(db)
}

func seedByDescription[T any](db *gorm.DB, label string, descriptions []string, build func(string) T) error {
	var createdCount int64
	for _, description := range descriptions {
		var existing T
		result := db.Where("description = ?", description).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Lookup row check failed",
				zap.String("table", label), zap.String("description", description), zap.Error(result.Error))
			return result.Error
		}
		row := build(description)
		if err := db.Create(&row).Error; err != nil {
			configslog.Log.Error("Lookup row could not be created",
				zap.String("table", label), zap.String("description", description), zap.Error(err))
			return err
		}
		createdCount++
	}
	if createdCount > 0 {
		configslog.SLog.Infof("%d %s seeded.", createdCount, label)
	}
	return nil
}

func seedOrganizationTypes(db *gorm.DB) error {
	names := []string{"Venue", "Client", "Vendor", "Agency"}
	var createdCount int64
	for _, name := range names {
		var existing models.OrganizationType
		result := db.Where("name = ?", name).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Organization type check failed", zap.String("name", name), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&models.OrganizationType{Name: name}).Error; err != nil {
			configslog.Log.Error("Organization type could not be created", zap.String("name", name), zap.Error(err))
			return err
		}
		createdCount++
	}
	if createdCount > 0 {
		configslog.SLog.Infof("%d organization types seeded.", createdCount)
	}
	return nil
}
