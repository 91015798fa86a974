package services

import (
	"context"
	"fmt"
	"os"
	"testing"

	"stagedesk/configs/configslog"
	"stagedesk/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	code := m.Run()
	configslog.SyncLogger()
	os.Exit(code)
}

// newTestDB opens a private in-memory database, migrates the full schema and
// seeds the lookup tables.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.EntityType{},
		&models.Entity{},
		&models.ReferralSource{},
		&models.Role{},
		&models.PhoneType{},
		&models.ElectronicAddressType{},
		&models.OrganizationType{},
		&models.EventType{},
		&models.EventStatus{},
		&models.Person{},
		&models.Organization{},
		&models.Product{},
		&models.Entertainer{},
		&models.Event{},
		&models.EventProduct{},
		&models.Address{},
		&models.Phone{},
		&models.ElectronicAddress{},
		&models.Task{},
	)
	require.NoError(t, err)

	seedTestLookups(t, db)
	return db
}

func seedTestLookups(t *testing.T, db *gorm.DB) {
	t.Helper()
	entityTypes := []models.EntityType{
		{BaseModel: models.BaseModel{ID: models.EntityTypePerson}, Name: models.EntityTypeNamePerson},
		{BaseModel: models.BaseModel{ID: models.EntityTypeOrganization}, Name: models.EntityTypeNameOrganization},
		{BaseModel: models.BaseModel{ID: models.EntityTypeProduct}, Name: models.EntityTypeNameProduct},
		{BaseModel: models.BaseModel{ID: models.EntityTypeEvent}, Name: models.EntityTypeNameEvent},
	}
	require.NoError(t, db.Create(&entityTypes).Error)

	phoneTypes := []models.PhoneType{
		{BaseModel: models.BaseModel{ID: 1}, Description: "Office"},
		{BaseModel: models.BaseModel{ID: 2}, Description: "Mobile"},
		{BaseModel: models.BaseModel{ID: 3}, Description: "Home"},
	}
	require.NoError(t, db.Create(&phoneTypes).Error)

	eaTypes := []models.ElectronicAddressType{
		{BaseModel: models.BaseModel{ID: 1}, Description: "Email"},
		{BaseModel: models.BaseModel{ID: 2}, Description: "Website"},
	}
	require.NoError(t, db.Create(&eaTypes).Error)

	statuses := []models.EventStatus{
		{BaseModel: models.BaseModel{ID: 1}, Description: "Tentative"},
		{BaseModel: models.BaseModel{ID: 2}, Description: "Confirmed"},
	}
	require.NoError(t, db.Create(&statuses).Error)
}

func uintPtr(v uint) *uint { return &v }

func mustCreateContact(t *testing.T, svc IContactService, input ContactInput) *models.Person {
	t.Helper()
	person, err := svc.CreateContact(context.Background(), input)
	require.NoError(t, err)
	require.NotZero(t, person.ID)
	require.NotZero(t, person.EntityID)
	return person
}
