package services

import (
	"context"
	"testing"

	"stagedesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganization_WithTypeTags(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrganizationService(db)
	ctx := context.Background()

	tags := []models.OrganizationType{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Venue"},
		{BaseModel: models.BaseModel{ID: 2}, Name: "Promoter"},
	}
	require.NoError(t, db.Create(&tags).Error)

	org, err := svc.CreateOrganization(ctx, OrganizationInput{
		Name:    "Blue Note",
		TypeIDs: []uint{1, 2},
	})
	require.NoError(t, err)

	detail, err := svc.GetOrganizationDetail(ctx, org.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Organization.Types, 2)
}

func TestDeleteOrganization_NoOrphans(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrganizationService(db)
	ctx := context.Background()

	// Two phones and one address, per the known cascade scenario.
	org, err := svc.CreateOrganization(ctx, OrganizationInput{
		Name:    "Roseland Ballroom",
		Address: &AddressInput{Street: "239 W 52nd St", City: "New York"},
		Phones: []PhoneInput{
			{PhoneTypeID: uintPtr(1), Number: "555-0400"},
			{PhoneTypeID: uintPtr(2), Number: "555-0401"},
		},
	})
	require.NoError(t, err)
	entityID := org.EntityID

	require.NoError(t, svc.DeleteOrganization(ctx, org.ID))

	var phones, addresses, eas, orgs, entities int64
	db.Model(&models.Phone{}).Where("entity_id = ?", entityID).Count(&phones)
	db.Model(&models.Address{}).Where("entity_id = ?", entityID).Count(&addresses)
	db.Model(&models.ElectronicAddress{}).Where("entity_id = ?", entityID).Count(&eas)
	db.Model(&models.Organization{}).Where("entity_id = ?", entityID).Count(&orgs)
	db.Model(&models.Entity{}).Where("id = ?", entityID).Count(&entities)
	assert.Zero(t, phones, "phone rows must not be orphaned")
	assert.Zero(t, addresses, "address rows must not be orphaned")
	assert.Zero(t, eas)
	assert.Zero(t, orgs)
	assert.Zero(t, entities)
}

func TestUpdateOrganization_ReconcilesElectronicAddresses(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrganizationService(db)
	ctx := context.Background()

	org, err := svc.CreateOrganization(ctx, OrganizationInput{Name: "Fillmore"})
	require.NoError(t, err)

	err = svc.UpdateOrganization(ctx, org.ID, OrganizationInput{
		Name: "Fillmore",
		ElectronicAddresses: []ElectronicAddressInput{
			{TypeID: uintPtr(1), Address: "booking@fillmore.example"},
			{TypeID: uintPtr(2), Address: "https://fillmore.example"},
		},
	})
	require.NoError(t, err)

	detail, err := svc.GetOrganizationDetail(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, detail.ElectronicAddresses, 2)
	assert.Equal(t, "Email", detail.ElectronicAddresses[0].TypeLabel)

	// Drop the website on the next submission.
	keep := detail.ElectronicAddresses[0]
	err = svc.UpdateOrganization(ctx, org.ID, OrganizationInput{
		Name: "Fillmore",
		ElectronicAddresses: []ElectronicAddressInput{
			{ID: keep.ID, TypeID: keep.ElectronicAddressTypeID, Address: keep.Address},
		},
	})
	require.NoError(t, err)

	detail, err = svc.GetOrganizationDetail(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, detail.ElectronicAddresses, 1)
	assert.Equal(t, "booking@fillmore.example", detail.ElectronicAddresses[0].Address)
}

func TestUpdateOrganization_ValidationFailsClosed(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrganizationService(db)
	ctx := context.Background()

	org, err := svc.CreateOrganization(ctx, OrganizationInput{Name: "Apollo"})
	require.NoError(t, err)

	err = svc.UpdateOrganization(ctx, org.ID, OrganizationInput{Name: ""})
	require.ErrorIs(t, err, ErrOrganizationInvalidInput)

	detail, err := svc.GetOrganizationDetail(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", detail.Organization.Name)
}
