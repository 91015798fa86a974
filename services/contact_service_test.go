package services

import (
	"context"
	"testing"

	"stagedesk/models"
	"stagedesk/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContact_ValidationFailsClosed(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	_, err := svc.CreateContact(context.Background(), ContactInput{FirstName: "Ada"})
	require.ErrorIs(t, err, ErrContactInvalidInput)

	// Nothing may have been written, not even the entity row.
	var entityCount, personCount int64
	db.Model(&models.Entity{}).Count(&entityCount)
	db.Model(&models.Person{}).Count(&personCount)
	assert.Zero(t, entityCount)
	assert.Zero(t, personCount)
}

func TestCreateContact_AllocatesEntityAndExtension(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	person := mustCreateContact(t, svc, ContactInput{FirstName: "Ada", LastName: "Lovelace"})

	var entity models.Entity
	require.NoError(t, db.First(&entity, person.EntityID).Error)
	assert.Equal(t, models.EntityTypePerson, entity.EntityTypeID)
	assert.False(t, entity.CreatedAt.IsZero())
}

func TestContactDetail_PhoneLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	ctx := context.Background()

	// Created without phones, the detail carries an empty list.
	person := mustCreateContact(t, svc, ContactInput{FirstName: "Ada", LastName: "Lovelace"})
	detail, err := svc.GetContactDetail(ctx, person.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Phones)

	// Add two phones on update; both appear with resolved type labels.
	err = svc.UpdateContact(ctx, person.ID, ContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phones: []PhoneInput{
			{PhoneTypeID: uintPtr(1), Number: "555-0100"},
			{PhoneTypeID: uintPtr(2), Number: "555-0101"},
		},
	})
	require.NoError(t, err)

	detail, err = svc.GetContactDetail(ctx, person.ID)
	require.NoError(t, err)
	require.Len(t, detail.Phones, 2)
	assert.Equal(t, "Office", detail.Phones[0].TypeLabel)
	assert.Equal(t, "Mobile", detail.Phones[1].TypeLabel)

	// Remove one by resubmitting only the other; just that one persists.
	keep := detail.Phones[1]
	err = svc.UpdateContact(ctx, person.ID, ContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phones: []PhoneInput{
			{ID: keep.ID, PhoneTypeID: keep.PhoneTypeID, Number: keep.Number},
		},
	})
	require.NoError(t, err)

	detail, err = svc.GetContactDetail(ctx, person.ID)
	require.NoError(t, err)
	require.Len(t, detail.Phones, 1)
	assert.Equal(t, "555-0101", detail.Phones[0].Number)
}

func TestUpdateContact_ReconciliationIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	ctx := context.Background()

	person := mustCreateContact(t, svc, ContactInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Phones:    []PhoneInput{{PhoneTypeID: uintPtr(1), Number: "555-0200"}},
	})

	detail, err := svc.GetContactDetail(ctx, person.ID)
	require.NoError(t, err)
	require.Len(t, detail.Phones, 1)
	phoneID := detail.Phones[0].ID

	resubmit := ContactInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Phones:    []PhoneInput{{ID: phoneID, PhoneTypeID: uintPtr(1), Number: "555-0200"}},
	}
	require.NoError(t, svc.UpdateContact(ctx, person.ID, resubmit))
	require.NoError(t, svc.UpdateContact(ctx, person.ID, resubmit))

	var count int64
	db.Model(&models.Phone{}).Where("entity_id = ?", person.EntityID).Count(&count)
	assert.Equal(t, int64(1), count, "resubmitting the same set must not duplicate or delete rows")

	var phone models.Phone
	require.NoError(t, db.First(&phone, phoneID).Error)
	assert.Equal(t, "555-0200", phone.Number)
}

func TestDeleteContact_RemovesDependentRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	ctx := context.Background()

	person := mustCreateContact(t, svc, ContactInput{
		FirstName: "Charles",
		LastName:  "Babbage",
		Address:   &AddressInput{Street: "1 Dorset St", City: "London"},
		Phones:    []PhoneInput{{PhoneTypeID: uintPtr(1), Number: "555-0300"}},
	})
	entityID := person.EntityID

	require.NoError(t, svc.DeleteContact(ctx, person.ID))

	var addresses, phones, persons, entities int64
	db.Model(&models.Address{}).Where("entity_id = ?", entityID).Count(&addresses)
	db.Model(&models.Phone{}).Where("entity_id = ?", entityID).Count(&phones)
	db.Model(&models.Person{}).Where("entity_id = ?", entityID).Count(&persons)
	db.Model(&models.Entity{}).Where("id = ?", entityID).Count(&entities)
	assert.Zero(t, addresses)
	assert.Zero(t, phones)
	assert.Zero(t, persons)
	assert.Zero(t, entities)
}

func TestDeleteContact_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	err := svc.DeleteContact(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestGetContactsPaginated_SearchAndWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	ctx := context.Background()

	names := []string{"John", "Jordan", "Alice", "Bob"}
	for _, name := range names {
		mustCreateContact(t, svc, ContactInput{FirstName: name, LastName: "Tester"})
	}

	// Case-insensitive substring: "jo" matches John and Jordan.
	result, err := svc.GetContactsPaginated(ctx, queryparams.ListParams{Search: "JO", Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Meta.TotalCount)
	assert.Len(t, result.Data.([]models.Person), 2)

	// A page past the end yields an empty window with a real count.
	result, err = svc.GetContactsPaginated(ctx, queryparams.ListParams{Page: 3, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Meta.TotalCount)
	assert.Empty(t, result.Data.([]models.Person))
	assert.True(t, result.Meta.HasPrev)
	assert.False(t, result.Meta.HasNext)
}

func TestGetContactDetail_ResolvesAgentName(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	ctx := context.Background()

	agent := mustCreateContact(t, svc, ContactInput{FirstName: "Peggy", LastName: "Guggenheim"})
	client := mustCreateContact(t, svc, ContactInput{
		FirstName: "Jackson",
		LastName:  "Pollock",
		AgentID:   &agent.ID,
	})

	detail, err := svc.GetContactDetail(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peggy Guggenheim", detail.AgentName)

	// An absent agent degrades to the sentinel, never an error.
	detail, err = svc.GetContactDetail(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, UnknownLabel, detail.AgentName)
}
