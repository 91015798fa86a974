package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupLabels_ResolveAndDegrade(t *testing.T) {
	db := newTestDB(t)
	svc := NewLookupService(db)
	ctx := context.Background()

	assert.Equal(t, "Office", svc.PhoneTypeLabel(ctx, uintPtr(1)))
	assert.Equal(t, "Mobile", svc.PhoneTypeLabel(ctx, uintPtr(2)))

	// Nil and dangling keys both resolve to the sentinel.
	assert.Equal(t, UnknownLabel, svc.PhoneTypeLabel(ctx, nil))
	assert.Equal(t, UnknownLabel, svc.PhoneTypeLabel(ctx, uintPtr(999)))
	assert.Equal(t, UnknownLabel, svc.EventStatusLabel(ctx, uintPtr(999)))
	assert.Equal(t, UnknownLabel, svc.PersonName(ctx, nil))
	assert.Equal(t, UnknownLabel, svc.PersonName(ctx, uintPtr(12345)))
}

func TestLookupLabels_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewLookupService(db)
	ctx := context.Background()

	first := svc.PhoneTypeLabel(ctx, uintPtr(1))
	second := svc.PhoneTypeLabel(ctx, uintPtr(1))
	assert.Equal(t, first, second)
}

func TestEntityDisplayName_AcrossConcreteTypes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	contacts := NewContactService(db)
	orgs := NewOrganizationService(db)
	svc := NewLookupService(db)

	person := mustCreateContact(t, contacts, ContactInput{FirstName: "Duke", LastName: "Ellington"})
	org, err := orgs.CreateOrganization(ctx, OrganizationInput{Name: "Cotton Club"})
	require.NoError(t, err)

	assert.Equal(t, "Duke Ellington", svc.EntityDisplayName(ctx, &person.EntityID))
	assert.Equal(t, "Cotton Club", svc.EntityDisplayName(ctx, &org.EntityID))
	assert.Equal(t, UnknownLabel, svc.EntityDisplayName(ctx, nil))
	assert.Equal(t, UnknownLabel, svc.EntityDisplayName(ctx, uintPtr(424242)))
}
