package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalSearch_CaseInsensitiveSubstring(t *testing.T) {
	db := newTestDB(t)
	contacts := NewContactService(db)
	svc := NewSearchService(db)
	ctx := context.Background()

	mustCreateContact(t, contacts, ContactInput{FirstName: "John", LastName: "Coltrane"})
	mustCreateContact(t, contacts, ContactInput{FirstName: "Jordan", LastName: "Smith"})
	mustCreateContact(t, contacts, ContactInput{FirstName: "Miles", LastName: "Davis"})

	results, err := svc.GlobalSearch(ctx, "jo", "")
	require.NoError(t, err)
	require.Len(t, results, 2)
	names := []string{results[0].DisplayName, results[1].DisplayName}
	assert.Contains(t, names, "John Coltrane")
	assert.Contains(t, names, "Jordan Smith")
}

func TestGlobalSearch_SpansRecordSets(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	contacts := NewContactService(db)
	orgs := NewOrganizationService(db)
	products := NewProductService(db)
	svc := NewSearchService(db)

	mustCreateContact(t, contacts, ContactInput{FirstName: "Nina", LastName: "Simone"})
	_, err := orgs.CreateOrganization(ctx, OrganizationInput{Name: "Simone Productions"})
	require.NoError(t, err)
	_, err = products.CreateProduct(ctx, ProductInput{Name: "The Simone Trio"})
	require.NoError(t, err)

	results, err := svc.GlobalSearch(ctx, "simone", "")
	require.NoError(t, err)
	assert.Len(t, results, 3)

	kinds := map[string]bool{}
	for _, r := range results {
		kinds[r.Kind] = true
	}
	assert.True(t, kinds[SearchKindPerson])
	assert.True(t, kinds[SearchKindOrganization])
	assert.True(t, kinds[SearchKindProduct])
}

func TestGlobalSearch_TypeFilterNarrows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	contacts := NewContactService(db)
	orgs := NewOrganizationService(db)
	svc := NewSearchService(db)

	mustCreateContact(t, contacts, ContactInput{FirstName: "Billie", LastName: "Holiday"})
	_, err := orgs.CreateOrganization(ctx, OrganizationInput{Name: "Holiday Inn Lounge"})
	require.NoError(t, err)

	results, err := svc.GlobalSearch(ctx, "holiday", SearchKindOrganization)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, SearchKindOrganization, results[0].Kind)

	// An unrecognized filter searches everything.
	results, err = svc.GlobalSearch(ctx, "holiday", "martian")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestGlobalSearch_EmptyQueryReturnsNothing(t *testing.T) {
	db := newTestDB(t)
	contacts := NewContactService(db)
	svc := NewSearchService(db)

	mustCreateContact(t, contacts, ContactInput{FirstName: "Etta", LastName: "James"})

	results, err := svc.GlobalSearch(context.Background(), "   ", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}
