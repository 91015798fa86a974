package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking_SnapshotsProductPrice(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductService(db)
	events := NewEventService(db)
	svc := NewEventProductService(db)

	product, err := products.CreateProduct(ctx, ProductInput{
		Name:       "Big Band",
		GrossPrice: 5000,
		FeePercent: 15,
	})
	require.NoError(t, err)

	start := time.Date(2026, 8, 20, 20, 0, 0, 0, time.UTC)
	event := mustCreateEvent(t, events, "Harvest Ball", start, start.Add(6*time.Hour))

	booking, err := svc.CreateBooking(ctx, EventProductInput{EventID: event.ID, ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, booking.GrossPrice)
	assert.Equal(t, 15.0, booking.FeePercent)

	// A later product price change must not touch the snapshot.
	require.NoError(t, products.UpdateProduct(ctx, product.ID, ProductInput{
		Name:       "Big Band",
		GrossPrice: 9000,
		FeePercent: 20,
	}))
	detail, err := svc.GetBookingDetail(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, detail.Booking.GrossPrice)
}

func TestCreateBooking_RejectsDanglingReferences(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductService(db)
	svc := NewEventProductService(db)

	product, err := products.CreateProduct(ctx, ProductInput{Name: "DJ Set"})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, EventProductInput{EventID: 9999, ProductID: product.ID})
	assert.ErrorIs(t, err, ErrBookingInvalidInput)
}

func TestUpdateBooking_OverridesVenueAndStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductService(db)
	events := NewEventService(db)
	orgs := NewOrganizationService(db)
	svc := NewEventProductService(db)

	product, err := products.CreateProduct(ctx, ProductInput{Name: "Folk Duo", GrossPrice: 800})
	require.NoError(t, err)
	start := time.Date(2026, 10, 3, 19, 0, 0, 0, time.UTC)
	event := mustCreateEvent(t, events, "Fall Festival", start, start.Add(3*time.Hour))
	altVenue, err := orgs.CreateOrganization(ctx, OrganizationInput{Name: "Side Stage"})
	require.NoError(t, err)

	booking, err := svc.CreateBooking(ctx, EventProductInput{EventID: event.ID, ProductID: product.ID})
	require.NoError(t, err)

	err = svc.UpdateBooking(ctx, booking.ID, EventProductInput{
		EventID:       event.ID,
		ProductID:     product.ID,
		GrossPrice:    800,
		StatusID:      uintPtr(2),
		VenueEntityID: &altVenue.EntityID,
	})
	require.NoError(t, err)

	detail, err := svc.GetBookingDetail(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", detail.StatusLabel)
	assert.Equal(t, "Side Stage", detail.VenueName)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventProductService(db)

	err := svc.DeleteBooking(context.Background(), 31337)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
