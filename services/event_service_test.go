package services

import (
	"context"
	"testing"
	"time"

	"stagedesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateEvent(t *testing.T, svc IEventService, name string, start, end time.Time) *models.Event {
	t.Helper()
	event, err := svc.CreateEvent(context.Background(), EventInput{
		Name:      name,
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	return event
}

func TestCreateEvent_RejectsInvertedDates(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db)

	start := time.Date(2026, 6, 10, 20, 0, 0, 0, time.UTC)
	_, err := svc.CreateEvent(context.Background(), EventInput{
		Name:      "Summer Gala",
		StartDate: start,
		EndDate:   start.Add(-24 * time.Hour),
	})
	require.ErrorIs(t, err, ErrEventDatesInverted)

	var count int64
	db.Model(&models.Event{}).Count(&count)
	assert.Zero(t, count)
}

func TestEventDetail_ResolvesNames(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	contacts := NewContactService(db)
	orgs := NewOrganizationService(db)
	svc := NewEventService(db)

	agent := mustCreateContact(t, contacts, ContactInput{FirstName: "Norman", LastName: "Granz"})
	venue, err := orgs.CreateOrganization(ctx, OrganizationInput{Name: "Massey Hall"})
	require.NoError(t, err)

	start := time.Date(2026, 5, 15, 19, 30, 0, 0, time.UTC)
	event, err := svc.CreateEvent(ctx, EventInput{
		Name:          "Jazz at the Philharmonic",
		StartDate:     start,
		EndDate:       start.Add(4 * time.Hour),
		AgentID:       &agent.ID,
		VenueEntityID: &venue.EntityID,
		EventStatusID: uintPtr(2),
	})
	require.NoError(t, err)

	detail, err := svc.GetEventDetail(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Norman Granz", detail.AgentName)
	assert.Equal(t, "Massey Hall", detail.VenueName)
	assert.Equal(t, "Confirmed", detail.StatusLabel)
	assert.Equal(t, UnknownLabel, detail.ClientName)
}

func TestDeleteEvent_RemovesBookings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := NewProductService(db)
	events := NewEventService(db)
	bookings := NewEventProductService(db)

	product, err := products.CreateProduct(ctx, ProductInput{Name: "String Quartet", GrossPrice: 1200})
	require.NoError(t, err)

	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	event := mustCreateEvent(t, events, "Corporate Dinner", start, start.Add(5*time.Hour))

	_, err = bookings.CreateBooking(ctx, EventProductInput{EventID: event.ID, ProductID: product.ID})
	require.NoError(t, err)

	require.NoError(t, events.DeleteEvent(ctx, event.ID))

	var lineItems int64
	db.Model(&models.EventProduct{}).Where("event_id = ?", event.ID).Count(&lineItems)
	assert.Zero(t, lineItems, "booking line items must not outlive the event")
}

func TestEventDetail_DateColumnsSurviveReload(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db)
	ctx := context.Background()

	start := time.Date(2026, 10, 3, 17, 0, 0, 0, time.UTC)
	sent := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	event, err := svc.CreateEvent(ctx, EventInput{
		Name:             "Autumn Revue",
		StartDate:        start,
		EndDate:          start.Add(6 * time.Hour),
		ContractSentDate: &sent,
	})
	require.NoError(t, err)

	detail, err := svc.GetEventDetail(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, detail.Event.StartDate.Equal(start))
	assert.True(t, detail.Event.EndDate.Equal(start.Add(6*time.Hour)))
	require.NotNil(t, detail.Event.ContractSentDate)
	assert.True(t, detail.Event.ContractSentDate.Equal(sent))
	assert.Nil(t, detail.Event.ContractReceivedDate)
}

func TestGetEventsByDateRange_Overlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2026, 7, d, 0, 0, 0, 0, time.UTC) }
	mustCreateEvent(t, svc, "Early", day(1), day(2))
	mustCreateEvent(t, svc, "Mid", day(10), day(12))
	mustCreateEvent(t, svc, "Late", day(25), day(26))

	events, err := svc.GetEventsByDateRange(ctx, day(9), day(13))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Mid", events[0].Name)

	events, err = svc.GetEventsByDateRange(ctx, day(1), day(31))
	require.NoError(t, err)
	assert.Len(t, events, 3)
}
