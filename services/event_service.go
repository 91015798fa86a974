package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stagedesk/configs/configslog"
	"stagedesk/models"
	"stagedesk/pkg/queryparams"
	"stagedesk/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventServiceError is the typed error for event operations.
type EventServiceError string

func (e EventServiceError) Error() string { return string(e) }

const (
	ErrEventNotFound       EventServiceError = "event not found"
	ErrEventCreationFailed EventServiceError = "event could not be created"
	ErrEventUpdateFailed   EventServiceError = "event could not be updated"
	ErrEventDeletionFailed EventServiceError = "event could not be deleted"
	ErrEventInvalidInput   EventServiceError = "invalid event input"
	ErrEventDatesInverted  EventServiceError = "event end date precedes its start date"
)

// EventInput is the create/update payload for an event.
type EventInput struct {
	Name             string    `json:"name" form:"name" validate:"required"`
	StartDate        time.Time `json:"start_date" form:"start_date" validate:"required"`
	EndDate          time.Time `json:"end_date" form:"end_date" validate:"required"`
	Location         string    `json:"location" form:"location"`
	Budget           float64   `json:"budget" form:"budget" validate:"gte=0"`
	ClientEntityID   *uint     `json:"client_entity_id" form:"client_entity_id"`
	VenueEntityID    *uint     `json:"venue_entity_id" form:"venue_entity_id"`
	BillingContactID *uint     `json:"billing_contact_id" form:"billing_contact_id"`
	AgentID          *uint     `json:"agent_id" form:"agent_id"`
	EventTypeID      *uint     `json:"event_type_id" form:"event_type_id"`
	EventStatusID    *uint     `json:"event_status_id" form:"event_status_id"`

	ContractSentDate     *time.Time `json:"contract_sent_date" form:"contract_sent_date"`
	ContractReceivedDate *time.Time `json:"contract_received_date" form:"contract_received_date"`

	Attendance    string `json:"attendance" form:"attendance"`
	ArrivalTime   string `json:"arrival_time" form:"arrival_time"`
	ReportTo      string `json:"report_to" form:"report_to"`
	BreakroomNote string `json:"breakroom_note" form:"breakroom_note"`
	EquipmentNote string `json:"equipment_note" form:"equipment_note"`
}

// EventDetail is the detail-page aggregate with resolved display names.
type EventDetail struct {
	Event              models.Event
	ClientName         string
	VenueName          string
	BillingContactName string
	AgentName          string
	TypeLabel          string
	StatusLabel        string
	Bookings           []models.EventProduct
}

// IEventService implements the event form/action layer.
type IEventService interface {
	CreateEvent(ctx context.Context, input EventInput) (*models.Event, error)
	GetEventDetail(ctx context.Context, id uint) (*EventDetail, error)
	GetEventsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetEventsByDateRange(ctx context.Context, from, to time.Time) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id uint, input EventInput) error
	DeleteEvent(ctx context.Context, id uint) error
}

type EventService struct {
	entities repositories.IEntityRepository
	events   repositories.IEventRepository
	bookings repositories.IEventProductRepository
	lookups  ILookupService
}

func NewEventService(db *gorm.DB) IEventService {
	return &EventService{
		entities: repositories.NewEntityRepository(db),
		events:   repositories.NewEventRepository(db),
		bookings: repositories.NewEventProductRepository(db),
		lookups:  NewLookupService(db),
	}
}

func validateEventInput(input EventInput) error {
	if err := validateStruct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrEventInvalidInput, err)
	}
	if input.EndDate.Before(input.StartDate) {
		return ErrEventDatesInverted
	}
	return nil
}

func (s *EventService) CreateEvent(ctx context.Context, input EventInput) (*models.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	entity, err := s.entities.Create(ctx, models.EntityTypeEvent)
	if err != nil {
		configslog.Log.Error("CreateEvent: entity row failed", zap.Error(err))
		return nil, ErrEventCreationFailed
	}

	event := models.Event{
		EntityID:             entity.ID,
		Name:                 input.Name,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		Location:             input.Location,
		Budget:               input.Budget,
		ClientEntityID:       input.ClientEntityID,
		VenueEntityID:        input.VenueEntityID,
		BillingContactID:     input.BillingContactID,
		AgentID:              input.AgentID,
		EventTypeID:          input.EventTypeID,
		EventStatusID:        input.EventStatusID,
		ContractSentDate:     input.ContractSentDate,
		ContractReceivedDate: input.ContractReceivedDate,
		Attendance:           input.Attendance,
		ArrivalTime:          input.ArrivalTime,
		ReportTo:             input.ReportTo,
		BreakroomNote:        input.BreakroomNote,
		EquipmentNote:        input.EquipmentNote,
	}
	if err := s.events.Create(ctx, &event); err != nil {
		configslog.Log.Error("CreateEvent: event row failed", zap.Uint("entityID", entity.ID), zap.Error(err))
		return nil, ErrEventCreationFailed
	}
	return &event, nil
}

func (s *EventService) GetEventDetail(ctx context.Context, id uint) (*EventDetail, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	detail := EventDetail{
		Event:              *event,
		ClientName:         s.lookups.EntityDisplayName(ctx, event.ClientEntityID),
		VenueName:          s.lookups.EntityDisplayName(ctx, event.VenueEntityID),
		BillingContactName: s.lookups.PersonName(ctx, event.BillingContactID),
		AgentName:          s.lookups.PersonName(ctx, event.AgentID),
		TypeLabel:          s.lookups.EventTypeLabel(ctx, event.EventTypeID),
		StatusLabel:        s.lookups.EventStatusLabel(ctx, event.EventStatusID),
	}
	if detail.Bookings, err = s.bookings.FindByEventID(ctx, event.ID); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *EventService) GetEventsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	events, totalCount, err := s.events.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: events,
		Meta: queryparams.NewPaginationMeta(params.Page, params.PerPage, totalCount),
	}, nil
}

func (s *EventService) GetEventsByDateRange(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	return s.events.FindByDateRange(ctx, from, to)
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint, input EventInput) error {
	if err := validateEventInput(input); err != nil {
		return err
	}

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	event.Name = input.Name
	event.StartDate = input.StartDate
	event.EndDate = input.EndDate
	event.Location = input.Location
	event.Budget = input.Budget
	event.ClientEntityID = input.ClientEntityID
	event.VenueEntityID = input.VenueEntityID
	event.BillingContactID = input.BillingContactID
	event.AgentID = input.AgentID
	event.EventTypeID = input.EventTypeID
	event.EventStatusID = input.EventStatusID
	event.ContractSentDate = input.ContractSentDate
	event.ContractReceivedDate = input.ContractReceivedDate
	event.Attendance = input.Attendance
	event.ArrivalTime = input.ArrivalTime
	event.ReportTo = input.ReportTo
	event.BreakroomNote = input.BreakroomNote
	event.EquipmentNote = input.EquipmentNote

	if err := s.events.Update(ctx, event); err != nil {
		configslog.Log.Error("UpdateEvent: event row failed", zap.Uint("id", id), zap.Error(err))
		return ErrEventUpdateFailed
	}
	return nil
}

// DeleteEvent removes the booking line items first, then the event and entity
// rows.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	entityID := event.EntityID
	if err := s.bookings.DeleteByEventID(ctx, event.ID); err != nil {
		configslog.Log.Error("DeleteEvent: bookings failed", zap.Uint("id", id), zap.Error(err))
		return ErrEventDeletionFailed
	}
	if err := s.events.Delete(ctx, event); err != nil {
		configslog.Log.Error("DeleteEvent: event row failed", zap.Uint("id", id), zap.Error(err))
		return ErrEventDeletionFailed
	}
	if err := s.entities.Delete(ctx, entityID); err != nil {
		configslog.Log.Error("DeleteEvent: entity row failed", zap.Uint("entityID", entityID), zap.Error(err))
		return ErrEventDeletionFailed
	}
	return nil
}

var _ IEventService = (*EventService)(nil)
