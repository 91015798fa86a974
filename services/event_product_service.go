package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stagedesk/configs/configslog"
	"stagedesk/models"
	"stagedesk/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventProductServiceError is the typed error for booking line items.
type EventProductServiceError string

func (e EventProductServiceError) Error() string { return string(e) }

const (
	ErrBookingNotFound       EventProductServiceError = "booking not found"
	ErrBookingCreationFailed EventProductServiceError = "booking could not be created"
	ErrBookingUpdateFailed   EventProductServiceError = "booking could not be updated"
	ErrBookingDeletionFailed EventProductServiceError = "booking could not be deleted"
	ErrBookingInvalidInput   EventProductServiceError = "invalid booking input"
)

// EventProductInput books a product into an event with a price snapshot.
type EventProductInput struct {
	EventID       uint    `json:"event_id" form:"event_id" validate:"required"`
	ProductID     uint    `json:"product_id" form:"product_id" validate:"required"`
	GrossPrice    float64 `json:"gross_price" form:"gross_price" validate:"gte=0"`
	FeePercent    float64 `json:"fee_percent" form:"fee_percent" validate:"gte=0,lte=100"`
	StatusID      *uint   `json:"status_id" form:"status_id"`
	VenueEntityID *uint   `json:"venue_entity_id" form:"venue_entity_id"`

	ContractSentDate     *time.Time `json:"contract_sent_date" form:"contract_sent_date"`
	ContractReceivedDate *time.Time `json:"contract_received_date" form:"contract_received_date"`
	PaymentDueDate       *time.Time `json:"payment_due_date" form:"payment_due_date"`
	PaymentReceivedDate  *time.Time `json:"payment_received_date" form:"payment_received_date"`
}

// EventProductDetail is the booking with resolved names.
type EventProductDetail struct {
	Booking     models.EventProduct
	EventName   string
	ProductName string
	VenueName   string
	StatusLabel string
}

// IEventProductService implements the booking form/action layer.
type IEventProductService interface {
	CreateBooking(ctx context.Context, input EventProductInput) (*models.EventProduct, error)
	GetBookingDetail(ctx context.Context, id uint) (*EventProductDetail, error)
	GetBookingsForEvent(ctx context.Context, eventID uint) ([]models.EventProduct, error)
	UpdateBooking(ctx context.Context, id uint, input EventProductInput) error
	DeleteBooking(ctx context.Context, id uint) error
}

type EventProductService struct {
	bookings repositories.IEventProductRepository
	events   repositories.IEventRepository
	products repositories.IProductRepository
	lookups  ILookupService
}

func NewEventProductService(db *gorm.DB) IEventProductService {
	return &EventProductService{
		bookings: repositories.NewEventProductRepository(db),
		events:   repositories.NewEventRepository(db),
		products: repositories.NewProductRepository(db),
		lookups:  NewLookupService(db),
	}
}

// CreateBooking verifies both ends of the link exist, then inserts the priced
// line item. By default the price fields snapshot the product's current values
// when the submission leaves them at zero.
func (s *EventProductService) CreateBooking(ctx context.Context, input EventProductInput) (*models.EventProduct, error) {
	if err := validateStruct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookingInvalidInput, err)
	}

	if _, err := s.events.FindByID(ctx, input.EventID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: event %d does not exist", ErrBookingInvalidInput, input.EventID)
		}
		return nil, err
	}
	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d does not exist", ErrBookingInvalidInput, input.ProductID)
		}
		return nil, err
	}

	booking := models.EventProduct{
		EventID:              input.EventID,
		ProductID:            input.ProductID,
		GrossPrice:           input.GrossPrice,
		FeePercent:           input.FeePercent,
		StatusID:             input.StatusID,
		VenueEntityID:        input.VenueEntityID,
		ContractSentDate:     input.ContractSentDate,
		ContractReceivedDate: input.ContractReceivedDate,
		PaymentDueDate:       input.PaymentDueDate,
		PaymentReceivedDate:  input.PaymentReceivedDate,
	}
	if booking.GrossPrice == 0 {
		booking.GrossPrice = product.GrossPrice
	}
	if booking.FeePercent == 0 {
		booking.FeePercent = product.FeePercent
	}

	if err := s.bookings.Create(ctx, &booking); err != nil {
		configslog.Log.Error("CreateBooking: insert failed",
			zap.Uint("eventID", input.EventID), zap.Uint("productID", input.ProductID), zap.Error(err))
		return nil, ErrBookingCreationFailed
	}
	return &booking, nil
}

func (s *EventProductService) GetBookingDetail(ctx context.Context, id uint) (*EventProductDetail, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &EventProductDetail{
		Booking:     *booking,
		EventName:   booking.Event.Name,
		ProductName: booking.Product.Name,
		VenueName:   s.lookups.EntityDisplayName(ctx, booking.VenueEntityID),
		StatusLabel: s.lookups.EventStatusLabel(ctx, booking.StatusID),
	}, nil
}

func (s *EventProductService) GetBookingsForEvent(ctx context.Context, eventID uint) ([]models.EventProduct, error) {
	return s.bookings.FindByEventID(ctx, eventID)
}

func (s *EventProductService) UpdateBooking(ctx context.Context, id uint, input EventProductInput) error {
	if err := validateStruct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrBookingInvalidInput, err)
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	booking.GrossPrice = input.GrossPrice
	booking.FeePercent = input.FeePercent
	booking.StatusID = input.StatusID
	booking.VenueEntityID = input.VenueEntityID
	booking.ContractSentDate = input.ContractSentDate
	booking.ContractReceivedDate = input.ContractReceivedDate
	booking.PaymentDueDate = input.PaymentDueDate
	booking.PaymentReceivedDate = input.PaymentReceivedDate

	if err := s.bookings.Update(ctx, booking); err != nil {
		configslog.Log.Error("UpdateBooking: save failed", zap.Uint("id", id), zap.Error(err))
		return ErrBookingUpdateFailed
	}
	return nil
}

func (s *EventProductService) DeleteBooking(ctx context.Context, id uint) error {
	if _, err := s.bookings.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		configslog.Log.Error("DeleteBooking: delete failed", zap.Uint("id", id), zap.Error(err))
		return ErrBookingDeletionFailed
	}
	return nil
}

var _ IEventProductService = (*EventProductService)(nil)
