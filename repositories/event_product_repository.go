package repositories

import (
	"context"
	"errors"

	"stagedesk/models"

	"gorm.io/gorm"
)

// IEventProductRepository manages the priced booking line items linking
// products into events.
type IEventProductRepository interface {
	Create(ctx context.Context, booking *models.EventProduct) error
	FindByID(ctx context.Context, id uint) (*models.EventProduct, error)
	FindByEventID(ctx context.Context, eventID uint) ([]models.EventProduct, error)
	FindByProductID(ctx context.Context, productID uint) ([]models.EventProduct, error)
	Update(ctx context.Context, booking *models.EventProduct) error
	Delete(ctx context.Context, id uint) error
	DeleteByEventID(ctx context.Context, eventID uint) error
	DeleteByProductID(ctx context.Context, productID uint) error
}

type EventProductRepository struct {
	db *gorm.DB
}

func NewEventProductRepository(db *gorm.DB) IEventProductRepository {
	return &EventProductRepository{db: db}
}

func (r *EventProductRepository) Create(ctx context.Context, booking *models.EventProduct) error {
	if booking == nil || booking.EventID == 0 || booking.ProductID == 0 {
		return errors.New("booking needs both an event and a product")
	}
	return r.db.WithContext(ctx).Omit("Event", "Product").Create(booking).Error
}

func (r *EventProductRepository) FindByID(ctx context.Context, id uint) (*models.EventProduct, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var booking models.EventProduct
	err := r.db.WithContext(ctx).
		Preload("Event").Preload("Product").Preload("Status").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *EventProductRepository) FindByEventID(ctx context.Context, eventID uint) ([]models.EventProduct, error) {
	var bookings []models.EventProduct
	err := r.db.WithContext(ctx).
		Preload("Product").Preload("Status").
		Where("event_id = ?", eventID).Order("id asc").
		Find(&bookings).Error
	return bookings, err
}

func (r *EventProductRepository) FindByProductID(ctx context.Context, productID uint) ([]models.EventProduct, error) {
	var bookings []models.EventProduct
	err := r.db.WithContext(ctx).
		Preload("Event").Preload("Status").
		Where("product_id = ?", productID).Order("id asc").
		Find(&bookings).Error
	return bookings, err
}

func (r *EventProductRepository) Update(ctx context.Context, booking *models.EventProduct) error {
	if booking == nil || booking.ID == 0 {
		return errors.New("booking to update is not valid")
	}
	return r.db.WithContext(ctx).Omit("Event", "Product").Save(booking).Error
}

func (r *EventProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.EventProduct{}, id).Error
}

func (r *EventProductRepository) DeleteByEventID(ctx context.Context, eventID uint) error {
	return r.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&models.EventProduct{}).Error
}

func (r *EventProductRepository) DeleteByProductID(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.EventProduct{}).Error
}

var _ IEventProductRepository = (*EventProductRepository)(nil)
