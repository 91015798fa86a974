package repositories

import (
	"context"
	"errors"
	"time"

	"stagedesk/configs/configslog"
	"stagedesk/models"
	"stagedesk/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IEventRepository manages Event rows.
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindByEntityID(ctx context.Context, entityID uint) (*models.Event, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Event, int64, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, event *models.Event) error
	CountAll(ctx context.Context) (int64, error)
}

type EventRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Event]
}

func NewEventRepository(db *gorm.DB) IEventRepository {
	base := NewBaseRepository[models.Event](db)
	base.SetAllowedSortColumns(map[string]string{
		"id":         "events.id",
		"created_at": "events.created_at",
		"name":       "events.name",
		"start_date": "events.start_date",
	})
	return &EventRepository{db: db, base: base}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event == nil || event.EntityID == 0 {
		return errors.New("event without an entity row cannot be created")
	}
	return r.db.WithContext(ctx).Omit("Bookings").Create(event).Error
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("BillingContact").Preload("Agent").Preload("Type").Preload("Status").
		Preload("Bookings").Preload("Bookings.Product").Preload("Bookings.Status").
		First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindByEntityID(ctx context.Context, entityID uint) (*models.Event, error) {
	if entityID == 0 {
		return nil, ErrNotFound
	}
	var event models.Event
	err := r.db.WithContext(ctx).Where("entity_id = ?", entityID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Event, int64, error) {
	var events []models.Event
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Event{})
	if params.Search != "" {
		query = query.Where("LOWER(events.name) LIKE ?", searchPattern(params.Search))
	}
	query = query.Order(r.base.OrderClause(params.SortBy, params.OrderBy))

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("EventRepository.FindAllPaginated: count failed", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return events, 0, nil
	}

	err := query.
		Preload("Type").Preload("Status").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&events).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindAllPaginated: find failed", zap.Error(err))
		return nil, totalCount, err
	}
	return events, totalCount, nil
}

// FindByDateRange returns every event overlapping [from, to], used by the
// booking report.
func (r *EventRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Preload("Status").Preload("Bookings").Preload("Bookings.Product").
		Where("start_date <= ? AND end_date >= ?", to, from).
		Order("start_date asc").
		Find(&events).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindByDateRange: find failed", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	if event == nil || event.ID == 0 {
		return errors.New("event to update is not valid")
	}
	return r.db.WithContext(ctx).Omit("Bookings").Save(event).Error
}

func (r *EventRepository) Delete(ctx context.Context, event *models.Event) error {
	if event == nil || event.ID == 0 {
		return errors.New("event to delete is not valid")
	}
	return r.db.WithContext(ctx).Delete(event).Error
}

func (r *EventRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&count).Error
	return count, err
}

var _ IEventRepository = (*EventRepository)(nil)
