package repositories

import (
	"context"
	"errors"

	"stagedesk/configs/configslog"
	"stagedesk/models"
	"stagedesk/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IContactRepository manages Person rows.
type IContactRepository interface {
	Create(ctx context.Context, person *models.Person) error
	FindByID(ctx context.Context, id uint) (*models.Person, error)
	FindByEntityID(ctx context.Context, entityID uint) (*models.Person, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Person, int64, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, person *models.Person) error
	CountAll(ctx context.Context) (int64, error)
}

type ContactRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Person]
}

func NewContactRepository(db *gorm.DB) IContactRepository {
	base := NewBaseRepository[models.Person](db)
	base.SetAllowedSortColumns(map[string]string{
		"id":         "persons.id",
		"created_at": "persons.created_at",
		"first_name": "persons.first_name",
		"last_name":  "persons.last_name",
	})
	return &ContactRepository{db: db, base: base}
}

func (r *ContactRepository) Create(ctx context.Context, person *models.Person) error {
	if person == nil || person.EntityID == 0 {
		return errors.New("person without an entity row cannot be created")
	}
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *ContactRepository) FindByID(ctx context.Context, id uint) (*models.Person, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var person models.Person
	err := r.db.WithContext(ctx).
		Preload("Agent").Preload("ReferralSource").
		First(&person, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ContactRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &person, nil
}

func (r *ContactRepository) FindByEntityID(ctx context.Context, entityID uint) (*models.Person, error) {
	if entityID == 0 {
		return nil, ErrNotFound
	}
	var person models.Person
	err := r.db.WithContext(ctx).Where("entity_id = ?", entityID).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

// FindAllPaginated lists persons matching the free-text search, newest first
// unless the params say otherwise. The search matches first and last name
// case-insensitively as substrings.
func (r *ContactRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Person, int64, error) {
	var persons []models.Person
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Person{})
	if params.Search != "" {
		pattern := searchPattern(params.Search)
		query = query.Where("LOWER(persons.first_name) LIKE ? OR LOWER(persons.last_name) LIKE ?", pattern, pattern)
	}
	query = query.Order(r.base.OrderClause(params.SortBy, params.OrderBy))

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("ContactRepository.FindAllPaginated: count failed", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return persons, 0, nil
	}

	err := query.
		Preload("Agent").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&persons).Error
	if err != nil {
		configslog.Log.Error("ContactRepository.FindAllPaginated: find failed", zap.Error(err))
		return nil, totalCount, err
	}
	return persons, totalCount, nil
}

func (r *ContactRepository) Update(ctx context.Context, person *models.Person) error {
	if person == nil || person.ID == 0 {
		return errors.New("person to update is not valid")
	}
	return r.db.WithContext(ctx).Save(person).Error
}

func (r *ContactRepository) Delete(ctx context.Context, person *models.Person) error {
	if person == nil || person.ID == 0 {
		return errors.New("person to delete is not valid")
	}
	return r.db.WithContext(ctx).Delete(person).Error
}

func (r *ContactRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Person{}).Count(&count).Error
	return count, err
}

var _ IContactRepository = (*ContactRepository)(nil)
