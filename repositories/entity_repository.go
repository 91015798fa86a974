package repositories

import (
	"context"
	"errors"

	"stagedesk/models"

	"gorm.io/gorm"
)

// IEntityRepository manages the abstract entity rows that anchor every
// concrete record.
type IEntityRepository interface {
	Create(ctx context.Context, entityTypeID uint) (*models.Entity, error)
	FindByID(ctx context.Context, id uint) (*models.Entity, error)
	Delete(ctx context.Context, id uint) error
}

type EntityRepository struct {
	db *gorm.DB
}

func NewEntityRepository(db *gorm.DB) IEntityRepository {
	return &EntityRepository{db: db}
}

// Create allocates a new entity row with the given discriminator.
func (r *EntityRepository) Create(ctx context.Context, entityTypeID uint) (*models.Entity, error) {
	if entityTypeID == 0 {
		return nil, errors.New("entity type id is required")
	}
	entity := models.Entity{EntityTypeID: entityTypeID}
	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *EntityRepository) FindByID(ctx context.Context, id uint) (*models.Entity, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var entity models.Entity
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Delete removes the entity row itself. Dependent rows must already be gone;
// the services delete them first because the schema does not cascade.
func (r *EntityRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).Delete(&models.Entity{}, id).Error
}

var _ IEntityRepository = (*EntityRepository)(nil)
