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

// IOrganizationRepository manages Organization rows and their type tags.
type IOrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	FindByID(ctx context.Context, id uint) (*models.Organization, error)
	FindByEntityID(ctx context.Context, entityID uint) (*models.Organization, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Organization, int64, error)
	Update(ctx context.Context, org *models.Organization) error
	ReplaceTypes(ctx context.Context, org *models.Organization, types []models.OrganizationType) error
	ClearTypes(ctx context.Context, org *models.Organization) error
	Delete(ctx context.Context, org *models.Organization) error
	CountAll(ctx context.Context) (int64, error)
}

type OrganizationRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Organization]
}

func NewOrganizationRepository(db *gorm.DB) IOrganizationRepository {
	base := NewBaseRepository[models.Organization](db)
	base.SetAllowedSortColumns(map[string]string{
		"id":         "organizations.id",
		"created_at": "organizations.created_at",
		"name":       "organizations.name",
	})
	return &OrganizationRepository{db: db, base: base}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	if org == nil || org.EntityID == 0 {
		return errors.New("organization without an entity row cannot be created")
	}
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uint) (*models.Organization, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var org models.Organization
	err := r.db.WithContext(ctx).
		Preload("Agent").Preload("Contact").Preload("ReferralSource").Preload("Types").
		First(&org, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("OrganizationRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByEntityID(ctx context.Context, entityID uint) (*models.Organization, error) {
	if entityID == 0 {
		return nil, ErrNotFound
	}
	var org models.Organization
	err := r.db.WithContext(ctx).Where("entity_id = ?", entityID).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Organization, int64, error) {
	var orgs []models.Organization
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Organization{})
	if params.Search != "" {
		query = query.Where("LOWER(organizations.name) LIKE ?", searchPattern(params.Search))
	}
	query = query.Order(r.base.OrderClause(params.SortBy, params.OrderBy))

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("OrganizationRepository.FindAllPaginated: count failed", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return orgs, 0, nil
	}

	err := query.
		Preload("Contact").Preload("Types").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&orgs).Error
	if err != nil {
		configslog.Log.Error("OrganizationRepository.FindAllPaginated: find failed", zap.Error(err))
		return nil, totalCount, err
	}
	return orgs, totalCount, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	if org == nil || org.ID == 0 {
		return errors.New("organization to update is not valid")
	}
	return r.db.WithContext(ctx).Omit("Types").Save(org).Error
}

// ReplaceTypes swaps the organization's tag set for the given one.
func (r *OrganizationRepository) ReplaceTypes(ctx context.Context, org *models.Organization, types []models.OrganizationType) error {
	if org == nil || org.ID == 0 {
		return errors.New("organization is not valid")
	}
	return r.db.WithContext(ctx).Model(org).Association("Types").Replace(types)
}

// ClearTypes drops all join rows for the organization's tags.
func (r *OrganizationRepository) ClearTypes(ctx context.Context, org *models.Organization) error {
	if org == nil || org.ID == 0 {
		return errors.New("organization is not valid")
	}
	return r.db.WithContext(ctx).Model(org).Association("Types").Clear()
}

func (r *OrganizationRepository) Delete(ctx context.Context, org *models.Organization) error {
	if org == nil || org.ID == 0 {
		return errors.New("organization to delete is not valid")
	}
	return r.db.WithContext(ctx).Delete(org).Error
}

func (r *OrganizationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Organization{}).Count(&count).Error
	return count, err
}

var _ IOrganizationRepository = (*OrganizationRepository)(nil)
