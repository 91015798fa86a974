package repositories

import (
	"context"

	"stagedesk/models"

	"gorm.io/gorm"
)

// ILookupRepository reads the small fixed tables resolved to display labels.
type ILookupRepository interface {
	AllPhoneTypes(ctx context.Context) ([]models.PhoneType, error)
	AllElectronicAddressTypes(ctx context.Context) ([]models.ElectronicAddressType, error)
	AllOrganizationTypes(ctx context.Context) ([]models.OrganizationType, error)
	FindOrganizationTypesByIDs(ctx context.Context, ids []uint) ([]models.OrganizationType, error)
	AllEventTypes(ctx context.Context) ([]models.EventType, error)
	AllEventStatuses(ctx context.Context) ([]models.EventStatus, error)
	AllReferralSources(ctx context.Context) ([]models.ReferralSource, error)
}

type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) ILookupRepository {
	return &LookupRepository{db: db}
}

func (r *LookupRepository) AllPhoneTypes(ctx context.Context) ([]models.PhoneType, error) {
	var rows []models.PhoneType
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) AllElectronicAddressTypes(ctx context.Context) ([]models.ElectronicAddressType, error) {
	var rows []models.ElectronicAddressType
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) AllOrganizationTypes(ctx context.Context) ([]models.OrganizationType, error) {
	var rows []models.OrganizationType
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) FindOrganizationTypesByIDs(ctx context.Context, ids []uint) ([]models.OrganizationType, error) {
	var rows []models.OrganizationType
	if len(ids) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) AllEventTypes(ctx context.Context) ([]models.EventType, error) {
	var rows []models.EventType
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) AllEventStatuses(ctx context.Context) ([]models.EventStatus, error) {
	var rows []models.EventStatus
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) AllReferralSources(ctx context.Context) ([]models.ReferralSource, error) {
	var rows []models.ReferralSource
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	return rows, err
}

var _ ILookupRepository = (*LookupRepository)(nil)
