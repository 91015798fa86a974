package repositories

import (
	"context"
	"errors"

	"stagedesk/models"

	"gorm.io/gorm"
)

// IContactPointRepository manages the dependent rows owned by an entity:
// addresses, phones and electronic addresses. All finders and bulk deletes key
// on the owning entity id.
type IContactPointRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, id uint) error
	FindAddressesByEntityID(ctx context.Context, entityID uint) ([]models.Address, error)
	DeleteAddressesByEntityID(ctx context.Context, entityID uint) error

	CreatePhone(ctx context.Context, phone *models.Phone) error
	UpdatePhone(ctx context.Context, phone *models.Phone) error
	DeletePhone(ctx context.Context, id uint) error
	FindPhonesByEntityID(ctx context.Context, entityID uint) ([]models.Phone, error)
	DeletePhonesByEntityID(ctx context.Context, entityID uint) error

	CreateElectronicAddress(ctx context.Context, ea *models.ElectronicAddress) error
	UpdateElectronicAddress(ctx context.Context, ea *models.ElectronicAddress) error
	DeleteElectronicAddress(ctx context.Context, id uint) error
	FindElectronicAddressesByEntityID(ctx context.Context, entityID uint) ([]models.ElectronicAddress, error)
	DeleteElectronicAddressesByEntityID(ctx context.Context, entityID uint) error
}

type ContactPointRepository struct {
	db *gorm.DB
}

func NewContactPointRepository(db *gorm.DB) IContactPointRepository {
	return &ContactPointRepository{db: db}
}

func (r *ContactPointRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	if address == nil || address.EntityID == 0 {
		return errors.New("address without an owning entity cannot be created")
	}
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *ContactPointRepository) UpdateAddress(ctx context.Context, address *models.Address) error {
	if address == nil || address.ID == 0 {
		return errors.New("address to update is not valid")
	}
	return r.db.WithContext(ctx).Save(address).Error
}

func (r *ContactPointRepository) DeleteAddress(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Address{}, id).Error
}

func (r *ContactPointRepository) FindAddressesByEntityID(ctx context.Context, entityID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.WithContext(ctx).Where("entity_id = ?", entityID).Order("id asc").Find(&addresses).Error
	return addresses, err
}

func (r *ContactPointRepository) DeleteAddressesByEntityID(ctx context.Context, entityID uint) error {
	return r.db.WithContext(ctx).Where("entity_id = ?", entityID).Delete(&models.Address{}).Error
}

func (r *ContactPointRepository) CreatePhone(ctx context.Context, phone *models.Phone) error {
	if phone == nil || phone.EntityID == 0 {
		return errors.New("phone without an owning entity cannot be created")
	}
	return r.db.WithContext(ctx).Create(phone).Error
}

func (r *ContactPointRepository) UpdatePhone(ctx context.Context, phone *models.Phone) error {
	if phone == nil || phone.ID == 0 {
		return errors.New("phone to update is not valid")
	}
	return r.db.WithContext(ctx).Save(phone).Error
}

func (r *ContactPointRepository) DeletePhone(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Phone{}, id).Error
}

func (r *ContactPointRepository) FindPhonesByEntityID(ctx context.Context, entityID uint) ([]models.Phone, error) {
	var phones []models.Phone
	err := r.db.WithContext(ctx).Preload("Type").Where("entity_id = ?", entityID).Order("id asc").Find(&phones).Error
	return phones, err
}

func (r *ContactPointRepository) DeletePhonesByEntityID(ctx context.Context, entityID uint) error {
	return r.db.WithContext(ctx).Where("entity_id = ?", entityID).Delete(&models.Phone{}).Error
}

func (r *ContactPointRepository) CreateElectronicAddress(ctx context.Context, ea *models.ElectronicAddress) error {
	if ea == nil || ea.EntityID == 0 {
		return errors.New("electronic address without an owning entity cannot be created")
	}
	return r.db.WithContext(ctx).Create(ea).Error
}

func (r *ContactPointRepository) UpdateElectronicAddress(ctx context.Context, ea *models.ElectronicAddress) error {
	if ea == nil || ea.ID == 0 {
		return errors.New("electronic address to update is not valid")
	}
	return r.db.WithContext(ctx).Save(ea).Error
}

func (r *ContactPointRepository) DeleteElectronicAddress(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ElectronicAddress{}, id).Error
}

func (r *ContactPointRepository) FindElectronicAddressesByEntityID(ctx context.Context, entityID uint) ([]models.ElectronicAddress, error) {
	var eas []models.ElectronicAddress
	err := r.db.WithContext(ctx).Preload("Type").Where("entity_id = ?", entityID).Order("id asc").Find(&eas).Error
	return eas, err
}

func (r *ContactPointRepository) DeleteElectronicAddressesByEntityID(ctx context.Context, entityID uint) error {
	return r.db.WithContext(ctx).Where("entity_id = ?", entityID).Delete(&models.ElectronicAddress{}).Error
}

var _ IContactPointRepository = (*ContactPointRepository)(nil)
