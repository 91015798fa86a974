package services

import (
	"context"
	"errors"
	"fmt"

	"stagedesk/configs/configslog"
	"stagedesk/models"
	"stagedesk/pkg/queryparams"
	"stagedesk/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContactServiceError is the typed error for contact operations.
type ContactServiceError string

func (e ContactServiceError) Error() string { return string(e) }

const (
	ErrContactNotFound       ContactServiceError = "contact not found"
	ErrContactCreationFailed ContactServiceError = "contact could not be created"
	ErrContactUpdateFailed   ContactServiceError = "contact could not be updated"
	ErrContactDeletionFailed ContactServiceError = "contact could not be deleted"
	ErrContactInvalidInput   ContactServiceError = "invalid contact input"
)

// AddressInput is a submitted postal address.
type AddressInput struct {
	ID         uint   `json:"id" form:"id"`
	Street     string `json:"street" form:"street"`
	City       string `json:"city" form:"city"`
	Region     string `json:"region" form:"region"`
	PostalCode string `json:"postal_code" form:"postal_code"`
	Country    string `json:"country" form:"country"`
}

// PhoneInput is a submitted phone row. A zero ID means a new row.
type PhoneInput struct {
	ID          uint   `json:"id" form:"id"`
	PhoneTypeID *uint  `json:"phone_type_id" form:"phone_type_id"`
	Number      string `json:"number" form:"number" validate:"required"`
}

// ElectronicAddressInput is a submitted email/website/handle row.
type ElectronicAddressInput struct {
	ID      uint   `json:"id" form:"id"`
	TypeID  *uint  `json:"electronic_address_type_id" form:"electronic_address_type_id"`
	Address string `json:"address" form:"address" validate:"required"`
}

// ContactInput is the create/update payload for a contact.
type ContactInput struct {
	FirstName           string                   `json:"first_name" form:"first_name" validate:"required"`
	LastName            string                   `json:"last_name" form:"last_name" validate:"required"`
	JobTitle            string                   `json:"job_title" form:"job_title"`
	Note                string                   `json:"note" form:"note"`
	ReferralSourceID    *uint                    `json:"referral_source_id" form:"referral_source_id"`
	AgentID             *uint                    `json:"agent_id" form:"agent_id"`
	Address             *AddressInput            `json:"address"`
	Phones              []PhoneInput             `json:"phones" validate:"dive"`
	ElectronicAddresses []ElectronicAddressInput `json:"electronic_addresses" validate:"dive"`
}

// PhoneView is a phone row with its type resolved for display.
type PhoneView struct {
	models.Phone
	TypeLabel string
}

// ElectronicAddressView is an electronic address row with its type resolved.
type ElectronicAddressView struct {
	models.ElectronicAddress
	TypeLabel string
}

// ContactDetail is the detail-page aggregate: the person, its dependent rows
// and the cross-referenced display names.
type ContactDetail struct {
	Person              models.Person
	Addresses           []models.Address
	Phones              []PhoneView
	ElectronicAddresses []ElectronicAddressView
	AgentName           string
	ReferralSource      string
}

// IContactService implements the contact form/action layer.
type IContactService interface {
	CreateContact(ctx context.Context, input ContactInput) (*models.Person, error)
	GetContactDetail(ctx context.Context, id uint) (*ContactDetail, error)
	GetContactsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateContact(ctx context.Context, id uint, input ContactInput) error
	DeleteContact(ctx context.Context, id uint) error
}

type ContactService struct {
	entities      repositories.IEntityRepository
	contacts      repositories.IContactRepository
	contactPoints repositories.IContactPointRepository
	lookups       ILookupService
}

func NewContactService(db *gorm.DB) IContactService {
	return &ContactService{
		entities:      repositories.NewEntityRepository(db),
		contacts:      repositories.NewContactRepository(db),
		contactPoints: repositories.NewContactPointRepository(db),
		lookups:       NewLookupService(db),
	}
}

// CreateContact allocates the entity row, then the person extension, then any
// dependent address/phone rows, in that order. The steps are sequential and
// not wrapped in a transaction: a mid-sequence failure leaves the earlier rows
// in place (see DESIGN.md).
func (s *ContactService) CreateContact(ctx context.Context, input ContactInput) (*models.Person, error) {
	if err := validateStruct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContactInvalidInput, err)
	}

	entity, err := s.entities.Create(ctx, models.EntityTypePerson)
	if err != nil {
		configslog.Log.Error("CreateContact: entity row failed", zap.Error(err))
		return nil, ErrContactCreationFailed
	}

	person := models.Person{
		EntityID:         entity.ID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		JobTitle:         input.JobTitle,
		Note:             input.Note,
		ReferralSourceID: input.ReferralSourceID,
		AgentID:          input.AgentID,
	}
	if err := s.contacts.Create(ctx, &person); err != nil {
		configslog.Log.Error("CreateContact: person row failed", zap.Uint("entityID", entity.ID), zap.Error(err))
		return nil, ErrContactCreationFailed
	}

	if input.Address != nil {
		address := models.Address{
			EntityID:   entity.ID,
			Street:     input.Address.Street,
			City:       input.Address.City,
			Region:     input.Address.Region,
			PostalCode: input.Address.PostalCode,
			Country:    input.Address.Country,
		}
		if err := s.contactPoints.CreateAddress(ctx, &address); err != nil {
			configslog.Log.Error("CreateContact: address row failed", zap.Uint("entityID", entity.ID), zap.Error(err))
			return nil, ErrContactCreationFailed
		}
	}
	for _, p := range input.Phones {
		phone := models.Phone{EntityID: entity.ID, PhoneTypeID: p.PhoneTypeID, Number: p.Number}
		if err := s.contactPoints.CreatePhone(ctx, &phone); err != nil {
			configslog.Log.Error("CreateContact: phone row failed", zap.Uint("entityID", entity.ID), zap.Error(err))
			return nil, ErrContactCreationFailed
		}
	}

	return &person, nil
}

// GetContactDetail loads the person plus dependent rows and resolved names.
func (s *ContactService) GetContactDetail(ctx context.Context, id uint) (*ContactDetail, error) {
	person, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}

	detail := ContactDetail{
		Person:         *person,
		AgentName:      s.lookups.PersonName(ctx, person.AgentID),
		ReferralSource: s.lookups.ReferralSourceLabel(ctx, person.ReferralSourceID),
	}

	if detail.Addresses, err = s.contactPoints.FindAddressesByEntityID(ctx, person.EntityID); err != nil {
		return nil, err
	}
	phones, err := s.contactPoints.FindPhonesByEntityID(ctx, person.EntityID)
	if err != nil {
		return nil, err
	}
	for _, phone := range phones {
		detail.Phones = append(detail.Phones, PhoneView{
			Phone:     phone,
			TypeLabel: s.lookups.PhoneTypeLabel(ctx, phone.PhoneTypeID),
		})
	}
	eas, err := s.contactPoints.FindElectronicAddressesByEntityID(ctx, person.EntityID)
	if err != nil {
		return nil, err
	}
	for _, ea := range eas {
		detail.ElectronicAddresses = append(detail.ElectronicAddresses, ElectronicAddressView{
			ElectronicAddress: ea,
			TypeLabel:         s.lookups.ElectronicAddressTypeLabel(ctx, ea.ElectronicAddressTypeID),
		})
	}
	return &detail, nil
}

func (s *ContactService) GetContactsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	persons, totalCount, err := s.contacts.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: persons,
		Meta: queryparams.NewPaginationMeta(params.Page, params.PerPage, totalCount),
	}, nil
}

// UpdateContact saves the person row, then reconciles the phone and electronic
// address collections by id.
func (s *ContactService) UpdateContact(ctx context.Context, id uint, input ContactInput) error {
	if err := validateStruct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrContactInvalidInput, err)
	}

	person, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrContactNotFound
		}
		return err
	}

	person.FirstName = input.FirstName
	person.LastName = input.LastName
	person.JobTitle = input.JobTitle
	person.Note = input.Note
	person.ReferralSourceID = input.ReferralSourceID
	person.AgentID = input.AgentID
	if err := s.contacts.Update(ctx, person); err != nil {
		configslog.Log.Error("UpdateContact: person row failed", zap.Uint("id", id), zap.Error(err))
		return ErrContactUpdateFailed
	}

	if err := s.reconcilePhones(ctx, person.EntityID, input.Phones); err != nil {
		configslog.Log.Error("UpdateContact: phone reconciliation failed", zap.Uint("id", id), zap.Error(err))
		return ErrContactUpdateFailed
	}
	if err := s.reconcileElectronicAddresses(ctx, person.EntityID, input.ElectronicAddresses); err != nil {
		configslog.Log.Error("UpdateContact: electronic address reconciliation failed", zap.Uint("id", id), zap.Error(err))
		return ErrContactUpdateFailed
	}
	return nil
}

func (s *ContactService) reconcilePhones(ctx context.Context, entityID uint, submitted []PhoneInput) error {
	stored, err := s.contactPoints.FindPhonesByEntityID(ctx, entityID)
	if err != nil {
		return err
	}
	existingIDs := make([]uint, 0, len(stored))
	for _, p := range stored {
		existingIDs = append(existingIDs, p.ID)
	}

	diff := Reconcile(existingIDs, submitted, func(p PhoneInput) uint { return p.ID })
	for _, in := range diff.ToInsert {
		phone := models.Phone{EntityID: entityID, PhoneTypeID: in.PhoneTypeID, Number: in.Number}
		if err := s.contactPoints.CreatePhone(ctx, &phone); err != nil {
			return err
		}
	}
	for _, in := range diff.ToUpdate {
		phone := models.Phone{
			BaseModel:   models.BaseModel{ID: in.ID},
			EntityID:    entityID,
			PhoneTypeID: in.PhoneTypeID,
			Number:      in.Number,
		}
		if err := s.contactPoints.UpdatePhone(ctx, &phone); err != nil {
			return err
		}
	}
	for _, id := range diff.ToDelete {
		if err := s.contactPoints.DeletePhone(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContactService) reconcileElectronicAddresses(ctx context.Context, entityID uint, submitted []ElectronicAddressInput) error {
	stored, err := s.contactPoints.FindElectronicAddressesByEntityID(ctx, entityID)
	if err != nil {
		return err
	}
	existingIDs := make([]uint, 0, len(stored))
	for _, ea := range stored {
		existingIDs = append(existingIDs, ea.ID)
	}

	diff := Reconcile(existingIDs, submitted, func(ea ElectronicAddressInput) uint { return ea.ID })
	for _, in := range diff.ToInsert {
		ea := models.ElectronicAddress{EntityID: entityID, ElectronicAddressTypeID: in.TypeID, Address: in.Address}
		if err := s.contactPoints.CreateElectronicAddress(ctx, &ea); err != nil {
			return err
		}
	}
	for _, in := range diff.ToUpdate {
		ea := models.ElectronicAddress{
			BaseModel:               models.BaseModel{ID: in.ID},
			EntityID:                entityID,
			ElectronicAddressTypeID: in.TypeID,
			Address:                 in.Address,
		}
		if err := s.contactPoints.UpdateElectronicAddress(ctx, &ea); err != nil {
			return err
		}
	}
	for _, id := range diff.ToDelete {
		if err := s.contactPoints.DeleteElectronicAddress(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// DeleteContact removes the dependent rows first, then the person extension,
// then the entity row. The order matters: the foreign keys point from the
// dependents to the entity.
func (s *ContactService) DeleteContact(ctx context.Context, id uint) error {
	person, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrContactNotFound
		}
		return err
	}

	entityID := person.EntityID
	if err := s.contactPoints.DeleteAddressesByEntityID(ctx, entityID); err != nil {
		configslog.Log.Error("DeleteContact: addresses failed", zap.Uint("entityID", entityID), zap.Error(err))
		return ErrContactDeletionFailed
	}
	if err := s.contactPoints.DeletePhonesByEntityID(ctx, entityID); err != nil {
		configslog.Log.Error("DeleteContact: phones failed", zap.Uint("entityID", entityID), zap.Error(err))
		return ErrContactDeletionFailed
	}
	if err := s.contactPoints.DeleteElectronicAddressesByEntityID(ctx, entityID); err != nil {
		configslog.Log.Error("DeleteContact: electronic addresses failed", zap.Uint("entityID", entityID), zap.Error(err))
		return ErrContactDeletionFailed
	}
	if err := s.contacts.Delete(ctx, person); err != nil {
		configslog.Log.Error("DeleteContact: person row failed", zap.Uint("id", id), zap.Error(err))
		return ErrContactDeletionFailed
	}
	if err := s.entities.Delete(ctx, entityID); err != nil {
		configslog.Log.Error("DeleteContact: entity row failed", zap.Uint("entityID", entityID), zap.Error(err))
		return ErrContactDeletionFailed
	}
	return nil
}

var _ IContactService = (*ContactService)(nil)
