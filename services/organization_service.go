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

// OrganizationServiceError is the typed error for organization operations.
type OrganizationServiceError string

func (e OrganizationServiceError) Error() string { return string(e) }

const (
	ErrOrganizationNotFound       OrganizationServiceError = "organization not found"
	ErrOrganizationCreationFailed OrganizationServiceError = "organization could not be created"
	ErrOrganizationUpdateFailed   OrganizationServiceError = "organization could not be updated"
	ErrOrganizationDeletionFailed OrganizationServiceError = "organization could not be deleted"
	ErrOrganizationInvalidInput   OrganizationServiceError = "invalid organization input"
)

// OrganizationInput is the create/update payload for an organization.
type OrganizationInput struct {
	Name                string                   `json:"name" form:"name" validate:"required"`
	Note                string                   `json:"note" form:"note"`
	ReferralSourceID    *uint                    `json:"referral_source_id" form:"referral_source_id"`
	AgentID             *uint                    `json:"agent_id" form:"agent_id"`
	ContactID           *uint                    `json:"contact_id" form:"contact_id"`
	TypeIDs             []uint                   `json:"type_ids" form:"type_ids"`
	Address             *AddressInput            `json:"address"`
	Phones              []PhoneInput             `json:"phones" validate:"dive"`
	ElectronicAddresses []ElectronicAddressInput `json:"electronic_addresses" validate:"dive"`
}

// OrganizationDetail is the detail-page aggregate.
type OrganizationDetail struct {
	Organization        models.Organization
	Addresses           []models.Address
	Phones              []PhoneView
	ElectronicAddresses []ElectronicAddressView
	AgentName           string
	ContactName         string
	ReferralSource      string
}

// IOrganizationService implements the organization form/action layer.
type IOrganizationService interface {
	CreateOrganization(ctx context.Context, input OrganizationInput) (*models.Organization, error)
	GetOrganizationDetail(ctx context.Context, id uint) (*OrganizationDetail, error)
	GetOrganizationsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateOrganization(ctx context.Context, id uint, input OrganizationInput) error
	DeleteOrganization(ctx context.Context, id uint) error
}

type OrganizationService struct {
	entities      repositories.IEntityRepository
	orgs          repositories.IOrganizationRepository
	contactPoints repositories.IContactPointRepository
	lookupRepo    repositories.ILookupRepository
	lookups       ILookupService
	contactSvc    *ContactService
}

func NewOrganizationService(db *gorm.DB) IOrganizationService {
	return &OrganizationService{
		entities:      repositories.NewEntityRepository(db),
		orgs:          repositories.NewOrganizationRepository(db),
		contactPoints: repositories.NewContactPointRepository(db),
		lookupRepo:    repositories.NewLookupRepository(db),
		lookups:       NewLookupService(db),
		contactSvc:    NewContactService(db).(*ContactService),
	}
}

// CreateOrganization follows the same ordered sequence as contacts: entity row,
// concrete row, type tags, then dependent rows.
func (s *OrganizationService) CreateOrganization(ctx context.Context, input OrganizationInput) (*models.Organization, error) {
	if err := validateStruct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrganizationInvalidInput, err)
	}

	entity, err := s.entities.Create(ctx, models.EntityTypeOrganization)
	if err != nil {
		configslog.Log.Error("CreateOrganization: entity row failed", zap.Error(err))
		return nil, ErrOrganizationCreationFailed
	}

	org := models.Organization{
		EntityID:         entity.ID,
		Name:             input.Name,
		Note:             input.Note,
		ReferralSourceID: input.ReferralSourceID,
		AgentID:          input.AgentID,
		ContactID:        input.ContactID,
	}
	if err := s.orgs.Create(ctx, &org); err != nil {
		configslog.Log.Error("CreateOrganization: organization row failed", zap.Uint("entityID", entity.ID), zap.Error(err))
		return nil, ErrOrganizationCreationFailed
	}

	if err := s.applyTypeTags(ctx, &org, input.TypeIDs); err != nil {
		configslog.Log.Error("CreateOrganization: type tags failed", zap.Uint("id", org.ID), zap.Error(err))
		return nil, ErrOrganizationCreationFailed
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
			configslog.Log.Error("CreateOrganization: address row failed", zap.Uint("entityID", entity.ID), zap.Error(err))
			return nil, ErrOrganizationCreationFailed
		}
	}
	for _, p := range input.Phones {
		phone := models.Phone{EntityID: entity.ID, PhoneTypeID: p.PhoneTypeID, Number: p.Number}
		if err := s.contactPoints.CreatePhone(ctx, &phone); err != nil {
			configslog.Log.Error("CreateOrganization: phone row failed", zap.Uint("entityID", entity.ID), zap.Error(err))
			return nil, ErrOrganizationCreationFailed
		}
	}

	return &org, nil
}

func (s *OrganizationService) applyTypeTags(ctx context.Context, org *models.Organization, typeIDs []uint) error {
	if len(typeIDs) == 0 {
		return s.orgs.ClearTypes(ctx, org)
	}
	types, err := s.lookupRepo.FindOrganizationTypesByIDs(ctx, typeIDs)
	if err != nil {
		return err
	}
	return s.orgs.ReplaceTypes(ctx, org, types)
}

func (s *OrganizationService) GetOrganizationDetail(ctx context.Context, id uint) (*OrganizationDetail, error) {
	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}

	detail := OrganizationDetail{
		Organization:   *org,
		AgentName:      s.lookups.PersonName(ctx, org.AgentID),
		ContactName:    s.lookups.PersonName(ctx, org.ContactID),
		ReferralSource: s.lookups.ReferralSourceLabel(ctx, org.ReferralSourceID),
	}

	if detail.Addresses, err = s.contactPoints.FindAddressesByEntityID(ctx, org.EntityID); err != nil {
		return nil, err
	}
	phones, err := s.contactPoints.FindPhonesByEntityID(ctx, org.EntityID)
	if err != nil {
		return nil, err
	}
	for _, phone := range phones {
		detail.Phones = append(detail.Phones, PhoneView{
			Phone:     phone,
			TypeLabel: s.lookups.PhoneTypeLabel(ctx, phone.PhoneTypeID),
		})
	}
	eas, err := s.contactPoints.FindElectronicAddressesByEntityID(ctx, org.EntityID)
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

func (s *OrganizationService) GetOrganizationsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	orgs, totalCount, err := s.orgs.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: orgs,
		Meta: queryparams.NewPaginationMeta(params.Page, params.PerPage, totalCount),
	}, nil
}

func (s *OrganizationService) UpdateOrganization(ctx context.Context, id uint, input OrganizationInput) error {
	if err := validateStruct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrOrganizationInvalidInput, err)
	}

	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrganizationNotFound
		}
		return err
	}

	org.Name = input.Name
	org.Note = input.Note
	org.ReferralSourceID = input.ReferralSourceID
	org.AgentID = input.AgentID
	org.ContactID = input.ContactID
	if err := s.orgs.Update(ctx, org); err != nil {
		configslog.Log.Error("UpdateOrganization: organization row failed", zap.Uint("id", id), zap.Error(err))
		return ErrOrganizationUpdateFailed
	}
	if err := s.applyTypeTags(ctx, org, input.TypeIDs); err != nil {
		configslog.Log.Error("UpdateOrganization: type tags failed", zap.Uint("id", id), zap.Error(err))
		return ErrOrganizationUpdateFailed
	}

	if err := s.contactSvc.reconcilePhones(ctx, org.EntityID, input.Phones); err != nil {
		configslog.Log.Error("UpdateOrganization: phone reconciliation failed", zap.Uint("id", id), zap.Error(err))
		return ErrOrganizationUpdateFailed
	}
	if err := s.contactSvc.reconcileElectronicAddresses(ctx, org.EntityID, input.ElectronicAddresses); err != nil {
		configslog.Log.Error("UpdateOrganization: electronic address reconciliation failed", zap.Uint("id", id), zap.Error(err))
		return ErrOrganizationUpdateFailed
	}
	return nil
}

// DeleteOrganization removes type tag join rows and dependent rows before the
// concrete and entity rows.
func (s *OrganizationService) DeleteOrganization(ctx context.Context, id uint) error {
	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrganizationNotFound
		}
		return err
	}

	entityID := org.EntityID
	if err := s.orgs.ClearTypes(ctx, org); err != nil {
		configslog.Log.Error("DeleteOrganization: type tags failed", zap.Uint("id", id), zap.Error(err))
		return ErrOrganizationDeletionFailed
	}
	if err := s.contactPoints.DeleteAddressesByEntityID(ctx, entityID); err != nil {
		configslog.Log.Error("DeleteOrganization: addresses failed", zap.Uint("entityID", entityID), zap.Error(err))
		return ErrOrganizationDeletionFailed
	}
	if err := s.contactPoints.DeletePhonesByEntityID(ctx, entityID); err != nil {
		configslog.Log.Error("DeleteOrganization: phones failed", zap.Uint("entityID", entityID), zap.Error(err))
		return ErrOrganizationDeletionFailed
	}
	if err := s.contactPoints.DeleteElectronicAddressesByEntityID(ctx, entityID); err != nil {
		configslog.Log.Error("DeleteOrganization: electronic addresses failed", zap.Uint("entityID", entityID), zap.Error(err))
		return ErrOrganizationDeletionFailed
	}
	if err := s.orgs.Delete(ctx, org); err != nil {
		configslog.Log.Error("DeleteOrganization: organization row failed", zap.Uint("id", id), zap.Error(err))
		return ErrOrganizationDeletionFailed
	}
	if err := s.entities.Delete(ctx, entityID); err != nil {
		configslog.Log.Error("DeleteOrganization: entity row failed", zap.Uint("entityID", entityID), zap.Error(err))
		return ErrOrganizationDeletionFailed
	}
	return nil
}

var _ IOrganizationService = (*OrganizationService)(nil)
