package services

import (
	"context"

	"stagedesk/models"
	"stagedesk/repositories"

	"gorm.io/gorm"
)

// UnknownLabel is returned whenever a foreign key is absent or dangling.
const UnknownLabel = "Unknown"

// ILookupService resolves foreign keys to display labels for the read side.
// Every method is side-effect free and degrades to UnknownLabel instead of
// failing the page.
type ILookupService interface {
	PhoneTypeLabel(ctx context.Context, id *uint) string
	ElectronicAddressTypeLabel(ctx context.Context, id *uint) string
	EventTypeLabel(ctx context.Context, id *uint) string
	EventStatusLabel(ctx context.Context, id *uint) string
	ReferralSourceLabel(ctx context.Context, id *uint) string
	PersonName(ctx context.Context, id *uint) string
	EntityDisplayName(ctx context.Context, entityID *uint) string

	PhoneTypes(ctx context.Context) []models.PhoneType
	ElectronicAddressTypes(ctx context.Context) []models.ElectronicAddressType
	OrganizationTypes(ctx context.Context) []models.OrganizationType
	EventTypes(ctx context.Context) []models.EventType
	EventStatuses(ctx context.Context) []models.EventStatus
	ReferralSources(ctx context.Context) []models.ReferralSource
}

type LookupService struct {
	lookups  repositories.ILookupRepository
	contacts repositories.IContactRepository
	orgs     repositories.IOrganizationRepository
	products repositories.IProductRepository
	events   repositories.IEventRepository
}

func NewLookupService(db *gorm.DB) ILookupService {
	return &LookupService{
		lookups:  repositories.NewLookupRepository(db),
		contacts: repositories.NewContactRepository(db),
		orgs:     repositories.NewOrganizationRepository(db),
		products: repositories.NewProductRepository(db),
		events:   repositories.NewEventRepository(db),
	}
}

func (s *LookupService) PhoneTypeLabel(ctx context.Context, id *uint) string {
	if id == nil {
		return UnknownLabel
	}
	rows, err := s.lookups.AllPhoneTypes(ctx)
	if err != nil {
		return UnknownLabel
	}
	for _, row := range rows {
		if row.ID == *id {
			return row.Description
		}
	}
	return UnknownLabel
}

func (s *LookupService) ElectronicAddressTypeLabel(ctx context.Context, id *uint) string {
	if id == nil {
		return UnknownLabel
	}
	rows, err := s.lookups.AllElectronicAddressTypes(ctx)
	if err != nil {
		return UnknownLabel
	}
	for _, row := range rows {
		if row.ID == *id {
			return row.Description
		}
	}
	return UnknownLabel
}

func (s *LookupService) EventTypeLabel(ctx context.Context, id *uint) string {
	if id == nil {
		return UnknownLabel
	}
	rows, err := s.lookups.AllEventTypes(ctx)
	if err != nil {
		return UnknownLabel
	}
	for _, row := range rows {
		if row.ID == *id {
			return row.Description
		}
	}
	return UnknownLabel
}

func (s *LookupService) EventStatusLabel(ctx context.Context, id *uint) string {
	if id == nil {
		return UnknownLabel
	}
	rows, err := s.lookups.AllEventStatuses(ctx)
	if err != nil {
		return UnknownLabel
	}
	for _, row := range rows {
		if row.ID == *id {
			return row.Description
		}
	}
	return UnknownLabel
}

func (s *LookupService) ReferralSourceLabel(ctx context.Context, id *uint) string {
	if id == nil {
		return UnknownLabel
	}
	rows, err := s.lookups.AllReferralSources(ctx)
	if err != nil {
		return UnknownLabel
	}
	for _, row := range rows {
		if row.ID == *id {
			return row.Description
		}
	}
	return UnknownLabel
}

// PersonName resolves a persons.id FK to the full name.
func (s *LookupService) PersonName(ctx context.Context, id *uint) string {
	if id == nil {
		return UnknownLabel
	}
	person, err := s.contacts.FindByID(ctx, *id)
	if err != nil {
		return UnknownLabel
	}
	return person.FullName()
}

// EntityDisplayName resolves an entity id to whatever name its concrete
// extension carries. Used for event client/venue columns, where the entity may
// be a person, an organization, a product or another event.
func (s *LookupService) EntityDisplayName(ctx context.Context, entityID *uint) string {
	if entityID == nil {
		return UnknownLabel
	}
	if person, err := s.contacts.FindByEntityID(ctx, *entityID); err == nil {
		return person.FullName()
	}
	if org, err := s.orgs.FindByEntityID(ctx, *entityID); err == nil {
		return org.Name
	}
	if product, err := s.products.FindByEntityID(ctx, *entityID); err == nil {
		return product.Name
	}
	if event, err := s.events.FindByEntityID(ctx, *entityID); err == nil {
		return event.Name
	}
	return UnknownLabel
}

func (s *LookupService) PhoneTypes(ctx context.Context) []models.PhoneType {
	rows, _ := s.lookups.AllPhoneTypes(ctx)
	return rows
}

func (s *LookupService) ElectronicAddressTypes(ctx context.Context) []models.ElectronicAddressType {
	rows, _ := s.lookups.AllElectronicAddressTypes(ctx)
	return rows
}

func (s *LookupService) OrganizationTypes(ctx context.Context) []models.OrganizationType {
	rows, _ := s.lookups.AllOrganizationTypes(ctx)
	return rows
}

func (s *LookupService) EventTypes(ctx context.Context) []models.EventType {
	rows, _ := s.lookups.AllEventTypes(ctx)
	return rows
}

func (s *LookupService) EventStatuses(ctx context.Context) []models.EventStatus {
	rows, _ := s.lookups.AllEventStatuses(ctx)
	return rows
}

func (s *LookupService) ReferralSources(ctx context.Context) []models.ReferralSource {
	rows, _ := s.lookups.AllReferralSources(ctx)
	return rows
}

var _ ILookupService = (*LookupService)(nil)
