package services

import (
	"context"
	"strings"

	"stagedesk/models"
	"stagedesk/repositories"

	"gorm.io/gorm"
)

// SearchResult is one row of the cross-entity search page.
type SearchResult struct {
	EntityID    uint   `json:"entity_id"`
	RecordID    uint   `json:"record_id"`
	Kind        string `json:"kind"` // person | organization | product | event
	DisplayName string `json:"display_name"`
	Affiliation string `json:"affiliation"` // agent/contact name, when resolvable
}

// Search kind names accepted as the optional type filter.
const (
	SearchKindPerson       = "person"
	SearchKindOrganization = "organization"
	SearchKindProduct      = "product"
	SearchKindEvent        = "event"
)

// searchKindToEntityType maps the filter string to the discriminator id.
var searchKindToEntityType = map[string]uint{
	SearchKindPerson:       models.EntityTypePerson,
	SearchKindOrganization: models.EntityTypeOrganization,
	SearchKindProduct:      models.EntityTypeProduct,
	SearchKindEvent:        models.EntityTypeEvent,
}

// ISearchService runs the global free-text search across the four record sets.
type ISearchService interface {
	GlobalSearch(ctx context.Context, query, kind string) ([]SearchResult, error)
}

type SearchService struct {
	search  repositories.ISearchRepository
	lookups ILookupService
}

func NewSearchService(db *gorm.DB) ISearchService {
	return &SearchService{
		search:  repositories.NewSearchRepository(db),
		lookups: NewLookupService(db),
	}
}

// GlobalSearch composes an OR of per-table sub-queries, each capped at 50
// rows. An unrecognized kind filter falls back to searching everything; an
// empty query returns no rows rather than the whole database.
func (s *SearchService) GlobalSearch(ctx context.Context, query, kind string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	typeFilter, filtered := searchKindToEntityType[strings.ToLower(kind)]
	include := func(entityTypeID uint) bool {
		return !filtered || typeFilter == entityTypeID
	}

	var results []SearchResult

	if include(models.EntityTypePerson) {
		persons, err := s.search.SearchPersons(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, p := range persons {
			affiliation := ""
			if p.Agent != nil {
				affiliation = p.Agent.FullName()
			}
			results = append(results, SearchResult{
				EntityID:    p.EntityID,
				RecordID:    p.ID,
				Kind:        SearchKindPerson,
				DisplayName: p.FullName(),
				Affiliation: affiliation,
			})
		}
	}

	if include(models.EntityTypeOrganization) {
		orgs, err := s.search.SearchOrganizations(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, o := range orgs {
			affiliation := ""
			if o.Contact != nil {
				affiliation = o.Contact.FullName()
			}
			results = append(results, SearchResult{
				EntityID:    o.EntityID,
				RecordID:    o.ID,
				Kind:        SearchKindOrganization,
				DisplayName: o.Name,
				Affiliation: affiliation,
			})
		}
	}

	if include(models.EntityTypeProduct) {
		products, err := s.search.SearchProducts(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			results = append(results, SearchResult{
				EntityID:    p.EntityID,
				RecordID:    p.ID,
				Kind:        SearchKindProduct,
				DisplayName: p.Name,
			})
		}
	}

	if include(models.EntityTypeEvent) {
		events, err := s.search.SearchEvents(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, e := range events {
			affiliation := ""
			if e.Status != nil {
				affiliation = e.Status.Description
			}
			results = append(results, SearchResult{
				EntityID:    e.EntityID,
				RecordID:    e.ID,
				Kind:        SearchKindEvent,
				DisplayName: e.Name,
				Affiliation: affiliation,
			})
		}
	}

	return results, nil
}

var _ ISearchService = (*SearchService)(nil)
