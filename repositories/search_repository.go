package repositories

import (
	"context"

	"stagedesk/configs/configslog"
	"stagedesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// searchSubQueryLimit caps each per-table sub-query of the global search.
const searchSubQueryLimit = 50

// ISearchRepository runs the cross-entity free-text search.
type ISearchRepository interface {
	SearchPersons(ctx context.Context, q string) ([]models.Person, error)
	SearchOrganizations(ctx context.Context, q string) ([]models.Organization, error)
	SearchProducts(ctx context.Context, q string) ([]models.Product, error)
	SearchEvents(ctx context.Context, q string) ([]models.Event, error)
}

type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) ISearchRepository {
	return &SearchRepository{db: db}
}

func (r *SearchRepository) SearchPersons(ctx context.Context, q string) ([]models.Person, error) {
	var rows []models.Person
	pattern := searchPattern(q)
	err := r.db.WithContext(ctx).
		Preload("Agent").
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern).
		Limit(searchSubQueryLimit).
		Find(&rows).Error
	if err != nil {
		configslog.Log.Error("SearchRepository.SearchPersons failed", zap.String("q", q), zap.Error(err))
	}
	return rows, err
}

func (r *SearchRepository) SearchOrganizations(ctx context.Context, q string) ([]models.Organization, error) {
	var rows []models.Organization
	err := r.db.WithContext(ctx).
		Preload("Contact").Preload("Types").
		Where("LOWER(name) LIKE ?", searchPattern(q)).
		Limit(searchSubQueryLimit).
		Find(&rows).Error
	if err != nil {
		configslog.Log.Error("SearchRepository.SearchOrganizations failed", zap.String("q", q), zap.Error(err))
	}
	return rows, err
}

func (r *SearchRepository) SearchProducts(ctx context.Context, q string) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", searchPattern(q)).
		Limit(searchSubQueryLimit).
		Find(&rows).Error
	if err != nil {
		configslog.Log.Error("SearchRepository.SearchProducts failed", zap.String("q", q), zap.Error(err))
	}
	return rows, err
}

func (r *SearchRepository) SearchEvents(ctx context.Context, q string) ([]models.Event, error) {
	var rows []models.Event
	err := r.db.WithContext(ctx).
		Preload("Status").
		Where("LOWER(name) LIKE ?", searchPattern(q)).
		Limit(searchSubQueryLimit).
		Find(&rows).Error
	if err != nil {
		configslog.Log.Error("SearchRepository.SearchEvents failed", zap.String("q", q), zap.Error(err))
	}
	return rows, err
}

var _ ISearchRepository = (*SearchRepository)(nil)
