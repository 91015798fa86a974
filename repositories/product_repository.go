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

// IProductRepository manages Product rows and their optional Entertainer
// extension.
type IProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	CreateEntertainer(ctx context.Context, ent *models.Entertainer) error
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindByEntityID(ctx context.Context, entityID uint) (*models.Product, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Product, int64, error)
	Update(ctx context.Context, product *models.Product) error
	UpdateEntertainer(ctx context.Context, ent *models.Entertainer) error
	DeleteEntertainerByProductID(ctx context.Context, productID uint) error
	Delete(ctx context.Context, product *models.Product) error
	CountAll(ctx context.Context) (int64, error)
}

type ProductRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Product]
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	base := NewBaseRepository[models.Product](db)
	base.SetAllowedSortColumns(map[string]string{
		"id":          "products.id",
		"created_at":  "products.created_at",
		"name":        "products.name",
		"gross_price": "products.gross_price",
	})
	return &ProductRepository{db: db, base: base}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product == nil || product.EntityID == 0 {
		return errors.New("product without an entity row cannot be created")
	}
	return r.db.WithContext(ctx).Omit("Entertainer").Create(product).Error
}

func (r *ProductRepository) CreateEntertainer(ctx context.Context, ent *models.Entertainer) error {
	if ent == nil || ent.ProductID == 0 {
		return errors.New("entertainer without a product row cannot be created")
	}
	return r.db.WithContext(ctx).Create(ent).Error
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("BookingContact").Preload("Entertainer").Preload("Entertainer.Leader").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ProductRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindByEntityID(ctx context.Context, entityID uint) (*models.Product, error) {
	if entityID == 0 {
		return nil, ErrNotFound
	}
	var product models.Product
	err := r.db.WithContext(ctx).Where("entity_id = ?", entityID).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Product, int64, error) {
	var products []models.Product
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Product{})
	if params.Search != "" {
		query = query.Where("LOWER(products.name) LIKE ?", searchPattern(params.Search))
	}
	query = query.Order(r.base.OrderClause(params.SortBy, params.OrderBy))

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("ProductRepository.FindAllPaginated: count failed", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return products, 0, nil
	}

	err := query.
		Preload("Entertainer").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&products).Error
	if err != nil {
		configslog.Log.Error("ProductRepository.FindAllPaginated: find failed", zap.Error(err))
		return nil, totalCount, err
	}
	return products, totalCount, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	if product == nil || product.ID == 0 {
		return errors.New("product to update is not valid")
	}
	return r.db.WithContext(ctx).Omit("Entertainer").Save(product).Error
}

func (r *ProductRepository) UpdateEntertainer(ctx context.Context, ent *models.Entertainer) error {
	if ent == nil || ent.ID == 0 {
		return errors.New("entertainer to update is not valid")
	}
	return r.db.WithContext(ctx).Save(ent).Error
}

func (r *ProductRepository) DeleteEntertainerByProductID(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.Entertainer{}).Error
}

func (r *ProductRepository) Delete(ctx context.Context, product *models.Product) error {
	if product == nil || product.ID == 0 {
		return errors.New("product to delete is not valid")
	}
	return r.db.WithContext(ctx).Delete(product).Error
}

func (r *ProductRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

var _ IProductRepository = (*ProductRepository)(nil)
