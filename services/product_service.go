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

// ProductServiceError is the typed error for product operations.
type ProductServiceError string

func (e ProductServiceError) Error() string { return string(e) }

const (
	ErrProductNotFound       ProductServiceError = "product not found"
	ErrProductCreationFailed ProductServiceError = "product could not be created"
	ErrProductUpdateFailed   ProductServiceError = "product could not be updated"
	ErrProductDeletionFailed ProductServiceError = "product could not be deleted"
	ErrProductInvalidInput   ProductServiceError = "invalid product input"
)

// EntertainerInput is the optional specialization carried on a product
// submission.
type EntertainerInput struct {
	Bio         string `json:"bio" form:"bio"`
	BandSize    int    `json:"band_size" form:"band_size" validate:"gte=0"`
	LeaderID    *uint  `json:"leader_id" form:"leader_id"`
	IsExclusive bool   `json:"is_exclusive" form:"is_exclusive"`
}

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name             string            `json:"name" form:"name" validate:"required"`
	GrossPrice       float64           `json:"gross_price" form:"gross_price" validate:"gte=0"`
	FeePercent       float64           `json:"fee_percent" form:"fee_percent" validate:"gte=0,lte=100"`
	IsAvailable      bool              `json:"is_available" form:"is_available"`
	BookingContactID *uint             `json:"booking_contact_id" form:"booking_contact_id"`
	Entertainer      *EntertainerInput `json:"entertainer"`
}

// ProductDetail is the detail-page aggregate.
type ProductDetail struct {
	Product            models.Product
	BookingContactName string
	LeaderName         string
	Bookings           []models.EventProduct
}

// IProductService implements the product/entertainer form/action layer.
type IProductService interface {
	CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error)
	GetProductDetail(ctx context.Context, id uint) (*ProductDetail, error)
	GetProductsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateProduct(ctx context.Context, id uint, input ProductInput) error
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductService struct {
	entities repositories.IEntityRepository
	products repositories.IProductRepository
	bookings repositories.IEventProductRepository
	lookups  ILookupService
}

func NewProductService(db *gorm.DB) IProductService {
	return &ProductService{
		entities: repositories.NewEntityRepository(db),
		products: repositories.NewProductRepository(db),
		bookings: repositories.NewEventProductRepository(db),
		lookups:  NewLookupService(db),
	}
}

// CreateProduct allocates the entity row, the product row and, when the
// submission carries one, the entertainer extension.
func (s *ProductService) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := validateStruct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductInvalidInput, err)
	}

	entity, err := s.entities.Create(ctx, models.EntityTypeProduct)
	if err != nil {
		configslog.Log.Error("CreateProduct: entity row failed", zap.Error(err))
		return nil, ErrProductCreationFailed
	}

	product := models.Product{
		EntityID:         entity.ID,
		Name:             input.Name,
		GrossPrice:       input.GrossPrice,
		FeePercent:       input.FeePercent,
		IsAvailable:      input.IsAvailable,
		BookingContactID: input.BookingContactID,
	}
	if err := s.products.Create(ctx, &product); err != nil {
		configslog.Log.Error("CreateProduct: product row failed", zap.Uint("entityID", entity.ID), zap.Error(err))
		return nil, ErrProductCreationFailed
	}

	if input.Entertainer != nil {
		ent := models.Entertainer{
			ProductID:   product.ID,
			Bio:         input.Entertainer.Bio,
			BandSize:    input.Entertainer.BandSize,
			LeaderID:    input.Entertainer.LeaderID,
			IsExclusive: input.Entertainer.IsExclusive,
		}
		if err := s.products.CreateEntertainer(ctx, &ent); err != nil {
			configslog.Log.Error("CreateProduct: entertainer row failed", zap.Uint("productID", product.ID), zap.Error(err))
			return nil, ErrProductCreationFailed
		}
	}

	return &product, nil
}

func (s *ProductService) GetProductDetail(ctx context.Context, id uint) (*ProductDetail, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	detail := ProductDetail{
		Product:            *product,
		BookingContactName: s.lookups.PersonName(ctx, product.BookingContactID),
		LeaderName:         UnknownLabel,
	}
	if product.Entertainer != nil {
		detail.LeaderName = s.lookups.PersonName(ctx, product.Entertainer.LeaderID)
	}
	if detail.Bookings, err = s.bookings.FindByProductID(ctx, product.ID); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *ProductService) GetProductsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	products, totalCount, err := s.products.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: products,
		Meta: queryparams.NewPaginationMeta(params.Page, params.PerPage, totalCount),
	}, nil
}

// UpdateProduct saves the product row and reconciles the entertainer
// extension: created when newly submitted, updated when present, removed when
// the submission no longer carries one.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input ProductInput) error {
	if err := validateStruct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrProductInvalidInput, err)
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	product.Name = input.Name
	product.GrossPrice = input.GrossPrice
	product.FeePercent = input.FeePercent
	product.IsAvailable = input.IsAvailable
	product.BookingContactID = input.BookingContactID
	if err := s.products.Update(ctx, product); err != nil {
		configslog.Log.Error("UpdateProduct: product row failed", zap.Uint("id", id), zap.Error(err))
		return ErrProductUpdateFailed
	}

	switch {
	case input.Entertainer == nil && product.Entertainer != nil:
		if err := s.products.DeleteEntertainerByProductID(ctx, product.ID); err != nil {
			configslog.Log.Error("UpdateProduct: entertainer removal failed", zap.Uint("id", id), zap.Error(err))
			return ErrProductUpdateFailed
		}
	case input.Entertainer != nil && product.Entertainer == nil:
		ent := models.Entertainer{
			ProductID:   product.ID,
			Bio:         input.Entertainer.Bio,
			BandSize:    input.Entertainer.BandSize,
			LeaderID:    input.Entertainer.LeaderID,
			IsExclusive: input.Entertainer.IsExclusive,
		}
		if err := s.products.CreateEntertainer(ctx, &ent); err != nil {
			configslog.Log.Error("UpdateProduct: entertainer row failed", zap.Uint("id", id), zap.Error(err))
			return ErrProductUpdateFailed
		}
	case input.Entertainer != nil && product.Entertainer != nil:
		ent := product.Entertainer
		ent.Bio = input.Entertainer.Bio
		ent.BandSize = input.Entertainer.BandSize
		ent.LeaderID = input.Entertainer.LeaderID
		ent.IsExclusive = input.Entertainer.IsExclusive
		if err := s.products.UpdateEntertainer(ctx, ent); err != nil {
			configslog.Log.Error("UpdateProduct: entertainer update failed", zap.Uint("id", id), zap.Error(err))
			return ErrProductUpdateFailed
		}
	}
	return nil
}

// DeleteProduct removes bookings and the entertainer extension before the
// product and entity rows.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	entityID := product.EntityID
	if err := s.bookings.DeleteByProductID(ctx, product.ID); err != nil {
		configslog.Log.Error("DeleteProduct: bookings failed", zap.Uint("id", id), zap.Error(err))
		return ErrProductDeletionFailed
	}
	if err := s.products.DeleteEntertainerByProductID(ctx, product.ID); err != nil {
		configslog.Log.Error("DeleteProduct: entertainer row failed", zap.Uint("id", id), zap.Error(err))
		return ErrProductDeletionFailed
	}
	if err := s.products.Delete(ctx, product); err != nil {
		configslog.Log.Error("DeleteProduct: product row failed", zap.Uint("id", id), zap.Error(err))
		return ErrProductDeletionFailed
	}
	if err := s.entities.Delete(ctx, entityID); err != nil {
		configslog.Log.Error("DeleteProduct: entity row failed", zap.Uint("entityID", entityID), zap.Error(err))
		return ErrProductDeletionFailed
	}
	return nil
}

var _ IProductService = (*ProductService)(nil)
