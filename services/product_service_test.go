package services

import (
	"context"
	"testing"

	"stagedesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_EntertainerLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	ctx := context.Background()

	// Plain product, no extension.
	product, err := svc.CreateProduct(ctx, ProductInput{Name: "PA Rental", GrossPrice: 300})
	require.NoError(t, err)
	detail, err := svc.GetProductDetail(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.Product.Entertainer)

	// Promote to entertainer on update.
	err = svc.UpdateProduct(ctx, product.ID, ProductInput{
		Name:        "The Night Owls",
		GrossPrice:  2500,
		Entertainer: &EntertainerInput{Bio: "Five-piece swing band", BandSize: 5},
	})
	require.NoError(t, err)
	detail, err = svc.GetProductDetail(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Product.Entertainer)
	assert.Equal(t, 5, detail.Product.Entertainer.BandSize)

	// Dropping the extension removes the row.
	err = svc.UpdateProduct(ctx, product.ID, ProductInput{Name: "The Night Owls", GrossPrice: 2500})
	require.NoError(t, err)
	var extCount int64
	db.Model(&models.Entertainer{}).Where("product_id = ?", product.ID).Count(&extCount)
	assert.Zero(t, extCount)
}

func TestCreateProduct_FeePercentBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	_, err := svc.CreateProduct(context.Background(), ProductInput{Name: "Overpriced", FeePercent: 120})
	assert.ErrorIs(t, err, ErrProductInvalidInput)
}

func TestDeleteProduct_RemovesExtensionAndEntity(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, ProductInput{
		Name:        "Solo Pianist",
		GrossPrice:  600,
		Entertainer: &EntertainerInput{Bio: "Cocktail sets"},
	})
	require.NoError(t, err)
	entityID := product.EntityID

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	var exts, products, entities int64
	db.Model(&models.Entertainer{}).Where("product_id = ?", product.ID).Count(&exts)
	db.Model(&models.Product{}).Where("entity_id = ?", entityID).Count(&products)
	db.Model(&models.Entity{}).Where("id = ?", entityID).Count(&entities)
	assert.Zero(t, exts)
	assert.Zero(t, products)
	assert.Zero(t, entities)
}
