package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/export"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service  usecase.ProductUsecase
	store    testStore
	cache    *stubCache
	category *entity.Category
}

func createTestProductService(t *testing.T) productServiceFixtures {
	t.Helper()

	store := newTestStore()
	cache := newStubCache()
	service := NewProductService(ProductServiceParams{
		ProductRepo:  store.products,
		CategoryRepo: store.categories,
		Cache:        cache,
		Exporter:     export.NewXLSXExporter(),
		Logger:       newDiscardLogger(),
	})

	return productServiceFixtures{
		service:  service,
		store:    store,
		cache:    cache,
		category: store.seedCategory(t, "Tools", "tools", nil),
	}
}

func (fx productServiceFixtures) input(name string, price float64) *usecase.CreateProductInput {
	return &usecase.CreateProductInput{Name: name, Price: price, CategoryID: fx.category.ID, Stock: 5}
}

func TestProductService_CreateNewProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.CreateNewProduct(ctx, fx.input("  Hammer ", 12.5))
	require.NoError(t, err)
	assert.Equal(t, "Hammer", product.Name)
	assert.True(t, product.IsActive)
	assert.NotNil(t, product.Images)

	_, err = fx.service.CreateNewProduct(ctx, fx.input("Hammer", 3))
	assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyExists))

	missing := fx.input("Saw", 3)
	missing.CategoryID = entity.NewID()
	_, err = fx.service.CreateNewProduct(ctx, missing)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))

	_, err = fx.service.CreateNewProduct(ctx, fx.input("Drill", -1))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_UpdateExistingProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	hammer, err := fx.service.CreateNewProduct(ctx, fx.input("Hammer", 10))
	require.NoError(t, err)
	_, err = fx.service.CreateNewProduct(ctx, fx.input("Wrench", 10))
	require.NoError(t, err)

	taken := "Wrench"
	_, err = fx.service.UpdateExistingProduct(ctx, hammer.ID, &usecase.UpdateProductInput{Name: &taken})
	assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyExists))

	negative := -5
	_, err = fx.service.UpdateExistingProduct(ctx, hammer.ID, &usecase.UpdateProductInput{Stock: &negative})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	same := "Hammer"
	price := 15.0
	updated, err := fx.service.UpdateExistingProduct(ctx, hammer.ID, &usecase.UpdateProductInput{Name: &same, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 15.0, updated.Price)
	assert.Equal(t, 5, updated.Stock)

	_, err = fx.service.UpdateExistingProduct(ctx, entity.NewID(), &usecase.UpdateProductInput{Price: &price})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_GetProductDetailsByID_Cache(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.CreateNewProduct(ctx, fx.input("Hammer", 10))
	require.NoError(t, err)

	_, err = fx.service.GetProductDetailsByID(ctx, product.ID)
	require.NoError(t, err)
	_, err = fx.service.GetProductDetailsByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.cache.hits)

	_, err = fx.service.RemoveProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, fx.cache.items)

	_, err = fx.service.GetProductDetailsByID(ctx, product.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_RemoveProduct_KeepsRecord(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.CreateNewProduct(ctx, fx.input("Hammer", 10))
	require.NoError(t, err)

	removed, err := fx.service.RemoveProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, removed.IsActive)

	stored, err := fx.store.products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	// The name stays taken even though the product is inactive.
	_, err = fx.service.CreateNewProduct(ctx, fx.input("Hammer", 10))
	assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyExists))
}

func TestProductService_Listings(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	for _, in := range []*usecase.CreateProductInput{fx.input("Hammer", 10), fx.input("Saw", 25), fx.input("Drill", 80)} {
		_, err := fx.service.CreateNewProduct(ctx, in)
		require.NoError(t, err)
	}
	inactive := fx.input("Chisel", 5)
	inactive.IsActive = ptr(false)
	_, err := fx.service.CreateNewProduct(ctx, inactive)
	require.NoError(t, err)

	public, err := fx.service.GetPublicProducts(ctx, &usecase.ProductQuery{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), public.Page.Total)

	admin, err := fx.service.GetAdminProducts(ctx, &usecase.ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), admin.Page.Total)

	priced, err := fx.service.GetPublicProducts(ctx, &usecase.ProductQuery{
		MinPrice: ptr(20.0), SortBy: "price", SortOrder: "desc",
	})
	require.NoError(t, err)
	require.Len(t, priced.Products, 2)
	assert.Equal(t, "Drill", priced.Products[0].Name)
	assert.Equal(t, "Saw", priced.Products[1].Name)

	paged, err := fx.service.GetAdminProducts(ctx, &usecase.ProductQuery{PageQuery: usecase.PageQuery{Page: 2, Limit: 3}})
	require.NoError(t, err)
	assert.Len(t, paged.Products, 1)
	assert.Equal(t, 2, paged.Page.TotalPage)

	_, err = fx.service.GetPublicProducts(ctx, &usecase.ProductQuery{MinPrice: ptr(50.0), MaxPrice: ptr(10.0)})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.GetPublicProducts(ctx, &usecase.ProductQuery{SortBy: "brand"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_ExportProducts(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	_, err := fx.service.CreateNewProduct(ctx, fx.input("Hammer", 10))
	require.NoError(t, err)

	file, err := fx.service.ExportProducts(ctx, &usecase.ProductQuery{})
	require.NoError(t, err)
	assert.NotEmpty(t, file.Content)
	assert.NotEmpty(t, file.Name)
	assert.NotEmpty(t, file.ContentType)
}
