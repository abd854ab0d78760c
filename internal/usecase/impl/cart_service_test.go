package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service usecase.CartUsecase
	store   testStore
	user    *entity.User
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	t.Helper()

	store := newTestStore()
	service := NewCartService(CartServiceParams{
		CartRepo:    store.carts,
		ProductRepo: store.products,
		UserRepo:    store.users,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service: service,
		store:   store,
		user:    store.seedUser(t, "shopper@example.com", entity.RoleCustomer),
	}
}

func (fx cartServiceFixtures) add(productID string, quantity int) (*entity.CartLine, error) {
	return fx.service.AddToCart(context.Background(), fx.user.ID, &usecase.AddToCartInput{ProductID: productID, Quantity: quantity})
}

func TestCartService_AddToCart_Merges(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	product := fx.store.seedProduct(t, "Mug", 8, 5)

	_, err := fx.add(product.ID, 1)
	require.NoError(t, err)
	line, err := fx.add(product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	items, err := fx.store.carts.ListAllByUser(ctx, fx.user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartService_AddToCart_DefaultsToOne(t *testing.T) {
	fx := createTestCartService(t)
	product := fx.store.seedProduct(t, "Mug", 8, 5)

	line, err := fx.add(product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 8.0, line.Price)
	require.NotNil(t, line.Product)
	assert.Equal(t, "Mug", line.Product.Name)
}

func TestCartService_AddToCart_Rejections(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	product := fx.store.seedProduct(t, "Mug", 8, 5)

	_, err := fx.add(product.ID, -2)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.add(product.ID, 6)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))

	_, err = fx.add(entity.NewID(), 1)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	product.IsActive = false
	require.NoError(t, fx.store.products.Update(ctx, product))
	_, err = fx.add(product.ID, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_StockScenario(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	product := fx.store.seedProduct(t, "Lamp", 20, 3)

	_, err := fx.add(product.ID, 2)
	require.NoError(t, err)

	_, err = fx.add(product.ID, 2)
	require.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))

	existing, err := fx.store.carts.FindByUserAndProduct(ctx, fx.user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, existing.Quantity)

	product.IsActive = false
	require.NoError(t, fx.store.products.Update(ctx, product))

	page, err := fx.service.GetUserCartItems(ctx, fx.user.ID, usecase.PageQuery{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Page.Total)
	assert.Equal(t, 20, page.Page.Limit)

	summary, err := fx.service.GetCartSummary(ctx, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalItems)
	assert.Equal(t, 0, summary.UniqueProducts)
	assert.Equal(t, 0.0, summary.TotalAmount)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	product := fx.store.seedProduct(t, "Mug", 8, 5)

	line, err := fx.add(product.ID, 1)
	require.NoError(t, err)

	updated, err := fx.service.UpdateQuantity(ctx, fx.user.ID, line.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	_, err = fx.service.UpdateQuantity(ctx, fx.user.ID, line.ID, 9)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))

	stranger := fx.store.seedUser(t, "stranger@example.com", entity.RoleCustomer)
	_, err = fx.service.UpdateQuantity(ctx, stranger.ID, line.ID, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))

	product.IsActive = false
	require.NoError(t, fx.store.products.Update(ctx, product))
	_, err = fx.service.UpdateQuantity(ctx, fx.user.ID, line.ID, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrProductUnavailable))

	_, err = fx.store.carts.FindByID(ctx, line.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_RemoveAndClear(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	mug := fx.store.seedProduct(t, "Mug", 8, 5)
	pen := fx.store.seedProduct(t, "Pen", 2, 50)

	line, err := fx.add(mug.ID, 1)
	require.NoError(t, err)
	_, err = fx.add(pen.ID, 3)
	require.NoError(t, err)

	removed, err := fx.service.RemoveItem(ctx, fx.user.ID, line.ID)
	require.NoError(t, err)
	assert.Equal(t, mug.ID, removed.ProductID)

	_, err = fx.service.RemoveItem(ctx, fx.user.ID, line.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))

	cleared, err := fx.service.ClearCart(ctx, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)

	cleared, err = fx.service.ClearCart(ctx, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cleared)
}

func TestCartService_GetCartSummary(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	mug := fx.store.seedProduct(t, "Mug", 8.1, 5)
	pen := fx.store.seedProduct(t, "Pen", 0.1, 50)

	_, err := fx.add(mug.ID, 2)
	require.NoError(t, err)
	_, err = fx.add(pen.ID, 3)
	require.NoError(t, err)

	summary, err := fx.service.GetCartSummary(ctx, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalItems)
	assert.Equal(t, 2, summary.UniqueProducts)
	assert.Equal(t, 16.5, summary.TotalAmount)
}

func TestCartService_GetAdminAnalytics(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	mug := fx.store.seedProduct(t, "Mug", 10, 50)
	other := fx.store.seedUser(t, "other@example.com", entity.RoleCustomer)

	_, err := fx.add(mug.ID, 2)
	require.NoError(t, err)
	_, err = fx.service.AddToCart(ctx, other.ID, &usecase.AddToCartInput{ProductID: mug.ID, Quantity: 1})
	require.NoError(t, err)

	analytics, err := fx.service.GetAdminAnalytics(ctx, usecase.PageQuery{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, analytics.Items, 1)
	assert.Equal(t, int64(2), analytics.Page.Total)
	assert.Equal(t, int64(2), analytics.Summary.TotalCartItems)
	assert.Equal(t, int64(2), analytics.Summary.TotalActiveUsers)
	assert.Equal(t, int64(3), analytics.Summary.TotalItemsInAllCarts)
	assert.Equal(t, 30.0, analytics.Summary.TotalCartValue)
	assert.Equal(t, 15.0, analytics.Summary.AverageCartValue)
	require.NotNil(t, analytics.Items[0].User)
}
