package memory

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newClockedStore returns a store whose clock advances one second per write.
func newClockedStore() *Store {
	s := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int
	s.now = func() time.Time {
		tick++

		return base.Add(time.Duration(tick) * time.Second)
	}

	return s
}

func TestUserRepository_EmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	user := &entity.User{Name: "Ada", Email: "ada@example.com", Role: entity.RoleCustomer}
	require.NoError(t, repo.Create(ctx, user))
	assert.True(t, entity.IsValidID(user.ID))
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	err = repo.Create(ctx, &entity.User{Name: "Other", Email: "Ada@Example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestProductRepository_ListFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newClockedStore())

	for _, p := range []*entity.Product{
		{Name: "Blue Mug", Brand: "Acme", Price: 12, Stock: 4, CategoryID: "c1", IsActive: true},
		{Name: "Red Mug", Price: 8, Stock: 1, CategoryID: "c1", IsActive: true},
		{Name: "Teapot", Description: "holds a mug of tea", Price: 30, Stock: 2, CategoryID: "c2", IsActive: false},
	} {
		require.NoError(t, repo.Create(ctx, p))
	}

	active := true
	items, total, err := repo.List(ctx, repository.ProductFilter{
		Search:   "mug",
		IsActive: &active,
		Sort:     repository.Sort{Field: "price"},
		Page:     repository.Pagination{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Red Mug", items[0].Name)
	assert.Equal(t, "Blue Mug", items[1].Name)

	minPrice := 10.0
	items, total, err = repo.List(ctx, repository.ProductFilter{
		MinPrice: &minPrice,
		Sort:     repository.Sort{Field: "createdAt", Desc: true},
		Page:     repository.Pagination{Page: 1, Limit: 1},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Teapot", items[0].Name)
}

func TestProductRepository_NameUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(NewStore())

	p := &entity.Product{Name: "Lamp", IsActive: false}
	require.NoError(t, repo.Create(ctx, p))

	exists, err := repo.ExistsByName(ctx, "Lamp", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Lamp", p.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, repo.Create(ctx, &entity.Product{Name: "Lamp"}), domainerrors.ErrProductAlreadyExists)
}

func TestCartRepository_PurgeUnavailable(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	products := NewProductRepository(store)
	cart := NewCartRepository(store)

	live := &entity.Product{Name: "Live", Price: 5, Stock: 10, IsActive: true}
	gone := &entity.Product{Name: "Gone", Price: 7, Stock: 10, IsActive: true}
	require.NoError(t, products.Create(ctx, live))
	require.NoError(t, products.Create(ctx, gone))

	userID := entity.NewID()
	require.NoError(t, cart.Create(ctx, &entity.CartItem{UserID: userID, ProductID: live.ID, Quantity: 1, Price: 5}))
	require.NoError(t, cart.Create(ctx, &entity.CartItem{UserID: userID, ProductID: gone.ID, Quantity: 2, Price: 7}))
	require.NoError(t, cart.Create(ctx, &entity.CartItem{UserID: userID, ProductID: entity.NewID(), Quantity: 1, Price: 1}))

	gone.IsActive = false
	require.NoError(t, products.Update(ctx, gone))

	purged, err := cart.PurgeUnavailable(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, purged)

	items, err := cart.ListAllByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, live.ID, items[0].ProductID)
}

func TestCartRepository_Aggregate(t *testing.T) {
	ctx := context.Background()
	cart := NewCartRepository(NewStore())

	alice, bob := entity.NewID(), entity.NewID()
	require.NoError(t, cart.Create(ctx, &entity.CartItem{UserID: alice, ProductID: "p1", Quantity: 2, Price: 10}))
	require.NoError(t, cart.Create(ctx, &entity.CartItem{UserID: alice, ProductID: "p2", Quantity: 1, Price: 5}))
	require.NoError(t, cart.Create(ctx, &entity.CartItem{UserID: bob, ProductID: "p1", Quantity: 3, Price: 10}))

	agg, err := cart.Aggregate(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, agg.TotalCartItems)
	assert.EqualValues(t, 2, agg.TotalActiveUsers)
	assert.EqualValues(t, 6, agg.TotalItemsInAllCarts)
	assert.InDelta(t, 55.0, agg.TotalCartValue, 0.0001)

	_, total, err := cart.ListAll(ctx, repository.Pagination{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestCartRepository_OneRowPerUserAndProduct(t *testing.T) {
	ctx := context.Background()
	cart := NewCartRepository(NewStore())

	require.NoError(t, cart.Create(ctx, &entity.CartItem{UserID: "u1", ProductID: "p1", Quantity: 1}))
	err := cart.Create(ctx, &entity.CartItem{UserID: "u1", ProductID: "p1", Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestOrderRepository_HasDeliveredProduct(t *testing.T) {
	ctx := context.Background()
	orders := NewOrderRepository(NewStore())

	order := &entity.Order{
		UserID: "u1",
		Items:  []entity.OrderItem{{ProductID: "p1", Quantity: 1, Price: 3}},
		Status: entity.OrderStatusShipped,
	}
	require.NoError(t, orders.Create(ctx, order))

	ok, err := orders.HasDeliveredProduct(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.False(t, ok)

	order.Status = entity.OrderStatusDelivered
	require.NoError(t, orders.Update(ctx, order))

	ok, err = orders.HasDeliveredProduct(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = orders.HasDeliveredProduct(ctx, "u2", "p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOrderRepository_StoredItemsAreCopied(t *testing.T) {
	ctx := context.Background()
	orders := NewOrderRepository(NewStore())

	order := &entity.Order{UserID: "u1", Items: []entity.OrderItem{{ProductID: "p1", Quantity: 1}}}
	require.NoError(t, orders.Create(ctx, order))
	order.Items[0].Quantity = 99

	stored, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Items[0].Quantity)
}

func TestReviewRepository_ListAndAggregate(t *testing.T) {
	ctx := context.Background()
	reviews := NewReviewRepository(newClockedStore())

	for i, rating := range []int{5, 3, 5} {
		require.NoError(t, reviews.Create(ctx, &entity.Review{
			UserID:    entity.NewID(),
			ProductID: "p1",
			Rating:    rating,
			Comment:   string(rune('a' + i)),
		}))
	}
	require.NoError(t, reviews.Create(ctx, &entity.Review{UserID: "u9", ProductID: "p2", Rating: 1}))

	items, total, err := reviews.List(ctx, repository.ReviewFilter{
		ProductID: "p1",
		Sort:      repository.Sort{Field: "createdAt", Desc: true},
		Page:      repository.Pagination{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].Comment)

	five := 5
	_, total, err = reviews.List(ctx, repository.ReviewFilter{Rating: &five, Page: repository.Pagination{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	agg, err := reviews.RatingAggregate(ctx, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, agg.Total)
	assert.EqualValues(t, 13, agg.Sum)
	assert.EqualValues(t, 2, agg.Distribution[5])

	err = reviews.Create(ctx, &entity.Review{UserID: "u9", ProductID: "p2", Rating: 4})
	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := NewUserRepository(store)
	cart := NewCartRepository(store)
	tm := NewTransactionManager(store)

	user := &entity.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, users.Create(ctx, user))
	require.NoError(t, cart.Create(ctx, &entity.CartItem{UserID: user.ID, ProductID: "p1", Quantity: 1}))

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewCartRepository().DeleteByUser(ctx, user.ID); err != nil {
			return err
		}
		if err := f.NewUserRepository().Delete(ctx, user.ID); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	items, err := cart.ListAllByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestTransactionManager_Commit(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := NewUserRepository(store)
	tm := NewTransactionManager(store)

	user := &entity.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, users.Create(ctx, user))

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().Delete(ctx, user.ID)
	}))

	_, err := users.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
