package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(adminEmails ...string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret:   "test-secret",
			BcryptCost:  4,
			AdminEmails: adminEmails,
		},
	}
}

// testStore bundles memory repositories sharing one store.
type testStore struct {
	users      repository.UserRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	carts      repository.CartRepository
	orders     repository.OrderRepository
	reviews    repository.ReviewRepository
	tx         repository.TransactionManager
}

func newTestStore() testStore {
	store := memory.NewStore()

	return testStore{
		users:      memory.NewUserRepository(store),
		products:   memory.NewProductRepository(store),
		categories: memory.NewCategoryRepository(store),
		carts:      memory.NewCartRepository(store),
		orders:     memory.NewOrderRepository(store),
		reviews:    memory.NewReviewRepository(store),
		tx:         memory.NewTransactionManager(store),
	}
}

func (s testStore) seedUser(t *testing.T, email string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{Name: "User " + email, Email: email, Password: "hash", Role: role}
	require.NoError(t, s.users.Create(context.Background(), user))

	return user
}

func (s testStore) seedCategory(t *testing.T, name, slug string, parentID *string) *entity.Category {
	t.Helper()

	category := &entity.Category{Name: name, Slug: slug, ParentID: parentID, IsActive: true}
	require.NoError(t, s.categories.Create(context.Background(), category))

	return category
}

func (s testStore) seedProduct(t *testing.T, name string, price float64, stock int) *entity.Product {
	t.Helper()

	category := s.seedCategory(t, "Category for "+name, "category-"+entity.NewID(), nil)
	product := &entity.Product{
		Name:       name,
		Price:      price,
		CategoryID: category.ID,
		Stock:      stock,
		Images:     []string{},
		IsActive:   true,
	}
	require.NoError(t, s.products.Create(context.Background(), product))

	return product
}

// mockEventPublisher records published order events.
type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *mockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// stubCache is an in-process ProductCache that counts hits.
type stubCache struct {
	items map[string]*entity.Product
	hits  int
}

func newStubCache() *stubCache {
	return &stubCache{items: make(map[string]*entity.Product)}
}

func (c *stubCache) Get(_ context.Context, id string) (*entity.Product, bool, error) {
	p, ok := c.items[id]
	if ok {
		c.hits++
		clone := *p

		return &clone, true, nil
	}

	return nil, false, nil
}

func (c *stubCache) Set(_ context.Context, product *entity.Product) error {
	clone := *product
	c.items[product.ID] = &clone

	return nil
}

func (c *stubCache) Invalidate(_ context.Context, id string) error {
	delete(c.items, id)

	return nil
}
