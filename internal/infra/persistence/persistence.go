// Package persistence selects the storage driver and exposes its repositories to fx.
package persistence

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the full repository set of one storage driver.
type Repositories struct {
	fx.Out

	Users        repository.UserRepository
	Products     repository.ProductRepository
	Categories   repository.CategoryRepository
	Carts        repository.CartRepository
	Orders       repository.OrderRepository
	Reviews      repository.ReviewRepository
	Transactions repository.TransactionManager
}

// New builds the repositories for the configured storage driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on shutdown")
		store := memory.NewStore()

		return Repositories{
			Users:        memory.NewUserRepository(store),
			Products:     memory.NewProductRepository(store),
			Categories:   memory.NewCategoryRepository(store),
			Carts:        memory.NewCartRepository(store),
			Orders:       memory.NewOrderRepository(store),
			Reviews:      memory.NewReviewRepository(store),
			Transactions: memory.NewTransactionManager(store),
		}, nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:        postgres.NewUserRepository(db),
			Products:     postgres.NewProductRepository(db),
			Categories:   postgres.NewCategoryRepository(db),
			Carts:        postgres.NewCartRepository(db),
			Orders:       postgres.NewOrderRepository(db),
			Reviews:      postgres.NewReviewRepository(db),
			Transactions: postgres.NewTransactionManager(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
