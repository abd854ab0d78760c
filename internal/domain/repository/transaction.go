package repository

import "context"

// TransactionManager runs fn atomically. A returned error rolls back every write
// made through the factory handed to fn.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one open transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCartRepository() CartRepository
}
