package postgres

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager runs units of work on db.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// txRepositories binds every repository it creates to tx.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewCartRepository() repository.CartRepository {
	return NewCartRepository(f.tx)
}

// Execute commits when fn returns nil. gorm rolls back on an error or a panic.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if err == nil {
		return nil
	}
	// Domain errors from fn pass through untouched so callers can match them.
	if fnErr != nil && errors.Is(err, fnErr) {
		return fnErr
	}

	return errors.Wrap(err, "transaction")
}
