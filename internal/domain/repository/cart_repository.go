package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository persists cart rows, one per (user, product).
type CartRepository interface {
	FindByID(ctx context.Context, id string) (*entity.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.CartItem, error)

	// ListByUser returns one page of the user's rows, newest first.
	ListByUser(ctx context.Context, userID string, page Pagination) ([]*entity.CartItem, int64, error)

	// ListAllByUser returns every row of the user.
	ListAllByUser(ctx context.Context, userID string) ([]*entity.CartItem, error)

	// ListAll returns one page of rows across all users, newest first.
	ListAll(ctx context.Context, page Pagination) ([]*entity.CartItem, int64, error)

	// Aggregate computes store-wide totals over every row.
	Aggregate(ctx context.Context) (*CartAggregate, error)

	// PurgeUnavailable deletes the user's rows whose product is inactive or missing.
	PurgeUnavailable(ctx context.Context, userID string) (int64, error)

	Create(ctx context.Context, item *entity.CartItem) error
	Update(ctx context.Context, item *entity.CartItem) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
