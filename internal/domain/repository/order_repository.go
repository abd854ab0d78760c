package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderRepository persists placed orders.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// HasDeliveredProduct reports whether the user received productID in any delivered order.
	HasDeliveredProduct(ctx context.Context, userID, productID string) (bool, error)

	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
}
