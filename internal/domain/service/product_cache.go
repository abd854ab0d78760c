package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductCache is a read-through cache for active product details.
type ProductCache interface {
	// Get returns the cached product and whether it was found.
	Get(ctx context.Context, id string) (*entity.Product, bool, error)
	Set(ctx context.Context, product *entity.Product) error
	Invalidate(ctx context.Context, id string) error
}
