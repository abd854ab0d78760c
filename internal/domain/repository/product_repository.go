package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductRepository persists catalog products.
type ProductRepository interface {
	// FindByID returns the product regardless of its active state.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)

	// ExistsByName checks for another product with exactly this name, active or not.
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)

	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
}
