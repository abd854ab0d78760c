package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CategoryRepository persists the category tree.
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// ExistsByName and ExistsBySlug ignore the category with excludeID.
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)

	// FindActiveChildren returns the direct active children of parentID.
	FindActiveChildren(ctx context.Context, parentID string) ([]*entity.Category, error)

	List(ctx context.Context, filter CategoryFilter) ([]*entity.Category, int64, error)

	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
}
