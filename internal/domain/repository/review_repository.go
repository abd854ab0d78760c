package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Review, error)
	ExistsByUserAndProduct(ctx context.Context, userID, productID string) (bool, error)

	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, int64, error)

	// RatingAggregate counts the ratings of one product.
	RatingAggregate(ctx context.Context, productID string) (*RatingAggregate, error)

	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id string) error
}
