package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateReviewInput defines a new review by the calling user.
type CreateReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

// UpdateReviewInput is a partial update; nil fields are left untouched.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// ReviewQuery pages and sorts a review listing.
type ReviewQuery struct {
	PageQuery
	// Sort is a field name with an optional "-" prefix for descending order.
	Sort string
	// Rating restricts the admin listing to one star value.
	Rating *int
}

// ReviewPagination is the page block of review listings.
type ReviewPagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalReviews int64 `json:"totalReviews"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// ReviewPage is one page of reviews.
type ReviewPage struct {
	Reviews    []*entity.ReviewView `json:"reviews"`
	Pagination ReviewPagination     `json:"pagination"`
}

// ReviewUsecase manages product reviews.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, userID string, input *CreateReviewInput) (*entity.ReviewView, error)
	GetReviewByID(ctx context.Context, id string) (*entity.ReviewView, error)

	// UpdateReview is allowed for the author only.
	UpdateReview(ctx context.Context, reviewID, userID string, input *UpdateReviewInput) (*entity.ReviewView, error)

	// DeleteReview is allowed for the author or an admin.
	DeleteReview(ctx context.Context, reviewID, userID string, role entity.Role) error

	GetProductReviews(ctx context.Context, productID string, query *ReviewQuery) (*ReviewPage, error)
	GetUserReviews(ctx context.Context, userID string, query *ReviewQuery) (*ReviewPage, error)
	GetAllReviews(ctx context.Context, query *ReviewQuery) (*ReviewPage, error)

	GetProductRatingStats(ctx context.Context, productID string) (*entity.RatingStats, error)
}
