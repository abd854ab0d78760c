package entity

import "time"

// Rating bounds.
const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

// Review is a customer's rating of a product. At most one per (user, product).
type Review struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	ProductID          string    `json:"productId"`
	Rating             int       `json:"rating"`
	Comment            string    `json:"comment,omitempty"`
	IsVerifiedPurchase bool      `json:"isVerifiedPurchase"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ReviewView is a review with author and product joined.
type ReviewView struct {
	*Review
	User    *UserSummary    `json:"user,omitempty"`
	Product *ProductSummary `json:"product,omitempty"`
}

// RatingStats aggregates the reviews of one product.
type RatingStats struct {
	TotalReviews       int64         `json:"totalReviews"`
	AverageRating      float64       `json:"averageRating"`
	RatingDistribution map[int]int64 `json:"ratingDistribution"`
}

// EmptyRatingStats is the zeroed structure returned for products without reviews.
func EmptyRatingStats() *RatingStats {
	dist := make(map[int]int64, MaxRating)
	for r := MinRating; r <= MaxRating; r++ {
		dist[r] = 0
	}

	return &RatingStats{RatingDistribution: dist}
}
