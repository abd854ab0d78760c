package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddToCartInput adds quantity units of a product. Quantity 0 means 1.
type AddToCartInput struct {
	ProductID string
	Quantity  int
}

// CartPage is one page of cart rows.
type CartPage struct {
	Items []*entity.CartLine
	Page  PageInfo
}

// CartSummary totals a user's cart.
type CartSummary struct {
	TotalItems     int     `json:"totalItems"`
	TotalAmount    float64 `json:"totalAmount"`
	UniqueProducts int     `json:"uniqueProducts"`
}

// CartAnalyticsSummary holds store-wide cart totals.
type CartAnalyticsSummary struct {
	TotalCartItems       int64   `json:"totalCartItems"`
	TotalActiveUsers     int64   `json:"totalActiveUsers"`
	TotalCartValue       float64 `json:"totalCartValue"`
	TotalItemsInAllCarts int64   `json:"totalItemsInAllCarts"`
	AverageCartValue     float64 `json:"averageCartValue"`
}

// CartAnalytics is the admin view across every cart.
type CartAnalytics struct {
	Items   []*entity.CartLine
	Page    PageInfo
	Summary CartAnalyticsSummary
}

// CartUsecase manages shopping carts.
type CartUsecase interface {
	// GetUserCartItems purges rows of unavailable products before listing.
	GetUserCartItems(ctx context.Context, userID string, page PageQuery) (*CartPage, error)

	AddToCart(ctx context.Context, userID string, input *AddToCartInput) (*entity.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*entity.CartLine, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*entity.CartItem, error)
	ClearCart(ctx context.Context, userID string) (int64, error)

	GetCartSummary(ctx context.Context, userID string) (*CartSummary, error)
	GetAdminAnalytics(ctx context.Context, page PageQuery) (*CartAnalytics, error)
}
