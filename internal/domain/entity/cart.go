package entity

import "time"

// CartItem is one (user, product) row of a shopping cart.
// Price is a snapshot of the product price at the last mutation.
type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartLine is a cart row with its product, and for admin views its owner, joined.
type CartLine struct {
	*CartItem
	Product *ProductSummary `json:"product"`
	User    *UserSummary    `json:"user,omitempty"`
}
