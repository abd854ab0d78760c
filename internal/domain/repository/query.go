// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// Pagination selects one page of a result set. Page is 1-based.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

// Sort orders a listing by a whitelisted field name (e.g. "createdAt").
type Sort struct {
	Field string
	Desc  bool
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Search     string // case-insensitive substring of name, description or brand
	CategoryID string
	MinPrice   *float64
	MaxPrice   *float64
	IsActive   *bool
	Sort       Sort
	Page       Pagination
}

// CategoryFilter narrows a category listing.
type CategoryFilter struct {
	Search   string // case-insensitive substring of name or description
	ParentID string
	RootOnly bool
	IsActive *bool
	Sort     Sort
	Page     Pagination
}

// ReviewFilter narrows a review listing. Empty ids mean "any".
type ReviewFilter struct {
	ProductID string
	UserID    string
	Rating    *int
	Sort      Sort
	Page      Pagination
}

// CartAggregate holds store-wide cart totals.
type CartAggregate struct {
	TotalCartItems       int64
	TotalActiveUsers     int64
	TotalCartValue       float64
	TotalItemsInAllCarts int64
}

// RatingAggregate holds the raw counts for one product's reviews.
type RatingAggregate struct {
	Total        int64
	Sum          int64
	Distribution map[int]int64
}
