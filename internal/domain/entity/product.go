package entity

import "time"

// MaxProductImages bounds the image list of a product.
const MaxProductImages = 10

// Dimensions of a shipped product.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Product is a catalog entry. Products are never hard-deleted; IsActive=false hides them.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	CategoryID  string     `json:"category"`
	Stock       int        `json:"stock"`
	Images      []string   `json:"images"`
	Brand       string     `json:"brand,omitempty"`
	Weight      float64    `json:"weight,omitempty"`
	Dimensions  Dimensions `json:"dimensions"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Summary returns the snapshot joined onto cart rows and reviews.
func (p *Product) Summary() *ProductSummary {
	return &ProductSummary{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Images:   p.Images,
		Stock:    p.Stock,
		IsActive: p.IsActive,
	}
}

// ProductSummary is the reduced product view joined onto other records.
type ProductSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Images   []string `json:"images,omitempty"`
	Stock    int      `json:"stock"`
	IsActive bool     `json:"isActive"`
}
