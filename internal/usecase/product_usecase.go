package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductQuery filters a product listing.
type ProductQuery struct {
	PageQuery
	Search     string
	CategoryID string
	MinPrice   *float64
	MaxPrice   *float64
	// IsActive is ignored by the public listing, which only shows active products.
	IsActive  *bool
	SortBy    string
	SortOrder string
}

// CreateProductInput defines a new catalog entry. IsActive defaults to true.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  string
	Stock       int
	Images      []string
	Brand       string
	Weight      float64
	Dimensions  entity.Dimensions
	IsActive    *bool
}

// UpdateProductInput is a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *string
	Stock       *int
	Images      []string
	Brand       *string
	Weight      *float64
	Dimensions  *entity.Dimensions
	IsActive    *bool
}

// ProductList is one page of products.
type ProductList struct {
	Products []*entity.Product
	Page     PageInfo
}

// ExportFile is a rendered download.
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// ProductUsecase manages the catalog.
type ProductUsecase interface {
	GetPublicProducts(ctx context.Context, query *ProductQuery) (*ProductList, error)
	GetAdminProducts(ctx context.Context, query *ProductQuery) (*ProductList, error)

	// GetProductDetailsByID returns an active product.
	GetProductDetailsByID(ctx context.Context, id string) (*entity.Product, error)

	CreateNewProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateExistingProduct(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error)

	// RemoveProduct deactivates the product; cart rows are purged lazily.
	RemoveProduct(ctx context.Context, id string) (*entity.Product, error)

	// ExportProducts renders every product matching the admin query, ignoring pagination.
	ExportProducts(ctx context.Context, query *ProductQuery) (*ExportFile, error)
}
