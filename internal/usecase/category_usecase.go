package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ParentRoot is the parent filter value selecting root categories.
const ParentRoot = "null"

// CategoryQuery filters a category listing.
type CategoryQuery struct {
	PageQuery
	Search string
	// Parent is a category id or ParentRoot.
	Parent    string
	SortBy    string
	SortOrder string
}

// CreateCategoryInput defines a new category. IsActive defaults to true.
type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
	ParentID    string
	IsActive    *bool
}

// UpdateCategoryInput is a partial update.
// ParentID nil keeps the parent, an empty string detaches to the root.
type UpdateCategoryInput struct {
	Name        *string
	Slug        *string
	Description *string
	ParentID    *string
	IsActive    *bool
}

// CategoryList is one page of categories.
type CategoryList struct {
	Categories []*entity.Category
	Page       PageInfo
}

// CategoryUsecase manages the category tree.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, input *UpdateCategoryInput) (*entity.Category, error)

	// DeleteCategory deactivates a category without active children.
	DeleteCategory(ctx context.Context, id string) (*entity.Category, error)

	// GetCategoryDetails resolves an active category by id, then by slug.
	GetCategoryDetails(ctx context.Context, idOrSlug string) (*entity.CategoryDetails, error)

	GetPublicCategories(ctx context.Context, query *CategoryQuery) (*CategoryList, error)
	GetAllCategories(ctx context.Context, query *CategoryQuery) (*CategoryList, error)
}
