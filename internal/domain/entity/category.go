package entity

import (
	"regexp"
	"time"
)

// SlugPattern is the accepted shape of a category slug.
var SlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Category is a node in the catalog tree. ParentID is nil for root categories.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ParentID    *string   `json:"parentCategory"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasParent reports whether the category sits below another one.
func (c *Category) HasParent() bool {
	return c.ParentID != nil && *c.ParentID != ""
}

// Summary returns the reduced view used for parents and children.
func (c *Category) Summary() CategorySummary {
	return CategorySummary{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

// CategorySummary is the reduced category view.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryDetails is a category with its parent and direct active children resolved.
type CategoryDetails struct {
	*Category
	Parent   *CategorySummary  `json:"parent"`
	Children []CategorySummary `json:"children"`
}
