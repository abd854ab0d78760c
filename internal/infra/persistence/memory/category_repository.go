package memory

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

type categoryRepository struct {
	store *Store
}

// NewCategoryRepository creates a category repository over the store.
func NewCategoryRepository(store *Store) repository.CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) FindByID(_ context.Context, id string) (*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.categories[id]
	if !ok {
		return nil, domainerrors.ErrCategoryNotFound
	}

	return cloneCategory(c), nil
}

func (r *categoryRepository) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.categories {
		if c.Slug == slug {
			return cloneCategory(c), nil
		}
	}

	return nil, domainerrors.ErrCategoryNotFound
}

func (r *categoryRepository) ExistsByName(_ context.Context, name, excludeID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.taken(func(c entity.Category) bool { return c.Name == name }, excludeID), nil
}

func (r *categoryRepository) ExistsBySlug(_ context.Context, slug, excludeID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.taken(func(c entity.Category) bool { return c.Slug == slug }, excludeID), nil
}

func (r *categoryRepository) taken(match func(entity.Category) bool, excludeID string) bool {
	for _, c := range r.store.categories {
		if c.ID != excludeID && match(c) {
			return true
		}
	}

	return false
}

func (r *categoryRepository) FindActiveChildren(_ context.Context, parentID string) ([]*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	children := make([]*entity.Category, 0)
	for _, c := range r.store.categories {
		if c.IsActive && c.ParentID != nil && *c.ParentID == parentID {
			children = append(children, cloneCategory(c))
		}
	}
	orderBy(children, false, func(c *entity.Category) string { return c.Name }, func(c *entity.Category) string { return c.ID })

	return children, nil
}

func (r *categoryRepository) List(_ context.Context, filter repository.CategoryFilter) ([]*entity.Category, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		if !matchCategory(&c, filter) {
			continue
		}
		matched = append(matched, cloneCategory(c))
	}

	id := func(c *entity.Category) string { return c.ID }
	switch filter.Sort.Field {
	case "name":
		orderBy(matched, filter.Sort.Desc, func(c *entity.Category) string { return strings.ToLower(c.Name) }, id)
	case "updatedAt":
		orderBy(matched, filter.Sort.Desc, func(c *entity.Category) int64 { return unixNano(c.UpdatedAt) }, id)
	default:
		orderBy(matched, filter.Sort.Desc, func(c *entity.Category) int64 { return unixNano(c.CreatedAt) }, id)
	}

	return page(matched, filter.Page), int64(len(matched)), nil
}

func matchCategory(c *entity.Category, f repository.CategoryFilter) bool {
	if f.IsActive != nil && c.IsActive != *f.IsActive {
		return false
	}
	if f.RootOnly && c.HasParent() {
		return false
	}
	if f.ParentID != "" && (!c.HasParent() || *c.ParentID != f.ParentID) {
		return false
	}
	if f.Search != "" && !containsFold(c.Name, f.Search) && !containsFold(c.Description, f.Search) {
		return false
	}

	return true
}

func (r *categoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.taken(func(c entity.Category) bool { return c.Name == category.Name || c.Slug == category.Slug }, "") {
		return domainerrors.ErrCategoryAlreadyExists
	}
	if category.ID == "" {
		category.ID = entity.NewID()
	}
	r.store.stamp(&category.CreatedAt, &category.UpdatedAt)
	r.store.categories[category.ID] = *cloneCategory(*category)

	return nil
}

func (r *categoryRepository) Update(_ context.Context, category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.categories[category.ID]
	if !ok {
		return domainerrors.ErrCategoryNotFound
	}
	if r.taken(func(c entity.Category) bool { return c.Name == category.Name || c.Slug == category.Slug }, category.ID) {
		return domainerrors.ErrCategoryAlreadyExists
	}
	category.CreatedAt = existing.CreatedAt
	r.store.stamp(&category.CreatedAt, &category.UpdatedAt)
	r.store.categories[category.ID] = *cloneCategory(*category)

	return nil
}
