package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var categorySortFields = []string{"name", "createdAt", "updatedAt"}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Slug:        strings.TrimSpace(input.Slug),
		Description: strings.TrimSpace(input.Description),
		IsActive:    true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	if err := srv.ensureUnique(ctx, category.Name, category.Slug, ""); err != nil {
		return nil, err
	}

	if parentID := strings.TrimSpace(input.ParentID); parentID != "" {
		if err := srv.ensureParentExists(ctx, parentID); err != nil {
			return nil, err
		}
		category.ParentID = &parentID
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("categoryID", category.ID), slog.String("slug", category.Slug))

	return category, nil
}

// UpdateCategory applies a partial update and rejects parent changes that would form a cycle.
func (srv *categoryService) UpdateCategory(ctx context.Context, id string, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var name, slug string
	if input.Name != nil {
		if n := strings.TrimSpace(*input.Name); n != category.Name {
			name = n
		}
	}
	if input.Slug != nil {
		if s := strings.TrimSpace(*input.Slug); s != category.Slug {
			slug = s
		}
	}
	if err := srv.ensureUnique(ctx, name, slug, id); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parentID := strings.TrimSpace(*input.ParentID)
		current := ""
		if category.HasParent() {
			current = *category.ParentID
		}

		switch {
		case parentID == "":
			category.ParentID = nil
		case parentID != current:
			if err := srv.checkParent(ctx, id, parentID); err != nil {
				return nil, err
			}
			category.ParentID = &parentID
		}
	}

	if name != "" {
		category.Name = name
	}
	if slug != "" {
		category.Slug = slug
	}
	if input.Description != nil {
		category.Description = strings.TrimSpace(*input.Description)
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// checkParent validates moving category id below parentID.
func (srv *categoryService) checkParent(ctx context.Context, id, parentID string) error {
	if parentID == id {
		return domainerrors.ErrCircularDependency.WithDetails("a category cannot be its own parent")
	}
	if err := srv.ensureParentExists(ctx, parentID); err != nil {
		return err
	}

	// Walk up from the proposed parent. Reaching id, or revisiting a node, means a cycle.
	visited := make(map[string]struct{})
	for current := parentID; current != ""; {
		if current == id {
			return domainerrors.ErrCircularDependency
		}
		if _, seen := visited[current]; seen {
			return domainerrors.ErrCircularDependency
		}
		visited[current] = struct{}{}

		node, err := srv.categoryRepo.FindByID(ctx, current)
		if errors.Is(err, domainerrors.ErrCategoryNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to walk category ancestors")
		}
		if !node.HasParent() {
			return nil
		}
		current = *node.ParentID
	}

	return nil
}

func (srv *categoryService) ensureParentExists(ctx context.Context, parentID string) error {
	_, err := srv.categoryRepo.FindByID(ctx, parentID)
	if errors.Is(err, domainerrors.ErrCategoryNotFound) {
		return domainerrors.ErrParentCategoryNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find parent category")
	}

	return nil
}

// ensureUnique checks the non-empty values against every other category.
func (srv *categoryService) ensureUnique(ctx context.Context, name, slug, excludeID string) error {
	if name != "" {
		exists, err := srv.categoryRepo.ExistsByName(ctx, name, excludeID)
		if err != nil {
			return errors.Wrap(err, "failed to check category name")
		}
		if exists {
			return domainerrors.ErrCategoryAlreadyExists
		}
	}
	if slug != "" {
		exists, err := srv.categoryRepo.ExistsBySlug(ctx, slug, excludeID)
		if err != nil {
			return errors.Wrap(err, "failed to check category slug")
		}
		if exists {
			return domainerrors.ErrCategoryAlreadyExists
		}
	}

	return nil
}

// DeleteCategory deactivates the category unless an active child still points at it.
func (srv *categoryService) DeleteCategory(ctx context.Context, id string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	children, err := srv.categoryRepo.FindActiveChildren(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subcategories")
	}
	if len(children) > 0 {
		return nil, domainerrors.ErrHasActiveChildren
	}

	category.IsActive = false
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to deactivate category")
	}

	srv.log(ctx).Info("Category deactivated", slog.String("categoryID", id))

	return category, nil
}

func (srv *categoryService) GetCategoryDetails(ctx context.Context, idOrSlug string) (*entity.CategoryDetails, error) {
	category, err := srv.resolveActive(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	details := &entity.CategoryDetails{Category: category, Children: []entity.CategorySummary{}}

	if category.HasParent() {
		parent, err := srv.categoryRepo.FindByID(ctx, *category.ParentID)
		switch {
		case err == nil:
			summary := parent.Summary()
			details.Parent = &summary
		case !errors.Is(err, domainerrors.ErrCategoryNotFound):
			return nil, errors.Wrap(err, "failed to load parent category")
		}
	}

	children, err := srv.categoryRepo.FindActiveChildren(ctx, category.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load subcategories")
	}
	for _, child := range children {
		details.Children = append(details.Children, child.Summary())
	}

	return details, nil
}

func (srv *categoryService) resolveActive(ctx context.Context, idOrSlug string) (*entity.Category, error) {
	if entity.IsValidID(idOrSlug) {
		category, err := srv.categoryRepo.FindByID(ctx, idOrSlug)
		if err == nil && category.IsActive {
			return category, nil
		}
		if err != nil && !errors.Is(err, domainerrors.ErrCategoryNotFound) {
			return nil, errors.Wrap(err, "failed to find category")
		}
	}

	category, err := srv.categoryRepo.FindBySlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, domainerrors.ErrCategoryNotFound
	}

	return category, nil
}

// GetPublicCategories lists active categories, by name by default.
func (srv *categoryService) GetPublicCategories(ctx context.Context, query *usecase.CategoryQuery) (*usecase.CategoryList, error) {
	return srv.list(ctx, query, ptr(true), repository.Sort{Field: "name"})
}

// GetAllCategories lists every category, newest first by default.
func (srv *categoryService) GetAllCategories(ctx context.Context, query *usecase.CategoryQuery) (*usecase.CategoryList, error) {
	return srv.list(ctx, query, nil, repository.Sort{Field: "createdAt", Desc: true})
}

func (srv *categoryService) list(ctx context.Context, query *usecase.CategoryQuery, active *bool, fallback repository.Sort) (*usecase.CategoryList, error) {
	page := normalizePage(query.PageQuery, defaultPageLimit)

	sort, err := resolveSort(query.SortBy, query.SortOrder, categorySortFields, fallback)
	if err != nil {
		return nil, err
	}

	filter := repository.CategoryFilter{
		Search:   strings.TrimSpace(query.Search),
		IsActive: active,
		Sort:     sort,
		Page:     toPagination(page),
	}
	switch parent := strings.TrimSpace(query.Parent); {
	case parent == usecase.ParentRoot:
		filter.RootOnly = true
	case parent != "":
		if !entity.IsValidID(parent) {
			return nil, domainerrors.ErrInvalidIDFormat.WithDetails("parentCategory")
		}
		filter.ParentID = parent
	}

	categories, total, err := srv.categoryRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &usecase.CategoryList{Categories: categories, Page: usecase.NewPageInfo(page, total)}, nil
}

func validateCategory(c *entity.Category) error {
	var fields []domainerrors.FieldError
	if c.Name == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Code: domainerrors.ErrValidationFailed.ErrorCode(), Message: "is required"})
	}
	if !entity.SlugPattern.MatchString(c.Slug) {
		fields = append(fields, domainerrors.FieldError{Field: "slug", Code: domainerrors.ErrValidationFailed.ErrorCode(), Message: "may only contain lowercase letters, digits and hyphens"})
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}
