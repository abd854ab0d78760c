package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves the category tree.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// nullableID tells an absent parentCategory apart from an explicit null.
type nullableID struct {
	set   bool
	value string
}

func (n *nullableID) UnmarshalJSON(data []byte) error {
	n.set = true
	if bytes.Equal(data, []byte("null")) {
		n.value = ""

		return nil
	}

	return json.Unmarshal(data, &n.value)
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Slug        string `json:"slug" validate:"required,slug"`
	Description string `json:"description" validate:"max=200"`
	ParentID    string `json:"parentCategory" validate:"omitempty,objectid"`
	IsActive    *bool  `json:"isActive"`
}

type updateCategoryRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=2,max=50"`
	Slug        *string    `json:"slug" validate:"omitempty,slug"`
	Description *string    `json:"description" validate:"omitempty,max=200"`
	ParentID    nullableID `json:"parentCategory"`
	IsActive    *bool      `json:"isActive"`
}

type categoryListRequest struct {
	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search    string `query:"search" validate:"omitempty,max=50"`
	Parent    string `query:"parentCategory" validate:"omitempty,objectid|eq=null"`
	SortBy    string `query:"sortBy" validate:"omitempty,oneof=name createdAt updatedAt"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

func (r *categoryListRequest) bind(b *echo.ValueBinder) {
	b.Int("page", &r.Page).
		Int("limit", &r.Limit).
		String("search", &r.Search).
		String("parentCategory", &r.Parent).
		String("sortBy", &r.SortBy).
		String("sortOrder", &r.SortOrder)
}

func (r *categoryListRequest) toQuery() *usecase.CategoryQuery {
	return &usecase.CategoryQuery{
		PageQuery: usecase.PageQuery{Page: r.Page, Limit: r.Limit},
		Search:    r.Search,
		Parent:    r.Parent,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

// ShowAll lists active categories.
func (h *CategoryHandler) ShowAll(c echo.Context) error {
	var req categoryListRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	list, err := h.categoryUC.GetPublicCategories(c.Request().Context(), req.toQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, "Categories retrieved successfully", list.Categories, list.Page)
}

// AdminShowAll lists categories in any state.
func (h *CategoryHandler) AdminShowAll(c echo.Context) error {
	var req categoryListRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	list, err := h.categoryUC.GetAllCategories(c.Request().Context(), req.toQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, "Categories retrieved successfully", list.Categories, list.Page)
}

// GetDetails resolves a category by id or slug with its parent and children.
func (h *CategoryHandler) GetDetails(c echo.Context) error {
	idOrSlug := c.Param("id")
	if !entity.IsValidID(idOrSlug) && !entity.SlugPattern.MatchString(idOrSlug) {
		return domainerrors.ErrInvalidIDFormat.WithDetails("id must be a category id or slug")
	}

	details, err := h.categoryUC.GetCategoryDetails(c.Request().Context(), idOrSlug)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Category retrieved successfully", details)
}

// Create adds a category.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), &usecase.CreateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Category created successfully", category)
}

// Update applies a partial update. parentCategory null detaches the category to the root.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	if req.ParentID.set {
		if req.ParentID.value != "" && !entity.IsValidID(req.ParentID.value) {
			return domainerrors.NewFieldError("parentCategory", "must be a valid id")
		}
		parentID := req.ParentID.value
		input.ParentID = &parentID
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Category updated successfully", category)
}

// Delete deactivates a category without active children.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.DeleteCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Category deleted successfully", category)
}
