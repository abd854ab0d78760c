package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

type dimensionsRequest struct {
	Length float64 `json:"length" validate:"gte=0"`
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
}

func (d dimensionsRequest) toEntity() entity.Dimensions {
	return entity.Dimensions{Length: d.Length, Width: d.Width, Height: d.Height}
}

type createProductRequest struct {
	Name        string            `json:"name" validate:"required,min=2,max=100"`
	Description string            `json:"description" validate:"required,min=10,max=1000"`
	Price       *float64          `json:"price" validate:"required,gte=0"`
	CategoryID  string            `json:"category" validate:"required,objectid"`
	Stock       int               `json:"stock" validate:"gte=0"`
	Images      []string          `json:"images" validate:"omitempty,max=10,dive,url"`
	Brand       string            `json:"brand" validate:"max=50"`
	Weight      float64           `json:"weight" validate:"gte=0"`
	Dimensions  dimensionsRequest `json:"dimensions"`
	IsActive    *bool             `json:"isActive"`
}

type updateProductRequest struct {
	Name        *string            `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string            `json:"description" validate:"omitempty,min=10,max=1000"`
	Price       *float64           `json:"price" validate:"omitempty,gte=0"`
	CategoryID  *string            `json:"category" validate:"omitempty,objectid"`
	Stock       *int               `json:"stock" validate:"omitempty,gte=0"`
	Images      []string           `json:"images" validate:"omitempty,max=10,dive,url"`
	Brand       *string            `json:"brand" validate:"omitempty,max=50"`
	Weight      *float64           `json:"weight" validate:"omitempty,gte=0"`
	Dimensions  *dimensionsRequest `json:"dimensions"`
	IsActive    *bool              `json:"isActive"`
}

type productListRequest struct {
	Page      int      `query:"page" validate:"omitempty,min=1"`
	Limit     int      `query:"limit" validate:"omitempty,min=1,max=100"`
	Search    string   `query:"search" validate:"omitempty,max=100"`
	Category  string   `query:"category" validate:"omitempty,objectid"`
	MinPrice  *float64 `query:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice  *float64 `query:"maxPrice" validate:"omitempty,gte=0"`
	IsActive  *bool    `query:"isActive"`
	SortBy    string   `query:"sortBy" validate:"omitempty,oneof=name price createdAt updatedAt stock"`
	SortOrder string   `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

func (r *productListRequest) bind(b *echo.ValueBinder) {
	b.Int("page", &r.Page).
		Int("limit", &r.Limit).
		String("search", &r.Search).
		String("category", &r.Category).
		String("sortBy", &r.SortBy).
		String("sortOrder", &r.SortOrder)
	optionalFloat(b, "minPrice", &r.MinPrice)
	optionalFloat(b, "maxPrice", &r.MaxPrice)
	optionalBool(b, "isActive", &r.IsActive)
}

func (r *productListRequest) toQuery() *usecase.ProductQuery {
	return &usecase.ProductQuery{
		PageQuery:  usecase.PageQuery{Page: r.Page, Limit: r.Limit},
		Search:     r.Search,
		CategoryID: r.Category,
		MinPrice:   r.MinPrice,
		MaxPrice:   r.MaxPrice,
		IsActive:   r.IsActive,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}

// ShowAll lists active products for shoppers.
func (h *ProductHandler) ShowAll(c echo.Context) error {
	var req productListRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	list, err := h.productUC.GetPublicProducts(c.Request().Context(), req.toQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, "Products retrieved successfully", list.Products, list.Page)
}

// GetByID returns one active product.
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProductDetailsByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product retrieved successfully", product)
}

// AdminShowAll lists products in any state.
func (h *ProductHandler) AdminShowAll(c echo.Context) error {
	var req productListRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	list, err := h.productUC.GetAdminProducts(c.Request().Context(), req.toQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, "Products retrieved successfully", list.Products, list.Page)
}

// Export downloads the filtered catalog as a spreadsheet.
func (h *ProductHandler) Export(c echo.Context) error {
	var req productListRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	file, err := h.productUC.ExportProducts(c.Request().Context(), req.toQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Attachment(c, file.Name, file.ContentType, file.Content)
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateNewProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
		Stock:       req.Stock,
		Images:      req.Images,
		Brand:       req.Brand,
		Weight:      req.Weight,
		Dimensions:  req.Dimensions.toEntity(),
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Product created successfully", product)
}

// Update applies a partial update to a product.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Stock:       req.Stock,
		Images:      req.Images,
		Brand:       req.Brand,
		Weight:      req.Weight,
		IsActive:    req.IsActive,
	}
	if req.Dimensions != nil {
		dimensions := req.Dimensions.toEntity()
		input.Dimensions = &dimensions
	}

	product, err := h.productUC.UpdateExistingProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product updated successfully", product)
}

// Delete deactivates a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.RemoveProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product deleted successfully", product)
}
