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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves shopping carts.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required,objectid"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type removedItemResponse struct {
	RemovedItem *entity.CartItem `json:"removedItem"`
}

type clearCartResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ShowAll lists the caller's cart with its summary.
func (h *CartHandler) ShowAll(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req pageRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	page, err := h.cartUC.GetUserCartItems(ctx, caller.ID, req.toPageQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.cartUC.GetCartSummary(ctx, caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithSummary(c, "Cart retrieved for user: "+caller.Email, page.Items, summary, &page.Page)
}

// Summary totals the caller's cart.
func (h *CartHandler) Summary(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	summary, err := h.cartUC.GetCartSummary(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithSummary(c, "Cart summary retrieved successfully", nil, summary, nil)
}

// Add puts a product in the caller's cart or raises its quantity.
func (h *CartHandler) Add(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	line, err := h.cartUC.AddToCart(c.Request().Context(), caller.ID, &usecase.AddToCartInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Item added to cart successfully", line)
}

// UpdateQuantity sets the quantity of one of the caller's cart rows.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateQuantityRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	line, err := h.cartUC.UpdateQuantity(c.Request().Context(), caller.ID, itemID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Cart item quantity updated successfully", line)
}

// Remove deletes one of the caller's cart rows.
func (h *CartHandler) Remove(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.cartUC.RemoveItem(c.Request().Context(), caller.ID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Item removed from cart successfully", removedItemResponse{RemovedItem: item})
}

// Clear empties the caller's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	deleted, err := h.cartUC.ClearCart(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Cart cleared successfully", clearCartResponse{DeletedCount: deleted})
}

// AdminShowAll pages through cart rows of every user.
func (h *CartHandler) AdminShowAll(c echo.Context) error {
	var req pageRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	analytics, err := h.cartUC.GetAdminAnalytics(c.Request().Context(), req.toPageQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, "Cart items retrieved successfully", analytics.Items, analytics.Page)
}

// Analytics returns store-wide cart totals with the paged rows.
func (h *CartHandler) Analytics(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req pageRequest
	if err := bindQuery(c, &req); err != nil {
		return err
	}

	analytics, err := h.cartUC.GetAdminAnalytics(c.Request().Context(), req.toPageQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithSummary(c, "Cart analytics retrieved by admin: "+caller.Email,
		analytics.Items, analytics.Summary, &analytics.Page)
}
