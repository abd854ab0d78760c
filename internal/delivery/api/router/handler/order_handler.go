package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves placed orders.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type orderItemRequest struct {
	ProductID string   `json:"productId" validate:"required,objectid"`
	Quantity  int      `json:"quantity" validate:"required,min=1"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
}

type shippingAddressRequest struct {
	Street  string `json:"street" validate:"required,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	ZipCode string `json:"zipCode" validate:"required,max=20"`
	Country string `json:"country" validate:"required,max=100"`
}

type createOrderRequest struct {
	Items           []orderItemRequest     `json:"items" validate:"required,min=1,dive"`
	TotalAmount     *float64               `json:"totalAmount" validate:"required,gte=0"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required,max=50"`
	ShippingAddress shippingAddressRequest `json:"shippingAddress"`
	DeliveryDate    *time.Time             `json:"deliveryDate"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}

type scanOrderRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// Create places an order for the caller.
func (h *OrderHandler) Create(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     *item.Price,
		})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), caller.ID, &usecase.CreateOrderInput{
		Items:         items,
		TotalAmount:   *req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		ShippingAddress: entity.Address{
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			ZipCode: req.ShippingAddress.ZipCode,
			Country: req.ShippingAddress.Country,
		},
		DeliveryDate: req.DeliveryDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Order created successfully", order)
}

// MyOrders lists the caller's orders.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.GetOrdersByUser(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Orders retrieved successfully", orders)
}

// QRCode renders a PNG QR code for one of the caller's orders.
func (h *OrderHandler) QRCode(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.orderUC.GenerateOrderQR(c.Request().Context(), caller.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AdminShowAll lists every order with its owner.
func (h *OrderHandler) AdminShowAll(c echo.Context) error {
	orders, err := h.orderUC.GetAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Orders retrieved successfully", orders)
}

// Scan resolves the order behind scanned QR data.
func (h *OrderHandler) Scan(c echo.Context) error {
	var req scanOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.ResolveOrderQR(c.Request().Context(), req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Order resolved successfully", order)
}

// UpdateStatus moves an order to another status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Status updated", order)
}

// Delete removes an order.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.DeleteOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Order deleted successfully", order)
}
