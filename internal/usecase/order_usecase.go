package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// OrderItemInput is one submitted order line.
type OrderItemInput struct {
	ProductID string
	Quantity  int
	Price     float64
}

// CreateOrderInput is stored as submitted; prices are not recomputed.
type CreateOrderInput struct {
	Items           []OrderItemInput
	TotalAmount     float64
	PaymentMethod   string
	ShippingAddress entity.Address
	DeliveryDate    *time.Time
}

// OrderUsecase manages placed orders.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, userID string, input *CreateOrderInput) (*entity.Order, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	GetAllOrders(ctx context.Context) ([]*entity.OrderWithUser, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)
	DeleteOrder(ctx context.Context, orderID string) (*entity.Order, error)

	// GenerateOrderQR renders a PNG for the owner of the order.
	GenerateOrderQR(ctx context.Context, userID, orderID string) ([]byte, error)

	// ResolveOrderQR looks up the order referenced by scanned QR data.
	ResolveOrderQR(ctx context.Context, qrData string) (*entity.OrderWithUser, error)
}
