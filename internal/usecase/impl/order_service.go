package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService stores orders as submitted. Prices are not recomputed and stock is not decremented.
type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	qrService service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	QRService service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		qrService: params.QRService,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) CreateOrder(ctx context.Context, userID string, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := &entity.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     input.TotalAmount,
		Status:          entity.OrderStatusPending,
		PaymentStatus:   entity.PaymentStatusPending,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: input.ShippingAddress,
		OrderDate:       srv.now(),
		DeliveryDate:    input.DeliveryDate,
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created", slog.String("orderID", order.ID), slog.String("userID", userID))
	srv.publish(ctx, service.OrderEventCreated, order)

	return order, nil
}

func (srv *orderService) GetOrdersByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetAllOrders(ctx context.Context) ([]*entity.OrderWithUser, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	userIDs := make([]string, 0, len(orders))
	for _, o := range orders {
		userIDs = append(userIDs, o.UserID)
	}
	users, err := srv.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order owners")
	}
	userByID := make(map[string]*entity.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	result := make([]*entity.OrderWithUser, 0, len(orders))
	for _, o := range orders {
		view := &entity.OrderWithUser{Order: o}
		if u, ok := userByID[o.UserID]; ok {
			view.User = u.Summary()
		}
		result = append(result, view)
	}

	return result, nil
}

// UpdateOrderStatus accepts any known status regardless of the current one.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.NewFieldError("status", "must be one of Pending, Processing, Shipped, Delivered, Cancelled")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.publish(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

func (srv *orderService) DeleteOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := srv.orderRepo.Delete(ctx, orderID); err != nil {
		return nil, errors.Wrap(err, "failed to delete order")
	}

	srv.publish(ctx, service.OrderEventDeleted, order)

	return order, nil
}

func (srv *orderService) GenerateOrderQR(ctx context.Context, userID, orderID string) ([]byte, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	png, err := srv.qrService.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

func (srv *orderService) ResolveOrderQR(ctx context.Context, qrData string) (*entity.OrderWithUser, error) {
	orderID, err := srv.qrService.ParseOrderQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	view := &entity.OrderWithUser{Order: order}
	user, err := srv.userRepo.FindByID(ctx, order.UserID)
	switch {
	case err == nil:
		view.User = user.Summary()
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to load order owner")
	}

	return view, nil
}

// publish never fails the request; a lost event is only logged.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		Type:        eventType,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     order.ID,
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		OccurredAt:  srv.now(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("type", eventType),
			slog.String("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}

func validateOrderInput(input *usecase.CreateOrderInput) error {
	var fields []domainerrors.FieldError
	add := func(field, message string) {
		fields = append(fields, domainerrors.FieldError{Field: field, Code: domainerrors.ErrValidationFailed.ErrorCode(), Message: message})
	}

	if len(input.Items) == 0 {
		add("items", "must contain at least one item")
	}
	for i, item := range input.Items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		if !entity.IsValidID(item.ProductID) {
			add(prefix+"product", "must be a valid id")
		}
		if item.Quantity < 1 {
			add(prefix+"quantity", "must be at least 1")
		}
		if item.Price < 0 {
			add(prefix+"price", "must not be negative")
		}
	}
	if input.TotalAmount < 0 {
		add("totalAmount", "must not be negative")
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}
