package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	store     testStore
	publisher *mockEventPublisher
	user      *entity.User
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	store := newTestStore()
	publisher := new(mockEventPublisher)
	qr := qrcode.NewQRCodeService(256, "M")
	svc := NewOrderService(OrderServiceParams{
		OrderRepo: store.orders,
		UserRepo:  store.users,
		QRService: qr,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   svc,
		store:     store,
		publisher: publisher,
		user:      store.seedUser(t, "buyer@example.com", entity.RoleCustomer),
	}
}

func orderInput(productID string) *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		Items:         []usecase.OrderItemInput{{ProductID: productID, Quantity: 2, Price: 9.5}},
		TotalAmount:   19,
		PaymentMethod: "card",
		ShippingAddress: entity.Address{
			Street: "1 Main St", City: "Springfield", Country: "US",
		},
	}
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e *service.OrderEvent) bool { return e.Type == eventType })
}

func TestOrderService_CreateOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.publisher.On("PublishOrderEvent", mock.Anything, eventOfType(service.OrderEventCreated)).Return(nil).Once()

	order, err := fx.service.CreateOrder(ctx, fx.user.ID, orderInput(entity.NewID()))
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, 19.0, order.TotalAmount)
	assert.False(t, order.OrderDate.IsZero())
	fx.publisher.AssertExpectations(t)
}

func TestOrderService_CreateOrder_TakesItemsAsGiven(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)

	product := fx.store.seedProduct(t, "Last lamp", 30, 1)

	order, err := fx.service.CreateOrder(ctx, fx.user.ID, orderInput(product.ID))
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 9.5, order.Items[0].Price)

	stored, err := fx.store.products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Stock)
}

func TestOrderService_CreateOrder_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestOrderService(t)
	fx.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.CreateOrder(context.Background(), fx.user.ID, orderInput(entity.NewID()))
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	_, err := fx.service.CreateOrder(ctx, fx.user.ID, &usecase.CreateOrderInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	bad := orderInput("not-an-id")
	bad.Items[0].Quantity = 0
	_, err = fx.service.CreateOrder(ctx, fx.user.ID, bad)
	var validation *domainerrors.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Len(t, validation.Fields(), 2)

	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_GetAllOrders_JoinsUsers(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.CreateOrder(ctx, fx.user.ID, orderInput(entity.NewID()))
	require.NoError(t, err)

	orders, err := fx.service.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].User)
	assert.Equal(t, fx.user.Email, orders[0].User.Email)

	mine, err := fx.service.GetOrdersByUser(ctx, fx.user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := fx.service.GetOrdersByUser(ctx, entity.NewID())
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.publisher.On("PublishOrderEvent", mock.Anything, eventOfType(service.OrderEventCreated)).Return(nil)
	fx.publisher.On("PublishOrderEvent", mock.Anything, eventOfType(service.OrderEventStatusChanged)).Return(nil).Twice()

	order, err := fx.service.CreateOrder(ctx, fx.user.ID, orderInput(entity.NewID()))
	require.NoError(t, err)

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)

	// Any status may follow any other.
	updated, err = fx.service.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, updated.Status)

	_, err = fx.service.UpdateOrderStatus(ctx, order.ID, entity.OrderStatus("Lost"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.UpdateOrderStatus(ctx, entity.NewID(), entity.OrderStatusShipped)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))

	fx.publisher.AssertExpectations(t)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)

	order, err := fx.service.CreateOrder(ctx, fx.user.ID, orderInput(entity.NewID()))
	require.NoError(t, err)

	deleted, err := fx.service.DeleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, deleted.ID)

	_, err = fx.service.DeleteOrder(ctx, order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	fx.publisher.AssertCalled(t, "PublishOrderEvent", mock.Anything, eventOfType(service.OrderEventDeleted))
}

func TestOrderService_QRRoundTrip(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)

	order, err := fx.service.CreateOrder(ctx, fx.user.ID, orderInput(entity.NewID()))
	require.NoError(t, err)

	png, err := fx.service.GenerateOrderQR(ctx, fx.user.ID, order.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = fx.service.GenerateOrderQR(ctx, entity.NewID(), order.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))

	payload, err := qrcode.OrderPayload(order.ID)
	require.NoError(t, err)
	resolved, err := fx.service.ResolveOrderQR(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, order.ID, resolved.ID)
	require.NotNil(t, resolved.User)
	assert.Equal(t, fx.user.ID, resolved.User.ID)

	_, err = fx.service.ResolveOrderQR(ctx, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRCode))
}
