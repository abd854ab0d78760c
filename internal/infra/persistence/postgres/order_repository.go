package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db, q: query.Use(db)}
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	o := repo.q.OrderModel
	orderM, err := o.WithContext(ctx).Where(o.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(orderM), nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	return repo.list(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return repo.list(repo.db.WithContext(ctx))
}

func (repo *orderRepository) list(stmt *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := stmt.Order("created_at DESC").Order("id DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// HasDeliveredProduct uses jsonb containment on the items column.
func (repo *orderRepository) HasDeliveredProduct(ctx context.Context, userID, productID string) (bool, error) {
	containment, err := json.Marshal([]map[string]string{{"product": productID}})
	if err != nil {
		return false, errors.Wrap(err, "failed to encode item filter")
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.OrderStatusDelivered)).
		Where("items @> ?::jsonb", string(containment)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check delivered orders")
	}

	return count > 0, nil
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = entity.NewID()
	}
	orderM := fromOrderDomain(order)

	if err := repo.q.OrderModel.WithContext(ctx).Create(orderM); err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewFieldError("totalAmount", "must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).Model(orderM).Select("*").Omit("id", "created_at").Updates(orderM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		Items:           items,
		TotalAmount:     data.TotalAmount,
		Status:          entity.OrderStatus(data.Status),
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod:   data.PaymentMethod,
		ShippingAddress: toAddressDomain(data.ShippingAddress),
		OrderDate:       data.OrderDate,
		DeliveryDate:    data.DeliveryDate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Items:           items,
		TotalAmount:     data.TotalAmount,
		Status:          string(data.Status),
		PaymentStatus:   string(data.PaymentStatus),
		PaymentMethod:   data.PaymentMethod,
		ShippingAddress: fromAddressDomain(data.ShippingAddress),
		OrderDate:       data.OrderDate,
		DeliveryDate:    data.DeliveryDate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
