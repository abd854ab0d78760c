package memory

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

type orderRepository struct {
	store *Store
}

// NewOrderRepository creates an order repository over the store.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) FindByID(_ context.Context, id string) (*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.orders[id]
	if !ok {
		return nil, domainerrors.ErrOrderNotFound
	}

	return cloneOrder(o), nil
}

func (r *orderRepository) list(match func(entity.Order) bool) []*entity.Order {
	orders := make([]*entity.Order, 0)
	for _, o := range r.store.orders {
		if match(o) {
			orders = append(orders, cloneOrder(o))
		}
	}
	orderBy(orders, true, func(o *entity.Order) int64 { return unixNano(o.CreatedAt) }, func(o *entity.Order) string { return o.ID })

	return orders
}

func (r *orderRepository) ListByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.list(func(o entity.Order) bool { return o.UserID == userID }), nil
}

func (r *orderRepository) ListAll(_ context.Context) ([]*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.list(func(entity.Order) bool { return true }), nil
}

func (r *orderRepository) HasDeliveredProduct(_ context.Context, userID, productID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, o := range r.store.orders {
		if o.UserID == userID && o.Status == entity.OrderStatusDelivered && o.HasProduct(productID) {
			return true, nil
		}
	}

	return false, nil
}

func (r *orderRepository) Create(_ context.Context, order *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if order.ID == "" {
		order.ID = entity.NewID()
	}
	r.store.stamp(&order.CreatedAt, &order.UpdatedAt)
	r.store.orders[order.ID] = *cloneOrder(*order)

	return nil
}

func (r *orderRepository) Update(_ context.Context, order *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.orders[order.ID]
	if !ok {
		return domainerrors.ErrOrderNotFound
	}
	order.CreatedAt = existing.CreatedAt
	r.store.stamp(&order.CreatedAt, &order.UpdatedAt)
	r.store.orders[order.ID] = *cloneOrder(*order)

	return nil
}

func (r *orderRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[id]; !ok {
		return domainerrors.ErrOrderNotFound
	}
	delete(r.store.orders, id)

	return nil
}
