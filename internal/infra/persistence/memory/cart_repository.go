package memory

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

type cartRepository struct {
	store *Store
}

// NewCartRepository creates a cart repository over the store.
func NewCartRepository(store *Store) repository.CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) FindByID(_ context.Context, id string) (*entity.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.cartItems[id]
	if !ok {
		return nil, domainerrors.ErrCartItemNotFound
	}

	return &item, nil
}

func (r *cartRepository) FindByUserAndProduct(_ context.Context, userID, productID string) (*entity.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.cartItems {
		if item.UserID == userID && item.ProductID == productID {
			return &item, nil
		}
	}

	return nil, domainerrors.ErrCartItemNotFound
}

func (r *cartRepository) collect(match func(entity.CartItem) bool) []*entity.CartItem {
	items := make([]*entity.CartItem, 0)
	for _, item := range r.store.cartItems {
		if match(item) {
			items = append(items, &item)
		}
	}
	orderBy(items, true, func(i *entity.CartItem) int64 { return unixNano(i.CreatedAt) }, func(i *entity.CartItem) string { return i.ID })

	return items
}

func (r *cartRepository) ListByUser(_ context.Context, userID string, p repository.Pagination) ([]*entity.CartItem, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := r.collect(func(i entity.CartItem) bool { return i.UserID == userID })

	return page(items, p), int64(len(items)), nil
}

func (r *cartRepository) ListAllByUser(_ context.Context, userID string) ([]*entity.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.collect(func(i entity.CartItem) bool { return i.UserID == userID }), nil
}

func (r *cartRepository) ListAll(_ context.Context, p repository.Pagination) ([]*entity.CartItem, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := r.collect(func(entity.CartItem) bool { return true })

	return page(items, p), int64(len(items)), nil
}

func (r *cartRepository) Aggregate(_ context.Context) (*repository.CartAggregate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	agg := &repository.CartAggregate{}
	users := make(map[string]struct{})
	for _, item := range r.store.cartItems {
		agg.TotalCartItems++
		agg.TotalItemsInAllCarts += int64(item.Quantity)
		agg.TotalCartValue += item.Price * float64(item.Quantity)
		users[item.UserID] = struct{}{}
	}
	agg.TotalActiveUsers = int64(len(users))

	return agg, nil
}

func (r *cartRepository) PurgeUnavailable(_ context.Context, userID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var purged int64
	for id, item := range r.store.cartItems {
		if item.UserID != userID {
			continue
		}
		if p, ok := r.store.products[item.ProductID]; ok && p.IsActive {
			continue
		}
		delete(r.store.cartItems, id)
		purged++
	}

	return purged, nil
}

func (r *cartRepository) Create(_ context.Context, item *entity.CartItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.cartItems {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID {
			return domainerrors.ErrConflict.WithDetails("cart already contains this product")
		}
	}
	if item.ID == "" {
		item.ID = entity.NewID()
	}
	r.store.stamp(&item.CreatedAt, &item.UpdatedAt)
	r.store.cartItems[item.ID] = *item

	return nil
}

func (r *cartRepository) Update(_ context.Context, item *entity.CartItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.cartItems[item.ID]
	if !ok {
		return domainerrors.ErrCartItemNotFound
	}
	item.CreatedAt = existing.CreatedAt
	r.store.stamp(&item.CreatedAt, &item.UpdatedAt)
	r.store.cartItems[item.ID] = *item

	return nil
}

func (r *cartRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cartItems[id]; !ok {
		return domainerrors.ErrCartItemNotFound
	}
	delete(r.store.cartItems, id)

	return nil
}

func (r *cartRepository) DeleteByUser(_ context.Context, userID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var deleted int64
	for id, item := range r.store.cartItems {
		if item.UserID == userID {
			delete(r.store.cartItems, id)
			deleted++
		}
	}

	return deleted, nil
}
