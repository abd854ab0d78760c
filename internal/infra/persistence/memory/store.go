// Package memory is an in-process implementation of the persistence layer.
// It backs the "memory" storage driver and the use case tests.
package memory

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// Store holds every collection behind one RWMutex.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users      map[string]entity.User
	products   map[string]entity.Product
	categories map[string]entity.Category
	cartItems  map[string]entity.CartItem
	orders     map[string]entity.Order
	reviews    map[string]entity.Review

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]entity.User),
		products:   make(map[string]entity.Product),
		categories: make(map[string]entity.Category),
		cartItems:  make(map[string]entity.CartItem),
		orders:     make(map[string]entity.Order),
		reviews:    make(map[string]entity.Review),
		now:        time.Now,
	}
}

type snapshot struct {
	users      map[string]entity.User
	products   map[string]entity.Product
	categories map[string]entity.Category
	cartItems  map[string]entity.CartItem
	orders     map[string]entity.Order
	reviews    map[string]entity.Review
}

// Values are copied on every write, so a shallow map clone is a consistent snapshot.
func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return snapshot{
		users:      maps.Clone(s.users),
		products:   maps.Clone(s.products),
		categories: maps.Clone(s.categories),
		cartItems:  maps.Clone(s.cartItems),
		orders:     maps.Clone(s.orders),
		reviews:    maps.Clone(s.reviews),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snap.users
	s.products = snap.products
	s.categories = snap.categories
	s.cartItems = snap.cartItems
	s.orders = snap.orders
	s.reviews = snap.reviews
}

func (s *Store) stamp(created, updated *time.Time) {
	now := s.now()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

func cloneProduct(p entity.Product) *entity.Product {
	p.Images = slices.Clone(p.Images)

	return &p
}

func cloneCategory(c entity.Category) *entity.Category {
	if c.ParentID != nil {
		parent := *c.ParentID
		c.ParentID = &parent
	}

	return &c
}

func cloneOrder(o entity.Order) *entity.Order {
	o.Items = slices.Clone(o.Items)
	if o.DeliveryDate != nil {
		d := *o.DeliveryDate
		o.DeliveryDate = &d
	}

	return &o
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// page applies offset/limit to an already sorted slice.
func page[T any](items []T, p repository.Pagination) []T {
	if p.Limit <= 0 {
		return items
	}

	start := min(p.Offset(), len(items))
	end := min(start+p.Limit, len(items))

	return items[start:end]
}

// orderBy sorts by key, falling back to id so equal keys stay deterministic.
// Object ids grow with creation time, which keeps ties in insertion order.
func orderBy[T any, K cmp.Ordered](items []T, desc bool, key func(T) K, id func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		c := cmp.Compare(key(a), key(b))
		if c == 0 {
			c = cmp.Compare(id(a), id(b))
		}
		if desc {
			return -c
		}

		return c
	})
}

func unixNano(t time.Time) int64 {
	return t.UnixNano()
}
