package memory

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

type productRepository struct {
	store *Store
}

// NewProductRepository creates a product repository over the store.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) FindByID(_ context.Context, id string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	return cloneProduct(p), nil
}

func (r *productRepository) FindByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.store.products[id]; ok {
			products = append(products, cloneProduct(p))
		}
	}

	return products, nil
}

func (r *productRepository) ExistsByName(_ context.Context, name, excludeID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.nameTaken(name, excludeID), nil
}

func (r *productRepository) nameTaken(name, excludeID string) bool {
	for _, p := range r.store.products {
		if p.ID != excludeID && p.Name == name {
			return true
		}
	}

	return false
}

func (r *productRepository) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		if !matchProduct(&p, filter) {
			continue
		}
		matched = append(matched, cloneProduct(p))
	}

	sortProducts(matched, filter.Sort)

	return page(matched, filter.Page), int64(len(matched)), nil
}

func matchProduct(p *entity.Product, f repository.ProductFilter) bool {
	if f.IsActive != nil && p.IsActive != *f.IsActive {
		return false
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Search != "" &&
		!containsFold(p.Name, f.Search) &&
		!containsFold(p.Description, f.Search) &&
		!containsFold(p.Brand, f.Search) {
		return false
	}

	return true
}

func sortProducts(items []*entity.Product, s repository.Sort) {
	id := func(p *entity.Product) string { return p.ID }

	switch s.Field {
	case "price":
		orderBy(items, s.Desc, func(p *entity.Product) float64 { return p.Price }, id)
	case "name":
		orderBy(items, s.Desc, func(p *entity.Product) string { return p.Name }, id)
	case "stock":
		orderBy(items, s.Desc, func(p *entity.Product) int { return p.Stock }, id)
	case "updatedAt":
		orderBy(items, s.Desc, func(p *entity.Product) int64 { return unixNano(p.UpdatedAt) }, id)
	default:
		orderBy(items, s.Desc, func(p *entity.Product) int64 { return unixNano(p.CreatedAt) }, id)
	}
}

func (r *productRepository) Create(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.nameTaken(product.Name, "") {
		return domainerrors.ErrProductAlreadyExists
	}
	if product.ID == "" {
		product.ID = entity.NewID()
	}
	r.store.stamp(&product.CreatedAt, &product.UpdatedAt)
	r.store.products[product.ID] = *cloneProduct(*product)

	return nil
}

func (r *productRepository) Update(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.products[product.ID]
	if !ok {
		return domainerrors.ErrProductNotFound
	}
	if r.nameTaken(product.Name, product.ID) {
		return domainerrors.ErrProductAlreadyExists
	}
	product.CreatedAt = existing.CreatedAt
	r.store.stamp(&product.CreatedAt, &product.UpdatedAt)
	r.store.products[product.ID] = *cloneProduct(*product)

	return nil
}
