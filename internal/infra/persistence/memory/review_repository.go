package memory

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

type reviewRepository struct {
	store *Store
}

// NewReviewRepository creates a review repository over the store.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

func (r *reviewRepository) FindByID(_ context.Context, id string) (*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rv, ok := r.store.reviews[id]
	if !ok {
		return nil, domainerrors.ErrReviewNotFound
	}

	return &rv, nil
}

func (r *reviewRepository) ExistsByUserAndProduct(_ context.Context, userID, productID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.exists(userID, productID), nil
}

func (r *reviewRepository) exists(userID, productID string) bool {
	for _, rv := range r.store.reviews {
		if rv.UserID == userID && rv.ProductID == productID {
			return true
		}
	}

	return false
}

func (r *reviewRepository) List(_ context.Context, filter repository.ReviewFilter) ([]*entity.Review, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.Review, 0)
	for _, rv := range r.store.reviews {
		if filter.ProductID != "" && rv.ProductID != filter.ProductID {
			continue
		}
		if filter.UserID != "" && rv.UserID != filter.UserID {
			continue
		}
		if filter.Rating != nil && rv.Rating != *filter.Rating {
			continue
		}
		matched = append(matched, &rv)
	}

	id := func(rv *entity.Review) string { return rv.ID }
	switch filter.Sort.Field {
	case "rating":
		orderBy(matched, filter.Sort.Desc, func(rv *entity.Review) int { return rv.Rating }, id)
	case "updatedAt":
		orderBy(matched, filter.Sort.Desc, func(rv *entity.Review) int64 { return unixNano(rv.UpdatedAt) }, id)
	default:
		orderBy(matched, filter.Sort.Desc, func(rv *entity.Review) int64 { return unixNano(rv.CreatedAt) }, id)
	}

	return page(matched, filter.Page), int64(len(matched)), nil
}

func (r *reviewRepository) RatingAggregate(_ context.Context, productID string) (*repository.RatingAggregate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	agg := &repository.RatingAggregate{Distribution: make(map[int]int64)}
	for _, rv := range r.store.reviews {
		if rv.ProductID != productID {
			continue
		}
		agg.Total++
		agg.Sum += int64(rv.Rating)
		agg.Distribution[rv.Rating]++
	}

	return agg, nil
}

func (r *reviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.exists(review.UserID, review.ProductID) {
		return domainerrors.ErrReviewAlreadyExists
	}
	if review.ID == "" {
		review.ID = entity.NewID()
	}
	r.store.stamp(&review.CreatedAt, &review.UpdatedAt)
	r.store.reviews[review.ID] = *review

	return nil
}

func (r *reviewRepository) Update(_ context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.reviews[review.ID]
	if !ok {
		return domainerrors.ErrReviewNotFound
	}
	review.CreatedAt = existing.CreatedAt
	r.store.stamp(&review.CreatedAt, &review.UpdatedAt)
	r.store.reviews[review.ID] = *review

	return nil
}

func (r *reviewRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reviews[id]; !ok {
		return domainerrors.ErrReviewNotFound
	}
	delete(r.store.reviews, id)

	return nil
}
