package memory

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over the store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}

	return &u, nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}

	return nil, domainerrors.ErrUserNotFound
}

func (r *userRepository) FindByIDs(_ context.Context, ids []string) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.store.users[id]; ok {
			users = append(users, &u)
		}
	}

	return users, nil
}

func (r *userRepository) List(_ context.Context, role *entity.Role) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		if role != nil && u.Role != *role {
			continue
		}
		users = append(users, &u)
	}
	orderBy(users, true, func(u *entity.User) int64 { return unixNano(u.CreatedAt) }, func(u *entity.User) string { return u.ID })

	return users, nil
}

func (r *userRepository) emailTaken(email, excludeID string) bool {
	for _, u := range r.store.users {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true
		}
	}

	return false
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.emailTaken(user.Email, "") {
		return domainerrors.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = entity.NewID()
	}
	r.store.stamp(&user.CreatedAt, &user.UpdatedAt)
	r.store.users[user.ID] = *user

	return nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.users[user.ID]
	if !ok {
		return domainerrors.ErrUserNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return domainerrors.ErrUserAlreadyExists
	}
	user.CreatedAt = existing.CreatedAt
	r.store.stamp(&user.CreatedAt, &user.UpdatedAt)
	r.store.users[user.ID] = *user

	return nil
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return domainerrors.ErrUserNotFound
	}
	delete(r.store.users, id)

	return nil
}
