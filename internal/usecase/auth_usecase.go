package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  entity.Address
	Phone    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput holds the profile fields to change. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name    *string
	Email   *string
	Address *entity.Address
	Phone   *string
}

// --- Output DTOs ---

// AuthOutput is returned by registration and login.
type AuthOutput struct {
	User      *entity.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// UserList is an admin listing of accounts.
type UserList struct {
	Users []*entity.User `json:"users"`
	Count int            `json:"count"`
}

// AuthUsecase covers account registration, login and profile management.
type AuthUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	LoginUser(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	GetUserProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateUserProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)

	// DeleteUserAccount removes the account and its cart.
	DeleteUserAccount(ctx context.Context, userID string) error

	GetAllUsers(ctx context.Context) (*UserList, error)
	GetAllCustomers(ctx context.Context) (*UserList, error)
}
