package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/auth"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service usecase.AuthUsecase
	store   testStore
}

func createTestAuthService(t *testing.T, adminEmails ...string) authServiceFixtures {
	t.Helper()

	cfg := newTestConfig(adminEmails...)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := newTestStore()
	service := NewAuthService(AuthServiceParams{
		TxManager:    store.tx,
		UserRepo:     store.users,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{service: service, store: store}
}

func registerInput(email string) *usecase.RegisterInput {
	return &usecase.RegisterInput{Name: "Alice", Email: email, Password: "secret123"}
}

func TestAuthService_RegisterUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	out, err := fx.service.RegisterUser(ctx, registerInput("  Alice@Example.com "))
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
	assert.NotEqual(t, "secret123", out.User.Password)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)

	_, err = fx.service.RegisterUser(ctx, registerInput("ALICE@example.com"))
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_RegisterUser_AdminEmail(t *testing.T) {
	fx := createTestAuthService(t, "Boss@Example.com")

	out, err := fx.service.RegisterUser(context.Background(), registerInput("boss@example.com"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestAuthService_LoginUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)

	out, err := fx.service.LoginUser(ctx, &usecase.LoginInput{Email: "Alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	_, err = fx.service.LoginUser(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = fx.service.LoginUser(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_UpdateUserProfile_EmailConflict(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	alice, err := fx.service.RegisterUser(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)
	_, err = fx.service.RegisterUser(ctx, registerInput("bob@example.com"))
	require.NoError(t, err)

	taken := "bob@example.com"
	_, err = fx.service.UpdateUserProfile(ctx, alice.User.ID, &usecase.UpdateProfileInput{Email: &taken})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	name := "Alice Cooper"
	updated, err := fx.service.UpdateUserProfile(ctx, alice.User.ID, &usecase.UpdateProfileInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, entity.RoleCustomer, updated.Role)
}

func TestAuthService_DeleteUserAccount_RemovesCart(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	out, err := fx.service.RegisterUser(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)
	product := fx.store.seedProduct(t, "Lamp", 10, 5)
	require.NoError(t, fx.store.carts.Create(ctx, &entity.CartItem{
		UserID: out.User.ID, ProductID: product.ID, Quantity: 1, Price: 10,
	}))

	require.NoError(t, fx.service.DeleteUserAccount(ctx, out.User.ID))

	_, err = fx.service.GetUserProfile(ctx, out.User.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	items, err := fx.store.carts.ListAllByUser(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAuthService_DeleteUserAccount_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.DeleteUserAccount(context.Background(), entity.NewID())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_GetAllCustomers(t *testing.T) {
	fx := createTestAuthService(t, "admin@example.com")
	ctx := context.Background()

	for _, email := range []string{"admin@example.com", "a@example.com", "b@example.com"} {
		_, err := fx.service.RegisterUser(ctx, registerInput(email))
		require.NoError(t, err)
	}

	all, err := fx.service.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Count)

	customers, err := fx.service.GetAllCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, customers.Count)
	for _, u := range customers.Users {
		assert.Equal(t, entity.RoleCustomer, u.Role)
	}
}
