package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	adminEmails  []string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var adminEmails []string
	if params.Config != nil && params.Config.Auth != nil {
		adminEmails = params.Config.Auth.AdminEmails
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		adminEmails:  adminEmails,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (srv *authService) roleFor(email string) entity.Role {
	for _, admin := range srv.adminEmails {
		if normalizeEmail(admin) == email {
			return entity.RoleAdmin
		}
	}

	return entity.RoleCustomer
}

// RegisterUser creates a customer account (or admin, for configured emails) and signs a token.
func (srv *authService) RegisterUser(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: hash,
		Role:     srv.roleFor(email),
		Address:  input.Address,
		Phone:    strings.TrimSpace(input.Phone),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID), slog.String("role", user.Role.String()))

	return srv.issue(user)
}

// LoginUser verifies credentials. Unknown emails and wrong passwords fail identically.
func (srv *authService) LoginUser(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login with wrong password", slog.String("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(user)
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (srv *authService) GetUserProfile(ctx context.Context, userID string) (*entity.User, error) {
	return srv.userRepo.FindByID(ctx, userID)
}

// UpdateUserProfile changes contact details. The role is never changed here.
func (srv *authService) UpdateUserProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email != user.Email {
			other, err := srv.userRepo.FindByEmail(ctx, email)
			switch {
			case err == nil && other.ID != user.ID:
				return nil, domainerrors.ErrUserAlreadyExists
			case err != nil && !errors.Is(err, domainerrors.ErrUserNotFound):
				return nil, errors.Wrap(err, "failed to look up email")
			}
			user.Email = email
		}
	}
	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// DeleteUserAccount removes the user and their cart rows in one transaction.
// Orders and reviews are kept as history.
func (srv *authService) DeleteUserAccount(ctx context.Context, userID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			return err
		}

		removed, err := repoFactory.NewCartRepository().DeleteByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		srv.log(ctx).Info("User account deleted", slog.String("userID", userID), slog.Int64("cartItemsRemoved", removed))

		return nil
	})
	if err != nil {
		return errors.WithMessage(err, "failed to delete user account")
	}

	return nil
}

func (srv *authService) GetAllUsers(ctx context.Context) (*usecase.UserList, error) {
	return srv.list(ctx, nil)
}

func (srv *authService) GetAllCustomers(ctx context.Context) (*usecase.UserList, error) {
	return srv.list(ctx, ptr(entity.RoleCustomer))
}

func (srv *authService) list(ctx context.Context, role *entity.Role) (*usecase.UserList, error) {
	users, err := srv.userRepo.List(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserList{Users: users, Count: len(users)}, nil
}
