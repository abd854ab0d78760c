package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

type registerRequest struct {
	Name     string         `json:"name" validate:"required,min=2,max=50"`
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=6,max=72"`
	Address  addressRequest `json:"address"`
	Phone    string         `json:"phone" validate:"max=20"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateProfileRequest leaves absent fields untouched. A role field is ignored.
type updateProfileRequest struct {
	Name    *string         `json:"name" validate:"omitempty,min=2,max=50"`
	Email   *string         `json:"email" validate:"omitempty,email"`
	Address *addressRequest `json:"address"`
	Phone   *string         `json:"phone" validate:"omitempty,max=20"`
}

type profileResponse struct {
	User *entity.User `json:"user"`
}

// Register handles account registration.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.RegisterUser(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address.toEntity(),
		Phone:    req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "User created successfully", output)
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.LoginUser(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Login successful", output)
}

// GetProfile returns the caller's own account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.GetUserProfile(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Profile retrieved successfully", profileResponse{User: user})
}

// UpdateProfile changes the caller's name, email, address or phone.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if req.Address != nil {
		address := req.Address.toEntity()
		input.Address = &address
	}

	user, err := h.authUC.UpdateUserProfile(c.Request().Context(), caller.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Profile updated successfully", profileResponse{User: user})
}

// DeleteAccount removes the caller's account.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	if err := h.authUC.DeleteUserAccount(c.Request().Context(), caller.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Account deleted successfully", nil)
}

// GetAllCustomers lists customer accounts.
func (h *UserHandler) GetAllCustomers(c echo.Context) error {
	list, err := h.authUC.GetAllCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Customers retrieved successfully", list)
}

// GetAllUsers lists every account.
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	list, err := h.authUC.GetAllUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Users retrieved successfully", list)
}
