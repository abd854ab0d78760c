// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// queryRequest is a query string read through echo's ValueBinder.
type queryRequest interface {
	bind(b *echo.ValueBinder)
}

// pageRequest is the query of listings that only page.
type pageRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (r *pageRequest) bind(b *echo.ValueBinder) {
	b.Int("page", &r.Page).Int("limit", &r.Limit)
}

func (r *pageRequest) toPageQuery() usecase.PageQuery {
	return usecase.PageQuery{Page: r.Page, Limit: r.Limit}
}

// addressRequest is the postal address accepted by profile and order bodies.
type addressRequest struct {
	Street  string `json:"street" validate:"max=200"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=100"`
	ZipCode string `json:"zipCode" validate:"max=20"`
	Country string `json:"country" validate:"max=100"`
}

func (a addressRequest) toEntity() entity.Address {
	return entity.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

// bindBody decodes the request body into req and validates it.
func bindBody(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return invalidInput(err)
	}

	return errors.WithStack(c.Validate(req))
}

// bindQuery decodes the query string into req and validates it.
func bindQuery(c echo.Context, req queryRequest) error {
	b := echo.QueryParamsBinder(c)
	req.bind(b)
	if err := b.BindError(); err != nil {
		return invalidInput(err)
	}

	return errors.WithStack(c.Validate(req))
}

// optionalFloat sets *dest only when the parameter is present.
func optionalFloat(b *echo.ValueBinder, name string, dest **float64) {
	b.CustomFunc(name, func(values []string) []error {
		v, err := strconv.ParseFloat(values[0], 64)
		if err != nil {
			return []error{echo.NewBindingError(name, values, "failed to bind field value to float64", err)}
		}
		*dest = &v

		return nil
	})
}

// optionalInt sets *dest only when the parameter is present.
func optionalInt(b *echo.ValueBinder, name string, dest **int) {
	b.CustomFunc(name, func(values []string) []error {
		v, err := strconv.Atoi(values[0])
		if err != nil {
			return []error{echo.NewBindingError(name, values, "failed to bind field value to int", err)}
		}
		*dest = &v

		return nil
	})
}

// optionalBool sets *dest only when the parameter is present.
func optionalBool(b *echo.ValueBinder, name string, dest **bool) {
	b.CustomFunc(name, func(values []string) []error {
		v, err := strconv.ParseBool(values[0])
		if err != nil {
			return []error{echo.NewBindingError(name, values, "failed to bind field value to bool", err)}
		}
		*dest = &v

		return nil
	})
}

// pathID reads a path parameter that must be an object id.
func pathID(c echo.Context, name string) (string, error) {
	id := c.Param(name)
	if !entity.IsValidID(id) {
		return "", domainerrors.ErrInvalidIDFormat.WithDetails(name + " must be a 24-character hex id")
	}

	return id, nil
}

// identity returns the authenticated caller. Routes using it sit behind Authenticate.
func identity(c echo.Context) (*middleware.Identity, error) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

func invalidInput(err error) error {
	message := "malformed request"

	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return domainerrors.NewFieldError(bindErr.Field, "has an invalid value")
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	return domainerrors.NewFieldError("", message)
}
