// Package response renders the uniform JSON envelope used by every endpoint.
package response

import (
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success    bool                      `json:"success"`
	StatusCode int                       `json:"statusCode"`
	Message    string                    `json:"message,omitempty"`
	Data       any                       `json:"data,omitempty"`
	Errors     []domainerrors.FieldError `json:"errors,omitempty"`
	Pagination *usecase.PageInfo         `json:"pagination,omitempty"`
	Summary    any                       `json:"summary,omitempty"`
	Timestamp  string                    `json:"timestamp"`
	RequestID  string                    `json:"requestId"`
}

// now is replaced in tests.
var now = time.Now

func newEnvelope(c echo.Context, statusCode int, message string) *Envelope {
	return &Envelope{
		Success:    statusCode < http.StatusBadRequest,
		StatusCode: statusCode,
		Message:    message,
		Timestamp:  now().UTC().Format(time.RFC3339),
		RequestID:  deliverycontext.GetRequestID(c),
	}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, message string, data any) error {
	env := newEnvelope(c, statusCode, message)
	env.Data = data

	return c.JSON(statusCode, env)
}

// Paginated returns one page of a listing with its pagination block.
func Paginated(c echo.Context, message string, data any, page usecase.PageInfo) error {
	env := newEnvelope(c, http.StatusOK, message)
	env.Data = data
	env.Pagination = &page

	return c.JSON(http.StatusOK, env)
}

// WithSummary returns data alongside an aggregate block, optionally paginated.
func WithSummary(c echo.Context, message string, data, summary any, page *usecase.PageInfo) error {
	env := newEnvelope(c, http.StatusOK, message)
	env.Data = data
	env.Summary = summary
	env.Pagination = page

	return c.JSON(http.StatusOK, env)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, message string, errs []domainerrors.FieldError) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	env := newEnvelope(c, statusCode, message)
	env.Errors = errs

	return c.JSON(statusCode, env)
}

// Attachment streams a generated file as a download.
func Attachment(c echo.Context, name, contentType string, content []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)

	return c.Blob(http.StatusOK, contentType, content)
}
