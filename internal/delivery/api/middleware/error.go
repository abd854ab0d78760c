package middleware

import (
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps every error returned by a handler to the response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
	cfg    *config.Config
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		cfg:    cfg,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.Error(c, validationErr.HTTPCode(), validationErr.Message(), validationErr.Fields())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.handleAppError(c, err, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logError(c, err)
			message = m.redact(message, err)
		}

		_ = response.Error(c, httpErr.Code, message, nil)

		return
	}

	m.logError(c, err)
	_ = response.Error(c, http.StatusInternalServerError, m.redact(domainerrors.ErrInternalError.Message(), err), nil)
}

func (m *ErrorMiddleware) handleAppError(c echo.Context, err error, appErr domainerrors.AppError) {
	status := appErr.HTTPCode()
	if status >= http.StatusInternalServerError {
		m.logError(c, err)
		_ = response.Error(c, status, m.redact(domainerrors.ErrInternalError.Message(), err), nil)

		return
	}

	var fields []domainerrors.FieldError
	if details := appErr.Details(); details != "" && status != http.StatusUnauthorized && status != http.StatusForbidden {
		fields = []domainerrors.FieldError{{Code: appErr.ErrorCode(), Message: details}}
	}

	_ = response.Error(c, status, appErr.Message(), fields)
}

// redact hides internal error text outside development.
func (m *ErrorMiddleware) redact(message string, err error) string {
	if m.cfg != nil && m.cfg.IsDevelopment() {
		return err.Error()
	}

	return message
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
