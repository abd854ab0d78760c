package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, env string, err error) (int, map[string]any) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/test", nil), rec)
	m.HandleHTTPError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError_ValidationError(t *testing.T) {
	err := errors.WithStack(domainerrors.NewValidationError(
		domainerrors.FieldError{Field: "name", Message: "is required"},
		domainerrors.FieldError{Field: "price", Message: "must be at least 0"},
	))

	code, body := handleError(t, "production", err)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(http.StatusBadRequest), body["statusCode"])
	assert.Len(t, body["errors"], 2)
}

func TestHandleHTTPError_AppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantErrors bool
	}{
		{name: "not found", err: domainerrors.ErrProductNotFound, wantStatus: http.StatusNotFound},
		{name: "conflict", err: domainerrors.ErrReviewAlreadyExists, wantStatus: http.StatusConflict},
		{name: "details become an error entry", err: domainerrors.ErrInsufficientStock.WithDetails("only 3 left"), wantStatus: http.StatusBadRequest, wantErrors: true},
		{name: "unauthorized details stay hidden", err: domainerrors.ErrUnauthorized.WithDetails("bad token"), wantStatus: http.StatusUnauthorized},
		{name: "wrapped", err: errors.Wrap(domainerrors.ErrForbidden, "handler"), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := handleError(t, "production", tt.err)

			assert.Equal(t, tt.wantStatus, code)
			_, hasErrors := body["errors"]
			assert.Equal(t, tt.wantErrors, hasErrors)
		})
	}
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	code, body := handleError(t, "production", echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Not Found", body["message"])
}

func TestHandleHTTPError_UnknownErrorIsRedacted(t *testing.T) {
	err := errors.New("pq: connection refused")

	code, body := handleError(t, "production", err)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), body["message"])

	_, body = handleError(t, "development", err)
	assert.Equal(t, "pq: connection refused", body["message"])
}

func TestHandleHTTPError_DatabaseErrorIsRedacted(t *testing.T) {
	err := domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "update product")

	code, body := handleError(t, "production", err)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), body["message"])
	assert.NotContains(t, body, "errors")
}
