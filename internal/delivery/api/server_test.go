package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/cache"
	"storefront/internal/infra/export"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminEmail = "admin@example.com"

type testApp struct {
	e *echo.Echo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Auth = &config.AuthConfig{
		JWTSecret:   "test-secret",
		BcryptCost:  4,
		AdminEmails: []string{adminEmail},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	products := memory.NewProductRepository(store)
	categories := memory.NewCategoryRepository(store)
	carts := memory.NewCartRepository(store)
	orders := memory.NewOrderRepository(store)
	reviews := memory.NewReviewRepository(store)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    memory.NewTransactionManager(store),
		UserRepo:     users,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	productUC := impl.NewProductService(impl.ProductServiceParams{
		ProductRepo:  products,
		CategoryRepo: categories,
		Cache:        cache.NewNoopProductCache(),
		Exporter:     export.NewXLSXExporter(),
		Logger:       logger,
	})
	categoryUC := impl.NewCategoryService(impl.CategoryServiceParams{CategoryRepo: categories, Logger: logger})
	cartUC := impl.NewCartService(impl.CartServiceParams{
		CartRepo:    carts,
		ProductRepo: products,
		UserRepo:    users,
		Logger:      logger,
	})
	orderUC := impl.NewOrderService(impl.OrderServiceParams{
		OrderRepo: orders,
		UserRepo:  users,
		QRService: qrcode.NewQRCodeService(256, "M"),
		Publisher: pubsub.NewNoopPublisher(logger),
		Logger:    logger,
	})
	reviewUC := impl.NewReviewService(impl.ReviewServiceParams{
		ReviewRepo:  reviews,
		ProductRepo: products,
		UserRepo:    users,
		OrderRepo:   orders,
		Logger:      logger,
	})

	routerParams := router.RouterParams{
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{AuthUC: authUC, Logger: logger}),
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: productUC, Logger: logger}),
		CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: categoryUC, Logger: logger}),
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: cartUC, Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orderUC, Logger: logger}),
		ReviewHandler:   handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: reviewUC, Logger: logger}),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokens, users),
		Config:          cfg,
	}

	return &testApp{e: newEcho(cfg, logger, routerParams)}
}

func (a *testApp) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

func (a *testApp) call(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	rec := a.request(t, method, path, token, body)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())

	return rec.Code, envelope
}

func (a *testApp) register(t *testing.T, name, email string) string {
	t.Helper()

	code, body := a.call(t, http.MethodPost, "/api/user/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, code, body)

	return data(t, body)["token"].(string)
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	d, ok := body["data"].(map[string]any)
	require.True(t, ok, body)

	return d
}

func (a *testApp) createProduct(t *testing.T, adminToken string, stock int) string {
	t.Helper()

	code, body := a.call(t, http.MethodPost, "/api/category", adminToken, map[string]any{
		"name": "Electronics",
		"slug": "electronics",
	})
	require.Equal(t, http.StatusCreated, code, body)
	categoryID := data(t, body)["id"].(string)

	code, body = a.call(t, http.MethodPost, "/api/products/admin", adminToken, map[string]any{
		"name":        "Headphones",
		"description": "Over-ear wireless headphones",
		"price":       49.99,
		"category":    categoryID,
		"stock":       stock,
		"images":      []string{"https://example.com/headphones.png"},
	})
	require.Equal(t, http.StatusCreated, code, body)

	return data(t, body)["id"].(string)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), body["requestId"])
}

func TestUserFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Jane", "jane@example.com")

	code, body := app.call(t, http.MethodPost, "/api/user/register", "", map[string]any{
		"name":     "Jane Again",
		"email":    "jane@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, false, body["success"])

	code, body = app.call(t, http.MethodPost, "/api/user/login", "", map[string]any{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code, body)

	code, body = app.call(t, http.MethodGet, "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, code, body)
	user := data(t, body)["user"].(map[string]any)
	assert.Equal(t, "jane@example.com", user["email"])
	assert.Equal(t, "customer", user["role"])
	assert.NotContains(t, user, "password")

	code, _ = app.call(t, http.MethodGet, "/api/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = app.call(t, http.MethodGet, "/api/user/admin/show-all", token, nil)
	assert.Equal(t, http.StatusForbidden, code)

	adminToken := app.register(t, "Admin", adminEmail)
	code, body = app.call(t, http.MethodGet, "/api/user/admin/show-customers", adminToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(1), data(t, body)["count"])
}

func TestRequestValidation(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.register(t, "Admin", adminEmail)

	code, body := app.call(t, http.MethodPost, "/api/products/admin", adminToken, map[string]any{
		"name":     "X",
		"price":    -1,
		"category": "not-an-id",
	})
	require.Equal(t, http.StatusBadRequest, code)

	fields := map[string]bool{}
	for _, e := range body["errors"].([]any) {
		fields[e.(map[string]any)["field"].(string)] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["description"])
	assert.True(t, fields["price"])
	assert.True(t, fields["category"])

	code, _ = app.call(t, http.MethodGet, "/api/products/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = app.call(t, http.MethodGet, "/api/products/show-all?limit=500", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = app.call(t, http.MethodGet, "/api/products/show-all?minPrice=cheap", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCartStockScenario(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.register(t, "Admin", adminEmail)
	customerToken := app.register(t, "Jane", "jane@example.com")
	productID := app.createProduct(t, adminToken, 3)

	code, body := app.call(t, http.MethodPost, "/api/cart", customerToken, map[string]any{"productId": productID, "quantity": 2})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(2), data(t, body)["quantity"])

	code, _ = app.call(t, http.MethodPost, "/api/cart", customerToken, map[string]any{"productId": productID, "quantity": 2})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = app.call(t, http.MethodGet, "/api/cart/summary", customerToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), body["summary"].(map[string]any)["totalItems"])

	code, _ = app.call(t, http.MethodDelete, "/api/products/admin/"+productID, adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, body = app.call(t, http.MethodGet, "/api/cart/show-all", customerToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Empty(t, body["data"])

	code, body = app.call(t, http.MethodGet, "/api/cart/summary", customerToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), body["summary"].(map[string]any)["totalItems"])

	code, _ = app.call(t, http.MethodGet, "/api/products/"+productID, "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCategoryDetach(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.register(t, "Admin", adminEmail)

	code, body := app.call(t, http.MethodPost, "/api/category", adminToken, map[string]any{"name": "Root", "slug": "root"})
	require.Equal(t, http.StatusCreated, code, body)
	rootID := data(t, body)["id"].(string)

	code, body = app.call(t, http.MethodPost, "/api/category", adminToken, map[string]any{
		"name":           "Child",
		"slug":           "child",
		"parentCategory": rootID,
	})
	require.Equal(t, http.StatusCreated, code, body)
	childID := data(t, body)["id"].(string)

	code, _ = app.call(t, http.MethodDelete, "/api/category/"+rootID, adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = app.call(t, http.MethodPut, "/api/category/"+rootID, adminToken, map[string]any{"parentCategory": childID})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = app.call(t, http.MethodPut, "/api/category/"+childID, adminToken, map[string]any{"parentCategory": nil})
	require.Equal(t, http.StatusOK, code, body)
	assert.Nil(t, data(t, body)["parentCategory"])

	code, body = app.call(t, http.MethodGet, "/api/category/show-all/child", adminToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, childID, data(t, body)["id"])
}

func TestReviewFlow(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.register(t, "Admin", adminEmail)
	customerToken := app.register(t, "Jane", "jane@example.com")
	productID := app.createProduct(t, adminToken, 10)

	code, body := app.call(t, http.MethodGet, "/api/products/review/"+productID+"/ratings", "", nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, float64(0), data(t, body)["totalReviews"])

	review := map[string]any{"product": productID, "rating": 4, "comment": "Solid sound"}
	code, body = app.call(t, http.MethodPost, "/api/products/review", customerToken, review)
	require.Equal(t, http.StatusCreated, code, body)
	reviewID := data(t, body)["id"].(string)

	code, _ = app.call(t, http.MethodPost, "/api/products/review", customerToken, review)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = app.call(t, http.MethodPut, "/api/products/review/customer/"+reviewID, adminToken, map[string]any{"rating": 1})
	assert.Equal(t, http.StatusForbidden, code)

	code, body = app.call(t, http.MethodGet, "/api/products/review/"+productID+"?sort=-rating", "", nil)
	require.Equal(t, http.StatusOK, code, body)
	pagination := data(t, body)["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["totalReviews"])

	code, _ = app.call(t, http.MethodDelete, "/api/products/review/admin/"+reviewID, adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestOrderFlow(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.register(t, "Admin", adminEmail)
	customerToken := app.register(t, "Jane", "jane@example.com")
	productID := app.createProduct(t, adminToken, 10)

	code, body := app.call(t, http.MethodPost, "/api/orders/customer", customerToken, map[string]any{
		"items":         []map[string]any{{"productId": productID, "quantity": 2, "price": 49.99}},
		"totalAmount":   99.98,
		"paymentMethod": "card",
		"shippingAddress": map[string]any{
			"street": "1 Main St", "city": "Springfield", "state": "IL", "zipCode": "62701", "country": "US",
		},
	})
	require.Equal(t, http.StatusCreated, code, body)
	order := data(t, body)
	orderID := order["id"].(string)
	assert.Equal(t, "Pending", order["status"])
	assert.Equal(t, "Pending", order["paymentStatus"])

	rec := app.request(t, http.MethodGet, "/api/orders/customer/"+orderID+"/qr", customerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	code, _ = app.call(t, http.MethodGet, "/api/orders/customer/"+orderID+"/qr", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	payload, err := qrcode.OrderPayload(orderID)
	require.NoError(t, err)
	code, body = app.call(t, http.MethodPost, "/api/orders/admin/scan", adminToken, map[string]any{"qrData": payload})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, orderID, data(t, body)["id"])

	code, _ = app.call(t, http.MethodPut, "/api/orders/admin/"+orderID, adminToken, map[string]any{"status": "Lost"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = app.call(t, http.MethodPut, "/api/orders/admin/"+orderID, adminToken, map[string]any{"status": "Delivered"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Delivered", data(t, body)["status"])

	code, _ = app.call(t, http.MethodDelete, "/api/orders/admin/"+orderID, customerToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = app.call(t, http.MethodDelete, "/api/orders/admin/"+orderID, adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
}
