package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	c, rec := newTestContext()
	require.NoError(t, Success(c, http.StatusCreated, "Created", map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(http.StatusCreated), body["statusCode"])
	assert.Equal(t, "Created", body["message"])
	assert.Equal(t, "2024-05-01T12:00:00Z", body["timestamp"])
	assert.Equal(t, "req-1", body["requestId"])
	assert.NotContains(t, body, "errors")
	assert.NotContains(t, body, "pagination")
}

func TestPaginated(t *testing.T) {
	c, rec := newTestContext()
	page := usecase.NewPageInfo(usecase.PageQuery{Page: 2, Limit: 10}, 25)

	require.NoError(t, Paginated(c, "", []int{1, 2}, page))

	body := decode(t, rec)
	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(10), pagination["limit"])
	assert.Equal(t, float64(25), pagination["total"])
	assert.Equal(t, float64(3), pagination["totalPage"])
}

func TestPaginated_EmptyListKeepsData(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Paginated(c, "", []int{}, usecase.PageInfo{Page: 1, Limit: 10}))

	body := decode(t, rec)
	assert.Equal(t, []any{}, body["data"])
}

func TestError(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, http.StatusBadRequest, "", []domainerrors.FieldError{{Field: "name", Message: "is required"}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Bad Request", body["message"])
	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].(map[string]any)["field"])
}

func TestAttachment(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Attachment(c, "products.xlsx", "application/octet-stream", []byte("data")))

	assert.Equal(t, `attachment; filename="products.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "data", rec.Body.String())
}
