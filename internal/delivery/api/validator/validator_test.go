package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleItem struct {
	ProductID string `json:"productId" validate:"required,objectid"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

type sampleRequest struct {
	Slug  string       `json:"slug" validate:"required,slug"`
	Email string       `json:"email" validate:"omitempty,email"`
	Items []sampleItem `json:"items" validate:"min=1,dive"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Slug:  "kitchen-tools",
		Items: []sampleItem{{ProductID: "507f1f77bcf86cd799439011", Quantity: 2}},
	})
	assert.NoError(t, err)
}

func TestCustomValidator_FieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Slug:  "Kitchen Tools",
		Email: "not-an-email",
		Items: []sampleItem{{ProductID: "123", Quantity: 0}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	byField := map[string]string{}
	for _, f := range validationErr.Fields() {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "may only contain lowercase letters, digits and hyphens", byField["slug"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be a valid id", byField["items[0].productId"])
	assert.Equal(t, "must be at least 1", byField["items[0].quantity"])
}

func TestCustomValidator_EmptySlice(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Slug: "ok"})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Fields(), 1)
	assert.Equal(t, "items", validationErr.Fields()[0].Field)
	assert.Equal(t, "must contain at least 1 entries", validationErr.Fields()[0].Message)
}
