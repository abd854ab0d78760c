package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func uniqueIndexColumns(t *testing.T, m any, name string) []string {
	t.Helper()

	s, err := schema.Parse(m, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, idx := range s.ParseIndexes() {
		if idx.Name != name {
			continue
		}
		assert.Equal(t, "UNIQUE", idx.Class)

		columns := make([]string, 0, len(idx.Fields))
		for _, f := range idx.Fields {
			columns = append(columns, f.DBName)
		}

		return columns
	}
	require.Failf(t, "index not declared", "%s on %T", name, m)

	return nil
}

func TestOneRowPerUserAndProduct(t *testing.T) {
	assert.ElementsMatch(t, []string{"user_id", "product_id"},
		uniqueIndexColumns(t, &ReviewModel{}, "idx_reviews_user_product"))
	assert.ElementsMatch(t, []string{"user_id", "product_id"},
		uniqueIndexColumns(t, &CartItemModel{}, "idx_cart_items_user_product"))
}

func TestIsActiveHasNoColumnDefault(t *testing.T) {
	for _, m := range []any{&ProductModel{}, &CategoryModel{}} {
		s, err := schema.Parse(m, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		field := s.LookUpField("is_active")
		require.NotNil(t, field, "%T", m)
		assert.False(t, field.HasDefaultValue, "%T", m)
		assert.True(t, field.NotNull, "%T", m)
	}
}
