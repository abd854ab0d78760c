package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Offset(t *testing.T) {
	tests := []struct {
		name string
		page Pagination
		want int
	}{
		{"first page", Pagination{Page: 1, Limit: 10}, 0},
		{"third page", Pagination{Page: 3, Limit: 20}, 40},
		{"zero page treated as first", Pagination{Page: 0, Limit: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Offset())
		})
	}
}
