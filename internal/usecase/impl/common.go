// Package impl contains the implementation of the application's business logic.
package impl

import (
	"slices"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

// Route defaults for page sizes.
const (
	defaultPageLimit      = 10
	defaultCartPageLimit  = 20
	defaultAnalyticsLimit = 50
	maxPageLimit          = 100
)

// normalizePage fills zero values with defaults and clamps the limit.
func normalizePage(q usecase.PageQuery, defaultLimit int) usecase.PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}

	return q
}

func toPagination(q usecase.PageQuery) repository.Pagination {
	return repository.Pagination{Page: q.Page, Limit: q.Limit}
}

// resolveSort validates sortBy against allowed, falling back to the defaults when empty.
func resolveSort(sortBy, sortOrder string, allowed []string, fallback repository.Sort) (repository.Sort, error) {
	s := fallback
	if sortBy != "" {
		if !slices.Contains(allowed, sortBy) {
			return s, domainerrors.NewFieldError("sortBy", "must be one of "+strings.Join(allowed, ", "))
		}
		s.Field = sortBy
	}

	switch strings.ToLower(sortOrder) {
	case "":
	case usecase.SortAsc:
		s.Desc = false
	case usecase.SortDesc:
		s.Desc = true
	default:
		return s, domainerrors.NewFieldError("sortOrder", "must be asc or desc")
	}

	return s, nil
}

// roundMoney rounds to cents.
func roundMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func ptr[T any](v T) *T {
	return &v
}
