// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// PageQuery is the page/limit pair every listing accepts. Zero values take the route default.
type PageQuery struct {
	Page  int
	Limit int
}

// PageInfo describes one page of a listing.
type PageInfo struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	TotalPage int   `json:"totalPage"`
}

// NewPageInfo computes the page block for a result of total rows.
func NewPageInfo(q PageQuery, total int64) PageInfo {
	info := PageInfo{Page: q.Page, Limit: q.Limit, Total: total}
	if q.Limit > 0 {
		info.TotalPage = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}

	return info
}

// Sort directions accepted by listing queries.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)
