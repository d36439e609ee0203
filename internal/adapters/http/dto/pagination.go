package dto

import "github.com/jsamuelsen/articles-service/internal/domain"

// DefaultLimit is the default number of items per page.
const DefaultLimit = 20

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// PageQuery represents limit/offset parameters from the request.
type PageQuery struct {
	// Limit is the maximum number of items to return (default 20, capped at 100).
	Limit int `form:"limit" json:"limit" validate:"gte=0"`

	// Offset is the number of items to skip.
	Offset int `form:"offset" json:"offset" validate:"gte=0"`
}

// GetLimit returns the limit with defaults applied.
func (p *PageQuery) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	if p.Limit > MaxLimit {
		return MaxLimit
	}

	return p.Limit
}

// Page converts the query into a domain page.
func (p *PageQuery) Page() domain.Page {
	return domain.Page{Limit: p.GetLimit(), Offset: p.Offset}
}

// ListResponse is the envelope of every list endpoint.
type ListResponse[T any] struct {
	// Count is the total number of matching items across all pages.
	Count int64 `json:"count"`

	Limit  int `json:"limit"`
	Offset int `json:"offset"`

	// Results is the items for this page.
	Results []T `json:"results"`
}

// NewListResponse wraps one page of items.
func NewListResponse[T any](results []T, count int64, page domain.Page) *ListResponse[T] {
	if results == nil {
		results = []T{}
	}

	return &ListResponse[T]{
		Count:   count,
		Limit:   page.Limit,
		Offset:  page.Offset,
		Results: results,
	}
}

// MapSlice converts items with fn, always returning a non-nil slice.
func MapSlice[S, T any](items []S, fn func(*S) T) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}

	return out
}
