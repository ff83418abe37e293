package domain

import "math"

// Pagination defaults.
const (
	DefaultPage     = 0
	DefaultPageSize = 50
	MaxPageSize     = 1000
)

// PageRequest selects a zero-based page of a given size.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest clamps page and size to usable values.
func NewPageRequest(page, size int) PageRequest {
	if page < 0 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageRequest{Page: page, Size: size}
}

// Offset is the number of rows skipped before this page. It saturates so that
// Offset()+Size never overflows; such a page is past any stored row.
func (r PageRequest) Offset() int {
	if r.Size > 0 && r.Page > (math.MaxInt-r.Size)/r.Size {
		return math.MaxInt - r.Size
	}
	return r.Page * r.Size
}

// Page is a store-level slice of results.
type Page[T any] struct {
	Items         []T
	PageNumber    int
	PageSize      int
	TotalPages    int
	TotalElements int64
}

// NewPage builds a Page for items fetched with req out of total rows.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Items:         items,
		PageNumber:    req.Page,
		PageSize:      req.Size,
		TotalPages:    pages,
		TotalElements: total,
	}
}

// PageEnvelope is the wire-level pagination wrapper.
type PageEnvelope[T any] struct {
	Content       []T   `json:"content"`
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}
