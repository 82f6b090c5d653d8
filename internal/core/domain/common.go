package domain

// PageRequest identifies a zero-based page of a given size.
type PageRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Offset returns the number of rows to skip for the page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is a slice of results plus the pagination metadata that produced it.
//
// TotalElements is whatever the producer reports; it is not required to be
// consistent with len(Content).
type Page[T any] struct {
	Content       []T         `json:"content"`
	Pageable      PageRequest `json:"pageable"`
	TotalElements int64       `json:"totalElements"`
}

// NewPage builds a page, normalising a nil content slice to an empty one.
func NewPage[T any](content []T, pageable PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{Content: content, Pageable: pageable, TotalElements: total}
}

// EmptyPage returns a page with no content and a zero total.
func EmptyPage[T any](pageable PageRequest) Page[T] {
	return NewPage[T](nil, pageable, 0)
}

// TotalPages returns the number of pages implied by TotalElements.
func (p Page[T]) TotalPages() int {
	if p.Pageable.Size <= 0 {
		return 1
	}
	return int((p.TotalElements + int64(p.Pageable.Size) - 1) / int64(p.Pageable.Size))
}
