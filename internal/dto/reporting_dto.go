package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/apperrors"
	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
)

// DateLayout is the wire format of report dates.
const DateLayout = "2006-01-02"

// ReportQuery holds the query parameters shared by both report endpoints.
// Paging parameters are parsed separately by the pagination helpers.
type ReportQuery struct {
	StartDate  string `form:"startDate" binding:"required,isodate"`
	EndDate    string `form:"endDate" binding:"required,isodate"`
	CustomerID *int64 `form:"customerId"`
}

// Dates parses StartDate and EndDate as UTC calendar days.
func (q ReportQuery) Dates() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, q.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid startDate %q, expected YYYY-MM-DD", apperrors.ErrValidation, q.StartDate)
	}
	end, err := time.Parse(DateLayout, q.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid endDate %q, expected YYYY-MM-DD", apperrors.ErrValidation, q.EndDate)
	}
	return start, end, nil
}

// PageResponse is the paginated envelope returned by the report endpoints.
type PageResponse[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Size             int   `json:"size"`
	Number           int   `json:"number"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// ToPageResponse converts a domain page to its wire representation.
func ToPageResponse[T any](page domain.Page[T]) PageResponse[T] {
	content := page.Content
	if content == nil {
		content = []T{}
	}
	totalPages := page.TotalPages()
	number := page.Pageable.Page

	return PageResponse[T]{
		Content:          content,
		TotalElements:    page.TotalElements,
		TotalPages:       totalPages,
		Size:             page.Pageable.Size,
		Number:           number,
		NumberOfElements: len(content),
		First:            number == 0,
		Last:             number+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}
