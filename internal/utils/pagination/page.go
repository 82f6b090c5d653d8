package pagination

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/accounts_movements_service/internal/apperrors"
	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
)

// Default paging values used when the caller omits them.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Limits bounds the size of a requested page.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

// DefaultLimits returns the package defaults.
func DefaultLimits() Limits {
	return Limits{DefaultSize: DefaultPageSize, MaxSize: MaxPageSize}
}

// ParsePageRequest parses zero-based page and size query values.
// Empty values fall back to page 0 and the default size; sizes above the
// maximum are clamped.
func ParsePageRequest(pageStr, sizeStr string, limits Limits) (domain.PageRequest, error) {
	if limits.DefaultSize <= 0 {
		limits.DefaultSize = DefaultPageSize
	}
	if limits.MaxSize <= 0 {
		limits.MaxSize = MaxPageSize
	}

	req := domain.PageRequest{Page: 0, Size: limits.DefaultSize}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return domain.PageRequest{}, fmt.Errorf("%w: invalid page value %q: %v", apperrors.ErrValidation, pageStr, err)
		}
		if page < 0 {
			return domain.PageRequest{}, fmt.Errorf("%w: page must not be negative, got %d", apperrors.ErrValidation, page)
		}
		req.Page = page
	}

	if sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return domain.PageRequest{}, fmt.Errorf("%w: invalid size value %q: %v", apperrors.ErrValidation, sizeStr, err)
		}
		if size < 1 {
			return domain.PageRequest{}, fmt.Errorf("%w: size must be at least 1, got %d", apperrors.ErrValidation, size)
		}
		req.Size = size
	}

	if req.Size > limits.MaxSize {
		req.Size = limits.MaxSize
	}

	return req, nil
}
