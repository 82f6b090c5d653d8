package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
)

// AccountReader defines the read-only account queries used by reporting.
type AccountReader interface {
	// FindAccountsInRange returns a page of accounts having at least one movement
	// dated within [from, to]. A nil customerID matches every customer.
	// Each account carries only the movements dated within the window, and
	// TotalElements counts matching accounts.
	FindAccountsInRange(ctx context.Context, page domain.PageRequest, customerID *int64, from, to time.Time) (domain.Page[domain.Account], error)
}
