package gateways

import (
	"context"

	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
)

// CustomerGateway resolves customer identity from the customer directory.
type CustomerGateway interface {
	// GetCustomer returns apperrors.ErrCustomerNotFound when the directory has no
	// such customer and apperrors.ErrUpstreamUnavailable for any other failure.
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)

	// GetCustomers resolves as many of ids as the directory knows about. Unknown
	// ids are omitted from the result without an error.
	GetCustomers(ctx context.Context, ids []int64) ([]domain.Customer, error)
}
