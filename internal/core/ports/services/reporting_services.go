package services

import (
	"context"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
)

// ReportingService defines operations for generating account statement reports
type ReportingService interface {
	// AccountStatementReport builds one nested statement per account with movements in [start, end].
	// TotalElements is the account match count, so it may exceed len(Content) when
	// some customers could not be resolved.
	AccountStatementReport(ctx context.Context, page domain.PageRequest, customerID *int64, start, end time.Time) (domain.Page[domain.AccountStatementReport], error)

	// PlainReport builds one flat summary row per account with movements in [start, end].
	PlainReport(ctx context.Context, page domain.PageRequest, customerID *int64, start, end time.Time) (domain.Page[domain.PlainMovementReport], error)
}
