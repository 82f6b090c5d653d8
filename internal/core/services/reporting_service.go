package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/apperrors"
	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
	"github.com/SscSPs/accounts_movements_service/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/accounts_movements_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounts_movements_service/internal/core/ports/services"
)

// Report kinds used as metric labels.
const (
	ReportStatement = "statement"
	ReportPlain     = "plain"
)

// Reasons an account is left out of a report.
const (
	SkipCustomerUnresolved = "customer_unresolved"
	SkipNoMovements        = "no_movements"
)

// ReportObserver receives report-level measurements.
type ReportObserver interface {
	ObserveReport(report, outcome string, elapsed time.Duration)
	AccountSkipped(report, reason string)
}

type nopObserver struct{}

func (nopObserver) ObserveReport(string, string, time.Duration) {}
func (nopObserver) AccountSkipped(string, string)               {}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	customers   gateways.CustomerGateway
	now         func() time.Time
	observer    ReportObserver
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithClock overrides the source of "today" used for date range validation.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// WithReportObserver sets the observer notified about every report generation.
func WithReportObserver(observer ReportObserver) ReportingServiceOption {
	return func(s *reportingService) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(accountRepo portsrepo.AccountReader, customers gateways.CustomerGateway, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo: accountRepo,
		customers:   customers,
		now:         time.Now,
		observer:    nopObserver{},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// AccountStatementReport builds a nested statement per account having movements in [start, end].
func (s *reportingService) AccountStatementReport(ctx context.Context, page domain.PageRequest, customerID *int64, start, end time.Time) (result domain.Page[domain.AccountStatementReport], err error) {
	defer s.observe(ReportStatement, time.Now(), &err)

	accounts, resolved, err := s.resolveAccounts(ctx, ReportStatement, page, customerID, start, end)
	if err != nil {
		return domain.Page[domain.AccountStatementReport]{}, err
	}

	reports := make([]domain.AccountStatementReport, 0, len(resolved))
	for _, r := range resolved {
		reports = append(reports, BuildAccountStatementReport(r.customer, r.account))
	}

	s.LogInfo(ctx, "Account statement report generated successfully",
		slog.Int("report_count", len(reports)),
		slog.Int64("total_elements", accounts.TotalElements))
	return domain.NewPage(reports, page, accounts.TotalElements), nil
}

// PlainReport builds one flat summary row per account having movements in [start, end].
func (s *reportingService) PlainReport(ctx context.Context, page domain.PageRequest, customerID *int64, start, end time.Time) (result domain.Page[domain.PlainMovementReport], err error) {
	defer s.observe(ReportPlain, time.Now(), &err)

	_, resolved, err := s.resolveAccounts(ctx, ReportPlain, page, customerID, start, end)
	if err != nil {
		return domain.Page[domain.PlainMovementReport]{}, err
	}

	rows := make([]domain.PlainMovementReport, 0, len(resolved))
	for _, r := range resolved {
		row, ok := BuildPlainMovementReport(r.customer, r.account)
		if !ok {
			s.observer.AccountSkipped(ReportPlain, SkipNoMovements)
			s.LogDebug(ctx, "Skipping account without movements",
				slog.String("account_number", r.account.AccountNumber))
			continue
		}
		rows = append(rows, row)
	}

	s.LogInfo(ctx, "Plain movement report generated successfully",
		slog.Int("row_count", len(rows)))
	return domain.NewPage(rows, page, int64(len(rows))), nil
}

// resolveAccounts validates the window, loads the page of matching accounts and
// pairs each account with its customer. Accounts whose customer cannot be
// resolved are left out of the returned pairs but still counted in the page.
func (s *reportingService) resolveAccounts(ctx context.Context, report string, page domain.PageRequest, customerID *int64, start, end time.Time) (domain.Page[domain.Account], []resolvedAccount, error) {
	if err := ValidateDateRange(ctx, start, end, s.now()); err != nil {
		s.LogWarn(ctx, "Rejected report date range",
			slog.String("error", err.Error()),
			slog.String("start_date", start.Format(dateLayout)),
			slog.String("end_date", end.Format(dateLayout)))
		return domain.Page[domain.Account]{}, nil, err
	}
	from, to := DayBounds(start, end)

	customersByID := make(map[int64]domain.Customer)

	if customerID != nil {
		customer, err := s.customers.GetCustomer(ctx, *customerID)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve customer", slog.Int64("customer_id", *customerID))
			return domain.Page[domain.Account]{}, nil, fmt.Errorf("failed to resolve customer %d: %w", *customerID, err)
		}
		customersByID[customer.ID] = *customer
	}

	accounts, err := s.accountRepo.FindAccountsInRange(ctx, page, customerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve accounts for report",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return domain.Page[domain.Account]{}, nil, fmt.Errorf("failed to retrieve accounts: %w", err)
	}

	if len(accounts.Content) == 0 {
		s.LogWarn(ctx, "No accounts with movements found for the requested range",
			slog.String("report", report),
			slog.String("from", from.Format(dateLayout)),
			slog.String("to", to.Format(dateLayout)),
			slog.Int64("store_total", accounts.TotalElements))
		return domain.EmptyPage[domain.Account](page), nil, nil
	}

	if customerID == nil {
		customers, err := s.customers.GetCustomers(ctx, distinctCustomerIDs(accounts.Content))
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve customers for report")
			return domain.Page[domain.Account]{}, nil, fmt.Errorf("failed to resolve customers: %w", err)
		}
		if len(customers) == 0 {
			s.LogWarn(ctx, "No customers found for the accounts in the requested range")
		}
		for _, c := range customers {
			customersByID[c.ID] = c
		}
	}

	resolved := make([]resolvedAccount, 0, len(accounts.Content))
	for _, account := range accounts.Content {
		customer, ok := customersByID[account.CustomerID]
		if !ok {
			s.observer.AccountSkipped(report, SkipCustomerUnresolved)
			s.LogWarn(ctx, "Customer not found for account, skipping",
				slog.Int64("customer_id", account.CustomerID),
				slog.String("account_number", account.AccountNumber))
			continue
		}
		resolved = append(resolved, resolvedAccount{account: account, customer: customer})
	}

	return accounts, resolved, nil
}

func (s *reportingService) observe(report string, started time.Time, err *error) {
	s.observer.ObserveReport(report, outcomeOf(*err), time.Since(started))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, apperrors.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, apperrors.ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "error"
	}
}

// distinctCustomerIDs returns the customer ids of accounts in first-seen order.
func distinctCustomerIDs(accounts []domain.Account) []int64 {
	seen := make(map[int64]struct{}, len(accounts))
	ids := make([]int64, 0, len(accounts))
	for _, a := range accounts {
		if _, ok := seen[a.CustomerID]; ok {
			continue
		}
		seen[a.CustomerID] = struct{}{}
		ids = append(ids, a.CustomerID)
	}
	return ids
}
