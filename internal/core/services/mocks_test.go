package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockAccountReader is a mock type for the AccountReader interface
type MockAccountReader struct {
	mock.Mock
}

func (m *MockAccountReader) FindAccountsInRange(ctx context.Context, page domain.PageRequest, customerID *int64, from, to time.Time) (domain.Page[domain.Account], error) {
	args := m.Called(ctx, page, customerID, from, to)
	return args.Get(0).(domain.Page[domain.Account]), args.Error(1)
}

// MockCustomerGateway is a mock type for the CustomerGateway interface
type MockCustomerGateway struct {
	mock.Mock
}

func (m *MockCustomerGateway) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerGateway) GetCustomers(ctx context.Context, ids []int64) ([]domain.Customer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// recordingObserver keeps every observation in memory.
type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
	skipped  map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{skipped: make(map[string]int)}
}

func (o *recordingObserver) ObserveReport(report, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, report+":"+outcome)
}

func (o *recordingObserver) AccountSkipped(report, reason string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.skipped[report+":"+reason]++
}
