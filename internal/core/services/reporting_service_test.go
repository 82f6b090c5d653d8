package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/apperrors"
	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
	portssvc "github.com/SscSPs/accounts_movements_service/internal/core/ports/services"
	"github.com/SscSPs/accounts_movements_service/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	today     = time.Date(2024, 6, 30, 15, 4, 5, 0, time.UTC)
	rangeFrom = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rangeTo   = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	endOfTo   = time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC)
	firstPage = domain.PageRequest{Page: 0, Size: 20}
	noFilter  *int64
)

func int64Ptr(v int64) *int64 { return &v }

func day(d int) time.Time {
	return time.Date(2024, 6, d, 10, 0, 0, 0, time.UTC)
}

func deposit(id int64, d int, amount string) domain.Movement {
	return domain.Movement{ID: id, Date: day(d), MovementType: domain.Deposit, Amount: decimal.RequireFromString(amount)}
}

func withdrawal(id int64, d int, amount string) domain.Movement {
	return domain.Movement{ID: id, Date: day(d), MovementType: domain.Withdrawal, Amount: decimal.RequireFromString(amount)}
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockAccountReader
	mockCustomers *MockCustomerGateway
	observer      *recordingObserver
	service       portssvc.ReportingService
	ctx           context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountReader)
	suite.mockCustomers = new(MockCustomerGateway)
	suite.observer = newRecordingObserver()
	suite.ctx = context.Background()
	suite.service = services.NewReportingService(
		suite.mockRepo,
		suite.mockCustomers,
		services.WithClock(func() time.Time { return today }),
		services.WithReportObserver(suite.observer),
	)
}

func (suite *ReportingServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCustomers.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestStatement_StartAfterEnd_StoreNotTouched() {
	_, err := suite.service.AccountStatementReport(suite.ctx, firstPage, int64Ptr(1), rangeTo, rangeFrom)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidRange)
	suite.Contains(err.Error(), "start date cannot be after end date")
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountsInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockCustomers.AssertNotCalled(suite.T(), "GetCustomer", mock.Anything, mock.Anything)
	suite.Equal([]string{"statement:invalid_range"}, suite.observer.outcomes)
}

func (suite *ReportingServiceTestSuite) TestPlain_StartInFuture_StoreNotTouched() {
	future := today.AddDate(0, 0, 1)

	_, err := suite.service.PlainReport(suite.ctx, firstPage, noFilter, future, future.AddDate(0, 0, 5))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidRange)
	suite.Contains(err.Error(), "start date cannot be in the future")
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountsInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestPlain_DepositThenWithdrawal() {
	customerID := int64Ptr(7)
	account := domain.Account{
		ID: 1, CustomerID: 7, AccountNumber: "478758", AccountType: domain.Savings,
		InitialBalance: decimal.NewFromInt(2000), ActualBalance: decimal.NewFromInt(2050), Status: true,
		Movements: []domain.Movement{withdrawal(11, 5, "50"), deposit(10, 2, "100")},
	}

	suite.mockCustomers.On("GetCustomer", suite.ctx, int64(7)).Return(&domain.Customer{ID: 7, Name: "Jose Lema"}, nil).Once()
	suite.mockRepo.On("FindAccountsInRange", suite.ctx, firstPage, customerID, rangeFrom, endOfTo).
		Return(domain.NewPage([]domain.Account{account}, firstPage, 1), nil).Once()

	page, err := suite.service.PlainReport(suite.ctx, firstPage, customerID, rangeFrom, rangeTo)

	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 1)
	row := page.Content[0]
	suite.Equal("6/2/2024", row.Fecha)
	suite.Equal("Jose Lema", row.Cliente)
	suite.Equal("478758", row.NumeroCuenta)
	suite.Equal("SAVINGS", row.Tipo)
	suite.True(row.Estado)
	suite.Equal("2050", row.SaldoInicial.String())
	suite.Equal("-50", row.Movimiento.String())
	suite.Equal("50", row.SaldoDisponible.String())
	suite.Equal(int64(1), page.TotalElements)
	suite.mockCustomers.AssertNotCalled(suite.T(), "GetCustomers", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestStatement_EmptyFilteredPage() {
	customerID := int64Ptr(3)
	suite.mockCustomers.On("GetCustomer", suite.ctx, int64(3)).Return(&domain.Customer{ID: 3, Name: "Marianela"}, nil).Once()
	suite.mockRepo.On("FindAccountsInRange", suite.ctx, firstPage, customerID, rangeFrom, endOfTo).
		Return(domain.EmptyPage[domain.Account](firstPage), nil).Once()

	page, err := suite.service.AccountStatementReport(suite.ctx, firstPage, customerID, rangeFrom, rangeTo)

	suite.Require().NoError(err)
	suite.NotNil(page.Content)
	suite.Empty(page.Content)
	suite.Equal(int64(0), page.TotalElements)
	suite.Equal(firstPage, page.Pageable)
}

func (suite *ReportingServiceTestSuite) TestStatement_EmptyUnfilteredPage_SkipsCustomerLookup() {
	suite.mockRepo.On("FindAccountsInRange", suite.ctx, firstPage, noFilter, rangeFrom, endOfTo).
		Return(domain.EmptyPage[domain.Account](firstPage), nil).Once()

	page, err := suite.service.AccountStatementReport(suite.ctx, firstPage, noFilter, rangeFrom, rangeTo)

	suite.Require().NoError(err)
	suite.Empty(page.Content)
	suite.mockCustomers.AssertNotCalled(suite.T(), "GetCustomers", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestPageBeyondLastMatch_ReportsZeroTotal() {
	pastEnd := domain.PageRequest{Page: 5, Size: 20}
	suite.mockRepo.On("FindAccountsInRange", suite.ctx, pastEnd, noFilter, rangeFrom, endOfTo).
		Return(domain.NewPage([]domain.Account{}, pastEnd, 3), nil).Twice()

	statement, err := suite.service.AccountStatementReport(suite.ctx, pastEnd, noFilter, rangeFrom, rangeTo)
	suite.Require().NoError(err)
	suite.Empty(statement.Content)
	suite.Equal(int64(0), statement.TotalElements)
	suite.Equal(pastEnd, statement.Pageable)

	plain, err := suite.service.PlainReport(suite.ctx, pastEnd, noFilter, rangeFrom, rangeTo)
	suite.Require().NoError(err)
	suite.Empty(plain.Content)
	suite.Equal(int64(0), plain.TotalElements)
	suite.Equal(pastEnd, plain.Pageable)
	suite.mockCustomers.AssertNotCalled(suite.T(), "GetCustomers", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestUnresolvedCustomerExcluded() {
	accounts := []domain.Account{
		{ID: 1, CustomerID: 1, AccountNumber: "100", AccountType: domain.Checking, Movements: []domain.Movement{deposit(1, 3, "10")}},
		{ID: 2, CustomerID: 2, AccountNumber: "200", AccountType: domain.Savings, Movements: []domain.Movement{deposit(2, 4, "20")}},
		{ID: 3, CustomerID: 1, AccountNumber: "300", AccountType: domain.Savings, Movements: []domain.Movement{deposit(3, 5, "30")}},
	}
	suite.mockRepo.On("FindAccountsInRange", suite.ctx, firstPage, noFilter, rangeFrom, endOfTo).
		Return(domain.NewPage(accounts, firstPage, 3), nil).Twice()
	suite.mockCustomers.On("GetCustomers", suite.ctx, []int64{1, 2}).
		Return([]domain.Customer{{ID: 1, Name: "Jose Lema"}}, nil).Twice()

	statement, err := suite.service.AccountStatementReport(suite.ctx, firstPage, noFilter, rangeFrom, rangeTo)
	suite.Require().NoError(err)
	suite.Len(statement.Content, 2)
	suite.Equal(int64(3), statement.TotalElements, "statement total keeps the account match count")
	for _, r := range statement.Content {
		suite.Equal("Jose Lema", r.Customer.Name)
	}

	plain, err := suite.service.PlainReport(suite.ctx, firstPage, noFilter, rangeFrom, rangeTo)
	suite.Require().NoError(err)
	suite.Len(plain.Content, 2)
	suite.Equal(int64(2), plain.TotalElements, "plain total counts emitted rows")

	suite.Equal(1, suite.observer.skipped["statement:customer_unresolved"])
	suite.Equal(1, suite.observer.skipped["plain:customer_unresolved"])
}

func (suite *ReportingServiceTestSuite) TestZeroMovementAccount_OnlyExcludedFromPlain() {
	customerID := int64Ptr(4)
	account := domain.Account{ID: 9, CustomerID: 4, AccountNumber: "495878", AccountType: domain.Savings}
	suite.mockCustomers.On("GetCustomer", suite.ctx, int64(4)).Return(&domain.Customer{ID: 4, Name: "Juan Osorio"}, nil).Twice()
	suite.mockRepo.On("FindAccountsInRange", suite.ctx, firstPage, customerID, rangeFrom, endOfTo).
		Return(domain.NewPage([]domain.Account{account}, firstPage, 1), nil).Twice()

	statement, err := suite.service.AccountStatementReport(suite.ctx, firstPage, customerID, rangeFrom, rangeTo)
	suite.Require().NoError(err)
	suite.Require().Len(statement.Content, 1)
	suite.Empty(statement.Content[0].Customer.Accounts[0].Movements)

	plain, err := suite.service.PlainReport(suite.ctx, firstPage, customerID, rangeFrom, rangeTo)
	suite.Require().NoError(err)
	suite.Empty(plain.Content)
	suite.Equal(int64(0), plain.TotalElements)
	suite.Equal(1, suite.observer.skipped["plain:no_movements"])
}

func (suite *ReportingServiceTestSuite) TestStatementMovementsSumToPlainBalance() {
	accounts := []domain.Account{
		{ID: 1, CustomerID: 5, AccountNumber: "225487", AccountType: domain.Checking,
			Movements: []domain.Movement{deposit(1, 1, "600"), withdrawal(2, 8, "540.50"), deposit(3, 8, "0.75")}},
		{ID: 2, CustomerID: 5, AccountNumber: "496825", AccountType: domain.Savings,
			Movements: []domain.Movement{withdrawal(4, 12, "75")}},
	}
	suite.mockRepo.On("FindAccountsInRange", suite.ctx, firstPage, noFilter, rangeFrom, endOfTo).
		Return(domain.NewPage(accounts, firstPage, 2), nil).Twice()
	suite.mockCustomers.On("GetCustomers", suite.ctx, []int64{5}).
		Return([]domain.Customer{{ID: 5, Name: "Marianela Montalvo"}}, nil).Twice()

	statement, err := suite.service.AccountStatementReport(suite.ctx, firstPage, noFilter, rangeFrom, rangeTo)
	suite.Require().NoError(err)
	plain, err := suite.service.PlainReport(suite.ctx, firstPage, noFilter, rangeFrom, rangeTo)
	suite.Require().NoError(err)

	suite.Require().Len(statement.Content, 2)
	suite.Require().Len(plain.Content, 2)
	for i, report := range statement.Content {
		sum := decimal.Zero
		for _, m := range report.Customer.Accounts[0].Movements {
			if m.MovementType == domain.Withdrawal {
				sum = sum.Sub(m.Amount)
			} else {
				sum = sum.Add(m.Amount)
			}
		}
		suite.True(sum.Equal(plain.Content[i].SaldoDisponible), "account %d: %s != %s", i, sum, plain.Content[i].SaldoDisponible)
	}
	suite.Equal("60.25", plain.Content[0].SaldoDisponible.String())
	suite.Equal("0.75", plain.Content[0].Movimiento.String())
}

func (suite *ReportingServiceTestSuite) TestCustomerNotFound() {
	suite.mockCustomers.On("GetCustomer", suite.ctx, int64(99)).
		Return(nil, fmt.Errorf("customer 99: %w", apperrors.ErrCustomerNotFound)).Once()

	_, err := suite.service.AccountStatementReport(suite.ctx, firstPage, int64Ptr(99), rangeFrom, rangeTo)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCustomerNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountsInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.Equal([]string{"statement:customer_not_found"}, suite.observer.outcomes)
}

func (suite *ReportingServiceTestSuite) TestCustomerDirectoryUnavailable() {
	accounts := []domain.Account{{ID: 1, CustomerID: 1, Movements: []domain.Movement{deposit(1, 1, "1")}}}
	suite.mockRepo.On("FindAccountsInRange", suite.ctx, firstPage, noFilter, rangeFrom, endOfTo).
		Return(domain.NewPage(accounts, firstPage, 1), nil).Once()
	suite.mockCustomers.On("GetCustomers", suite.ctx, []int64{1}).
		Return(nil, fmt.Errorf("%w: connection refused", apperrors.ErrUpstreamUnavailable)).Once()

	_, err := suite.service.PlainReport(suite.ctx, firstPage, noFilter, rangeFrom, rangeTo)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.Equal([]string{"plain:upstream_unavailable"}, suite.observer.outcomes)
}

func (suite *ReportingServiceTestSuite) TestRepositoryError() {
	repoErr := apperrors.NewAppError(500, "query failed", fmt.Errorf("boom"))
	suite.mockRepo.On("FindAccountsInRange", suite.ctx, firstPage, noFilter, rangeFrom, endOfTo).
		Return(domain.Page[domain.Account]{}, repoErr).Once()

	_, err := suite.service.AccountStatementReport(suite.ctx, firstPage, noFilter, rangeFrom, rangeTo)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.Equal([]string{"statement:error"}, suite.observer.outcomes)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
