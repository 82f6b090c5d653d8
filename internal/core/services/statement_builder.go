package services

import (
	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
)

// resolvedAccount pairs an account with the customer that owns it.
type resolvedAccount struct {
	account  domain.Account
	customer domain.Customer
}

// BuildAccountStatementReport renders one account as a nested statement of its customer.
// Movements are listed oldest first.
func BuildAccountStatementReport(customer domain.Customer, account domain.Account) domain.AccountStatementReport {
	sorted := account.SortedMovements()
	movements := make([]domain.MovementAccountStatementReport, 0, len(sorted))
	for _, m := range sorted {
		movements = append(movements, domain.MovementAccountStatementReport{
			Date:         m.Date,
			Balance:      m.Balance,
			Amount:       m.Amount,
			MovementType: m.MovementType,
		})
	}

	return domain.AccountStatementReport{
		Customer: domain.CustomerReport{
			Name: customer.Name,
			Accounts: []domain.CustomerAccountStatementReport{{
				Type:           account.AccountType,
				ActualBalance:  account.ActualBalance,
				InitialBalance: account.InitialBalance,
				Number:         account.AccountNumber,
				Movements:      movements,
			}},
		},
	}
}
