package services

import (
	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
)

// plainDateLayout renders dates as month/day/year without padding.
const plainDateLayout = "1/2/2006"

// BuildPlainMovementReport flattens an account's movements into a single summary row.
// It reports false when the account has no movements.
//
// The row carries the earliest movement date, the signed amount of the latest
// movement and the signed sum of all movements. saldoInicial is taken from the
// account's actual balance.
func BuildPlainMovementReport(customer domain.Customer, account domain.Account) (domain.PlainMovementReport, bool) {
	if len(account.Movements) == 0 {
		return domain.PlainMovementReport{}, false
	}

	sorted := account.SortedMovements()
	first, last := sorted[0], sorted[len(sorted)-1]

	return domain.PlainMovementReport{
		Fecha:           first.Date.Format(plainDateLayout),
		Cliente:         customer.Name,
		NumeroCuenta:    account.AccountNumber,
		Tipo:            string(account.AccountType),
		SaldoInicial:    account.ActualBalance,
		Estado:          account.Status,
		Movimiento:      last.SignedAmount(),
		SaldoDisponible: account.NetMovement(),
	}, true
}
