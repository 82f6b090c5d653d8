package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AccountType defines the product type of a bank account.
type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
)

// Account represents a customer's bank account together with the movements
// loaded for the current query window.
type Account struct {
	ID             int64           `json:"id"`
	CustomerID     int64           `json:"customerId"`    // Owned by the customer directory
	AccountNumber  string          `json:"accountNumber"` // Unique, human facing
	AccountType    AccountType     `json:"accountType"`
	InitialBalance decimal.Decimal `json:"initialBalance"` // Opening balance
	ActualBalance  decimal.Decimal `json:"actualBalance"`  // Balance after the latest applied movement
	Status         bool            `json:"status"`         // Active flag
	Movements      []Movement      `json:"movements"`      // No ordering guarantee
}

// SortedMovements returns a copy of the account movements ordered by date,
// oldest first. Movements sharing a date are ordered by ID.
func (a Account) SortedMovements() []Movement {
	sorted := make([]Movement, len(a.Movements))
	copy(sorted, a.Movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// NetMovement sums the signed amounts of every loaded movement.
func (a Account) NetMovement() decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		total = total.Add(m.SignedAmount())
	}
	return total
}
