package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType mirrors the account_type column values.
type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
)

// Account is the row shape of the accounts table.
type Account struct {
	ID             int64           `db:"id"`
	CustomerID     int64           `db:"customer_id"`
	AccountNumber  string          `db:"account_number"`
	AccountType    AccountType     `db:"account_type"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	ActualBalance  decimal.Decimal `db:"actual_balance"`
	Status         bool            `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      *time.Time      `db:"updated_at"` // Nullable
}
