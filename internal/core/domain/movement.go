package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType indicates whether a movement adds money to or removes money from an account.
type MovementType string

const (
	Deposit    MovementType = "DEPOSIT"
	Withdrawal MovementType = "WITHDRAWAL"
)

// Movement is a single deposit or withdrawal applied to an account.
type Movement struct {
	ID           int64               `json:"id"`
	AccountID    int64               `json:"accountId"`
	Date         time.Time           `json:"date"`
	MovementType MovementType        `json:"movementType"`
	Amount       decimal.Decimal     `json:"amount"`  // Never negative; the sign comes from MovementType
	Balance      decimal.NullDecimal `json:"balance"` // Running balance snapshot, when recorded
}

// SignedAmount returns the amount negated for withdrawals.
func (m Movement) SignedAmount() decimal.Decimal {
	if m.MovementType == Withdrawal {
		return m.Amount.Neg()
	}
	return m.Amount
}
