package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType mirrors the movement_type column values.
type MovementType string

const (
	Deposit    MovementType = "DEPOSIT"
	Withdrawal MovementType = "WITHDRAWAL"
)

// Movement is the row shape of the movements table.
type Movement struct {
	ID           int64               `db:"id"`
	AccountID    int64               `db:"account_id"`
	Date         time.Time           `db:"date"`
	MovementType MovementType        `db:"movement_type"`
	Amount       decimal.Decimal     `db:"amount"`
	Balance      decimal.NullDecimal `db:"balance"` // Nullable
}
