package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatementReport is the nested statement for a single account, keyed by its customer.
type AccountStatementReport struct {
	Customer CustomerReport `json:"customer"`
}

// CustomerReport groups the statement accounts of one customer.
type CustomerReport struct {
	Name     string                           `json:"name"`
	Accounts []CustomerAccountStatementReport `json:"accounts"`
}

// CustomerAccountStatementReport describes one account inside a statement.
type CustomerAccountStatementReport struct {
	Type           AccountType                      `json:"type"`
	ActualBalance  decimal.Decimal                  `json:"actualBalance"`
	InitialBalance decimal.Decimal                  `json:"initialBalance"`
	Number         string                           `json:"number"`
	Movements      []MovementAccountStatementReport `json:"movements"`
}

// MovementAccountStatementReport is one movement line of a statement.
type MovementAccountStatementReport struct {
	Date         time.Time           `json:"date"`
	Balance      decimal.NullDecimal `json:"balance"`
	Amount       decimal.Decimal     `json:"amount"`
	MovementType MovementType        `json:"movementType"`
}

// PlainMovementReport is the flattened one-row summary of an account's movements.
// Field names follow the published report contract.
type PlainMovementReport struct {
	Fecha           string          `json:"fecha"`
	Cliente         string          `json:"cliente"`
	NumeroCuenta    string          `json:"numeroCuenta"`
	Tipo            string          `json:"tipo"`
	SaldoInicial    decimal.Decimal `json:"saldoInicial"`
	Estado          bool            `json:"estado"`
	Movimiento      decimal.Decimal `json:"movimiento"`
	SaldoDisponible decimal.Decimal `json:"saldoDisponible"`
}
