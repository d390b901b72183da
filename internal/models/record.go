package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Decode errors. Rows failing these checks are discarded by the
// decoder boundary without aborting the run.
var (
	ErrUnknownKind    = errors.New("unknown transaction kind")
	ErrAmountRequired = errors.New("transaction amount required")
	ErrInvalidAmount  = errors.New("invalid transaction amount")
)

// Record is one decoded feed row in typed form. Deposits and
// withdrawals carry their amount; dispute, resolve and chargeback
// records reference a prior entry by ID and carry none.
type Record struct {
	Kind     Kind
	ClientID uint16
	ID       uint32
	Amount   decimal.Decimal
}

// NewRecord validates a decoded row and returns its typed form.
// Deposits and withdrawals require a present, strictly positive
// amount; reference kinds ignore the amount column entirely.
func NewRecord(kind Kind, clientID uint16, id uint32, amount decimal.NullDecimal) (Record, error) {
	switch kind {
	case KindDeposit, KindWithdrawal:
		if !amount.Valid {
			return Record{}, ErrAmountRequired
		}
		if amount.Decimal.Sign() <= 0 {
			return Record{}, ErrInvalidAmount
		}
		return Record{Kind: kind, ClientID: clientID, ID: id, Amount: amount.Decimal}, nil
	case KindDispute, KindResolve, KindChargeback:
		return Record{Kind: kind, ClientID: clientID, ID: id}, nil
	default:
		return Record{}, ErrUnknownKind
	}
}
