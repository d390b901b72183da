package models

import (
	"github.com/shopspring/decimal"
)

// Kind identifies one of the five transaction types understood by the
// settlement engine.
type Kind string

// Transaction kinds, matching the lowercase type names used in the feed.
const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// ParseKind maps a feed type name onto its Kind. Unrecognized names
// return ErrUnknownKind so the decoder boundary can discard the row.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return k, nil
	default:
		return "", ErrUnknownKind
	}
}

// Transaction is one accepted ledger entry. Only deposits and
// withdrawals become entries; once stored, an entry is immutable apart
// from its dispute flags.
type Transaction struct {
	ID       uint32
	Kind     Kind
	ClientID uint16
	Amount   decimal.Decimal

	// Disputed is set by a dispute and cleared by a resolve. A
	// chargeback leaves it set.
	Disputed bool

	// ChargedBack marks the entry as settled against the client.
	// Terminal: no dispute, resolve or chargeback may touch the entry
	// again once set.
	ChargedBack bool
}
