package models

import (
	"math"

	"github.com/shopspring/decimal"
)

// Account is the balance record for one client. Total must equal
// Available plus Held after every applied transaction.
type Account struct {
	ClientID  uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal

	// Locks counts currently open disputes. A chargeback never
	// releases its lock, so a charged-back account stays frozen.
	Locks uint16
}

// NewAccount returns a zeroed account for clientID.
func NewAccount(clientID uint16) *Account {
	return &Account{
		ClientID:  clientID,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
}

// Frozen reports whether the account rejects deposits and withdrawals.
func (a *Account) Frozen() bool {
	return a.Locks > 0
}

// AddLock increments the open-dispute count, saturating at the maximum
// instead of wrapping.
func (a *Account) AddLock() {
	if a.Locks < math.MaxUint16 {
		a.Locks++
	}
}

// ReleaseLock decrements the open-dispute count, saturating at zero.
func (a *Account) ReleaseLock() {
	if a.Locks > 0 {
		a.Locks--
	}
}
