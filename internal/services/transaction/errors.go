package transaction

import "errors"

// Rejection errors. Any of these means the record was discarded and
// no state changed; processing continues with the next record.
var (
	ErrDuplicateTransaction = errors.New("duplicate transaction")
	ErrInvalidAmount        = errors.New("invalid transaction amount")
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountFrozen        = errors.New("account frozen")
	ErrNegativeBalance      = errors.New("available balance below zero")
	ErrInsufficientFunds    = errors.New("insufficient available funds")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrAlreadyDisputed      = errors.New("transaction already disputed")
	ErrNotDisputed          = errors.New("transaction not under dispute")
	ErrClientMismatch       = errors.New("transaction owned by another client")
	ErrChargedBack          = errors.New("transaction already charged back")
	ErrUnknownKind          = errors.New("unknown transaction kind")
)
