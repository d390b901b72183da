package transaction

import (
	"settle/internal/models"
)

// LedgerStore is the accepted-transaction history the processor reads
// and appends. Satisfied by repositories.LedgerStore.
type LedgerStore interface {
	Record(tx *models.Transaction) error
	Lookup(id uint32) (*models.Transaction, bool)
	Contains(id uint32) bool
}

// AccountStore is the per-client balance table the processor mutates.
// Satisfied by repositories.AccountStore.
type AccountStore interface {
	Lookup(clientID uint16) (*models.Account, bool)
	GetOrCreate(clientID uint16) *models.Account
}

// Reporter observes the outcome of every applied record. Implementations
// must not mutate the stores; the processor ignores anything a reporter
// does.
type Reporter interface {
	RecordAccepted(kind models.Kind, clientID uint16, txID uint32)
	RecordRejected(kind models.Kind, clientID uint16, txID uint32, reason error)
}
