// Package repositories provides the data access layer for a settlement
// run. Both stores are plain in-memory maps: state lives exactly as
// long as the run that produced it, and a single goroutine owns the
// stores for that whole lifetime.
package repositories

import (
	"errors"

	"settle/internal/models"
)

// Store errors
var (
	ErrDuplicateTransaction = errors.New("duplicate transaction")
)

// LedgerStore holds every transaction accepted into history, keyed by
// transaction id. History is append-only; entries are never deleted.
type LedgerStore interface {
	// Record inserts a new entry. The id must be unused.
	Record(tx *models.Transaction) error

	// Lookup returns the entry for id, for in-place flag updates.
	Lookup(id uint32) (*models.Transaction, bool)

	// Contains reports whether id is already part of history.
	Contains(id uint32) bool

	// Len returns the number of accepted entries.
	Len() int
}

type ledgerStore struct {
	entries map[uint32]*models.Transaction
}

// NewLedgerStore returns an empty in-memory ledger.
func NewLedgerStore() LedgerStore {
	return &ledgerStore{entries: make(map[uint32]*models.Transaction)}
}

func (s *ledgerStore) Record(tx *models.Transaction) error {
	if _, ok := s.entries[tx.ID]; ok {
		return ErrDuplicateTransaction
	}
	s.entries[tx.ID] = tx
	return nil
}

func (s *ledgerStore) Lookup(id uint32) (*models.Transaction, bool) {
	tx, ok := s.entries[id]
	return tx, ok
}

func (s *ledgerStore) Contains(id uint32) bool {
	_, ok := s.entries[id]
	return ok
}

func (s *ledgerStore) Len() int {
	return len(s.entries)
}
