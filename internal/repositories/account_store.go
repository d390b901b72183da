package repositories

import (
	"sort"

	"settle/internal/models"
)

// AccountStore holds one balance record per client. Accounts are only
// ever created by a successful first deposit and are never deleted.
type AccountStore interface {
	// Lookup returns the account for clientID.
	Lookup(clientID uint16) (*models.Account, bool)

	// GetOrCreate returns the existing account for clientID, or a
	// zeroed one. Deposit handling is the only caller that may create.
	GetOrCreate(clientID uint16) *models.Account

	// Clients returns all known client ids in ascending order.
	Clients() []uint16

	// Len returns the number of accounts.
	Len() int
}

type accountStore struct {
	accounts map[uint16]*models.Account
}

// NewAccountStore returns an empty in-memory account table.
func NewAccountStore() AccountStore {
	return &accountStore{accounts: make(map[uint16]*models.Account)}
}

func (s *accountStore) Lookup(clientID uint16) (*models.Account, bool) {
	acct, ok := s.accounts[clientID]
	return acct, ok
}

func (s *accountStore) GetOrCreate(clientID uint16) *models.Account {
	if acct, ok := s.accounts[clientID]; ok {
		return acct
	}
	acct := models.NewAccount(clientID)
	s.accounts[clientID] = acct
	return acct
}

func (s *accountStore) Clients() []uint16 {
	ids := make([]uint16, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *accountStore) Len() int {
	return len(s.accounts)
}
