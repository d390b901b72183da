package feed

import (
	"encoding/csv"
	"io"
	"strconv"

	"settle/internal/models"
)

// AccountSource is the account table the snapshot is rendered from.
// Satisfied by repositories.AccountStore.
type AccountSource interface {
	Clients() []uint16
	Lookup(clientID uint16) (*models.Account, bool)
}

var snapshotHeader = []string{"client", "available", "held", "total", "locked"}

// WriteSnapshot renders the final balance table as CSV: one row per
// account in ascending client order, amounts with four fractional
// digits, locked true while any dispute lock is held.
func WriteSnapshot(w io.Writer, accounts AccountSource) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(snapshotHeader); err != nil {
		return err
	}

	for _, clientID := range accounts.Clients() {
		acct, ok := accounts.Lookup(clientID)
		if !ok {
			continue
		}
		row := []string{
			strconv.FormatUint(uint64(clientID), 10),
			acct.Available.StringFixed(4),
			acct.Held.StringFixed(4),
			acct.Total.StringFixed(4),
			strconv.FormatBool(acct.Frozen()),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
