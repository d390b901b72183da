// Package report provides structured observability for a settlement
// run. The engine stays decoupled from it behind the transaction
// package's Reporter interface.
package report

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"settle/internal/models"
	"settle/internal/services/transaction"
)

// Audit records the outcome of every row in a run: accepted and
// rejected transactions from the processor, plus rows the decoder
// discarded. Events log at debug level so large feeds stay quiet
// unless asked for; the final summary logs at info. All counters
// belong to the single goroutine driving the feed.
type Audit struct {
	log      zerolog.Logger
	accepted uint64
	rejected uint64
	skipped  uint64
}

var _ transaction.Reporter = (*Audit)(nil)

// NewAudit returns an Audit whose events all carry a fresh run id.
func NewAudit(log zerolog.Logger) *Audit {
	return &Audit{
		log: log.With().Str("run_id", uuid.NewString()).Logger(),
	}
}

func (a *Audit) RecordAccepted(kind models.Kind, clientID uint16, txID uint32) {
	a.accepted++
	a.log.Debug().
		Str("kind", string(kind)).
		Uint16("client", clientID).
		Uint32("tx", txID).
		Msg("transaction accepted")
}

func (a *Audit) RecordRejected(kind models.Kind, clientID uint16, txID uint32, reason error) {
	a.rejected++
	a.log.Debug().
		Str("kind", string(kind)).
		Uint16("client", clientID).
		Uint32("tx", txID).
		Err(reason).
		Msg("transaction rejected")
}

// RecordSkipped notes a row the decoder discarded before it ever
// reached the processor.
func (a *Audit) RecordSkipped(row int, reason error) {
	a.skipped++
	a.log.Debug().
		Int("row", row).
		Err(reason).
		Msg("row skipped")
}

// Summary logs the run totals once the feed is drained.
func (a *Audit) Summary() {
	a.log.Info().
		Uint64("accepted", a.accepted).
		Uint64("rejected", a.rejected).
		Uint64("skipped", a.skipped).
		Msg("feed drained")
}
