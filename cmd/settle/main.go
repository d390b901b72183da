// Package main is the entry point for the settlement engine.
// It wires configuration, logging, the in-memory stores and the
// transaction processor, then replays the input feed and prints the
// final balance snapshot.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"settle/internal/config"
	"settle/internal/feed"
	"settle/internal/logger"
	"settle/internal/report"
	"settle/internal/repositories"
	"settle/internal/services/transaction"
)

var rootCmd = &cobra.Command{
	Use:   "settle <transactions.csv>",
	Short: "Replay a transaction feed and print final client balances",
	Long: `settle reads a CSV feed of deposits, withdrawals, disputes, resolves
and chargebacks, applies them in order, and writes the resulting
per-client balance snapshot to stdout. Rows the engine rejects are
skipped and the run continues; diagnostics go to stderr.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := "console"
		if config.IsProduction() {
			format = "json"
		}
		log := logger.New(
			config.GetEnv(config.EnvLogLevel, "info"),
			config.GetEnv(config.EnvLogFormat, format),
		)
		return runFeed(args[0], cmd.OutOrStdout(), log)
	},
}

func main() {
	config.LoadEnv()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runFeed replays the transaction feed at path and writes the final
// balance snapshot to out. Rejected transactions and discarded rows
// are recorded by the audit sink; only a structural failure aborts
// the run.
func runFeed(path string, out io.Writer, log zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open feed: %w", err)
	}
	defer f.Close()

	rdr, err := feed.NewReader(f)
	if err != nil {
		return fmt.Errorf("decode feed: %w", err)
	}

	ledger := repositories.NewLedgerStore()
	accounts := repositories.NewAccountStore()
	audit := report.NewAudit(log)
	proc := transaction.NewProcessor(transaction.ProcessorConfig{
		Ledger:   ledger,
		Accounts: accounts,
		Reporter: audit,
	})

	for {
		rec, err := rdr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if feed.Skippable(err) {
				audit.RecordSkipped(rdr.Row(), err)
				continue
			}
			return fmt.Errorf("decode feed: %w", err)
		}

		// A rejection is already reported by the processor; the run
		// moves on to the next row.
		_ = proc.Apply(rec)
	}
	audit.Summary()

	if err := feed.WriteSnapshot(out, accounts); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
