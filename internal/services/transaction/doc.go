/*
Package transaction implements the settlement state machine that turns
a transaction feed into final client balances.

The processor consumes decoded records one at a time, in feed order,
and applies them against two stores it does not own:

  - a LedgerStore holding every accepted deposit and withdrawal
  - an AccountStore holding one balance record per client

Deposits and withdrawals move available funds and create ledger
history. A dispute moves the referenced amount from available to held
and freezes the account while it is open. A resolve releases the hold;
a chargeback settles the dispute against the client, removing the held
funds and leaving the account frozen for the rest of the run.

Usage:

	proc := transaction.NewProcessor(transaction.ProcessorConfig{
		Ledger:   ledger,
		Accounts: accounts,
	})

	for _, rec := range records {
		_ = proc.Apply(rec) // rejections are non-fatal
	}

Error Handling:

Every precondition failure rejects the record with a sentinel error
and leaves history and balances untouched:
  - ErrDuplicateTransaction: the transaction id was already accepted
  - ErrInvalidAmount: the amount is missing, zero or negative
  - ErrAccountNotFound: no account exists for the client
  - ErrAccountFrozen: the account has an open dispute or chargeback
  - ErrNegativeBalance: available funds are below zero
  - ErrInsufficientFunds: available funds do not cover the withdrawal
  - ErrTransactionNotFound: the referenced transaction is unknown
  - ErrAlreadyDisputed / ErrNotDisputed: dispute state mismatch
  - ErrClientMismatch: the record's client does not own the reference
  - ErrChargedBack: the referenced transaction was already settled

Rejections are part of normal operation: the caller keeps feeding
records after one.

Reporting:

An optional Reporter receives every accepted and rejected record for
observability. The default NoopReporter discards them; the processor's
behavior never depends on the reporter.
*/
package transaction
