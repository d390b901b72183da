package transaction

import (
	"github.com/shopspring/decimal"

	"settle/internal/models"
)

// ProcessorConfig wires a Processor to its collaborators. Ledger and
// Accounts are required; Reporter defaults to NoopReporter.
type ProcessorConfig struct {
	Ledger   LedgerStore
	Accounts AccountStore
	Reporter Reporter
}

// Processor applies decoded records against the ledger and account
// stores, strictly in the order they are fed to it.
type Processor struct {
	ledger   LedgerStore
	accounts AccountStore
	reporter Reporter
}

// NewProcessor builds a Processor from config.
func NewProcessor(config ProcessorConfig) *Processor {
	if config.Ledger == nil {
		panic("ledger store is required")
	}
	if config.Accounts == nil {
		panic("account store is required")
	}
	reporter := config.Reporter
	if reporter == nil {
		reporter = &NoopReporter{}
	}

	return &Processor{
		ledger:   config.Ledger,
		accounts: config.Accounts,
		reporter: reporter,
	}
}

// Apply dispatches rec to the handler for its kind and reports the
// outcome. A returned error means the record was rejected and no state
// changed; the feed may continue.
func (p *Processor) Apply(rec models.Record) error {
	var err error
	switch rec.Kind {
	case models.KindDeposit:
		err = p.Deposit(rec.ClientID, rec.ID, rec.Amount)
	case models.KindWithdrawal:
		err = p.Withdraw(rec.ClientID, rec.ID, rec.Amount)
	case models.KindDispute:
		err = p.Dispute(rec.ClientID, rec.ID)
	case models.KindResolve:
		err = p.Resolve(rec.ClientID, rec.ID)
	case models.KindChargeback:
		err = p.Chargeback(rec.ClientID, rec.ID)
	default:
		err = ErrUnknownKind
	}

	if err != nil {
		p.reporter.RecordRejected(rec.Kind, rec.ClientID, rec.ID, err)
		return err
	}
	p.reporter.RecordAccepted(rec.Kind, rec.ClientID, rec.ID)
	return nil
}

// Deposit credits amount to the client's account, creating the account
// on first deposit. This is the only operation that creates accounts.
func (p *Processor) Deposit(clientID uint16, txID uint32, amount decimal.Decimal) error {
	if p.ledger.Contains(txID) {
		return ErrDuplicateTransaction
	}
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if acct, ok := p.accounts.Lookup(clientID); ok && acct.Frozen() {
		return ErrAccountFrozen
	}

	acct := p.accounts.GetOrCreate(clientID)
	acct.Available = acct.Available.Add(amount)
	acct.Total = acct.Total.Add(amount)

	return p.ledger.Record(&models.Transaction{
		ID:       txID,
		Kind:     models.KindDeposit,
		ClientID: clientID,
		Amount:   amount,
	})
}

// Withdraw debits amount from the client's available funds.
func (p *Processor) Withdraw(clientID uint16, txID uint32, amount decimal.Decimal) error {
	if p.ledger.Contains(txID) {
		return ErrDuplicateTransaction
	}
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	acct, ok := p.accounts.Lookup(clientID)
	if !ok {
		return ErrAccountNotFound
	}
	if acct.Frozen() {
		return ErrAccountFrozen
	}
	// A disputed withdrawal can leave available below zero; no further
	// withdrawals may run until that dispute settles.
	if acct.Available.Sign() < 0 {
		return ErrNegativeBalance
	}
	if acct.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}

	acct.Available = acct.Available.Sub(amount)
	acct.Total = acct.Total.Sub(amount)

	return p.ledger.Record(&models.Transaction{
		ID:       txID,
		Kind:     models.KindWithdrawal,
		ClientID: clientID,
		Amount:   amount,
	})
}

// Dispute opens a claim against the transaction txID, moving its
// amount from available to held and freezing the account. Disputing a
// withdrawal may drive available negative: the funds already left.
func (p *Processor) Dispute(clientID uint16, txID uint32) error {
	tx, ok := p.ledger.Lookup(txID)
	if !ok {
		return ErrTransactionNotFound
	}
	if tx.ChargedBack {
		return ErrChargedBack
	}
	if tx.Disputed {
		return ErrAlreadyDisputed
	}
	if tx.ClientID != clientID {
		return ErrClientMismatch
	}
	acct, ok := p.accounts.Lookup(clientID)
	if !ok {
		return ErrAccountNotFound
	}

	tx.Disputed = true
	acct.Available = acct.Available.Sub(tx.Amount)
	acct.Held = acct.Held.Add(tx.Amount)
	acct.AddLock()
	return nil
}

// Resolve closes the dispute on txID in the client's favor, releasing
// the held amount back to available. A resolved transaction may be
// disputed again later.
func (p *Processor) Resolve(clientID uint16, txID uint32) error {
	tx, ok := p.ledger.Lookup(txID)
	if !ok {
		return ErrTransactionNotFound
	}
	if tx.ChargedBack {
		return ErrChargedBack
	}
	if !tx.Disputed {
		return ErrNotDisputed
	}
	if tx.ClientID != clientID {
		return ErrClientMismatch
	}
	acct, ok := p.accounts.Lookup(clientID)
	if !ok {
		return ErrAccountNotFound
	}

	tx.Disputed = false
	acct.Available = acct.Available.Add(tx.Amount)
	acct.Held = acct.Held.Sub(tx.Amount)
	acct.ReleaseLock()
	return nil
}

// Chargeback settles the dispute on txID against the client: the held
// amount leaves the account for good. The dispute's lock is never
// released, so the account stays frozen for the rest of the run.
func (p *Processor) Chargeback(clientID uint16, txID uint32) error {
	tx, ok := p.ledger.Lookup(txID)
	if !ok {
		return ErrTransactionNotFound
	}
	if tx.ChargedBack {
		return ErrChargedBack
	}
	if !tx.Disputed {
		return ErrNotDisputed
	}
	if tx.ClientID != clientID {
		return ErrClientMismatch
	}
	acct, ok := p.accounts.Lookup(clientID)
	if !ok {
		return ErrAccountNotFound
	}

	tx.ChargedBack = true
	acct.Held = acct.Held.Sub(tx.Amount)
	acct.Total = acct.Total.Sub(tx.Amount)
	return nil
}
