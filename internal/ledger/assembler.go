// Package ledger assembles the canonical account list consumed by the
// presentation layer: the normalized, de-duplicated bank accounts plus at
// most one synthetic cash account.
package ledger

import (
	"context"
	"strings"

	"fjacquet/bank-ledger/internal/backend"
	"fjacquet/bank-ledger/internal/dedup"
	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/models"
	"fjacquet/bank-ledger/internal/normalize"
)

// Assembler builds a fresh ledger from the backend on every call. There is
// no incremental patching between fetches; the durable copy lives upstream.
type Assembler struct {
	client          backend.Client
	logger          logging.Logger
	displayNames    map[string]string
	cashAccountName string
}

// NewAssembler creates an Assembler over the given backend client.
func NewAssembler(client backend.Client, logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Assembler{client: client, logger: logger}
}

// SetDisplayNames installs counterparty display-name overrides, applied
// after normalization. Keys are matched case-insensitively.
func (a *Assembler) SetDisplayNames(names map[string]string) {
	lowered := make(map[string]string, len(names))
	for raw, display := range names {
		lowered[strings.ToLower(raw)] = display
	}
	a.displayNames = lowered
}

// SetCashAccountName overrides the display name used when the cash account
// record carries none.
func (a *Assembler) SetCashAccountName(name string) {
	a.cashAccountName = name
}

// Assemble fetches, normalizes and combines the account list. A failed bank
// account fetch aborts the whole assembly; a failed or empty cash account
// fetch merely yields a ledger without a cash account.
func (a *Assembler) Assemble(ctx context.Context) ([]models.Account, error) {
	raw, err := a.client.FetchAccounts(ctx)
	if err != nil {
		return nil, err
	}

	merged := dedup.MergeAccounts(raw, a.logger)
	accounts := make([]models.Account, 0, len(merged.Records)+1)
	for _, rec := range merged.Records {
		acct := normalize.Account(rec, a.logger)
		a.applyDisplayNames(&acct)
		accounts = append(accounts, acct)
	}

	return a.appendCashAccount(ctx, accounts), nil
}

// appendCashAccount adds the synthetic cash account unless one is already
// present under the sentinel id. Cash fetch failures are tolerated.
func (a *Assembler) appendCashAccount(ctx context.Context, accounts []models.Account) []models.Account {
	rec, err := a.client.FetchCashAccount(ctx)
	if err != nil {
		a.logger.WithError(err).Warn("cash account fetch failed, assembling without it")
		return accounts
	}
	if rec == nil {
		return accounts
	}

	for _, acct := range accounts {
		if acct.AccountID == models.CashAccountID {
			a.logger.Debug("cash account already present, skipping insertion",
				logging.Field{Key: logging.FieldAccountID, Value: acct.AccountID})
			return accounts
		}
	}

	cash := normalize.Account(rec, a.logger)
	cash.Kind = models.AccountKindCash
	if cash.Name == "" {
		cash.Name = a.cashAccountName
	}
	a.applyDisplayNames(&cash)
	return append(accounts, cash)
}

func (a *Assembler) applyDisplayNames(acct *models.Account) {
	if len(a.displayNames) == 0 {
		return
	}
	for i := range acct.Transactions {
		name := acct.Transactions[i].CounterpartyName
		if display, ok := a.displayNames[strings.ToLower(name)]; ok {
			acct.Transactions[i].CounterpartyName = display
		}
	}
}
