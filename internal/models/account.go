package models

import "strings"

// CashAccountID is the fixed sentinel identifier reserved for the locally
// synthesized cash account. It never comes from the aggregator and appears at
// most once in an assembled ledger.
const CashAccountID = "cash-account"

// MaskPlaceholder is used when no IBAN is available to derive a mask from.
const MaskPlaceholder = "----"

// AccountKind distinguishes aggregator-fetched bank accounts from the
// client-synthesized cash account.
type AccountKind string

const (
	AccountKindBank AccountKind = "bank"
	AccountKindCash AccountKind = "cash"
)

// Account is the canonical representation of an account in the assembled
// ledger. Transactions keep the insertion order of the source; consumers
// re-sort as needed.
type Account struct {
	AccountID      string        `json:"accountId"`
	Name           string        `json:"name"`
	Mask           string        `json:"mask"`
	IBAN           string        `json:"iban,omitempty"`
	Balance        Money         `json:"balance"`
	Kind           AccountKind   `json:"kind"`
	Transactions   []Transaction `json:"transactions"`
	SessionExpired bool          `json:"sessionExpired,omitempty"`
}

// IsCash returns true if this is the synthetic cash account.
func (a *Account) IsCash() bool {
	return a.AccountID == CashAccountID || a.Kind == AccountKindCash
}

// MaskFromIBAN derives the display mask from an IBAN: the last four
// characters, or MaskPlaceholder when the IBAN is absent or too short.
func MaskFromIBAN(iban string) string {
	iban = strings.ReplaceAll(strings.TrimSpace(iban), " ", "")
	if len(iban) < 4 {
		return MaskPlaceholder
	}
	return iban[len(iban)-4:]
}
