package models

import (
	"github.com/shopspring/decimal"
)

// Placeholders used when a source record omits the corresponding field.
const (
	// DescriptionPlaceholder replaces a missing remittance information text.
	DescriptionPlaceholder = "No description"

	// LabelSent is the counterparty fallback for outflows when neither
	// party name could be resolved.
	LabelSent = "Sent"

	// LabelReceived is the counterparty fallback for inflows.
	LabelReceived = "Received"
)

// Transaction is the canonical representation of a booked transaction,
// independent of the source wire format. Amounts are signed: negative means
// outflow, positive means inflow.
type Transaction struct {
	TransactionID         string          `json:"transactionId"`
	BookingDate           string          `json:"bookingDate"` // ISO 8601 date
	Amount                decimal.Decimal `json:"amount"`
	CurrencyCode          string          `json:"currencyCode"`
	RemittanceInformation string          `json:"remittanceInformation"`
	CounterpartyName      string          `json:"counterpartyName"`

	// Raw retains the untouched origin payload so the canonical fields can
	// be re-derived later if they turn out to be stale (see normalize).
	Raw map[string]any `json:"raw,omitempty"`
}

// IsOutflow returns true if the transaction moves money out of the account.
func (t *Transaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// IsInflow returns true if the transaction moves money into the account.
func (t *Transaction) IsInflow() bool {
	return t.Amount.IsPositive()
}
