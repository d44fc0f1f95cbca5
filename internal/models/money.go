// Package models provides the canonical data structures shared across the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed whenever a source record omits the currency code.
const DefaultCurrency = "EUR"

// Money represents a monetary value with its ISO 4217 currency code.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// NewMoney creates a new Money instance with the given amount and currency.
// An empty currency falls back to DefaultCurrency.
func NewMoney(amount decimal.Decimal, currency string) Money {
	if strings.TrimSpace(currency) == "" {
		currency = DefaultCurrency
	}
	return Money{
		Amount:       amount,
		CurrencyCode: strings.ToUpper(strings.TrimSpace(currency)),
	}
}

// ZeroMoney returns a Money instance with zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return NewMoney(decimal.Zero, currency)
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// String returns the amount with two decimal places followed by the currency code.
func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.CurrencyCode
}

// ParseAmount parses a string amount to decimal.Decimal, tolerating the
// formatting quirks seen in aggregator payloads. Unparsable input yields zero.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	// Replace comma with dot for decimal separator
	amount = strings.ReplaceAll(amount, ",", ".")
	amount = strings.ReplaceAll(amount, " ", "")
	// Remove thousand separators
	amount = strings.ReplaceAll(amount, "'", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
