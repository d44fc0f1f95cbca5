package normalize

import (
	"testing"

	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/models"
	"fjacquet/bank-ledger/internal/rawrecord"
)

func TestTransactionIndicatorIsAuthoritative(t *testing.T) {
	logger := &logging.MockLogger{}

	tests := []struct {
		name      string
		indicator string
		rawAmount string
		expected  string
	}{
		{"debit forces negative", "DBIT", "50.00", "-50"},
		{"debit on already negative", "DBIT", "-50.00", "-50"},
		{"credit forces positive", "CRDT", "-20.00", "20"},
		{"long form debit", "debit", "12.00", "-12"},
		{"long form credit", "credit", "12.00", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction(rawrecord.Record{
				"transaction_id":         "t1",
				"transaction_amount":     map[string]any{"amount": tt.rawAmount, "currency": "EUR"},
				"credit_debit_indicator": tt.indicator,
			}, logger)

			if tx.Amount.String() != tt.expected {
				t.Errorf("expected amount %s, got %s", tt.expected, tx.Amount.String())
			}
		})
	}
}

func TestTransactionWithoutIndicatorTrustsSourceSign(t *testing.T) {
	tx := Transaction(rawrecord.Record{
		"transaction_id":     "t1",
		"transaction_amount": map[string]any{"amount": "-15.50", "currency": "CHF"},
	}, &logging.MockLogger{})

	if tx.Amount.String() != "-15.5" {
		t.Errorf("expected -15.5, got %s", tx.Amount.String())
	}
	if tx.CurrencyCode != "CHF" {
		t.Errorf("expected CHF, got %s", tx.CurrencyCode)
	}
}

func TestTransactionPlainAmountFallback(t *testing.T) {
	// Previously-canonicalized record with a plain numeric amount
	tx := Transaction(rawrecord.Record{
		"transactionId": "t1",
		"amount":        20.0,
		"raw":           nil,
	}, &logging.MockLogger{})

	if tx.Amount.String() != "20" {
		t.Errorf("expected 20, got %s", tx.Amount.String())
	}
	if tx.CurrencyCode != models.DefaultCurrency {
		t.Errorf("expected default currency, got %s", tx.CurrencyCode)
	}
}

func TestTransactionLocaleFormattedAmount(t *testing.T) {
	tx := Transaction(rawrecord.Record{
		"transaction_id":         "t1",
		"transaction_amount":     map[string]any{"amount": "1'234,56", "currency": "CHF"},
		"credit_debit_indicator": "DBIT",
	}, &logging.MockLogger{})

	if tx.Amount.String() != "-1234.56" {
		t.Errorf("expected -1234.56, got %s", tx.Amount.String())
	}
}

func TestAccountLocaleFormattedBalance(t *testing.T) {
	acct := Account(rawrecord.Record{
		"account_id": "a1",
		"balance":    "1'000,50",
		"currency":   "chf",
	}, &logging.MockLogger{})

	if acct.Balance.Amount.String() != "1000.5" {
		t.Errorf("expected 1000.5, got %s", acct.Balance.Amount.String())
	}
	if acct.Balance.CurrencyCode != "CHF" {
		t.Errorf("expected CHF, got %s", acct.Balance.CurrencyCode)
	}
}

func TestTransactionMissingAmountDefaultsToZero(t *testing.T) {
	tx := Transaction(rawrecord.Record{"transaction_id": "t1"}, &logging.MockLogger{})
	if !tx.Amount.IsZero() {
		t.Errorf("expected zero amount, got %s", tx.Amount.String())
	}
}

func TestCounterpartyResolution(t *testing.T) {
	logger := &logging.MockLogger{}

	tests := []struct {
		name     string
		rec      rawrecord.Record
		expected string
	}{
		{
			"outflow prefers creditor",
			rawrecord.Record{
				"transaction_id":         "t1",
				"transaction_amount":     map[string]any{"amount": "10.00"},
				"credit_debit_indicator": "DBIT",
				"creditor_name":          "Coffee Shop",
				"debtor_name":            "Me",
			},
			"Coffee Shop",
		},
		{
			"inflow prefers debtor",
			rawrecord.Record{
				"transaction_id":         "t1",
				"transaction_amount":     map[string]any{"amount": "10.00"},
				"credit_debit_indicator": "CRDT",
				"creditor_name":          "Me",
				"debtor_name":            "Employer",
			},
			"Employer",
		},
		{
			"swapped roles recovered on outflow",
			rawrecord.Record{
				"transaction_id":     "t1",
				"transaction_amount": map[string]any{"amount": "-10.00"},
				"debtor_name":        "Jane",
			},
			"Jane",
		},
		{
			"nested party object",
			rawrecord.Record{
				"transaction_id":         "t1",
				"transaction_amount":     map[string]any{"amount": "10.00"},
				"credit_debit_indicator": "DBIT",
				"creditor":               map[string]any{"name": "Landlord"},
			},
			"Landlord",
		},
		{
			"no names on outflow",
			rawrecord.Record{
				"transaction_id":         "t1",
				"transaction_amount":     map[string]any{"amount": "10.00"},
				"credit_debit_indicator": "DBIT",
			},
			models.LabelSent,
		},
		{
			"no names on inflow",
			rawrecord.Record{
				"transaction_id":         "t1",
				"transaction_amount":     map[string]any{"amount": "10.00"},
				"credit_debit_indicator": "CRDT",
			},
			models.LabelReceived,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction(tt.rec, logger)
			if tx.CounterpartyName != tt.expected {
				t.Errorf("expected counterparty %q, got %q", tt.expected, tx.CounterpartyName)
			}
		})
	}
}

func TestSelfHealingReparse(t *testing.T) {
	// A canonicalized record lost its derived sign (positive amount, no
	// structured amount field) but still carries the stashed origin payload.
	rec := rawrecord.Record{
		"transactionId": "t1",
		"amount":        50.0,
		"raw": map[string]any{
			"transaction_id":         "t1",
			"transaction_amount":     map[string]any{"amount": "50.00", "currency": "EUR"},
			"credit_debit_indicator": "DBIT",
			"creditor_name":          "Utility Co",
		},
	}

	tx := Transaction(rec, &logging.MockLogger{})
	if tx.Amount.String() != "-50" {
		t.Errorf("expected re-derived amount -50, got %s", tx.Amount.String())
	}
	if tx.CounterpartyName != "Utility Co" {
		t.Errorf("expected re-derived counterparty, got %q", tx.CounterpartyName)
	}
}

func TestReparseSkippedWithoutStash(t *testing.T) {
	rec := rawrecord.Record{
		"transactionId": "t1",
		"amount":        -12.5,
	}
	tx := Transaction(rec, &logging.MockLogger{})
	if tx.Amount.String() != "-12.5" {
		t.Errorf("expected -12.5, got %s", tx.Amount.String())
	}
	if tx.TransactionID != "t1" {
		t.Errorf("expected t1, got %q", tx.TransactionID)
	}
}

func TestDateResolution(t *testing.T) {
	tests := []struct {
		name     string
		rec      rawrecord.Record
		expected string
	}{
		{
			"value date preferred",
			rawrecord.Record{"booking_date": "2025-04-10", "value_date": "2025-04-12"},
			"2025-04-12",
		},
		{
			"booking date kept when alone",
			rawrecord.Record{"booking_date": "2025-04-10"},
			"2025-04-10",
		},
		{
			"canonical field and non-ISO input",
			rawrecord.Record{"bookingDate": "15.04.2025"},
			"2025-04-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction(tt.rec, &logging.MockLogger{})
			if tx.BookingDate != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tx.BookingDate)
			}
		})
	}
}

func TestTransactionDescriptionPlaceholder(t *testing.T) {
	tx := Transaction(rawrecord.Record{"transaction_id": "t1"}, &logging.MockLogger{})
	if tx.RemittanceInformation != models.DescriptionPlaceholder {
		t.Errorf("expected placeholder, got %q", tx.RemittanceInformation)
	}

	tx = Transaction(rawrecord.Record{
		"transaction_id":         "t1",
		"remittance_information": "Rent April",
	}, &logging.MockLogger{})
	if tx.RemittanceInformation != "Rent April" {
		t.Errorf("expected Rent April, got %q", tx.RemittanceInformation)
	}
}

func TestTransactionRetainsRawPayload(t *testing.T) {
	rec := rawrecord.Record{
		"transaction_id":     "t1",
		"transaction_amount": map[string]any{"amount": "5.00"},
	}
	tx := Transaction(rec, &logging.MockLogger{})
	if tx.Raw == nil {
		t.Fatal("expected raw payload to be retained")
	}
	if tx.Raw["transaction_id"] != "t1" {
		t.Error("raw payload should be the origin record")
	}
}

func TestAccountFromAggregatorShape(t *testing.T) {
	rec := rawrecord.Record{
		"account_id": "a1",
		"name":       "Checking",
		"iban":       "DE89370400440532013000",
		"balances": []any{
			map[string]any{"balance_amount": map[string]any{"amount": "1250.75", "currency": "EUR"}},
		},
		"transactions": []any{
			map[string]any{"transaction_id": "t1", "transaction_amount": map[string]any{"amount": "9.99"}},
			map[string]any{"transaction_id": "t1", "transaction_amount": map[string]any{"amount": "9.99"}},
		},
		"session_expired": true,
	}

	acct := Account(rec, &logging.MockLogger{})
	if acct.AccountID != "a1" {
		t.Errorf("expected a1, got %q", acct.AccountID)
	}
	if acct.Mask != "3000" {
		t.Errorf("expected mask 3000, got %q", acct.Mask)
	}
	if acct.Balance.Amount.String() != "1250.75" || acct.Balance.CurrencyCode != "EUR" {
		t.Errorf("unexpected balance %v", acct.Balance)
	}
	if acct.Kind != models.AccountKindBank {
		t.Errorf("expected bank kind, got %s", acct.Kind)
	}
	if len(acct.Transactions) != 1 {
		t.Errorf("expected embedded duplicates to be merged, got %d transactions", len(acct.Transactions))
	}
	if !acct.SessionExpired {
		t.Error("expected session expired flag to propagate")
	}
}

func TestAccountFromInternalShape(t *testing.T) {
	rec := rawrecord.Record{
		"accountId": "a1",
		"name":      "Checking",
		"balance":   map[string]any{"amount": 99.5, "currencyCode": "CHF"},
	}

	acct := Account(rec, &logging.MockLogger{})
	if acct.Balance.Amount.String() != "99.5" || acct.Balance.CurrencyCode != "CHF" {
		t.Errorf("unexpected balance %v", acct.Balance)
	}
	if acct.Mask != models.MaskPlaceholder {
		t.Errorf("expected mask placeholder without IBAN, got %q", acct.Mask)
	}
}

func TestAccountFlatNumericBalance(t *testing.T) {
	rec := rawrecord.Record{
		"account_id": "a1",
		"balance":    250.0,
	}
	acct := Account(rec, &logging.MockLogger{})
	if acct.Balance.Amount.String() != "250" {
		t.Errorf("expected 250, got %s", acct.Balance.Amount.String())
	}
	if acct.Balance.CurrencyCode != models.DefaultCurrency {
		t.Errorf("expected default currency, got %s", acct.Balance.CurrencyCode)
	}
}

func TestCashAccountKind(t *testing.T) {
	rec := rawrecord.Record{
		"account_id": models.CashAccountID,
		"name":       "Cash",
		"balance":    42.0,
	}
	acct := Account(rec, &logging.MockLogger{})
	if acct.Kind != models.AccountKindCash {
		t.Errorf("sentinel id should yield cash kind, got %s", acct.Kind)
	}
}

func TestAccountMalformedInputDoesNotPanic(t *testing.T) {
	rec := rawrecord.Record{
		"account_id":   "a1",
		"balances":     "not-an-array",
		"transactions": 12.0,
		"iban":         754.0,
	}
	acct := Account(rec, &logging.MockLogger{})
	if acct.AccountID != "a1" {
		t.Errorf("expected a1, got %q", acct.AccountID)
	}
	if !acct.Balance.Amount.IsZero() {
		t.Error("expected zero balance for malformed input")
	}
	if len(acct.Transactions) != 0 {
		t.Error("expected no transactions for malformed input")
	}
}
