// Package normalize converts raw account and transaction records into the
// canonical model. It understands three source shapes: the raw aggregator
// schema (snake_case, structured amounts, debit/credit indicators), the
// previously-canonicalized schema carrying a stashed origin payload, and the
// locally-synthesized cash account. Conversion is a pure transformation:
// malformed input never produces an error, only defaults.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/bank-ledger/internal/dateutils"
	"fjacquet/bank-ledger/internal/dedup"
	"fjacquet/bank-ledger/internal/identity"
	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/models"
	"fjacquet/bank-ledger/internal/rawrecord"
)

// Indicator values accepted for the debit/credit field, long and short form.
const (
	indicatorDebit  = "DBIT"
	indicatorCredit = "CRDT"
)

// Transaction converts one raw transaction record into the canonical shape.
func Transaction(rec rawrecord.Record, logger logging.Logger) models.Transaction {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	rec = reparse(rec, logger)

	amount, currency := resolveAmount(rec)
	amount = applyIndicator(rec, amount)

	id, _ := identity.TransactionID(rec)

	description := rec.String("remittance_information", "remittanceInformation", "description")
	if description == "" {
		description = models.DescriptionPlaceholder
	}

	return models.Transaction{
		TransactionID:         id,
		BookingDate:           resolveDate(rec),
		Amount:                amount,
		CurrencyCode:          currency,
		RemittanceInformation: description,
		CounterpartyName:      counterpartyName(rec, amount),
		Raw:                   map[string]any(rec),
	}
}

// Account converts one raw account record into the canonical shape,
// normalizing and de-duplicating its embedded transactions.
func Account(rec rawrecord.Record, logger logging.Logger) models.Account {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	id, _ := identity.AccountID(rec)
	iban := strings.TrimSpace(rec.String("iban"))

	kind := models.AccountKindBank
	if id == models.CashAccountID || rec.String("kind") == string(models.AccountKindCash) {
		kind = models.AccountKindCash
	}

	merged := dedup.MergeTransactions(rec.Records("transactions"), logger)
	transactions := make([]models.Transaction, 0, len(merged.Records))
	for _, raw := range merged.Records {
		transactions = append(transactions, Transaction(raw, logger))
	}

	return models.Account{
		AccountID:      id,
		Name:           rec.String("name", "account_name", "product"),
		Mask:           models.MaskFromIBAN(iban),
		IBAN:           iban,
		Balance:        resolveBalance(rec),
		Kind:           kind,
		Transactions:   transactions,
		SessionExpired: rec.Bool("session_expired", "sessionExpired"),
	}
}

// reparse implements the self-healing path: a record that presents as
// already-canonicalized but lacks the structured amount used for
// authoritative sign derivation is replaced by its stashed origin payload,
// so the derivation reruns from the raw shape. This guards against consumers
// re-submitting partially-processed records that would otherwise lose
// correctly derived sign and name data.
func reparse(rec rawrecord.Record, logger logging.Logger) rawrecord.Record {
	if !rec.Has("transactionId") || rec.Has("transaction_amount") {
		return rec
	}
	stash := rec.Object("raw")
	if stash == nil {
		return rec
	}
	logger.Debug("re-deriving transaction from stashed origin payload",
		logging.Field{Key: logging.FieldTransactionID, Value: rec.String("transactionId")})
	return stash
}

// resolveAmount extracts the signed amount and currency of a transaction.
// The structured aggregator amount wins over a previously-canonicalized
// plain amount; a missing amount defaults to zero and a missing currency to
// the default currency.
func resolveAmount(rec rawrecord.Record) (decimal.Decimal, string) {
	if structured := rec.Object("transaction_amount"); structured != nil {
		currency := structured.String("currency")
		if currency == "" {
			currency = models.DefaultCurrency
		}
		return amountOf(structured, "amount"), strings.ToUpper(currency)
	}

	currency := rec.String("currency", "currencyCode")
	if currency == "" {
		currency = models.DefaultCurrency
	}
	return amountOf(rec, "amount"), strings.ToUpper(currency)
}

// amountOf reads a numeric field, falling back to the locale-tolerant amount
// parser for formatted strings like "1'234,56".
func amountOf(rec rawrecord.Record, keys ...string) decimal.Decimal {
	if amount, ok := rec.Number(keys...); ok {
		return amount
	}
	if s := rec.String(keys...); s != "" {
		return models.ParseAmount(s)
	}
	return decimal.Zero
}

// applyIndicator forces the amount sign from the debit/credit indicator when
// one is present. The indicator is authoritative and overrides whatever sign
// the raw amount carried; without one the source sign is trusted as-is.
func applyIndicator(rec rawrecord.Record, amount decimal.Decimal) decimal.Decimal {
	switch indicator(rec) {
	case indicatorDebit:
		return amount.Abs().Neg()
	case indicatorCredit:
		return amount.Abs()
	default:
		return amount
	}
}

// indicator reads the debit/credit indicator in long or short form and maps
// it to the short form, or "" if absent or unknown.
func indicator(rec rawrecord.Record) string {
	value := strings.ToUpper(strings.TrimSpace(rec.String("credit_debit_indicator", "creditDebitIndicator")))
	switch value {
	case indicatorDebit, "DEBIT":
		return indicatorDebit
	case indicatorCredit, "CREDIT":
		return indicatorCredit
	default:
		return ""
	}
}

// counterpartyName resolves the display name of the relevant party. For an
// outflow the creditor received the money, for an inflow the debtor sent it.
// Roles are sometimes swapped upstream, so the other party's name is a
// recoverable fallback before the generic Sent/Received label.
func counterpartyName(rec rawrecord.Record, amount decimal.Decimal) string {
	creditor := partyName(rec, "creditor_name", "creditorName", "creditor")
	debtor := partyName(rec, "debtor_name", "debtorName", "debtor")

	preferred, other := debtor, creditor
	if amount.IsNegative() {
		preferred, other = creditor, debtor
	}

	if preferred != "" {
		return preferred
	}
	if other != "" {
		return other
	}
	if name := rec.String("counterpartyName"); name != "" {
		return name
	}
	if amount.IsNegative() {
		return models.LabelSent
	}
	return models.LabelReceived
}

// partyName reads a party name from the flat fields or the nested object
// convention ({"creditor": {"name": ...}}).
func partyName(rec rawrecord.Record, flatKeys ...string) string {
	nestedKey := flatKeys[len(flatKeys)-1]
	if name := rec.String(flatKeys[:len(flatKeys)-1]...); name != "" {
		return strings.TrimSpace(name)
	}
	if nested := rec.Object(nestedKey); nested != nil {
		return strings.TrimSpace(nested.String("name"))
	}
	return ""
}

// resolveDate picks the effective transaction date, preferring the value
// date over the booking date, and normalizes it to ISO 8601.
func resolveDate(rec rawrecord.Record) string {
	booking := rec.String("booking_date", "bookingDate")
	value := rec.String("value_date", "valueDate")
	return dateutils.ToISO(dateutils.Preferred(booking, value))
}

// resolveBalance extracts the account balance from either the aggregator's
// structured balance array or the flat internal shape.
func resolveBalance(rec rawrecord.Record) models.Money {
	if balances := rec.Records("balances"); len(balances) > 0 {
		entry := balances[0]
		if structured := entry.Object("balance_amount"); structured != nil {
			return models.NewMoney(amountOf(structured, "amount"), structured.String("currency"))
		}
		return models.NewMoney(amountOf(entry, "amount"), entry.String("currency"))
	}

	if structured := rec.Object("balance"); structured != nil {
		return models.NewMoney(amountOf(structured, "amount"), structured.String("currencyCode", "currency"))
	}

	if !rec.Has("balance") {
		return models.ZeroMoney(rec.String("currency", "currencyCode"))
	}
	return models.NewMoney(amountOf(rec, "balance"), rec.String("currency", "currencyCode"))
}
