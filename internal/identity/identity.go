// Package identity recovers stable identifiers from raw account and
// transaction records. Aggregator identifiers are not trustworthy: a prior
// serialization bug produced literal "[object Object]" strings, and the
// primary id field is sometimes missing entirely.
package identity

import (
	"strings"

	"fjacquet/bank-ledger/internal/rawrecord"
)

// objectMarker is the stringified-object artifact a broken serializer leaves
// behind in place of a real identifier.
const objectMarker = "[object Object]"

// minIBANLength is the shortest IBAN accepted as an identifier fallback.
const minIBANLength = 5

// Candidate id fields, probed in order. The canonical field comes first so
// that previously-normalized records resolve to the same key as their raw
// originals.
var (
	accountIDKeys     = []string{"accountId", "account_id", "uid", "id"}
	transactionIDKeys = []string{"transactionId", "transaction_id", "id"}
)

// Valid reports whether a candidate value is usable as an identifier: it
// must be a non-empty string and not a serialization artifact.
func Valid(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || s == objectMarker {
		return "", false
	}
	return s, true
}

// AccountID resolves the stable identifier of an account record. When no id
// field holds a valid value it falls back to the IBAN if one is present and
// longer than minIBANLength characters. The second return value is false if
// the account is unrecoverable and must be excluded.
func AccountID(rec rawrecord.Record) (string, bool) {
	for _, key := range accountIDKeys {
		if id, ok := Valid(rec[key]); ok {
			return id, true
		}
	}
	if iban, ok := Valid(rec["iban"]); ok && len(iban) > minIBANLength {
		return iban, true
	}
	return "", false
}

// TransactionID resolves the stable identifier of a transaction record.
// There is no IBAN-style recovery for transactions: an unresolvable record
// is dropped by the caller.
func TransactionID(rec rawrecord.Record) (string, bool) {
	for _, key := range transactionIDKeys {
		if id, ok := Valid(rec[key]); ok {
			return id, true
		}
	}
	return "", false
}
