// Package dedup merges ordered record sequences into one entry per resolved
// key. The input is treated as an append-only log: on a key collision the
// later occurrence wins verbatim, even when it is a less complete record
// than the one it replaces. That overwrite-by-position rule is deliberate
// and must not be upgraded to a "most complete wins" merge without a product
// decision.
package dedup

import (
	"strings"

	"fjacquet/bank-ledger/internal/identity"
	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/rawrecord"
)

// Result holds the merged records plus drop accounting for diagnostics.
// Records carries one entry per unique key; its order is unspecified (the
// implementation keeps first-insertion order, but consumers must sort
// explicitly when an order is required).
type Result struct {
	Records  []rawrecord.Record
	Dropped  int // records excluded because no identifier could be recovered
	Replaced int // records overwritten by a later occurrence of their key
}

// MergeAccounts de-duplicates account records. Only records the identity
// resolver can recover participate; the key is then the IBAN when present
// and non-empty, otherwise the resolved account id. An IBAN too short for
// identity recovery must not carry an otherwise unidentifiable record
// through the merge.
func MergeAccounts(records []rawrecord.Record, logger logging.Logger) Result {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return merge(records, func(rec rawrecord.Record) (string, bool) {
		id, ok := identity.AccountID(rec)
		if !ok {
			return "", false
		}
		if iban := strings.TrimSpace(rec.String("iban")); iban != "" {
			return iban, true
		}
		return id, true
	}, "account", logger)
}

// MergeTransactions de-duplicates transaction records keyed on the resolved
// transaction id alone. Unidentifiable transactions are dropped.
func MergeTransactions(records []rawrecord.Record, logger logging.Logger) Result {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return merge(records, identity.TransactionID, "transaction", logger)
}

func merge(records []rawrecord.Record, keyOf func(rawrecord.Record) (string, bool), entity string, logger logging.Logger) Result {
	result := Result{Records: make([]rawrecord.Record, 0, len(records))}
	positions := make(map[string]int, len(records))

	for _, rec := range records {
		key, ok := keyOf(rec)
		if !ok {
			result.Dropped++
			logger.Warn("dropping record without a recoverable identifier",
				logging.Field{Key: logging.FieldReason, Value: entity + " id unresolvable"})
			continue
		}

		if pos, seen := positions[key]; seen {
			// Later occurrence wins verbatim, position stays.
			result.Records[pos] = rec
			result.Replaced++
			logger.Debug("replacing earlier record for duplicate key",
				logging.Field{Key: logging.FieldKey, Value: key})
			continue
		}

		positions[key] = len(result.Records)
		result.Records = append(result.Records, rec)
	}

	if result.Dropped > 0 {
		logger.Warn("records dropped during merge",
			logging.Field{Key: logging.FieldDropped, Value: result.Dropped},
			logging.Field{Key: logging.FieldCount, Value: len(result.Records)})
	}
	return result
}
