package snapshot

import (
	"fjacquet/bank-ledger/internal/dedup"
	"fjacquet/bank-ledger/internal/logging"
)

// Report summarizes one compaction pass in the shape consumed by operators
// and tooling.
type Report struct {
	Success                  bool   `json:"success"`
	OriginalAccountCount     int    `json:"originalAccountCount"`
	FinalAccountCount        int    `json:"finalAccountCount"`
	RemovedAccounts          int    `json:"removedAccounts"`
	OriginalTransactionCount int    `json:"originalTransactionCount"`
	FinalTransactionCount    int    `json:"finalTransactionCount"`
	RemovedTransactions      int    `json:"removedTransactions"`
	Message                  string `json:"message,omitempty"`
}

// Compact runs the identity resolver and deduplicating merger over the
// snapshot's accounts and transactions arrays and rewrites the file in
// place. It is idempotent: a second consecutive run changes nothing. When
// the snapshot is missing or unparsable no write occurs and the returned
// error explains the condition.
//
// Concurrent invocations against the same file are not safe; the caller
// must serialize compaction passes.
func Compact(path string, logger logging.Logger) (Report, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	log := logger.WithField(logging.FieldSnapshot, path)

	snap, err := Load(path)
	if err != nil {
		log.WithError(err).Warn("snapshot not compactable, leaving file untouched")
		return Report{Success: false, Message: err.Error()}, err
	}

	accounts := dedup.MergeAccounts(snap.Accounts, logger)
	transactions := dedup.MergeTransactions(snap.Transactions, logger)

	report := Report{
		Success:                  true,
		OriginalAccountCount:     len(snap.Accounts),
		FinalAccountCount:        len(accounts.Records),
		RemovedAccounts:          len(snap.Accounts) - len(accounts.Records),
		OriginalTransactionCount: len(snap.Transactions),
		FinalTransactionCount:    len(transactions.Records),
		RemovedTransactions:      len(snap.Transactions) - len(transactions.Records),
	}

	snap.Accounts = accounts.Records
	snap.Transactions = transactions.Records

	if err := snap.Save(path); err != nil {
		log.WithError(err).Error("failed to write compacted snapshot")
		return Report{Success: false, Message: err.Error()}, err
	}

	log.Info("snapshot compacted",
		logging.Field{Key: "removed_accounts", Value: report.RemovedAccounts},
		logging.Field{Key: "removed_transactions", Value: report.RemovedTransactions})
	return report, nil
}
