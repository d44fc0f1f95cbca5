// Package snapshot manages the persisted offline copy of accounts and
// transactions: a single JSON document whose accounts and transactions
// arrays the compactor rewrites while every other top-level field is
// preserved unchanged.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"fjacquet/bank-ledger/internal/ledgererror"
	"fjacquet/bank-ledger/internal/rawrecord"
)

const (
	accountsKey     = "accounts"
	transactionsKey = "transactions"
)

// Snapshot is the decoded snapshot document. Accounts and Transactions hold
// the raw record arrays; extra carries all other top-level fields verbatim.
type Snapshot struct {
	Accounts     []rawrecord.Record
	Transactions []rawrecord.Record

	extra map[string]json.RawMessage
}

// Load reads and parses the snapshot file. A missing or unparsable file is
// reported as a SnapshotError so the caller can treat it as a no-op
// condition rather than a destructive failure.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ledgererror.SnapshotError{Path: path, Reason: "file does not exist", Err: err}
		}
		return nil, &ledgererror.SnapshotError{Path: path, Reason: "file is not readable", Err: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &ledgererror.SnapshotError{Path: path, Reason: "file is not valid JSON", Err: err}
	}

	snap := &Snapshot{extra: fields}

	if raw, ok := fields[accountsKey]; ok {
		if err := json.Unmarshal(raw, &snap.Accounts); err != nil {
			return nil, &ledgererror.SnapshotError{Path: path, Reason: "accounts array is malformed", Err: err}
		}
		delete(fields, accountsKey)
	}
	if raw, ok := fields[transactionsKey]; ok {
		if err := json.Unmarshal(raw, &snap.Transactions); err != nil {
			return nil, &ledgererror.SnapshotError{Path: path, Reason: "transactions array is malformed", Err: err}
		}
		delete(fields, transactionsKey)
	}

	return snap, nil
}

// Save writes the snapshot back to path, re-inserting the preserved
// top-level fields alongside the (possibly rewritten) record arrays.
func (s *Snapshot) Save(path string) error {
	fields := make(map[string]json.RawMessage, len(s.extra)+2)
	for key, value := range s.extra {
		fields[key] = value
	}

	if s.Accounts == nil {
		s.Accounts = []rawrecord.Record{}
	}
	if s.Transactions == nil {
		s.Transactions = []rawrecord.Record{}
	}

	accounts, err := json.Marshal(s.Accounts)
	if err != nil {
		return fmt.Errorf("marshaling accounts: %w", err)
	}
	fields[accountsKey] = accounts

	transactions, err := json.Marshal(s.Transactions)
	if err != nil {
		return fmt.Errorf("marshaling transactions: %w", err)
	}
	fields[transactionsKey] = transactions

	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
