// Package ledgererror defines the typed errors surfaced by the
// reconciliation core. Record-level defects are swallowed with diagnostics
// where they occur; only batch-level conditions use these types.
package ledgererror

import "fmt"

// FetchError represents a failed call against the aggregator backend. It is
// a batch-level failure: the caller receives no partial result.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s failed with status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s failed: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SnapshotError represents a snapshot file that is missing or cannot be
// parsed. The compactor treats this as a no-op condition and never writes.
type SnapshotError struct {
	Path   string
	Reason string
	Err    error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot %s: %s", e.Path, e.Reason)
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// RecordError describes a single unrecoverable record. It is used for
// diagnostics only and never aborts a batch.
type RecordError struct {
	Entity string // "account" or "transaction"
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("unrecoverable %s record: %s", e.Entity, e.Reason)
}
