package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/bank-ledger/internal/logging"
)

func TestCompact(t *testing.T) {
	path := writeSnapshot(t, `{
		"accounts": [
			{"account_id": "a1", "name": "stale"},
			{"account_id": "a1", "name": "current"},
			{"account_id": "[object Object]"}
		],
		"transactions": [
			{"transaction_id": "t1"},
			{"id": "t1"},
			{"transaction_id": "t2"},
			{"broken": true}
		],
		"version": 1
	}`)

	report, err := Compact(path, &logging.MockLogger{})
	if err != nil {
		t.Fatalf("Compact returned an error: %v", err)
	}

	if !report.Success {
		t.Error("expected a successful report")
	}
	if report.OriginalAccountCount != 3 || report.FinalAccountCount != 1 || report.RemovedAccounts != 2 {
		t.Errorf("unexpected account counts: %+v", report)
	}
	if report.OriginalTransactionCount != 4 || report.FinalTransactionCount != 2 || report.RemovedTransactions != 2 {
		t.Errorf("unexpected transaction counts: %+v", report)
	}

	// The surviving account is the later occurrence, kept verbatim.
	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load after compaction failed: %v", err)
	}
	if snap.Accounts[0].String("name") != "current" {
		t.Errorf("expected the later record to survive, got %v", snap.Accounts[0])
	}
}

func TestCompactIdempotent(t *testing.T) {
	path := writeSnapshot(t, `{
		"accounts": [{"account_id": "a1"}, {"account_id": "a1"}],
		"transactions": [{"transaction_id": "t1"}]
	}`)

	first, err := Compact(path, &logging.MockLogger{})
	if err != nil {
		t.Fatalf("first Compact failed: %v", err)
	}
	if first.RemovedAccounts != 1 {
		t.Errorf("expected one removed account, got %d", first.RemovedAccounts)
	}

	afterFirst, _ := os.ReadFile(path)

	second, err := Compact(path, &logging.MockLogger{})
	if err != nil {
		t.Fatalf("second Compact failed: %v", err)
	}
	if second.RemovedAccounts != 0 || second.RemovedTransactions != 0 {
		t.Errorf("second run must remove nothing: %+v", second)
	}

	afterSecond, _ := os.ReadFile(path)
	if string(afterFirst) != string(afterSecond) {
		t.Error("second run must not change the file")
	}
}

func TestCompactMissingSnapshotIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	report, err := Compact(path, &logging.MockLogger{})
	if err == nil {
		t.Fatal("expected an explanatory error")
	}
	if report.Success {
		t.Error("report must not claim success")
	}
	if report.Message == "" {
		t.Error("report should carry the explanatory condition")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file must be created")
	}
}

func TestCompactUnparsableSnapshotLeavesFileUntouched(t *testing.T) {
	content := `{"accounts": [truncated`
	path := writeSnapshot(t, content)

	_, err := Compact(path, &logging.MockLogger{})
	if err == nil {
		t.Fatal("expected an error for an unparsable snapshot")
	}

	data, _ := os.ReadFile(path)
	if string(data) != content {
		t.Error("unparsable snapshot must not be modified")
	}
}

func TestCompactPreservesUnrelatedFields(t *testing.T) {
	path := writeSnapshot(t, `{
		"accounts": [],
		"transactions": [],
		"settings": {"theme": "dark"}
	}`)

	if _, err := Compact(path, &logging.MockLogger{}); err != nil {
		t.Fatalf("Compact failed: %v", err)
	}

	if _, err := Load(path); err != nil {
		t.Fatalf("compacted snapshot is no longer loadable: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"theme": "dark"`) {
		t.Errorf("settings field should survive compaction, got: %s", data)
	}
}
