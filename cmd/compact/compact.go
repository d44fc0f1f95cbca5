// Package compact handles the offline snapshot compaction command.
package compact

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/bank-ledger/cmd/root"
	"fjacquet/bank-ledger/internal/ledgererror"
	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/snapshot"
)

// Cmd represents the compact command.
var Cmd = &cobra.Command{
	Use:   "compact",
	Short: "De-duplicate the offline snapshot in place",
	Long: `Run the identity resolver and deduplicating merger over the persisted
snapshot, rewriting its accounts and transactions arrays. Safe to run
repeatedly; a missing or unparsable snapshot is left untouched.`,
	Run: compactFunc,
}

func compactFunc(cmd *cobra.Command, args []string) {
	path := root.SnapshotPath
	if path == "" {
		path = root.Cfg.Snapshot.Path
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	report, err := snapshot.Compact(path, logger)

	out, marshalErr := json.MarshalIndent(report, "", "  ")
	if marshalErr == nil {
		fmt.Println(string(out))
	}

	if err != nil {
		var snapErr *ledgererror.SnapshotError
		if errors.As(err, &snapErr) {
			// No-op condition, already reported; nothing was written.
			return
		}
		root.Log.Fatalf("Compaction failed: %v", err)
	}
}
