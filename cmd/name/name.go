// Package name handles the counterparty display-name override command.
package name

import (
	"github.com/spf13/cobra"

	"fjacquet/bank-ledger/cmd/root"
	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/store"
)

// Cmd represents the name command.
var Cmd = &cobra.Command{
	Use:   "name <raw> <display>",
	Short: "Record a counterparty display-name override",
	Long: `Store a preferred display name for a raw counterparty string. The fetch
command applies the overrides after counterparty resolution.`,
	Args: cobra.ExactArgs(2),
	Run:  nameFunc,
}

func nameFunc(cmd *cobra.Command, args []string) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	s := store.NewNameStore(root.Cfg.Store.CounterpartiesFile, logger)
	if err := s.Set(args[0], args[1]); err != nil {
		root.Log.Fatalf("Failed to save override: %v", err)
	}
	root.Log.Infof("Will display %q as %q", args[0], args[1])
}
