// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/bank-ledger/internal/config"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "bank-ledger",
		Short: "Reconcile bank aggregator data into one canonical ledger.",
		Long: `bank-ledger normalizes heterogeneous bank account and transaction payloads
into a single de-duplicated ledger and maintains the offline JSON snapshot.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bank-ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)
		},
	}

	// SnapshotPath overrides the configured snapshot location when set.
	SnapshotPath string
)

// Init initializes the root command and all flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SnapshotPath, "snapshot", "s", "", "Snapshot file (overrides configuration)")
}
