// Package fetch handles the ledger assembly command.
package fetch

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/bank-ledger/cmd/root"
	"fjacquet/bank-ledger/internal/backend"
	"fjacquet/bank-ledger/internal/cache"
	"fjacquet/bank-ledger/internal/export"
	"fjacquet/bank-ledger/internal/ledger"
	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/store"
)

// Cmd represents the fetch command.
var Cmd = &cobra.Command{
	Use:   "fetch",
	Short: "Assemble the canonical ledger from the aggregator",
	Long: `Fetch the bank accounts and the cash account from the backend, normalize
and de-duplicate them, and print the assembled ledger.`,
	Run: fetchFunc,
}

var output string

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Write the ledger's transactions as CSV to this file")
}

func fetchFunc(cmd *cobra.Command, args []string) {
	cfg := root.Cfg
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	client := backend.NewHTTPClient(cfg.Backend.URL,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second, logger)
	if ttl := cfg.Backend.CacheTTLSeconds; ttl > 0 {
		client.SetCache(cache.New(cache.NewMemoryStore(), time.Duration(ttl)*time.Second))
	}

	asm := ledger.NewAssembler(client, logger)
	asm.SetCashAccountName(cfg.Ledger.CashAccountName)

	names, err := store.NewNameStore(cfg.Store.CounterpartiesFile, logger).Load()
	if err != nil {
		logger.WithError(err).Warn("ignoring unreadable counterparty overrides")
	} else {
		asm.SetDisplayNames(names)
	}

	accounts, err := asm.Assemble(context.Background())
	if err != nil {
		root.Log.Fatalf("Failed to assemble ledger: %v", err)
	}

	for _, acct := range accounts {
		root.Log.Infof("%s (%s) %s: %s, %d transactions",
			acct.Name, acct.Mask, acct.Kind, acct.Balance.String(), len(acct.Transactions))
	}

	if output != "" {
		if err := export.WriteLedgerFile(accounts, output); err != nil {
			root.Log.Fatalf("Failed to write CSV: %v", err)
		}
		root.Log.Infof("Ledger written to %s", output)
	}
}
