package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fjacquet/bank-ledger/cmd/compact"
	"fjacquet/bank-ledger/cmd/fetch"
	"fjacquet/bank-ledger/cmd/name"
	"fjacquet/bank-ledger/cmd/root"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize the root command and flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(fetch.Cmd)
	root.Cmd.AddCommand(compact.Cmd)
	root.Cmd.AddCommand(name.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances created before the configuration is loaded
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LEDGER_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
