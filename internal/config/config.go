// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Backend struct {
		URL             string `mapstructure:"url" yaml:"url"`
		TimeoutSeconds  int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
	} `mapstructure:"backend" yaml:"backend"`

	Snapshot struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"snapshot" yaml:"snapshot"`

	Ledger struct {
		CashAccountName string `mapstructure:"cash_account_name" yaml:"cash_account_name"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Store struct {
		CounterpartiesFile string `mapstructure:"counterparties_file" yaml:"counterparties_file"`
	} `mapstructure:"store" yaml:"store"`
}

// Load initializes Viper configuration with hierarchical loading: defaults,
// then an optional config file, then LEDGER_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bank-ledger")
	v.AddConfigPath(".bank-ledger")
	v.AddConfigPath(".")

	v.SetEnvPrefix("LEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("backend.url", "http://localhost:8080")
	v.SetDefault("backend.timeout_seconds", 15)
	v.SetDefault("backend.cache_ttl_seconds", 0) // caching disabled by default

	v.SetDefault("snapshot.path", "snapshot.json")

	v.SetDefault("ledger.cash_account_name", "Cash")

	v.SetDefault("store.counterparties_file", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	parsed, err := url.Parse(config.Backend.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid backend url: %s", config.Backend.URL)
	}

	if config.Backend.TimeoutSeconds < 1 || config.Backend.TimeoutSeconds > 300 {
		return fmt.Errorf("backend.timeout_seconds must be between 1 and 300, got: %d", config.Backend.TimeoutSeconds)
	}

	if config.Backend.CacheTTLSeconds < 0 {
		return fmt.Errorf("backend.cache_ttl_seconds must not be negative, got: %d", config.Backend.CacheTTLSeconds)
	}

	if strings.TrimSpace(config.Snapshot.Path) == "" {
		return fmt.Errorf("snapshot.path must not be empty")
	}

	return nil
}

// ConfigureLogging builds a logrus logger from the Config struct.
func ConfigureLogging(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
