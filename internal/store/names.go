// Package store provides functionality for storing and retrieving
// application data kept outside the snapshot, currently the counterparty
// display-name overrides.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fjacquet/bank-ledger/internal/logging"
)

// DefaultNamesFile is used when no path is configured.
const DefaultNamesFile = "counterparties.yaml"

// NameStore manages the YAML file mapping raw counterparty names (as they
// appear in aggregator payloads) to preferred display names.
type NameStore struct {
	path   string
	logger logging.Logger
}

// NewNameStore creates a store for the given file path. An empty path falls
// back to DefaultNamesFile in the working directory.
func NewNameStore(path string, logger logging.Logger) *NameStore {
	if path == "" {
		path = DefaultNamesFile
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &NameStore{path: path, logger: logger}
}

// Load reads the override mappings. A missing file yields an empty map, not
// an error: overrides are optional.
func (s *NameStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("counterparty overrides file not found",
				logging.Field{Key: logging.FieldFile, Value: s.path})
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading counterparty overrides: %w", err)
	}

	var mappings map[string]string
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("parsing counterparty overrides: %w", err)
	}
	if mappings == nil {
		mappings = map[string]string{}
	}

	s.logger.Debug("loaded counterparty overrides",
		logging.Field{Key: logging.FieldCount, Value: len(mappings)})
	return mappings, nil
}

// Set records one override and persists the store.
func (s *NameStore) Set(raw, display string) error {
	mappings, err := s.Load()
	if err != nil {
		return err
	}
	mappings[raw] = display
	return s.Save(mappings)
}

// Save writes the override mappings, creating the parent directory when
// necessary.
func (s *NameStore) Save(mappings map[string]string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	data, err := yaml.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("marshaling counterparty overrides: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing counterparty overrides: %w", err)
	}

	s.logger.Debug("saved counterparty overrides",
		logging.Field{Key: logging.FieldCount, Value: len(mappings)})
	return nil
}
