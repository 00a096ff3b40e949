package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bankapp.yaml configuration.
type Config struct {
	Bank   BankConfig   `yaml:"bank"`
	Ledger LedgerConfig `yaml:"ledger"`
}

// BankConfig identifies the institution.
type BankConfig struct {
	Name string `yaml:"name"`
}

// LedgerConfig controls account-number allocation and where the state
// snapshot lives, relative to the data directory.
type LedgerConfig struct {
	AccountPrefix string `yaml:"account_prefix"`
	AccountWidth  int    `yaml:"account_width"`
	SnapshotFile  string `yaml:"snapshot_file"`
}

// Load reads a bankapp.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new bank.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{
			Name: bankName,
		},
		Ledger: LedgerConfig{
			AccountPrefix: "AC",
			AccountWidth:  6,
			SnapshotFile:  "bank-state.json",
		},
	}
}
