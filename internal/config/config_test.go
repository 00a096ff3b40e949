package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Bank")
	cfg.Ledger.AccountPrefix = "XB"
	cfg.Ledger.AccountWidth = 8

	path := filepath.Join(t.TempDir(), "bankapp.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Bank.Name, got.Bank.Name)
	assert.Equal(t, "XB", got.Ledger.AccountPrefix)
	assert.Equal(t, 8, got.Ledger.AccountWidth)
	assert.Equal(t, cfg.Ledger.SnapshotFile, got.Ledger.SnapshotFile)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Bank")

	assert.Equal(t, "My Bank", cfg.Bank.Name)
	assert.Equal(t, "AC", cfg.Ledger.AccountPrefix)
	assert.Equal(t, 6, cfg.Ledger.AccountWidth)
	assert.Equal(t, "bank-state.json", cfg.Ledger.SnapshotFile)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Bank")
	path := filepath.Join(t.TempDir(), "bankapp.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Bank")
	assert.Contains(t, contents, "account_prefix: AC")
	assert.Contains(t, contents, "account_width: 6")
	assert.Contains(t, contents, "snapshot_file: bank-state.json")
}
