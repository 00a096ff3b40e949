package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/PraloyG18/Banking-Application/internal/bank"
	"github.com/PraloyG18/Banking-Application/internal/config"
	"github.com/PraloyG18/Banking-Application/internal/directory"
	"github.com/PraloyG18/Banking-Application/internal/metrics"
	"github.com/PraloyG18/Banking-Application/internal/snapshot"
)

const configFile = "bankapp.yaml"

// openBank loads the config and state snapshot from a data directory and
// returns a ready bank. A missing snapshot means a fresh bank.
func openBank(dir string) (*bank.Service, *config.Config, error) {
	cfg, err := config.Load(filepath.Join(dir, configFile))
	if err != nil {
		return nil, nil, err
	}

	dirSvc := directory.NewService(cfg.Ledger.AccountPrefix, cfg.Ledger.AccountWidth)
	svc := bank.NewService(dirSvc, metrics.NewCollector())

	snap, err := snapshot.Load(filepath.Join(dir, cfg.Ledger.SnapshotFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Fresh bank.
	case err != nil:
		return nil, nil, err
	default:
		if err := svc.Restore(snap); err != nil {
			return nil, nil, fmt.Errorf("restoring state: %w", err)
		}
	}
	return svc, cfg, nil
}

// saveBank writes the bank state back to the data directory's snapshot.
func saveBank(dir string, cfg *config.Config, svc *bank.Service) error {
	return snapshot.Save(filepath.Join(dir, cfg.Ledger.SnapshotFile), svc.Snapshot())
}

// parseAmount parses a decimal money amount from the command line.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

// dataDirFlag registers the shared --dir flag on a command.
func dataDirFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVar(dir, "dir", ".", "bank data directory")
}
