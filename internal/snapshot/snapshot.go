package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/PraloyG18/Banking-Application/internal/model"
)

// Meta records how and when a snapshot was produced, so the format can be
// migrated later.
type Meta struct {
	Storage   string    `json:"storage"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is the full serialized state of a bank instance: directory,
// allocator sequence, accounts and transaction log.
type Snapshot struct {
	Meta         Meta                `json:"_meta"`
	AccountSeq   int64               `json:"account_seq"`
	Customers    []model.Customer    `json:"customers"`
	Accounts     []model.Account     `json:"accounts"`
	Transactions []model.Transaction `json:"transactions"`
}

const (
	storageKind = "json_snapshot"
	version     = 1
)

// Load reads a snapshot from disk. Callers treat a missing file as a fresh
// bank (check with errors.Is(err, fs.ErrNotExist)).
func Load(path string) (Snapshot, error) {
	var snap Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return snap, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Save writes the snapshot atomically: the state is written to a temp file
// which then renames over the target, so an interrupted write never corrupts
// the previous snapshot.
func Save(path string, snap Snapshot) error {
	snap.Meta = Meta{Storage: storageKind, Version: version, Timestamp: time.Now()}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating snapshot temp file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing snapshot temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}
