// Package store persists the account snapshot as a JSON file. Loading is
// best-effort: a missing, unreadable or malformed file falls back to the
// default snapshot, with the cause returned so the caller can log it.
// Saving is atomic (write to a temp file, then rename) so an interrupted
// write never corrupts the previous snapshot.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/teller-cli/teller/internal/constants"
	"github.com/teller-cli/teller/internal/money"
)

// DefaultSnapshot is the state used when no persisted snapshot can be
// loaded.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Balance:        constants.DefaultBalance,
		Pin:            constants.DefaultPin,
		Transactions:   nil,
		DailyWithdrawn: "0.00",
	}
}

// Load reads the snapshot at path. On any failure it returns the default
// snapshot together with the error that forced the fallback; a nil error
// with the default snapshot means the file simply does not exist yet.
func Load(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSnapshot(), nil
		}
		return DefaultSnapshot(), fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	var snap Snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return DefaultSnapshot(), fmt.Errorf("failed to decode data file: %w", err)
	}

	if err := validateSnapshot(&snap); err != nil {
		return DefaultSnapshot(), fmt.Errorf("corrupt data file: %w", err)
	}

	return snap, nil
}

// Save writes the snapshot atomically.
func Save(path string, snap Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("can not create data directory %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp data file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp data file: %w", err)
	}

	return os.Rename(tmp, path)
}

// validateSnapshot checks every decimal field parses, so a half-written
// or hand-edited file falls back to defaults instead of poisoning the
// session.
func validateSnapshot(snap *Snapshot) error {
	balance, err := money.FromString(snap.Balance)
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	if balance.IsNegative() {
		return fmt.Errorf("balance is negative: %s", snap.Balance)
	}
	if _, err := money.FromString(snap.DailyWithdrawn); err != nil {
		return fmt.Errorf("daily_withdrawn: %w", err)
	}
	for i, tx := range snap.Transactions {
		if _, err := money.FromString(tx.Amount); err != nil {
			return fmt.Errorf("transaction #%d amount: %w", i+1, err)
		}
		if _, err := money.FromString(tx.Balance); err != nil {
			return fmt.Errorf("transaction #%d balance: %w", i+1, err)
		}
	}
	return nil
}
