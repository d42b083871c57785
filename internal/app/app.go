package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/teller-cli/teller/internal/atm"
	"github.com/teller-cli/teller/internal/config"
	"github.com/teller-cli/teller/internal/journal"
	"github.com/teller-cli/teller/internal/store"
)

// App wires one terminal session: the account restored from the snapshot,
// the engine and authenticator over it, the best-effort audit journal and
// the operator logger.
type App struct {
	Account   *atm.Account
	Ledger    *atm.Ledger
	Engine    *atm.Engine
	Auth      *atm.Authenticator
	Journal   *journal.Journal
	Logger    *slog.Logger
	SessionID string

	dataPath string
}

// NewApp loads persisted state, opens the journal and returns the wired
// App plus its cleanup func. Load and journal failures fall back to
// defaults with a logged warning; only an unusable data directory is
// fatal.
func NewApp(cfg *config.Config, migrationsFS fs.FS) (*App, func(), error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	sessionID := uuid.NewString()
	logger = logger.With("session_id", sessionID)

	dataPath := cfg.Data.Path
	if dataPath == "" {
		appDir, err := getAppDataDir()
		if err != nil {
			return nil, nil, err
		}
		dataPath = filepath.Join(appDir, "teller.json")
	}

	snap, err := store.Load(dataPath)
	if err != nil {
		logger.Warn("failed to load data file, starting with defaults",
			"path", dataPath, "error", err.Error())
	}

	account, ledger, err := store.Restore(snap)
	if err != nil {
		logger.Warn("snapshot restore failed, starting with defaults", "error", err.Error())
		account = atm.NewDefaultAccount()
		ledger = atm.NewLedger()
	}

	var jnl *journal.Journal
	if cfg.Journal.Enabled {
		journalPath := cfg.Journal.Path
		if journalPath == "" {
			appDir, err := getAppDataDir()
			if err == nil {
				journalPath = filepath.Join(appDir, "journal.db")
			}
		}
		if journalPath != "" {
			jnl, err = journal.Open(journalPath, migrationsFS)
			if err != nil {
				logger.Warn("audit journal unavailable", "path", journalPath, "error", err.Error())
				jnl = nil
			}
		}
	}

	application := &App{
		Account:   account,
		Ledger:    ledger,
		Engine:    atm.NewEngine(account, ledger),
		Auth:      atm.NewAuthenticator(account),
		Journal:   jnl,
		Logger:    logger,
		SessionID: sessionID,
		dataPath:  dataPath,
	}

	cleanup := func() {
		if jnl != nil {
			if err := jnl.Close(); err != nil {
				logger.Warn("error closing journal", "error", err.Error())
			}
		}
	}

	return application, cleanup, nil
}

// Save persists the current account state and history. Failures are
// logged and returned; the in-memory session stays valid either way.
func (a *App) Save() error {
	if err := store.Save(a.dataPath, store.NewSnapshot(a.Account, a.Ledger)); err != nil {
		a.Logger.Error("failed to save data file", "path", a.dataPath, "error", err.Error())
		return err
	}
	return nil
}

// RecordJournal appends the most recent ledger record to the audit
// journal, best-effort.
func (a *App) RecordJournal() {
	if a.Journal == nil {
		return
	}
	recent := a.Ledger.Recent(1)
	if len(recent) == 0 {
		return
	}
	if err := a.Journal.RecordEntry(a.SessionID, recent[0]); err != nil {
		a.Logger.Warn("failed to write journal entry", "error", err.Error())
	}
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".teller"), nil
	}

	return filepath.Join(configDir, "teller"), nil
}
