// Package journal keeps an electronic audit journal of committed
// transactions in a local sqlite database. The journal is best-effort
// observability for the operator: failures to open or write it are
// reported to the caller for logging and never block a transaction. The
// JSON snapshot remains the only source of truth for account state.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/teller-cli/teller/internal/atm"
	"github.com/teller-cli/teller/internal/money"
)

type Journal struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database at dbPath and runs
// the embedded migrations.
func Open(dbPath string, migrationsFS fs.FS) (*Journal, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create journal directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("can not open journal database : %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("can not connect with journal database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		return nil, fmt.Errorf("failed to migrate journal database : %w", err)
	}

	return &Journal{db: db}, nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

// RecordEntry appends one committed transaction to the journal.
func (j *Journal) RecordEntry(sessionID string, r atm.Record) error {
	_, err := j.db.Exec(`
		INSERT INTO journal_entries (session_id, type, amount, balance, created_at)
		VALUES (?, ?, ?, ?, ?);
	`, sessionID, r.Type, r.Amount.String(), r.Balance.String(), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to insert journal entry : %w", err)
	}
	return nil
}

// EntriesBySession returns the journal entries recorded under a session,
// oldest first.
func (j *Journal) EntriesBySession(sessionID string) ([]atm.Record, error) {
	rows, err := j.db.Query(`
		SELECT type, amount, balance
		FROM journal_entries
		WHERE session_id = ?
		ORDER BY id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	var records []atm.Record
	for rows.Next() {
		var r atm.Record
		var amount, balance string
		if err := rows.Scan(&r.Type, &amount, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		if r.Amount, err = parseAmount(amount); err != nil {
			return nil, err
		}
		if r.Balance, err = parseAmount(balance); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func parseAmount(raw string) (money.Amount, error) {
	a, err := money.FromString(raw)
	if err != nil {
		return money.Amount{}, fmt.Errorf("bad journal amount: %w", err)
	}
	return a, nil
}
