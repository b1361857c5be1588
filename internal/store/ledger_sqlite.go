package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// SyncRun is the audit record of one sync.
type SyncRun struct {
	RunID        string
	StartedAt    time.Time
	From         time.Time
	To           time.Time
	Fetched      int
	Added        int
	Deduplicated int
}

// SyncRunRecorder is implemented by stores that keep a sync history.
type SyncRunRecorder interface {
	RecordSyncRun(ctx context.Context, run SyncRun) error
}

// SyncHistory is implemented by stores that can list recorded sync runs.
type SyncHistory interface {
	SyncRuns(ctx context.Context) ([]SyncRun, error)
}

// SQLiteLedgerStore keeps the ledger in a SQLite database. Record order is
// kept in the position column.
type SQLiteLedgerStore struct {
	db     *sql.DB
	path   string
	logger logging.Logger
}

// NewSQLiteLedgerStore opens (creating if needed) and migrates the database.
func NewSQLiteLedgerStore(dbPath string, logger logging.Logger) (*SQLiteLedgerStore, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(dbPath)); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.WithField(logging.FieldFile, dbPath).Debug("Opened SQLite ledger")
	return &SQLiteLedgerStore{db: db, path: dbPath, logger: logger}, nil
}

// Close releases the database handle.
func (s *SQLiteLedgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the ledger in stored order.
func (s *SQLiteLedgerStore) Load(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, description, amount, category, source, COALESCE(external_id, '')
		FROM transactions
		ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	ledger := []models.Transaction{}
	for rows.Next() {
		var day, description, amount, category, source, externalID string
		if err := rows.Scan(&day, &description, &amount, &category, &source, &externalID); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		date, err := dateutils.ParseDay(day)
		if err != nil {
			return nil, &validation.ValidationError{Field: "date", Value: day, Reason: err.Error()}
		}
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, &validation.ValidationError{Field: "amount", Value: amount, Reason: "not a decimal number"}
		}
		ledger = append(ledger, models.NewTransaction(date, description, value, category, source, externalID))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	s.logger.WithField(logging.FieldCount, len(ledger)).Debug("Loaded ledger from SQLite")
	return ledger, nil
}

// Save replaces the stored ledger with the snapshot in one transaction.
func (s *SQLiteLedgerStore) Save(ctx context.Context, ledger []models.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (position, day, description, amount, type, category, source, external_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range ledger {
		var externalID interface{}
		if t.HasExternalID() {
			externalID = t.ExternalID
		}
		if _, err := stmt.ExecContext(ctx, i, t.Day(), t.Description, t.Amount.String(),
			string(models.TypeForAmount(t.Amount)), t.Category, t.Source, externalID); err != nil {
			return fmt.Errorf("insert transaction %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.WithField(logging.FieldCount, len(ledger)).Info("Saved ledger to SQLite")
	return nil
}

// RecordSyncRun stores the outcome of a sync.
func (s *SQLiteLedgerStore) RecordSyncRun(ctx context.Context, run SyncRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_runs (run_id, started_at, window_from, window_to, fetched, added, deduplicated)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.StartedAt.UTC().Format(time.RFC3339),
		dateutils.ToISODate(run.From),
		dateutils.ToISODate(run.To),
		run.Fetched, run.Added, run.Deduplicated,
	)
	if err != nil {
		return fmt.Errorf("record sync run: %w", err)
	}
	return nil
}

// SyncRuns returns the recorded sync runs, oldest first. Runs started in the
// same second keep their insertion order.
func (s *SQLiteLedgerStore) SyncRuns(ctx context.Context) ([]SyncRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, started_at, window_from, window_to, fetched, added, deduplicated
		FROM sync_runs
		ORDER BY started_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query sync runs: %w", err)
	}
	defer rows.Close()

	var runs []SyncRun
	for rows.Next() {
		var r SyncRun
		var started, from, to string
		if err := rows.Scan(&r.RunID, &started, &from, &to, &r.Fetched, &r.Added, &r.Deduplicated); err != nil {
			return nil, fmt.Errorf("scan sync run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		r.From, _ = dateutils.ParseDay(from)
		r.To, _ = dateutils.ParseDay(to)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
