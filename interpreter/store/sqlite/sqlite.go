// Package sqlite is the SQLite implementation of interpreter.Store.
//
// Methods run against s.conn, which is the *sql.DB in autocommit mode
// or a *sql.Tx inside RunInTransaction. Single-statement methods are
// atomic on their own; callers needing atomicity across calls use
// RunInTransaction.
//
// All queries are prepared once at open time. Inside a transaction the
// master statements are bound to the *sql.Tx with tx.StmtContext, which
// does not re-parse the SQL.
//
// The database is opened in WAL mode with foreign keys enforced, so
// deleting a context cascades to its job history.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/frobware/go-xdna/interpreter"
)

//go:embed schema.sql
var schemaSQL string

// msec formats a duration as milliseconds with 3 decimal places.
func msec(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000)
}

type dbConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqliteStore struct {
	db     *sql.DB
	conn   dbConn
	logger *slog.Logger
	stmts  statements
}

// New opens (creating if needed) the database at dbPath.
func New(ctx context.Context, dbPath string, logger *slog.Logger) (interpreter.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := sql.Open(driverName, dsn(dbPath, filePragmas))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return open(ctx, db, logger.With("component", "store", "db", dbPath))
}

// NewInMemory returns a private in-memory store for tests.
func NewInMemory(ctx context.Context, logger *slog.Logger) (interpreter.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open(driverName, dsn(":memory:", memoryPragmas))
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	// Every pooled connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	return open(ctx, db, logger.With("component", "store", "db", ":memory:"))
}

func open(ctx context.Context, db *sql.DB, logger *slog.Logger) (*sqliteStore, error) {
	s := &sqliteStore{db: db, conn: db, logger: logger}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := s.stmts.prepare(ctx, db); err != nil {
		s.stmts.close()
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}
	logger.Info("opened database")
	return s, nil
}

// Close closes the prepared statements and the database.
func (s *sqliteStore) Close() error {
	s.stmts.close()
	return s.db.Close()
}

// RunInTransaction runs fn against a store bound to a new transaction.
func (s *sqliteStore) RunInTransaction(ctx context.Context, fn func(interpreter.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	txStore := &sqliteStore{
		db:     s.db,
		conn:   tx,
		logger: s.logger,
		stmts:  s.stmts.bind(ctx, tx),
	}
	if err := fn(txStore); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *sqliteStore) logSQL(stmt string, start time.Time, err error, args ...any) {
	if err != nil {
		s.logger.Debug("sql", "stmt", stmt, "args", args, "duration_ms", msec(time.Since(start)), "error", err)
		return
	}
	s.logger.Debug("sql", "stmt", stmt, "args", args, "duration_ms", msec(time.Since(start)))
}
