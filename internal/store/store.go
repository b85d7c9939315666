// Package store persists the demo world and the command history in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/store/migrations"
)

// Store wraps a SQLite database connection.
// It implements domain.WorldStore and domain.HistoryStore.
type Store struct {
	db   *sql.DB
	path string
}

// timeLayout is how timestamps are stored.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// New opens the database at path and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Each connection to :memory: is a separate database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

func dsn(path string) string {
	if path == ":memory:" {
		return path
	}
	return "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"
}

// NewWithDB creates a Store from an existing, migrated database connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file, empty for stores built with NewWithDB.
func (s *Store) Path() string {
	return s.path
}

// SchemaVersion returns the applied migration version.
func (s *Store) SchemaVersion() (int, error) {
	return migrations.CurrentVersion(s.db)
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

var (
	_ domain.WorldStore   = (*Store)(nil)
	_ domain.HistoryStore = (*Store)(nil)
)
