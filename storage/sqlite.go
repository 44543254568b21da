package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteSlot stores values in a single-table SQLite database.
type SQLiteSlot struct {
	db *sql.DB
}

// NewSQLiteSlot opens (or creates) the SQLite database at path, ensures the
// data directory exists, and creates the table.
func NewSQLiteSlot(path string) (*SQLiteSlot, error) {
	if path == "" {
		path = "data/weddingnanny.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite: %w", err)
	}
	// WAL lets the public site keep reading while an admin save is written;
	// busy_timeout makes concurrent writers wait instead of failing.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: sqlite pragmas: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &SQLiteSlot{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: sqlite schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteSlot) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS slots (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at TEXT NOT NULL
);
`)
	return err
}

// Get returns the value stored under key.
func (s *SQLiteSlot) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Put replaces the value stored under key.
func (s *SQLiteSlot) Put(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO slots (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Close closes the underlying database connection.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
