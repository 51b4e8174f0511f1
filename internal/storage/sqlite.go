// Package storage provides SQLite-based persistence for player settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The store is a flat string key-value table. Callers namespace their keys
// with a fixed prefix so unrelated data can share the same database file.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for settings persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetItem retrieves the string stored under key.
// The second return value reports whether the key was present.
func (s *Store) GetItem(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM settings WHERE key = ?",
		key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read key %q: %w", key, err)
	}

	return value, true, nil
}

// SetItem stores a string under key, replacing any previous value.
func (s *Store) SetItem(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write key %q: %w", key, err)
	}
	return nil
}

// RemoveItem deletes the value stored under key, if any.
func (s *Store) RemoveItem(key string) error {
	_, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("storage: cannot remove key %q: %w", key, err)
	}
	return nil
}

// ItemsWithPrefix retrieves all key-value pairs whose key starts with the
// given prefix, ordered by key.
func (s *Store) ItemsWithPrefix(prefix string) (map[string]string, error) {
	rows, err := s.db.Query(
		"SELECT key, value FROM settings WHERE key LIKE ? || '%' ORDER BY key",
		prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query keys: %w", err)
	}
	defer rows.Close()

	items := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		items[k] = v
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return items, nil
}
