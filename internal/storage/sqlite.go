package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLite stores saves in a SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLite, error) {
	resolved, err := expandPath(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLite{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLite) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			name TEXT PRIMARY KEY,
			record TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Names returns all save names, sorted.
func (s *SQLite) Names() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM saves ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return names, nil
}

// Get returns the record stored under name.
func (s *SQLite) Get(name string) (string, error) {
	var record string
	err := s.db.QueryRow(`SELECT record FROM saves WHERE name = ?`, name).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &SaveNotFoundError{Name: name}
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query save: %w", err)
	}
	return record, nil
}

// Put stores record under name, replacing any previous record.
func (s *SQLite) Put(name, record string) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (name, record, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET record = excluded.record, updated_at = CURRENT_TIMESTAMP`,
		name, record,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %q: %w", name, err)
	}
	return nil
}

// Delete removes the save called name.
func (s *SQLite) Delete(name string) error {
	result, err := s.db.Exec(`DELETE FROM saves WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return &SaveNotFoundError{Name: name}
	}
	return nil
}

var _ SlotStore = (*SQLite)(nil)
