// Package db persists completed workout sets to sqlite and exposes admin
// debugging routes over the live database.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the sqlite connection used by the set store.
type DB struct {
	*sql.DB

	path string
}

// NewDB opens (or creates) the sqlite database at path and applies the base
// schema. Schema evolution beyond the base tables goes through MigrateUp.
func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps the frame loop's writer from blocking report reads.
	if _, err := conn.Exec(`PRAGMA journal_mode=WAL; PRAGMA foreign_keys=ON;`); err != nil {
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}

	_, err = conn.Exec(`
		CREATE TABLE IF NOT EXISTS workout_sets (
			set_id            INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id        TEXT NOT NULL,
			exercise_id       TEXT NOT NULL,
			side              TEXT,
			rep_count         INTEGER NOT NULL,
			avg_form_score    DOUBLE,
			p50_form_score    DOUBLE,
			p95_form_score    DOUBLE,
			duration_secs     DOUBLE,
			started_unix      DOUBLE,
			ended_unix        DOUBLE,
			created_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{DB: conn, path: path}, nil
}

// Path returns the filesystem path of the open database.
func (db *DB) Path() string {
	return db.path
}
