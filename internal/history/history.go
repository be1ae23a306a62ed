// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package history records completed export runs in a local SQLite file.
//
// The store is caller-owned: the CLI opens it around a conversion and
// closes it afterwards. The pipeline itself never touches it.
package history

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS exports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	output TEXT NOT NULL,
	dialect TEXT NOT NULL,
	processed INTEGER NOT NULL,
	rejected INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS exports_created_at ON exports(created_at);
`

// Export is one recorded export run.
type Export struct {
	ID        int64
	Source    string
	Output    string
	Dialect   string
	Processed int
	Rejected  int
	CreatedAt time.Time
}

// Store is an export history store backed by a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens the history store at the given path, creating it and its
// schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db %q: %w", path, err)
	}

	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing history db %q: %w", path, err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing history db: %w", err)
	}
	return nil
}

// Record appends an export run to the history. The export's CreatedAt is
// used when set, otherwise the current time.
func (s *Store) Record(e *Export) error {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO exports (source, output, dialect, processed, rejected, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Source, e.Output, e.Dialect, e.Processed, e.Rejected, createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording export: %w", err)
	}
	return nil
}

// List returns the most recent exports, newest first. A limit <= 0 returns
// all exports.
func (s *Store) List(limit int) ([]*Export, error) {
	query := `SELECT id, source, output, dialect, processed, rejected, created_at
		  FROM exports ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}
	defer rows.Close()

	var exports []*Export
	for rows.Next() {
		var e Export
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Source, &e.Output, &e.Dialect, &e.Processed, &e.Rejected, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning export: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing export time %q: %w", createdAt, err)
		}
		exports = append(exports, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}
	return exports, nil
}

// Clear removes all recorded exports.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM exports`); err != nil {
		return fmt.Errorf("clearing exports: %w", err)
	}
	return nil
}
