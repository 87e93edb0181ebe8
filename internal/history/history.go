// Package history persists past translations for the interactive
// frontends. The engine itself does no I/O; recording happens at the
// application layer after each call.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one recorded translation.
type Entry struct {
	ID        int64
	Input     string
	Output    string
	CreatedAt time.Time
}

// Store keeps translation history in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens the history database at path, creating the schema if
// needed. Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimPrefix(path, "sqlite://")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	// WAL mode for better concurrent read performance
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Add records one translation and returns the stored entry.
func (s *Store) Add(ctx context.Context, input, output string) (Entry, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO translations (input, output)
		VALUES (?, ?)
	`, input, output)
	if err != nil {
		return Entry{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Entry{}, err
	}

	return s.Get(ctx, id)
}

// Get returns the entry with the given id.
func (s *Store) Get(ctx context.Context, id int64) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, input, output, created_at
		FROM translations
		WHERE id = ?
	`, id)

	var e Entry
	if err := row.Scan(&e.ID, &e.Input, &e.Output, &e.CreatedAt); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input, output, created_at
		FROM translations
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Input, &e.Output, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the total number of recorded translations.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM translations
	`).Scan(&count)
	return count, err
}
