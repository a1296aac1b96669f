// Package storage provides puzzle stores behind ports.Storage: a SQLite
// database for identifier-based lookup and a flat-directory JSON store.
//
// Stores hold unsolved puzzles only; solved boards are never persisted.
package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"svw.info/doku/internal/domain"
	"svw.info/doku/internal/grid"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound reports that no puzzle exists under the requested identifier.
var ErrNotFound = errors.New("puzzle not found")

// SQLite stores puzzles in a single-file SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates or opens the database at path and applies pragmas and
// the schema. Idempotent.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}

	// SQLite allows one writer at a time; a single pooled connection avoids
	// SQLITE_BUSY on concurrent saves.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save validates and inserts a puzzle. A missing ID is assigned a fresh UUID
// and a missing CreatedAt the current time; both are written back to p.
func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("nil puzzle")
	}
	if _, err := grid.Parse(p.Givens); err != nil {
		return fmt.Errorf("refusing to store puzzle: %w", err)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO puzzles (id, name, givens, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.Givens, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert puzzle %s: %w", p.ID, err)
	}
	return nil
}

// Load returns the puzzle stored under id, or ErrNotFound.
func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, givens, created_at FROM puzzles WHERE id = ?`, id)
	var p domain.Puzzle
	if err := row.Scan(&p.ID, &p.Name, &p.Givens, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	return &p, nil
}

// List returns metadata for all stored puzzles, oldest first, ties by id for
// a stable order.
func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM puzzles ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
