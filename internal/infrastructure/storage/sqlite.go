package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // pure Go driver, no CGO required

	"svw.info/skyscraper/internal/domain"
)

// SQLite stores puzzles in a single table, with board and clues kept as
// JSON columns. WAL mode allows concurrent readers while the single
// writer connection holds the lock.
type SQLite struct{ db *sql.DB }

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id         TEXT PRIMARY KEY,
	seed       INTEGER NOT NULL,
	size       INTEGER NOT NULL,
	board      TEXT NOT NULL,
	clues      TEXT NOT NULL,
	name       TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);`

// NewSQLite opens (creating if needed) the database at path and ensures
// the schema exists.
func NewSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: database path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: ping database: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: %s: %w", pragma, err)
		}
	}
	// SQLite handles concurrency best with a single writer.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("storage: invalid puzzle: missing ID")
	}
	board, err := json.Marshal(p.Board)
	if err != nil {
		return err
	}
	clues, err := json.Marshal(p.Clues)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, seed, size, board, clues, name, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			seed = excluded.seed, size = excluded.size,
			board = excluded.board, clues = excluded.clues,
			name = excluded.name, notes = excluded.notes,
			created_at = excluded.created_at`,
		p.ID, int64(p.Seed), p.Size, string(board), string(clues), p.Name, p.Notes, p.CreatedAt)
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seed, size, board, clues, name, notes, created_at
		FROM puzzles WHERE id = ?`, id)
	var p domain.Puzzle
	var seed int64
	var board, clues string
	if err := row.Scan(&p.ID, &seed, &p.Size, &board, &clues, &p.Name, &p.Notes, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Seed = uint64(seed)
	if err := json.Unmarshal([]byte(board), &p.Board); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(clues), &p.Clues); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, size, created_at FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.Size, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
