// Package scores keeps finished runs and the best score in SQLite.
package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one finished game.
type Run struct {
	Score    int
	Seed     uint64
	Ticks    int
	Duration time.Duration
	Cause    string
	EndedAt  time.Time
}

// Store persists runs. Open returns the SQLite implementation; Nop is used
// when persistence is disabled.
type Store interface {
	Record(ctx context.Context, r Run) error
	Best(ctx context.Context) (int, error)
	Recent(ctx context.Context, n int) ([]Run, error)
	Close() error
}

type SQLiteStore struct {
	db *sql.DB
}

func Open(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("sqlite pragma %q: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	score       INTEGER NOT NULL,
	seed        TEXT    NOT NULL,
	ticks       INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	cause       TEXT    NOT NULL,
	ended_at    TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_score ON runs(score DESC);
`)
	if err != nil {
		return fmt.Errorf("sqlite schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Record(ctx context.Context, r Run) error {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(score, seed, ticks, duration_ms, cause, ended_at) VALUES(?, ?, ?, ?, ?, ?)`,
		r.Score, strconv.FormatUint(r.Seed, 10), r.Ticks, r.Duration.Milliseconds(), r.Cause,
		r.EndedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Best(ctx context.Context) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(score) FROM runs`).Scan(&best); err != nil {
		return 0, fmt.Errorf("best score: %w", err)
	}
	return int(best.Int64), nil
}

// Recent returns up to n runs, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, n int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT score, seed, ticks, duration_ms, cause, ended_at FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r     Run
			seed  string
			durMS int64
			ended string
		)
		if err := rows.Scan(&r.Score, &seed, &r.Ticks, &durMS, &r.Cause, &ended); err != nil {
			return nil, err
		}
		if r.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("recent runs: seed %q: %w", seed, err)
		}
		r.Duration = time.Duration(durMS) * time.Millisecond
		if r.EndedAt, err = time.Parse(time.RFC3339Nano, ended); err != nil {
			return nil, fmt.Errorf("recent runs: ended_at %q: %w", ended, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Nop is a Store that remembers only the best score of this session.
type Nop struct {
	best int
}

func (n *Nop) Record(_ context.Context, r Run) error {
	if r.Score > n.best {
		n.best = r.Score
	}
	return nil
}

func (n *Nop) Best(context.Context) (int, error)          { return n.best, nil }
func (n *Nop) Recent(context.Context, int) ([]Run, error) { return nil, nil }
func (n *Nop) Close() error                               { return nil }
