package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL,
    seed BIGINT NOT NULL,
    started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    ended_at TIMESTAMPTZ,
    ticks BIGINT NOT NULL DEFAULT 0,
    marker_captures INT NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_sessions_code ON sessions(code);
`

// PostgresStore implements SessionStore using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// CreateSession inserts a new session at start time.
func (s *PostgresStore) CreateSession(ctx context.Context, rec SessionRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sessions (id, code, seed, started_at) VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.Code, rec.Seed, rec.StartedAt)
	return err
}

// FinishSession stamps the end time and final counters.
func (s *PostgresStore) FinishSession(ctx context.Context, id string, ticks uint64, markerCaptures int) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE sessions SET ended_at = $2, ticks = $3, marker_captures = $4 WHERE id = $1`,
		id, time.Now().UTC(), int64(ticks), markerCaptures)
	return err
}

// FindByCode looks up the most recent session with the given join code.
func (s *PostgresStore) FindByCode(ctx context.Context, code string) (*SessionRecord, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, code, seed, started_at, ended_at, ticks, marker_captures
		 FROM sessions WHERE code = $1 ORDER BY started_at DESC LIMIT 1`, code)

	var rec SessionRecord
	var ticks int64
	err := row.Scan(&rec.ID, &rec.Code, &rec.Seed, &rec.StartedAt, &rec.EndedAt,
		&ticks, &rec.MarkerCaptures)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.Ticks = uint64(ticks)
	return &rec, nil
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
