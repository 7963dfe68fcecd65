package store

import (
	"context"
	"time"
)

// SessionRecord summarizes one simulation session.
type SessionRecord struct {
	ID             string
	Code           string
	Seed           int64
	StartedAt      time.Time
	EndedAt        *time.Time
	Ticks          uint64
	MarkerCaptures int
}

// SessionStore defines the interface for persistent session summaries.
type SessionStore interface {
	// CreateSession inserts a new session at start time.
	CreateSession(ctx context.Context, rec SessionRecord) error
	// FinishSession stamps the end time and final counters.
	FinishSession(ctx context.Context, id string, ticks uint64, markerCaptures int) error
	// FindByCode looks up the most recent session with the given join code.
	FindByCode(ctx context.Context, code string) (*SessionRecord, error)
	// Close releases database resources.
	Close() error
}
