// Package audit records every state-changing operation in a capped,
// newest-first trail.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medcore/front-desk-backend/internal/store"
)

// MaxEntries caps the trail; older entries fall off the tail.
const MaxEntries = 100

// Entry is one immutable audit record.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}

type Logger struct {
	db *store.DB
}

func NewLogger(db *store.DB) *Logger {
	return &Logger{db: db}
}

// Append prepends a fresh entry and truncates the trail to MaxEntries before
// persisting.
func (l *Logger) Append(ctx context.Context, actor, action, details string) error {
	entries, err := store.Load[Entry](ctx, l.db, store.AuditLogs)
	if err != nil {
		return fmt.Errorf("load audit log: %w", err)
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Actor:     actor,
		Action:    action,
		Details:   details,
	}

	entries = append([]Entry{entry}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	if err := store.Save(ctx, l.db, store.AuditLogs, entries); err != nil {
		return fmt.Errorf("persist audit log: %w", err)
	}
	return nil
}

// List returns the full capped trail, newest first.
func (l *Logger) List(ctx context.Context) ([]Entry, error) {
	return store.Load[Entry](ctx, l.db, store.AuditLogs)
}
