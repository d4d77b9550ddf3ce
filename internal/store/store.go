// Package store maps named collections onto key/value slots. A collection is
// one JSON array persisted as a whole on every write; last writer wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/medcore/front-desk-backend/internal/kv"
)

// Collection names the four logical record sets.
type Collection string

const (
	Users        Collection = "users"
	Doctors      Collection = "doctors"
	Appointments Collection = "appointments"
	AuditLogs    Collection = "audit_logs"
)

// All lists every collection the store manages.
var All = []Collection{Users, Doctors, Appointments, AuditLogs}

const keyPrefix = "medcore:v3:"

// DB owns all collection access. Callers never touch the kv layer directly.
type DB struct {
	kv kv.Store
}

func New(store kv.Store) *DB {
	return &DB{kv: store}
}

func (db *DB) key(c Collection) string {
	return keyPrefix + string(c)
}

// Has reports whether anything has ever been written to the collection.
func (db *DB) Has(ctx context.Context, c Collection) (bool, error) {
	_, err := db.kv.Get(ctx, db.key(c))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Reset drops every collection. Used by the seed command before reloading.
func (db *DB) Reset(ctx context.Context) error {
	for _, c := range All {
		if err := db.kv.Delete(ctx, db.key(c)); err != nil {
			return fmt.Errorf("reset %s: %w", c, err)
		}
	}
	return nil
}

// Ping reports backend reachability for health checks.
func (db *DB) Ping(ctx context.Context) error {
	return db.kv.Ping(ctx)
}

// Load returns the full ordered record set for the collection. An absent slot
// or unparseable stored data loads as an empty set rather than an error;
// only backend I/O failures propagate.
func Load[T any](ctx context.Context, db *DB, c Collection) ([]T, error) {
	raw, err := db.kv.Get(ctx, db.key(c))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("load %s: %w", c, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save replaces the entire stored record set for the collection.
func Save[T any](ctx context.Context, db *DB, c Collection, records []T) error {
	if records == nil {
		records = []T{}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	if err := db.kv.Set(ctx, db.key(c), raw); err != nil {
		return fmt.Errorf("save %s: %w", c, err)
	}
	return nil
}
