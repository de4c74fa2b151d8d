// Package store persists VIN check records in Postgres.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/WessleyAI/wessley-vin/engine/decoder"
	"github.com/WessleyAI/wessley-vin/engine/domain"
)

// Record is one completed lookup.
type Record struct {
	ID        uuid.UUID        `json:"id"`
	Identity  decoder.Identity `json:"identity"`
	Providers []string         `json:"providers,omitempty"`
	CheckedAt time.Time        `json:"checkedAt"`
}

const schema = `
CREATE TABLE IF NOT EXISTS vin_checks (
	id          UUID PRIMARY KEY,
	vin         CHAR(17) NOT NULL,
	make        TEXT NOT NULL,
	model       TEXT NOT NULL,
	model_year  INTEGER,
	confidence  TEXT NOT NULL,
	source      TEXT NOT NULL,
	payload     JSONB NOT NULL,
	checked_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS vin_checks_vin_checked_at ON vin_checks (vin, checked_at DESC);
`

const insertCheck = `INSERT INTO vin_checks (id, vin, make, model, model_year, confidence, source, payload, checked_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const selectChecks = `SELECT id, payload, checked_at FROM vin_checks WHERE vin = $1 ORDER BY checked_at DESC LIMIT $2`

// payload is the JSONB column.
type payload struct {
	Identity  decoder.Identity `json:"identity"`
	Providers []string         `json:"providers,omitempty"`
}

// Store reads and writes vin_checks.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New wraps an open database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Open connects to Postgres with the lib/pq driver.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return New(db), nil
}

// Migrate creates the table and index when missing.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

// Save inserts rec, filling a missing ID and CheckedAt. It returns the
// stored record.
func (s *Store) Save(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CheckedAt.IsZero() {
		rec.CheckedAt = s.now().UTC()
	}
	data, err := json.Marshal(payload{Identity: rec.Identity, Providers: rec.Providers})
	if err != nil {
		return Record{}, fmt.Errorf("store: encode %s: %w", rec.Identity.VIN, err)
	}

	var year sql.NullInt64
	if rec.Identity.Year != nil {
		year = sql.NullInt64{Int64: int64(*rec.Identity.Year), Valid: true}
	}
	id := rec.Identity
	_, err = s.db.ExecContext(ctx, insertCheck,
		rec.ID, id.VIN, id.Make, id.Model, year,
		string(id.Confidence), string(id.Source), data, rec.CheckedAt)
	if err != nil {
		return Record{}, fmt.Errorf("store: save %s: %w", id.VIN, err)
	}
	return rec, nil
}

// Latest returns the most recent record for vin, or domain.ErrNotFound.
func (s *Store) Latest(ctx context.Context, vin string) (Record, error) {
	recs, err := s.History(ctx, vin, 1)
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, fmt.Errorf("store: %s: %w", vin, domain.ErrNotFound)
	}
	return recs[0], nil
}

// History limits.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// History returns up to limit records for vin, newest first. A limit outside
// 1..MaxHistoryLimit is clamped.
func (s *Store) History(ctx context.Context, vin string, limit int) ([]Record, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	rows, err := s.db.QueryContext(ctx, selectChecks, vin, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query %s: %w", vin, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec  Record
			data []byte
		)
		if err := rows.Scan(&rec.ID, &data, &rec.CheckedAt); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		var p payload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("store: decode %s: %w", vin, err)
		}
		rec.Identity, rec.Providers = p.Identity, p.Providers
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: rows: %w", err)
	}
	return out, nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }
