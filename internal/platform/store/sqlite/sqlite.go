// Package sqlite opens the embedded SQLite database used for local and dev stores
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"personalab/internal/platform/store/trace"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Config configures the SQLite database
type Config struct {
	// Path is a file path or ":memory:"
	Path   string
	SlowMs int
}

// SQLite is a database handle with optional tracer
type SQLite struct {
	DB     *sql.DB
	Tracer trace.Tracer
	SlowMs int
}

var sqlOpen = sql.Open

// DSN builds the modernc connection string. Foreign keys are enforced and
// writers wait for locks instead of failing fast
func DSN(path string) string {
	if path == "" {
		path = ":memory:"
	}
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	if path != ":memory:" {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	return "file:" + path + "?" + q.Encode()
}

// Open opens and pings the database
func Open(ctx context.Context, cfg Config, tracer trace.Tracer) (*SQLite, error) {
	db, err := sqlOpen("sqlite", DSN(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// every connection to :memory: is a separate database, and SQLite has a
	// single writer anyway
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping %s: %w", strings.TrimSpace(cfg.Path), err)
	}
	return &SQLite{DB: db, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close closes the database
func (s *SQLite) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
