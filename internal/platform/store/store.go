// Package store opens the relational record store and the optional audit sink
// behind small driver-neutral seams
package store

import (
	"context"
	"errors"
	"fmt"

	"personalab/internal/platform/logger"
	"personalab/internal/platform/store/trace"
)

// Store is the facade for the configured backends.
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	Log logger.Logger

	// Driver names the backend behind SQL
	Driver Driver

	// SQL is the relational seam, pg or sqlite. nil when not opened
	SQL TxRunner

	// CH is the clickhouse seam, nil when disabled
	CH Clickhouse

	tracer trace.Tracer
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is a tiny seam for columnar writes and queries
type Clickhouse interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the requested backends
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Driver: cfg.Driver}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	switch cfg.Driver {
	case DriverPG:
		sqlc, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.SQL = sqlc
	case DriverSQLite, "":
		s.Driver = DriverSQLite
		sqlc, err := openSQLite(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.SQL = sqlc
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}

	if cfg.CH.Enabled {
		chc, err := openCH(ctx, cfg)
		if err != nil {
			// the audit sink is a side channel, the API runs without it
			s.Log.Warn().Err(err).Msg("clickhouse audit sink disabled")
		} else {
			s.CH = chc
		}
	}

	s.Log.Info().Str("driver", string(s.Driver)).Bool("audit", s.CH != nil).Msg("store ready")
	return s, nil
}

// Guard pings every configured seam
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if p, ok := s.SQL.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Driver, err))
		}
	}
	if p, ok := s.CH.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("ch: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Close closes all initialized backends. nil backends are ignored
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.CH != nil {
		if e := s.CH.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	if c, ok := s.SQL.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}
