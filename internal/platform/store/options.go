package store

import (
	"personalab/internal/platform/logger"
	"personalab/internal/platform/store/trace"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithTracer receives every relational statement, with or without LogSQL.
// When LogSQL is also set both tracers see each event
func WithTracer(t trace.Tracer) Option {
	return func(s *Store) error {
		s.tracer = t
		return nil
	}
}
