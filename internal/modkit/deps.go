// Package modkit provides module wiring and core deps
package modkit

import (
	"personalab/internal/modkit/repokit"
	"personalab/internal/platform/config"
	"personalab/internal/platform/logger"
	"personalab/internal/platform/store"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// SQL is the record store, Dialect picks the repo flavour for it
	SQL     repokit.TxRunner
	Dialect repokit.Dialect

	// CH is the optional audit sink, nil when disabled
	CH store.Clickhouse

	// Metrics is where modules register collectors, nil means the default registerer
	Metrics prometheus.Registerer
}

// FromStore fills the store backed fields from an opened store
func (d Deps) FromStore(s *store.Store) Deps {
	if s == nil {
		return d
	}
	d.SQL = s.SQL
	d.Dialect = repokit.Dialect(s.Driver)
	d.CH = s.CH
	return d
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
