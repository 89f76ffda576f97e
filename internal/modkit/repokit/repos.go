// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"
	"fmt"

	"personalab/internal/platform/store"
)

type (
	// Queryer is the minimal read and write surface for SQL repos
	Queryer = store.RowQuerier
	// TxRunner can execute a function inside a transaction
	TxRunner = store.TxRunner
	// Rows are the result set of a query
	Rows = store.Rows
	// Row is a single row result from a query
	Row = store.Row
	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// Dialect names the SQL flavour a repo must speak
type Dialect string

// Supported dialects, matching the store drivers
const (
	DialectPG     Dialect = Dialect(store.DriverPG)
	DialectSQLite Dialect = Dialect(store.DriverSQLite)
)

// Pick returns the binder for d. Unknown dialects are a programmer error
func Pick[T any](d Dialect, pg, sqlite Binder[T]) Binder[T] {
	switch d {
	case DialectPG:
		return pg
	case DialectSQLite, "":
		return sqlite
	}
	panic(fmt.Sprintf("repokit: unknown dialect %q", d))
}

// WithTx runs fn inside a transaction on tx, handing it a repo bound to the tx
func WithTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(T) error) error {
	return tx.Tx(ctx, func(q Queryer) error { return fn(b.Bind(q)) })
}
