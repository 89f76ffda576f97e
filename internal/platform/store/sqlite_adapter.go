package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"personalab/internal/platform/store/sqlite"
)

// sqlConn is what *sql.DB and *sql.Tx have in common
type sqlConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sqliteAdapter wraps sqlite.SQLite and implements TxRunner
type sqliteAdapter struct {
	db *sqlite.SQLite
	q  sqlQuerier
}

func newSQLiteAdapter(db *sqlite.SQLite) *sqliteAdapter {
	e := emitter{driver: string(DriverSQLite), tracer: db.Tracer, slowMs: db.SlowMs}
	return &sqliteAdapter{db: db, q: sqlQuerier{c: db.DB, e: e}}
}

func (a *sqliteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.db == nil || a.db.DB == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.db.DB.PingContext(ctx)
}

func (a *sqliteAdapter) Close() error { return a.db.Close() }

func (a *sqliteAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return a.q.Exec(ctx, sql, args...)
}

func (a *sqliteAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return a.q.Query(ctx, sql, args...)
}

func (a *sqliteAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return a.q.QueryRow(ctx, sql, args...)
}

func (a *sqliteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.db.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(sqlQuerier{c: tx, e: a.q.e}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// sqlQuerier implements RowQuerier over database/sql
type sqlQuerier struct {
	c sqlConn
	e emitter
}

func (q sqlQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := q.c.ExecContext(ctx, sql, args...)
	q.e.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	return affected(n), nil
}

func (q sqlQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := q.c.QueryContext(ctx, sql, args...)
	q.e.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return &sqlRows{r: rs}, nil
}

func (q sqlQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := q.c.QueryRowContext(ctx, sql, args...)
	return tracedRow{r: r, after: func(scanErr error) { q.e.emit(ctx, sql, args, start, scanErr) }}
}

type affected int64

func (n affected) RowsAffected() int64 { return int64(n) }

type sqlRows struct {
	r    *sql.Rows
	cols []string
}

func (x *sqlRows) Next() bool            { return x.r.Next() }
func (x *sqlRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x *sqlRows) Err() error            { return x.r.Err() }
func (x *sqlRows) Close()                { _ = x.r.Close() }
func (x *sqlRows) Columns() []string {
	if x.cols == nil {
		x.cols, _ = x.r.Columns()
	}
	return x.cols
}
