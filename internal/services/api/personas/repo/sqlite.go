package repo

import (
	"context"
	stderrs "errors"
	"fmt"
	"time"

	"personalab/internal/modkit/repokit"
	perr "personalab/internal/platform/errors"
)

// timestamps are stored as fixed width UTC text so they sort lexically
const sqliteTime = "2006-01-02T15:04:05.000000Z"

type (
	// SQLite is an embedded implementation of the persona repo
	SQLite        struct{}
	sqliteQueries struct{ q repokit.Queryer }
)

// NewSQLite returns a binder for the SQLite implementation
func NewSQLite() repokit.Binder[Repo] { return SQLite{} }

// Bind attaches a Queryer to the SQLite implementation
func (SQLite) Bind(q repokit.Queryer) Repo { return &sqliteQueries{q: q} }

const sqliteSelect = `SELECT ` + columns + ` FROM personas`

func scanSQLite(r repokit.Row) (Row, error) {
	var (
		row              Row
		data             string
		created, updated string
	)
	if err := r.Scan(&row.ID, &row.UserID, &row.AuthorName, &row.Title, &row.Locale, &row.IsPublic,
		&row.SourcePersonaID, &data, &created, &updated); err != nil {
		return Row{}, err
	}
	row.Data = []byte(data)

	var err error
	if row.CreatedAt, err = time.Parse(sqliteTime, created); err != nil {
		return Row{}, fmt.Errorf("created_at of %s: %w", row.ID, err)
	}
	if row.UpdatedAt, err = time.Parse(sqliteTime, updated); err != nil {
		return Row{}, fmt.Errorf("updated_at of %s: %w", row.ID, err)
	}
	return row, nil
}

func stamp(t time.Time) string { return t.UTC().Format(sqliteTime) }

func sqlitePlaceholder(int) string { return "?" }

// Insert stores a new record
func (r *sqliteQueries) Insert(ctx context.Context, row Row) error {
	const sql = `INSERT INTO personas (` + columns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(ctx, sql, row.ID, row.UserID, row.AuthorName, row.Title, row.Locale, row.IsPublic,
		row.SourcePersonaID, string(row.Data), stamp(row.CreatedAt), stamp(row.UpdatedAt))
	return sqliteErr(err, "insert persona %s", row.ID)
}

// Get loads one record by id
func (r *sqliteQueries) Get(ctx context.Context, id string) (Row, error) {
	row, err := repokit.One(ctx, r.q, scanSQLite, sqliteSelect+` WHERE id = ?`, id)
	return row, sqliteErr(err, "get persona %s", id)
}

// Update replaces the mutable columns of a record
func (r *sqliteQueries) Update(ctx context.Context, row Row) error {
	const sql = `
		UPDATE personas
		   SET title = ?, locale = ?, is_public = ?, source_persona_id = ?, data = ?, updated_at = ?
		 WHERE id = ?`
	err := repokit.ExecOne(ctx, r.q, sql, row.Title, row.Locale, row.IsPublic, row.SourcePersonaID,
		string(row.Data), stamp(row.UpdatedAt), row.ID)
	return sqliteErr(err, "update persona %s", row.ID)
}

// Delete removes a record
func (r *sqliteQueries) Delete(ctx context.Context, id string) error {
	err := repokit.ExecOne(ctx, r.q, `DELETE FROM personas WHERE id = ?`, id)
	return sqliteErr(err, "delete persona %s", id)
}

// List returns the records visible under f, most recently updated first
func (r *sqliteQueries) List(ctx context.Context, f Filter) ([]Row, error) {
	where, args := listWhere(f, sqlitePlaceholder)
	sql := fmt.Sprintf("%s WHERE %s ORDER BY updated_at DESC, id LIMIT ?", sqliteSelect, where)
	rows, err := repokit.Many(ctx, r.q, scanSQLite, sql, append(args, f.Limit)...)
	return rows, sqliteErr(err, "list personas (%s)", f.Scope)
}

func sqliteErr(err error, format string, a ...any) error {
	switch {
	case err == nil:
		return nil
	case stderrs.Is(err, perr.ErrNotFound):
		return perr.NotFoundf("persona not found")
	}
	return perr.FromSQLitef(err, format, a...)
}
