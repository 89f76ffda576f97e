package repo

import (
	"context"
	stderrs "errors"
	"fmt"
	"strconv"

	"personalab/internal/modkit/repokit"
	perr "personalab/internal/platform/errors"
)

type (
	// PG is a Postgres implementation of the persona repo
	PG        struct{}
	pgQueries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &pgQueries{q: q} }

const pgSelect = `
	SELECT id::text, user_id, author_name, title, locale, is_public,
	       source_persona_id::text, data, created_at, updated_at
	  FROM personas`

func scanPG(r repokit.Row) (Row, error) {
	var row Row
	err := r.Scan(&row.ID, &row.UserID, &row.AuthorName, &row.Title, &row.Locale, &row.IsPublic,
		&row.SourcePersonaID, &row.Data, &row.CreatedAt, &row.UpdatedAt)
	return row, err
}

func pgPlaceholder(i int) string { return "$" + strconv.Itoa(i) }

// Insert stores a new record
func (r *pgQueries) Insert(ctx context.Context, row Row) error {
	const sql = `
		INSERT INTO personas (` + columns + `)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7::uuid, $8::jsonb, $9, $10)`
	_, err := r.q.Exec(ctx, sql, row.ID, row.UserID, row.AuthorName, row.Title, row.Locale, row.IsPublic,
		row.SourcePersonaID, row.Data, row.CreatedAt, row.UpdatedAt)
	return pgErr(err, "insert persona %s", row.ID)
}

// Get loads one record by id
func (r *pgQueries) Get(ctx context.Context, id string) (Row, error) {
	row, err := repokit.One(ctx, r.q, scanPG, pgSelect+` WHERE id = $1::uuid`, id)
	return row, pgErr(err, "get persona %s", id)
}

// Update replaces the mutable columns of a record
func (r *pgQueries) Update(ctx context.Context, row Row) error {
	const sql = `
		UPDATE personas
		   SET title = $2, locale = $3, is_public = $4, source_persona_id = $5::uuid,
		       data = $6::jsonb, updated_at = $7
		 WHERE id = $1::uuid`
	err := repokit.ExecOne(ctx, r.q, sql, row.ID, row.Title, row.Locale, row.IsPublic,
		row.SourcePersonaID, row.Data, row.UpdatedAt)
	return pgErr(err, "update persona %s", row.ID)
}

// Delete removes a record
func (r *pgQueries) Delete(ctx context.Context, id string) error {
	err := repokit.ExecOne(ctx, r.q, `DELETE FROM personas WHERE id = $1::uuid`, id)
	return pgErr(err, "delete persona %s", id)
}

// List returns the records visible under f, most recently updated first
func (r *pgQueries) List(ctx context.Context, f Filter) ([]Row, error) {
	where, args := listWhere(f, pgPlaceholder)
	sql := fmt.Sprintf("%s WHERE %s ORDER BY updated_at DESC, id LIMIT %s",
		pgSelect, where, pgPlaceholder(len(args)+1))
	rows, err := repokit.Many(ctx, r.q, scanPG, sql, append(args, f.Limit)...)
	return rows, pgErr(err, "list personas (%s)", f.Scope)
}

func pgErr(err error, format string, a ...any) error {
	switch {
	case err == nil:
		return nil
	case stderrs.Is(err, perr.ErrNotFound):
		return perr.NotFoundf("persona not found")
	}
	return perr.FromPostgresf(err, format, a...)
}
