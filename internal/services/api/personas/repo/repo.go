// Package repo provides the persona record store for Postgres and SQLite
package repo

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"personalab/internal/modkit/repokit"
	"personalab/internal/services/api/personas/domain"
)

var (
	//go:embed schema/pg.sql
	pgSchema string

	//go:embed schema/sqlite.sql
	sqliteSchema string
)

// Row is a stored persona. Data is the raw JSON document, decoded and
// checked by the service
type Row struct {
	ID              string
	UserID          string
	AuthorName      *string
	Title           string
	Locale          string
	IsPublic        bool
	SourcePersonaID *string
	Data            []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter narrows List
type Filter struct {
	Scope  domain.Scope
	UserID string // empty when anonymous
	Limit  int
}

// Repo is the persona persistence surface used by the service layer
type Repo interface {
	Insert(ctx context.Context, row Row) error
	Get(ctx context.Context, id string) (Row, error)
	Update(ctx context.Context, row Row) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f Filter) ([]Row, error)
}

// Migrate creates the persona table for dialect d when missing
func Migrate(ctx context.Context, q repokit.Queryer, d repokit.Dialect) error {
	ddl := sqliteSchema
	if d == repokit.DialectPG {
		ddl = pgSchema
	}
	if _, err := q.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("migrate personas (%s): %w", d, err)
	}
	return nil
}

// Binder returns the binder for dialect d
func Binder(d repokit.Dialect) repokit.Binder[Repo] {
	return repokit.Pick(d, NewPG(), NewSQLite())
}

const columns = `id, user_id, author_name, title, locale, is_public, source_persona_id, data, created_at, updated_at`

// listWhere renders the visibility predicate for f. ph renders the i-th placeholder
func listWhere(f Filter, ph func(int) string) (string, []any) {
	switch {
	case f.Scope == domain.ScopeMine:
		return "user_id = " + ph(1), []any{f.UserID}
	case f.Scope == domain.ScopeAll && strings.TrimSpace(f.UserID) != "":
		return "(is_public OR user_id = " + ph(1) + ")", []any{f.UserID}
	default:
		return "is_public", nil
	}
}
