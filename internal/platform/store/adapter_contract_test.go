package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	perr "personalab/internal/platform/errors"
	"personalab/internal/platform/store/trace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects trace events
type recorder struct {
	mu     sync.Mutex
	events []trace.Event
}

func (r *recorder) OnQuery(_ context.Context, ev trace.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

type note struct {
	ID    string
	Title string
}

func scanNote(r Row) (note, error) {
	var n note
	err := r.Scan(&n.ID, &n.Title)
	return n, err
}

// runContract exercises a TxRunner the same way for every driver. ph renders
// the i-th placeholder
func runContract(t *testing.T, db TxRunner, rec *recorder, ph func(i int) string) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, `CREATE TABLE notes (id TEXT PRIMARY KEY, title TEXT NOT NULL)`)
	require.NoError(t, err)

	insert := fmt.Sprintf(`INSERT INTO notes (id, title) VALUES (%s, %s)`, ph(1), ph(2))
	require.NoError(t, ExecOne(ctx, db, insert, "n1", "Primary persona"))
	require.NoError(t, ExecOne(ctx, db, insert, "n2", "Secondary persona"))

	t.Run("one and many", func(t *testing.T) {
		got, err := One(ctx, db, scanNote, `SELECT id, title FROM notes WHERE id = `+ph(1), "n2")
		require.NoError(t, err)
		assert.Equal(t, note{"n2", "Secondary persona"}, got)

		_, err = One(ctx, db, scanNote, `SELECT id, title FROM notes WHERE id = `+ph(1), "missing")
		assert.ErrorIs(t, err, perr.ErrNotFound)

		_, err = One(ctx, db, scanNote, `SELECT id, title FROM notes`)
		assert.ErrorContains(t, err, "got more")

		all, err := Many(ctx, db, scanNote, `SELECT id, title FROM notes ORDER BY id`)
		require.NoError(t, err)
		assert.Equal(t, []note{{"n1", "Primary persona"}, {"n2", "Secondary persona"}}, all)

		none, err := Many(ctx, db, scanNote, `SELECT id, title FROM notes WHERE id = `+ph(1), "missing")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("scalar and exec one", func(t *testing.T) {
		n, err := Scalar[int64](ctx, db, `SELECT count(*) FROM notes`)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)

		err = ExecOne(ctx, db, `DELETE FROM notes WHERE id = `+ph(1), "missing")
		assert.ErrorIs(t, err, perr.ErrNotFound)

		err = ExecOne(ctx, db, `UPDATE notes SET title = title`)
		assert.ErrorContains(t, err, "got 2")
	})

	t.Run("tx commit and rollback", func(t *testing.T) {
		require.NoError(t, db.Tx(ctx, func(q RowQuerier) error {
			return ExecOne(ctx, q, insert, "n3", "Fork (copy)")
		}))

		boom := errors.New("boom")
		err := db.Tx(ctx, func(q RowQuerier) error {
			if err := ExecOne(ctx, q, insert, "n4", "never"); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		n, err := Scalar[int64](ctx, db, `SELECT count(*) FROM notes`)
		require.NoError(t, err)
		assert.EqualValues(t, 3, n, "n3 committed, n4 rolled back")
	})

	t.Run("columns", func(t *testing.T) {
		rows, err := db.Query(ctx, `SELECT id, title FROM notes LIMIT 1`)
		require.NoError(t, err)
		defer rows.Close()
		assert.Equal(t, []string{"id", "title"}, rows.Columns())
	})

	if rec != nil {
		assert.Greater(t, rec.len(), 10, "statements are traced, also inside transactions")
	}
}
