package repo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"personalab/internal/core/persona/personatest"
	"personalab/internal/modkit/repokit"
	perr "personalab/internal/platform/errors"
	"personalab/internal/services/api/personas/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	idA = "0b6f3c9e-3f55-4c59-9a51-6f3d8d1e2a01"
	idB = "0b6f3c9e-3f55-4c59-9a51-6f3d8d1e2a02"
	idC = "0b6f3c9e-3f55-4c59-9a51-6f3d8d1e2a03"
)

var t0 = time.Date(2025, 9, 2, 10, 0, 0, 123456000, time.UTC)

func fixtureRow(t *testing.T, id, user string, public bool, at time.Time) Row {
	t.Helper()
	data, err := json.Marshal(personatest.Data())
	require.NoError(t, err)
	author := "Ana"
	return Row{
		ID:         id,
		UserID:     user,
		AuthorName: &author,
		Title:      "Persona " + id[len(id)-2:],
		Locale:     "en-US",
		IsPublic:   public,
		Data:       data,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
}

func ids(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

// runContract exercises a bound repo the same way for every dialect
func runContract(t *testing.T, db repokit.TxRunner, d repokit.Dialect) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, d))
	require.NoError(t, Migrate(ctx, db, d), "migrate is idempotent")

	r := Binder(d).Bind(db)

	a := fixtureRow(t, idA, "u-1", true, t0)
	b := fixtureRow(t, idB, "u-1", false, t0.Add(time.Minute))
	c := fixtureRow(t, idC, "u-2", false, t0.Add(2*time.Minute))
	c.AuthorName = nil
	c.SourcePersonaID = &a.ID
	for _, row := range []Row{a, b, c} {
		require.NoError(t, r.Insert(ctx, row))
	}

	t.Run("get round trips", func(t *testing.T) {
		got, err := r.Get(ctx, idC)
		require.NoError(t, err)
		assert.Equal(t, "u-2", got.UserID)
		assert.Nil(t, got.AuthorName)
		require.NotNil(t, got.SourcePersonaID)
		assert.Equal(t, idA, *got.SourcePersonaID)
		assert.False(t, got.IsPublic)
		assert.True(t, c.CreatedAt.Equal(got.CreatedAt))
		assert.JSONEq(t, string(c.Data), string(got.Data))

		_, err = r.Get(ctx, "0b6f3c9e-3f55-4c59-9a51-6f3d8d1e2aff")
		assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		err := r.Insert(ctx, a)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeConflict), "got %v", err)
	})

	t.Run("list scopes", func(t *testing.T) {
		cases := []struct {
			f    Filter
			want []string
		}{
			{Filter{Scope: domain.ScopeAll, Limit: 100}, []string{idA}},
			{Filter{Scope: domain.ScopeAll, UserID: "u-2", Limit: 100}, []string{idC, idA}},
			{Filter{Scope: domain.ScopeCommunity, UserID: "u-2", Limit: 100}, []string{idA}},
			{Filter{Scope: domain.ScopeMine, UserID: "u-1", Limit: 100}, []string{idB, idA}},
			{Filter{Scope: domain.ScopeMine, UserID: "u-1", Limit: 1}, []string{idB}},
			{Filter{Scope: domain.ScopeMine, UserID: "nobody", Limit: 100}, []string{}},
		}
		for _, c := range cases {
			rows, err := r.List(ctx, c.f)
			require.NoError(t, err)
			assert.Equal(t, c.want, ids(rows), "%+v", c.f)
		}
	})

	t.Run("update in tx", func(t *testing.T) {
		upd := a
		upd.Title = "Renamed"
		upd.IsPublic = false
		upd.UpdatedAt = t0.Add(time.Hour)
		require.NoError(t, repokit.WithTx(ctx, db, Binder(d), func(tx Repo) error {
			return tx.Update(ctx, upd)
		}))

		got, err := r.Get(ctx, idA)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
		assert.False(t, got.IsPublic)
		assert.True(t, upd.UpdatedAt.Equal(got.UpdatedAt))
		assert.True(t, a.CreatedAt.Equal(got.CreatedAt), "created_at is not touched")

		missing := upd
		missing.ID = "0b6f3c9e-3f55-4c59-9a51-6f3d8d1e2aff"
		assert.True(t, perr.IsCode(r.Update(ctx, missing), perr.ErrorCodeNotFound))
	})

	t.Run("delete clears fork links", func(t *testing.T) {
		require.NoError(t, r.Delete(ctx, idA))
		assert.True(t, perr.IsCode(r.Delete(ctx, idA), perr.ErrorCodeNotFound))

		got, err := r.Get(ctx, idC)
		require.NoError(t, err)
		assert.Nil(t, got.SourcePersonaID)
	})
}
