package store

import (
	"context"
	"path/filepath"
	"testing"

	"personalab/internal/platform/config"
	"personalab/internal/platform/testkit"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.db")
	s, err := Open(context.Background(), Config{
		AppName: "personalab-test",
		SQLite:  SQLiteConfig{Path: path},
	}, WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.Equal(t, DriverSQLite, s.Driver, "empty driver defaults to sqlite")
	assert.Nil(t, s.CH)
	assert.NoError(t, s.Guard(context.Background()))

	n, err := Scalar[int64](context.Background(), s.SQL, `SELECT 41 + 1`)
	require.NoError(t, err)
	assert.EqualValues(t, 42, n)
}

func TestOpen_WithTracer(t *testing.T) {
	rec := &recorder{}
	s, err := Open(context.Background(), Config{
		SQLite: SQLiteConfig{Path: ":memory:"},
		LogSQL: true,
	}, WithLogger(zerolog.Nop()), WithTracer(rec))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = Scalar[int64](context.Background(), s.SQL, `SELECT 1`)
	require.NoError(t, err)
	require.Equal(t, 1, rec.len(), "the extra tracer sees statements next to the sql log")
	assert.Equal(t, "sqlite", rec.events[0].Driver)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "mysql"})
	assert.ErrorContains(t, err, `unknown driver "mysql"`)
}

func TestOpen_AuditSinkFailureIsNotFatal(t *testing.T) {
	s, err := Open(context.Background(), Config{
		Driver: DriverSQLite,
		SQLite: SQLiteConfig{Path: ":memory:"},
		CH:     CHConfig{Enabled: true, URL: "::not a dsn"},
	}, WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	assert.Nil(t, s.CH)
}

func TestNilStore(t *testing.T) {
	var s *Store
	assert.Error(t, s.Guard(context.Background()))
	assert.NoError(t, s.Close())
	assert.NoError(t, (&Store{}).Guard(context.Background()), "zero value has nothing to ping")
}

func TestConfigFrom(t *testing.T) {
	app := config.New().Prefix("PERSONALAB_")

	t.Run("sqlite defaults", func(t *testing.T) {
		cfg := ConfigFrom(app, "api")
		assert.Equal(t, DriverSQLite, cfg.Driver)
		assert.Equal(t, "personalab.db", cfg.SQLite.Path)
		assert.False(t, cfg.CH.Enabled)
		assert.Empty(t, cfg.PG.URL)
	})

	t.Run("pg", func(t *testing.T) {
		t.Setenv("PERSONALAB_STORE_DRIVER", "PG")
		t.Setenv("SERVICE_PGSQL_URL", "postgres://u:p@db:5432/personalab")
		t.Setenv("SERVICE_PGSQL_MAX_CONNS", "4")
		t.Setenv("PERSONALAB_EXPORT_AUDIT_CH_URL", "clickhouse://ch:9000/audit")

		cfg := ConfigFrom(app, "api")
		assert.Equal(t, DriverPG, cfg.Driver)
		assert.Equal(t, "postgres://u:p@db:5432/personalab", cfg.PG.URL)
		assert.EqualValues(t, 4, cfg.PG.MaxConns)
		assert.Equal(t, 200, cfg.PG.SlowQueryMs)
		assert.True(t, cfg.CH.Enabled)
	})

	t.Run("pg without url", func(t *testing.T) {
		t.Setenv("PERSONALAB_STORE_DRIVER", "pg")
		testkit.MustPanic(t, func() { ConfigFrom(app, "api") })
	})

	t.Run("bad driver", func(t *testing.T) {
		t.Setenv("PERSONALAB_STORE_DRIVER", "oracle")
		testkit.MustPanic(t, func() { ConfigFrom(app, "api") })
	})
}
