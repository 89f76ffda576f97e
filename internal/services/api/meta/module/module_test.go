package module

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"personalab/internal/core/version"
	modkit "personalab/internal/modkit"
	"personalab/internal/modkit/httpkit"
	phttp "personalab/internal/platform/net/http"
	"personalab/internal/platform/store"
	metahttp "personalab/internal/services/api/meta/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, m modkit.Module, path string, out any) int {
	t.Helper()
	mux := chi.NewRouter()
	httpkit.MountAPIV1(phttp.AdaptChi(mux), nil, m.MountRoutes)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	env := struct {
		Data any `json:"data"`
	}{Data: out}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code
}

func TestVersion(t *testing.T) {
	t.Parallel()

	var got version.BuildInfo
	code := serve(t, New(modkit.Deps{}), "/api/v1/version", &got)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, version.Info(DefaultServiceName), got)
}

func TestReady(t *testing.T) {
	t.Parallel()

	t.Run("no store fails", func(t *testing.T) {
		var got metahttp.ReadyResponse
		code := serve(t, New(modkit.Deps{}), "/api/v1/ready", &got)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "fail", got.Status)
		require.Len(t, got.Checks, 2)
		assert.Equal(t, "skipped", got.Checks[0].Status)
		assert.Equal(t, "skipped", got.Checks[1].Status)
	})

	t.Run("sqlite without audit sink", func(t *testing.T) {
		s, err := store.Open(context.Background(), store.Config{SQLite: store.SQLiteConfig{Path: ":memory:"}}, store.WithLogger(zerolog.Nop()))
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		var got metahttp.ReadyResponse
		serve(t, New(modkit.Deps{}.FromStore(s)), "/api/v1/ready", &got)
		assert.Equal(t, "ok", got.Status)
		assert.Equal(t, metahttp.ReadyCheck{Name: "sqlite", Status: "ok"}, got.Checks[0])
		assert.Equal(t, "skipped", got.Checks[1].Status)
	})
}

func TestService(t *testing.T) {
	t.Parallel()

	started := time.Now().Add(-90 * time.Second)
	m := NewWith(modkit.Deps{}, Options{ServiceName: "personalab-test", StartedAt: started})

	var got metahttp.ServiceResponse
	serve(t, m, "/api/v1/service", &got)
	assert.Equal(t, "personalab-test", got.Name)
	assert.GreaterOrEqual(t, got.Uptime, int64(90))
	assert.Equal(t, "meta", m.Name())
	assert.Empty(t, m.Prefix())
	assert.Nil(t, m.Ports())
}
