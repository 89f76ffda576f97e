// @title         PersonaLab API
// @version       0.1.0
// @description   Persona records, forks and document exports

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personalab/internal/core/version"
	"personalab/internal/modkit/repokit"
	"personalab/internal/platform/config"
	"personalab/internal/platform/logger"
	phttp "personalab/internal/platform/net/http"
	"personalab/internal/platform/store"

	"personalab/internal/services/api"
	"personalab/internal/services/api/docs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config (PERSONALAB_*), pg lives under SERVICE_PGSQL_*
	cfg := config.New().Prefix("PERSONALAB_")

	// bring up logging early
	l := logger.Get()
	l.Info().Str("version", version.Version()).Str("commit", version.Commit()).Msg("starting personalab-api")
	docs.SwaggerInfo.Version = version.Version()

	st, err := store.Open(ctx, store.ConfigFrom(cfg, "personalab-api"), store.WithLogger(*logger.Get()))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// http server (reads PERSONALAB_API_PORT)
	srv := phttp.NewServer(cfg)

	a, err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         cfg,
		Store:          st,
		Logger:         logger.Named("api"),
		EnableSwagger:  cfg.MayBool("ENABLE_SWAGGER", true),
		EnableProfiler: cfg.MayBool("ENABLE_PROFILER", false),
	})
	if err != nil {
		l.Panic().Err(err).Msg("api.Mount failed")
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			l.Error().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		l.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := srv.Shutdown(sctx); err != nil {
			l.Error().Err(err).Msg("http shutdown")
		}
		cancel()
	}

	// audit writes must land before the store closes
	a.Close()
}
