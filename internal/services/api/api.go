// Package api provides the HTTP API for the application
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"personalab/internal/platform/auth"
	"personalab/internal/platform/config"
	"personalab/internal/platform/logger"
	"personalab/internal/platform/metrics"
	phttp "personalab/internal/platform/net/http"
	"personalab/internal/platform/net/middleware"
	"personalab/internal/platform/store"

	"personalab/internal/modkit"
	"personalab/internal/modkit/httpkit"
	"personalab/internal/modkit/module"
	"personalab/internal/modkit/swaggerkit"

	exportsmod "personalab/internal/services/api/exports/module"
	metamod "personalab/internal/services/api/meta/module"
	pdomain "personalab/internal/services/api/personas/domain"
	personasmod "personalab/internal/services/api/personas/module"
	prepo "personalab/internal/services/api/personas/repo"

	"github.com/prometheus/client_golang/prometheus"
)

// Options are the API options
type Options struct {
	// Config is the PERSONALAB_ view
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Registry receives every collector and is served on /metrics.
	// nil builds a fresh registry with the runtime collectors
	Registry *prometheus.Registry

	// Auth overrides the JWT verifier built from JWT_SECRET
	Auth middleware.AuthPort

	EnableSwagger  bool
	EnableProfiler bool
}

// API is a mounted service. Close drains background work before the store closes
type API struct {
	exports *exportsmod.Module
}

// Mount migrates the record store and mounts the API service onto r. Root
// middlewares are installed first, so r must not carry routes yet
func Mount(ctx context.Context, r phttp.Router, opt Options) (*API, error) {
	if opt.Store == nil || opt.Store.SQL == nil {
		return nil, fmt.Errorf("api: record store is not open")
	}
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}
	reg := opt.Registry
	if reg == nil {
		reg = metrics.NewRegistry()
	}

	httpm, err := metrics.NewHTTP(reg)
	if err != nil {
		return nil, err
	}
	r.Use(
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{"*"}),
		}),
		middleware.Heartbeat("/health"),
		httpm.Middleware,
	)
	r.Handle("/metrics", metrics.Handler(reg))

	deps := modkit.Deps{
		Log:     *log,
		Cfg:     opt.Config,
		Metrics: reg,
	}.FromStore(opt.Store)

	if err := prepo.Migrate(ctx, deps.SQL, deps.Dialect); err != nil {
		return nil, fmt.Errorf("api: migrate personas: %w", err)
	}

	authPort := opt.Auth
	if authPort == nil {
		authPort = auth.NewVerifier(
			opt.Config.MustString("JWT_SECRET"),
			auth.WithIssuer(opt.Config.MayString("JWT_ISSUER", "")),
		)
	}

	personas := personasmod.New(deps, modkit.WithPorts(personasmod.Injected{Auth: authPort}))
	exports := exportsmod.NewWith(deps, exportsmod.FromConfig(deps.Cfg), modkit.WithPorts(exportsmod.Injected{
		Auth:   authPort,
		Reader: module.MustPortsOf[pdomain.Reader](personas),
	}))

	mods := []module.Module{
		metamod.New(deps),
		personas,
		exports,
	}

	stack := append(middleware.Defaults(60*time.Second),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 2 * time.Second}),
	)
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		swaggerkit.Mount(api, opt.EnableSwagger, "/api/v1")

		for _, m := range mods {
			// ports are registered under the module name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Str("prefix", "/api/v1"+m.Prefix()).Msg("module mounted")
		}
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	log.Info().
		Str("driver", string(deps.Dialect)).
		Bool("audit", deps.CH != nil).
		Bool("swagger", opt.EnableSwagger).
		Strs("modules", module.Names()).
		Msg("api mounted")
	return &API{exports: exports}, nil
}

// Close waits for queued export audit writes
func (a *API) Close() {
	if a == nil || a.exports == nil {
		return
	}
	a.exports.Drain()
}

// Handler mounts the API on a fresh server mux and returns it
func Handler(ctx context.Context, opt Options) (http.Handler, *API, error) {
	srv := phttp.NewServer(opt.Config)
	a, err := Mount(ctx, srv.Router(), opt)
	if err != nil {
		return nil, nil, err
	}
	return srv.Router().Mux(), a, nil
}
