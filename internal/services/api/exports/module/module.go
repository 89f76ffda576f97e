// Package module wires persona exports into the API using modkit
package module

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"personalab/internal/core/export"
	modkit "personalab/internal/modkit"
	"personalab/internal/modkit/httpkit"
	"personalab/internal/platform/net/middleware"
	pdomain "personalab/internal/services/api/personas/domain"

	ehttp "personalab/internal/services/api/exports/http"
	erepo "personalab/internal/services/api/exports/repo"
	esvc "personalab/internal/services/api/exports/service"
)

// Module implements the exports API module. Routes hang off /personas, so it
// mounts without a prefix of its own
type Module struct {
	b     modkit.Built
	auth  middleware.AuthPort
	svc   esvc.Service
	audit *erepo.Audit
}

// Injected declares the ports this module needs, passed with modkit.WithPorts
type Injected struct {
	Auth   middleware.AuthPort
	Reader pdomain.Reader
}

// New constructs the exports module from deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return NewWith(deps, FromConfig(deps.Cfg), opts...)
}

// NewWith constructs the module with explicit options
func NewWith(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("exports"),
		modkit.WithPrefix(""),
	}, opts...)...)

	injected, ok := b.Ports.(Injected)
	if !ok || injected.Reader == nil {
		panic("exports API module requires a personas Reader port")
	}

	eopts, err := o.exporterOptions()
	if err != nil {
		panic(fmt.Errorf("exports labels: %w", err))
	}
	obs, err := export.NewPrometheusObserver(deps.Metrics)
	if err != nil {
		panic(fmt.Errorf("exports metrics: %w", err))
	}
	eopts = append(eopts, export.WithObserver(obs))

	audit := erepo.NewAudit(deps.CH)
	if audit != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := audit.Migrate(ctx); err != nil {
			deps.Log.Warn().Err(err).Msg("export audit table unavailable, auditing disabled")
			audit = nil
		}
	}
	if audit != nil {
		eopts = append(eopts, export.WithAuditor(audit))
	}

	exp, err := export.New(eopts...)
	if err != nil {
		panic(fmt.Errorf("exports: %w", err))
	}

	return &Module{
		b:     b,
		auth:  injected.Auth,
		svc:   esvc.New(injected.Reader, exp),
		audit: audit,
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		ehttp.Register(rr, m.svc, m.auth)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix is empty, export routes sit under the personas path
func (m *Module) Prefix() string { return m.b.Prefix }

// Ports returns nothing, exports are only reachable over http
func (m *Module) Ports() any { return nil }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }

// Drain waits for in-flight audit writes
func (m *Module) Drain() { m.audit.Wait() }
