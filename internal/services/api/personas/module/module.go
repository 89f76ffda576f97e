// Package module wires persona records into the API using modkit
package module

import (
	"net/http"

	modkit "personalab/internal/modkit"
	"personalab/internal/modkit/httpkit"
	"personalab/internal/platform/net/middleware"

	pershttp "personalab/internal/services/api/personas/http"
	prepo "personalab/internal/services/api/personas/repo"
	psvc "personalab/internal/services/api/personas/service"
)

// Module implements the personas API module
type Module struct {
	deps modkit.Deps
	b    modkit.Built
	auth middleware.AuthPort

	svc   psvc.Service
	ports Ports
}

// Injected declares what the API hands the module through modkit.WithPorts
type Injected struct {
	Auth middleware.AuthPort
}

// New constructs the personas module from deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return NewWith(deps, FromConfig(deps.Cfg), opts...)
}

// NewWith constructs the module with explicit options
func NewWith(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("personas"),
		modkit.WithPrefix("/personas"),
	}, opts...)...)

	var injected Injected
	if p, ok := b.Ports.(Injected); ok {
		injected = p
	}

	so, err := o.serviceOptions()
	if err != nil {
		panic(err)
	}
	svc := psvc.New(deps.SQL, prepo.Binder(deps.Dialect), so)

	return &Module{
		deps:  deps,
		b:     b,
		auth:  injected.Auth,
		svc:   svc,
		ports: Ports{Reader: svc},
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		pershttp.Register(rr, m.svc, m.auth)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.b.Prefix }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }
