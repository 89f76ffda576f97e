// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "personalab/internal/modkit"
	"personalab/internal/modkit/httpkit"

	metahttp "personalab/internal/services/api/meta/http"
)

// DefaultServiceName is reported by /version and /service
const DefaultServiceName = "personalab-api"

// Options tune the meta module
type Options struct {
	ServiceName string
	StartedAt   time.Time
}

// Module implements the modkit.Module interface
type Module struct {
	deps modkit.Deps
	b    modkit.Built
	opt  Options
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return NewWith(deps, Options{}, opts...)
}

// NewWith constructs the module with explicit options. Meta routes sit at the
// API root, so the default prefix is empty
func NewWith(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix(""),
	}, opts...)...)

	if o.ServiceName == "" {
		o.ServiceName = DefaultServiceName
	}
	if o.StartedAt.IsZero() {
		o.StartedAt = time.Now()
	}
	return &Module{deps: deps, b: b, opt: o}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: m.opt.ServiceName,
		StartedAt:   m.opt.StartedAt,
		Store:       string(m.deps.Dialect),
	}
	// typed nils would read as configured seams
	if m.deps.SQL != nil {
		d.SQL = m.deps.SQL
	}
	if m.deps.CH != nil {
		d.CH = m.deps.CH
	}
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, d)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.b.Prefix }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
