package modkit

import (
	"net/http"

	"personalab/internal/modkit/httpkit"
	pstrings "personalab/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any

	// router hooks set via options and exposed to modules
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies Option funcs over defaults and returns a plain struct.
// Later options win, so modules pass their defaults first
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Mount opens the module prefix on r, applies the module middlewares and the
// subrouter hook, then runs own followed by the external Register hook.
// An empty prefix mounts into a group on r itself
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	fn := func(rr httpkit.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		rr = b.Subrouter(rr)
		if own != nil {
			own(rr)
		}
		b.Register(rr)
	}
	if b.Prefix == "" {
		r.Group(fn)
		return
	}
	r.Route(pstrings.MustPrefix(b.Prefix), fn)
}
