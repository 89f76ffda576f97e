// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "personalab/internal/platform/net/http"
)

// Module is what the API bootstrap needs from a module. It lives apart from
// modkit so a module can export its own Ports type without an import cycle
type Module interface {
	Name() string

	// Prefix is where the module mounts under /api/v1, empty for modules that
	// add routes to a path another module owns
	Prefix() string

	MountRoutes(r phttp.Router)
	Ports() any
}
