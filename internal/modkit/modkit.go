package modkit

import (
	phttp "leadrouter/internal/platform/net/http"
)

// Module is what the API composes: a named unit that can register its
// routes and hand out a ports value for cross-module lookups. The surface
// stays this small on purpose
type Module interface {
	// MountRoutes registers the module's routes on r
	MountRoutes(r phttp.Router)
	// Ports exposes the module's cross-wiring surface, nil when it has none
	Ports() any

	Name() string
}

// Builder is the constructor shape modules expose as New(deps, opts...)
type Builder func(Deps, ...Option) Module
