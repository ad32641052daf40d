// Package module holds the module contract in a leaf package, so a module
// can depend on it for its ports type without importing modkit itself.
package module

import (
	phttp "leadrouter/internal/platform/net/http"
)

// Module mirrors modkit.Module.
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
