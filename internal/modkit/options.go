package modkit

import (
	"net/http"

	phttp "leadrouter/internal/platform/net/http"
)

// Option is a setter applied to buildCfg during Build
type Option func(*buildCfg)

// buildCfg collects what Build assembles for a module
type buildCfg struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool
	subrouter func(phttp.Router) phttp.Router
	register  func(phttp.Router)
}

// WithName sets the module name used in logs and the registry
func WithName(name string) Option { return func(c *buildCfg) { c.name = name } }

// WithPrefix mounts the module under a path prefix
func WithPrefix(prefix string) Option { return func(c *buildCfg) { c.prefix = prefix } }

// WithMiddlewares appends per-module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts injects ports declared by another module; the concrete type
// is owned by the importing module
func WithPorts[T any](p T) Option { return func(c *buildCfg) { c.ports = p } }

// WithSwagger toggles the swagger UI for this module when mounted
func WithSwagger(enabled bool) Option { return func(c *buildCfg) { c.swaggerOn = enabled } }

// WithSubrouter supplies a subrouter factory over the platform seam
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(c *buildCfg) { c.subrouter = fn }
}

// WithRegister sets the callback that attaches endpoints to the module router
func WithRegister(fn func(phttp.Router)) Option { return func(c *buildCfg) { c.register = fn } }
