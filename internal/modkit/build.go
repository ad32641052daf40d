package modkit

import (
	"net/http"

	"leadrouter/internal/modkit/httpkit"
)

// Built is the resolved module configuration handed back to New
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	SwaggerOn bool

	// hooks the module picked up through options
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build folds Option funcs into a Built, substituting no-op router hooks
// where none were given. The middleware slice is copied so later option
// reuse cannot alias it
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}

	sub := c.subrouter
	if sub == nil {
		sub = func(r httpkit.Router) httpkit.Router { return r }
	}
	reg := c.register
	if reg == nil {
		reg = func(httpkit.Router) {}
	}

	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		SwaggerOn: c.swaggerOn,
		Subrouter: sub,
		Register:  reg,
	}
}
