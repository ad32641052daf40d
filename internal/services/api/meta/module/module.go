// Package module mounts the meta endpoints as a regular API module
package module

import (
	"net/http"
	"time"

	modkit "leadrouter/internal/modkit"
	"leadrouter/internal/modkit/httpkit"
	str "leadrouter/internal/platform/strings"
	metahttp "leadrouter/internal/services/api/meta/http"
)

// Module exposes health, readiness and build info under /meta
type Module struct {
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the meta module; StartedAt is captured here so uptime
// counts from process wiring, not first request
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	started := time.Now()
	external := b.Register

	return &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		register: func(r httpkit.Router) {
			metahttp.Register(r, metahttp.Deps{
				ServiceName: "leadrouter-api",
				StartedAt:   started,
				PG:          deps.PG,
				CH:          deps.CH,
			})
			if external != nil {
				external(r)
			}
		},
	}
}

// MountRoutes hangs the module under its prefix with its middleware stack
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		m.register(rr)
	})
}

func (m *Module) Name() string { return str.MustString(m.name, "module name") }

func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports reports nothing; meta exports no service ports
func (m *Module) Ports() any { return nil }
