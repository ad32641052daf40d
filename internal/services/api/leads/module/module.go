// Package module plugs the lead CRUD endpoints into the API composition.
package module

import (
	"net/http"

	modkit "leadrouter/internal/modkit"
	"leadrouter/internal/modkit/httpkit"
	str "leadrouter/internal/platform/strings"
	leadshttp "leadrouter/internal/services/api/leads/http"
	leadsrepo "leadrouter/internal/services/api/leads/repo"
	leadssvc "leadrouter/internal/services/api/leads/service"
)

// Module bundles the lead routes with their ports adapter
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc leadssvc.Service
}

// New builds the leads module and its service stack
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("leads"), modkit.WithPrefix("/leads")}, opts...)...)

	svc := leadssvc.New(deps.PG, leadsrepo.NewPG())

	external := b.Register
	return &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
		ports:     adaptLeadsPort{svc: svc},
		register: func(r httpkit.Router) {
			leadshttp.Register(r, svc)
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
