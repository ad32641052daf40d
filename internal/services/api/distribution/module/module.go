// Package module plugs the assignment engine endpoints into the API composition.
package module

import (
	"net/http"

	modkit "leadrouter/internal/modkit"
	"leadrouter/internal/modkit/httpkit"
	str "leadrouter/internal/platform/strings"
	disthttp "leadrouter/internal/services/api/distribution/http"
	distrepo "leadrouter/internal/services/api/distribution/repo"
	distsvc "leadrouter/internal/services/api/distribution/service"
)

// Module bundles the distribution routes with their ports adapter
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc distsvc.Service
}

// New constructs the distribution module. The ClickHouse audit sink is
// optional; without it assignments are still made but not audited
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("distribution"), modkit.WithPrefix("/distribution")}, opts...)...)

	svcOpts := []distsvc.Option{}
	if deps.CH != nil {
		svcOpts = append(svcOpts, distsvc.WithAudit(deps.CH))
	}
	svc := distsvc.New(deps.PG, distrepo.NewPG(), svcOpts...)

	external := b.Register
	return &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
		ports:     adaptDistributionPort{svc: svc},
		register: func(r httpkit.Router) {
			disthttp.Register(r, svc)
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
