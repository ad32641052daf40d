// Package module plugs the operator management endpoints into the API composition.
package module

import (
	"net/http"

	modkit "leadrouter/internal/modkit"
	"leadrouter/internal/modkit/httpkit"
	str "leadrouter/internal/platform/strings"
	opshttp "leadrouter/internal/services/api/operators/http"
	opsrepo "leadrouter/internal/services/api/operators/repo"
	opssvc "leadrouter/internal/services/api/operators/service"
)

// Module bundles the operator routes with their ports adapter
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc opssvc.Service
}

// New builds the operators module and its service stack
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("operators"), modkit.WithPrefix("/operators")}, opts...)...)

	svc := opssvc.New(deps.PG, opsrepo.NewPG())

	external := b.Register
	return &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
		ports:     adaptOperatorsPort{svc: svc},
		register: func(r httpkit.Router) {
			opshttp.Register(r, svc)
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
