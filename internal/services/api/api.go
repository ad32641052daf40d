// Package api assembles the service modules into one mounted HTTP surface.
package api

import (
	"leadrouter/internal/platform/config"
	"leadrouter/internal/platform/logger"
	phttp "leadrouter/internal/platform/net/http"
	"leadrouter/internal/platform/store"

	"leadrouter/internal/modkit"
	"leadrouter/internal/modkit/httpkit"
	"leadrouter/internal/modkit/module"
	"leadrouter/internal/modkit/swaggerkit"

	distmod "leadrouter/internal/services/api/distribution/module"
	leadsmod "leadrouter/internal/services/api/leads/module"
	metamod "leadrouter/internal/services/api/meta/module"
	opsmod "leadrouter/internal/services/api/operators/module"
	srcmod "leadrouter/internal/services/api/sources/module"
	statsmod "leadrouter/internal/services/api/stats/module"
)

// Options selects which optional surfaces Mount wires up
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount registers every module plus the root-level extras on r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	mods := []module.Module{
		metamod.New(deps),
		distmod.New(deps),
		opsmod.New(deps),
		srcmod.New(deps),
		leadsmod.New(deps),
		statsmod.New(deps),
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// docs and profiler hang off the root, not /api/v1
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// ports go into the registry so modules can look each other up
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
