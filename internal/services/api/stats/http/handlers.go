// Package http exposes the stats read endpoints.
package http

import (
	stdhttp "net/http"

	"leadrouter/internal/modkit/httpkit"
	"leadrouter/internal/services/api/stats/domain"
	svc "leadrouter/internal/services/api/stats/service"
)

// Register installs the stats routes on r
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// per-operator load against capacity
	httpkit.PostJSON[domain.LoadInput](r, "/operators-load", h.operatorsLoad)

	// assignment breakdown for one source
	httpkit.PostJSON[domain.BySourceInput](r, "/source", h.bySource)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /stats/operators-load Stats statsOperatorsLoad
// @Summary Operator load report
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.LoadInput true "Query"
// @Success 200 {array} domain.OperatorLoad "ok"
// @Router /stats/operators-load [post]
func (h *handlers) operatorsLoad(r *stdhttp.Request, in domain.LoadInput) (any, error) {
	return h.svc.OperatorsLoad(r.Context(), in)
}

// swagger:route POST /stats/source Stats statsBySource
// @Summary Assignment breakdown for a source
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.BySourceInput true "Query"
// @Success 200 {array} domain.SourceBreakdown "ok"
// @Router /stats/source [post]
func (h *handlers) bySource(r *stdhttp.Request, in domain.BySourceInput) (any, error) {
	return h.svc.BySource(r.Context(), in)
}
