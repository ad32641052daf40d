// Package http provides http transport for distribution
package http

import (
	stdhttp "net/http"

	"leadrouter/internal/modkit/httpkit"
	"leadrouter/internal/services/api/distribution/domain"
	svc "leadrouter/internal/services/api/distribution/service"
)

// Register mounts distribution endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// route one inbound lead
	httpkit.PostJSON[domain.DistributeInput](r, "/distribute", h.distribute)

	// sweep pending assignments
	httpkit.PostJSON[domain.RedistributeInput](r, "/redistribute", h.redistribute)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /distribution/distribute Distribution distribute
// @Summary Route one inbound lead to an operator
// @Tags Distribution
// @Accept json
// @Produce json
// @Param payload body domain.DistributeInput true "Lead identity and source key"
// @Success 200 {object} domain.DistributeOutput "ok"
// @Failure 404 {object} httpkit.Envelope "unknown source key"
// @Router /distribution/distribute [post]
func (h *handlers) distribute(r *stdhttp.Request, in domain.DistributeInput) (any, error) {
	return h.svc.Distribute(r.Context(), in)
}

// swagger:route POST /distribution/redistribute Distribution redistribute
// @Summary Sweep pending assignments onto freed capacity
// @Tags Distribution
// @Accept json
// @Produce json
// @Param payload body domain.RedistributeInput true "Optional source filter"
// @Success 200 {object} domain.RedistributeOutput "ok"
// @Router /distribution/redistribute [post]
func (h *handlers) redistribute(r *stdhttp.Request, in domain.RedistributeInput) (any, error) {
	return h.svc.Redistribute(r.Context(), in)
}
