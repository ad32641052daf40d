// Package http provides http transport for operators
package http

import (
	stdhttp "net/http"

	"leadrouter/internal/modkit/httpkit"
	"leadrouter/internal/services/api/operators/domain"
	svc "leadrouter/internal/services/api/operators/service"
)

// Register mounts operators endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /operators Operators operatorsCreate
// @Summary Register an operator
// @Tags Operators
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Operator"
// @Success 200 {object} domain.Operator "ok"
// @Router /operators [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /operators/list Operators operatorsList
// @Summary Paged operator list
// @Tags Operators
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {object} domain.ListOutput "ok"
// @Router /operators/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}
