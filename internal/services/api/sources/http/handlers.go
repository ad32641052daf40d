// Package http provides http transport for sources
package http

import (
	stdhttp "net/http"

	"leadrouter/internal/modkit/httpkit"
	"leadrouter/internal/services/api/sources/domain"
	svc "leadrouter/internal/services/api/sources/service"
)

// Register mounts sources endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.LinkInput](r, "/link", h.link)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /sources Sources sourcesCreate
// @Summary Register a source
// @Tags Sources
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Source"
// @Success 200 {object} domain.Source "ok"
// @Router /sources [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /sources/list Sources sourcesList
// @Summary Paged source list
// @Tags Sources
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {object} domain.ListOutput "ok"
// @Router /sources/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /sources/link Sources sourcesLink
// @Summary Attach an operator to a source with a weight
// @Tags Sources
// @Accept json
// @Produce json
// @Param payload body domain.LinkInput true "Link"
// @Success 200 {object} domain.Link "ok"
// @Router /sources/link [post]
func (h *handlers) link(r *stdhttp.Request, in domain.LinkInput) (any, error) {
	return h.svc.Link(r.Context(), in)
}
