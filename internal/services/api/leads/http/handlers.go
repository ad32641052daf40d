// Package http provides http transport for leads
package http

import (
	stdhttp "net/http"

	"leadrouter/internal/modkit/httpkit"
	"leadrouter/internal/services/api/leads/domain"
	svc "leadrouter/internal/services/api/leads/service"
)

// Register mounts leads endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.PostJSON[domain.AssignmentsInput](r, "/assignments/list", h.assignments)
	httpkit.PostJSON[domain.StatusInput](r, "/assignments/status", h.setStatus)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /leads/list Leads leadsList
// @Summary Paged lead list
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {object} domain.ListOutput "ok"
// @Router /leads/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /leads/search Leads leadsSearch
// @Summary Search leads by identity substring
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {object} domain.ListOutput "ok"
// @Router /leads/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// swagger:route POST /leads/assignments/list Leads assignmentsList
// @Summary Paged assignment list
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body domain.AssignmentsInput true "Query"
// @Success 200 {object} domain.AssignmentsOutput "ok"
// @Router /leads/assignments/list [post]
func (h *handlers) assignments(r *stdhttp.Request, in domain.AssignmentsInput) (any, error) {
	return h.svc.Assignments(r.Context(), in)
}

// swagger:route POST /leads/assignments/status Leads assignmentsStatus
// @Summary Complete or cancel an assignment
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body domain.StatusInput true "Transition"
// @Success 200 {object} domain.Assignment "ok"
// @Router /leads/assignments/status [post]
func (h *handlers) setStatus(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	return h.svc.SetStatus(r.Context(), in)
}
