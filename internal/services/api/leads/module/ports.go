package module

import (
	"context"

	"leadrouter/internal/services/api/leads/domain"
	leadssvc "leadrouter/internal/services/api/leads/service"
)

// Ports hands out the cross-module lookup surface
func (m *Module) Ports() any { return m.ports }

type adaptLeadsPort struct{ svc leadssvc.Service }

// List returns one page of leads
func (a adaptLeadsPort) List(ctx context.Context, in domain.ListInput) (domain.ListOutput, error) {
	return a.svc.List(ctx, in)
}

// Search matches leads by identity substring
func (a adaptLeadsPort) Search(ctx context.Context, in domain.SearchInput) (domain.ListOutput, error) {
	return a.svc.Search(ctx, in)
}

// Assignments returns one page of assignments
func (a adaptLeadsPort) Assignments(ctx context.Context, in domain.AssignmentsInput) (domain.AssignmentsOutput, error) {
	return a.svc.Assignments(ctx, in)
}

// SetStatus moves an assignment into a terminal status
func (a adaptLeadsPort) SetStatus(ctx context.Context, in domain.StatusInput) (domain.Assignment, error) {
	return a.svc.SetStatus(ctx, in)
}
