package module

import (
	"context"

	"leadrouter/internal/services/api/sources/domain"
	srcsvc "leadrouter/internal/services/api/sources/service"
)

// Ports hands out the cross-module lookup surface
func (m *Module) Ports() any { return m.ports }

type adaptSourcesPort struct{ svc srcsvc.Service }

// Create registers a source
func (a adaptSourcesPort) Create(ctx context.Context, in domain.CreateInput) (domain.Source, error) {
	return a.svc.Create(ctx, in)
}

// List returns one page of sources
func (a adaptSourcesPort) List(ctx context.Context, in domain.ListInput) (domain.ListOutput, error) {
	return a.svc.List(ctx, in)
}

// Link attaches an operator to a source
func (a adaptSourcesPort) Link(ctx context.Context, in domain.LinkInput) (domain.Link, error) {
	return a.svc.Link(ctx, in)
}
