package module

import (
	"context"

	"leadrouter/internal/services/api/operators/domain"
	opssvc "leadrouter/internal/services/api/operators/service"
)

// Ports hands out the cross-module lookup surface
func (m *Module) Ports() any { return m.ports }

type adaptOperatorsPort struct{ svc opssvc.Service }

// Create registers an operator
func (a adaptOperatorsPort) Create(ctx context.Context, in domain.CreateInput) (domain.Operator, error) {
	return a.svc.Create(ctx, in)
}

// List returns one page of operators
func (a adaptOperatorsPort) List(ctx context.Context, in domain.ListInput) (domain.ListOutput, error) {
	return a.svc.List(ctx, in)
}
