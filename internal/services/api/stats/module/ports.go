package module

import (
	"context"

	"leadrouter/internal/services/api/stats/domain"
	statssvc "leadrouter/internal/services/api/stats/service"
)

// Ports hands out the cross-module lookup surface
func (m *Module) Ports() any { return m.ports }

type adaptStatsPort struct{ svc statssvc.Service }

// OperatorsLoad reports per-operator load
func (a adaptStatsPort) OperatorsLoad(ctx context.Context, in domain.LoadInput) ([]domain.OperatorLoad, error) {
	return a.svc.OperatorsLoad(ctx, in)
}

// BySource breaks a source's assignments down per operator
func (a adaptStatsPort) BySource(ctx context.Context, in domain.BySourceInput) ([]domain.SourceBreakdown, error) {
	return a.svc.BySource(ctx, in)
}
