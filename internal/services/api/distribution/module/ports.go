package module

import (
	"context"

	"leadrouter/internal/services/api/distribution/domain"
	distsvc "leadrouter/internal/services/api/distribution/service"
)

// Ports hands out the cross-module lookup surface
func (m *Module) Ports() any { return m.ports }

type adaptDistributionPort struct{ svc distsvc.Service }

// Distribute routes one inbound lead
func (a adaptDistributionPort) Distribute(ctx context.Context, in domain.DistributeInput) (domain.DistributeOutput, error) {
	return a.svc.Distribute(ctx, in)
}

// Redistribute sweeps pending assignments
func (a adaptDistributionPort) Redistribute(ctx context.Context, in domain.RedistributeInput) (domain.RedistributeOutput, error) {
	return a.svc.Redistribute(ctx, in)
}
