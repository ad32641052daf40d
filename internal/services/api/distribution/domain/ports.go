package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Distribute(ctx context.Context, in DistributeInput) (DistributeOutput, error)
	Redistribute(ctx context.Context, in RedistributeInput) (RedistributeOutput, error)
}
