package domain

import "context"

// ServicePort is the face stats shows other modules
type ServicePort interface {
	OperatorsLoad(ctx context.Context, in LoadInput) ([]OperatorLoad, error)
	BySource(ctx context.Context, in BySourceInput) ([]SourceBreakdown, error)
}
