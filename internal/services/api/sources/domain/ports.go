package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Source, error)
	List(ctx context.Context, in ListInput) (ListOutput, error)
	Link(ctx context.Context, in LinkInput) (Link, error)
}
