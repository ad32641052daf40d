package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, in ListInput) (ListOutput, error)
	Search(ctx context.Context, in SearchInput) (ListOutput, error)
	Assignments(ctx context.Context, in AssignmentsInput) (AssignmentsOutput, error)
	SetStatus(ctx context.Context, in StatusInput) (Assignment, error)
}
