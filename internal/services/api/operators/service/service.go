// Package service contains operators workflows
package service

import (
	"context"
	"time"

	"leadrouter/internal/modkit/repokit"
	"leadrouter/internal/services/api/operators/domain"
	"leadrouter/internal/services/api/operators/repo"
)

const (
	defaultMaxLoad  = 10
	defaultPageSize = 50
)

// Service defines the service contract for operators
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new operators service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("operators.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("operators.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Create registers a new operator
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Operator, error) {
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	maxLoad := defaultMaxLoad
	if in.MaxLoad != nil {
		maxLoad = *in.MaxLoad
	}

	row, err := s.Repo.Insert(ctx, in.Name, in.Email, isActive, maxLoad)
	if err != nil {
		return domain.Operator{}, err
	}
	return toWire(row), nil
}

// List returns one page of operators, newest ids last
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.ListOutput, error) {
	page, size := pageOf(in.Page, in.PageSize)

	total, err := s.Repo.Count(ctx, in.IsActive)
	if err != nil {
		return domain.ListOutput{}, err
	}
	rows, err := s.Repo.List(ctx, in.IsActive, (page-1)*size, size)
	if err != nil {
		return domain.ListOutput{}, err
	}

	items := make([]domain.Operator, 0, len(rows))
	for _, r := range rows {
		items = append(items, toWire(r))
	}
	return domain.ListOutput{Items: items, Total: total, Page: page, PageSize: size}, nil
}

func pageOf(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	return page, size
}

func toWire(r repo.Operator) domain.Operator {
	email := ""
	if r.Email != nil {
		email = *r.Email
	}
	return domain.Operator{
		ID:        r.ID,
		Name:      r.Name,
		Email:     email,
		IsActive:  r.IsActive,
		MaxLoad:   r.MaxLoad,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
