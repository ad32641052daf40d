// Package service contains sources workflows
package service

import (
	"context"
	"time"

	"leadrouter/internal/modkit/repokit"
	"leadrouter/internal/services/api/sources/domain"
	"leadrouter/internal/services/api/sources/repo"
)

const (
	defaultWeight   = 10
	defaultPageSize = 50
)

// Service defines the service contract for sources
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new sources service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("sources.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("sources.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Create registers a new inbound source
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Source, error) {
	row, err := s.Repo.Insert(ctx, in.Name, in.BotID)
	if err != nil {
		return domain.Source{}, err
	}
	return toWire(row), nil
}

// List returns one page of sources
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.ListOutput, error) {
	page, size := in.Page, in.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return domain.ListOutput{}, err
	}
	rows, err := s.Repo.List(ctx, (page-1)*size, size)
	if err != nil {
		return domain.ListOutput{}, err
	}

	items := make([]domain.Source, 0, len(rows))
	for _, r := range rows {
		items = append(items, toWire(r))
	}
	return domain.ListOutput{Items: items, Total: total, Page: page, PageSize: size}, nil
}

// Link attaches an operator to a source with a routing weight
func (s *Svc) Link(ctx context.Context, in domain.LinkInput) (domain.Link, error) {
	weight := defaultWeight
	if in.Weight != nil {
		weight = *in.Weight
	}
	row, err := s.Repo.UpsertLink(ctx, in.SourceID, in.OperatorID, weight)
	if err != nil {
		return domain.Link{}, err
	}
	return domain.Link{ID: row.ID, SourceID: row.SourceID, OperatorID: row.OperatorID, Weight: row.Weight}, nil
}

func toWire(r repo.Source) domain.Source {
	return domain.Source{
		ID:        r.ID,
		Name:      r.Name,
		BotID:     r.BotID,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
