// Package service computes the distribution stats views.
package service

import (
	"context"

	"leadrouter/internal/modkit/repokit"
	perr "leadrouter/internal/platform/errors"
	"leadrouter/internal/services/api/stats/domain"
	"leadrouter/internal/services/api/stats/repo"
)

// Service defines the service contract for stats
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new stats service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("stats.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("stats.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// OperatorsLoad reports each operator's current load against capacity
func (s *Svc) OperatorsLoad(ctx context.Context, in domain.LoadInput) ([]domain.OperatorLoad, error) {
	rows, err := s.Repo.OperatorsLoad(ctx, in.IsActive)
	if err != nil {
		return nil, err
	}
	out := make([]domain.OperatorLoad, 0, len(rows))
	for _, r := range rows {
		pct := 0.0
		if r.MaxLoad > 0 {
			pct = float64(r.Load) / float64(r.MaxLoad) * 100
		}
		out = append(out, domain.OperatorLoad{
			OperatorID:  r.OperatorID,
			Name:        r.Name,
			IsActive:    r.IsActive,
			Load:        r.Load,
			MaxLoad:     r.MaxLoad,
			LoadPercent: pct,
		})
	}
	return out, nil
}

// BySource breaks one source's assignments down per operator
// the unassigned pending bucket comes back with a nil operator id
func (s *Svc) BySource(ctx context.Context, in domain.BySourceInput) ([]domain.SourceBreakdown, error) {
	ok, err := s.Repo.SourceExists(ctx, in.SourceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, perr.NotFoundf("source %d not found", in.SourceID)
	}

	rows, err := s.Repo.BySource(ctx, in.SourceID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SourceBreakdown, 0, len(rows))
	for _, r := range rows {
		name := ""
		if r.Name != nil {
			name = *r.Name
		}
		out = append(out, domain.SourceBreakdown{
			OperatorID: r.OperatorID,
			Name:       name,
			Active:     r.Active,
			Pending:    r.Pending,
			Completed:  r.Completed,
			Cancelled:  r.Cancelled,
		})
	}
	return out, nil
}
