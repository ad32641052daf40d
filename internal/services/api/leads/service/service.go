// Package service contains leads and assignments workflows
package service

import (
	"context"
	"time"

	"leadrouter/internal/modkit/repokit"
	perr "leadrouter/internal/platform/errors"
	"leadrouter/internal/services/api/leads/domain"
	"leadrouter/internal/services/api/leads/repo"
)

const defaultPageSize = 50

// Service defines the service contract for leads
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new leads service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("leads.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("leads.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns one page of leads
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.ListOutput, error) {
	page, size := pageOf(in.Page, in.PageSize)

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return domain.ListOutput{}, err
	}
	rows, err := s.Repo.List(ctx, (page-1)*size, size)
	if err != nil {
		return domain.ListOutput{}, err
	}
	return domain.ListOutput{Items: leadsWire(rows), Total: total, Page: page, PageSize: size}, nil
}

// Search matches leads whose external id, phone, or email contains the query
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.ListOutput, error) {
	page, size := pageOf(in.Page, in.PageSize)

	total, err := s.Repo.SearchCount(ctx, in.Query)
	if err != nil {
		return domain.ListOutput{}, err
	}
	rows, err := s.Repo.Search(ctx, in.Query, (page-1)*size, size)
	if err != nil {
		return domain.ListOutput{}, err
	}
	return domain.ListOutput{Items: leadsWire(rows), Total: total, Page: page, PageSize: size}, nil
}

// Assignments returns one page of assignments, optionally filtered
func (s *Svc) Assignments(ctx context.Context, in domain.AssignmentsInput) (domain.AssignmentsOutput, error) {
	page, size := pageOf(in.Page, in.PageSize)
	f := repo.AssignmentFilter{Status: in.Status, SourceID: in.SourceID, OperatorID: in.Operator}

	total, err := s.Repo.AssignmentsCount(ctx, f)
	if err != nil {
		return domain.AssignmentsOutput{}, err
	}
	rows, err := s.Repo.Assignments(ctx, f, (page-1)*size, size)
	if err != nil {
		return domain.AssignmentsOutput{}, err
	}

	items := make([]domain.Assignment, 0, len(rows))
	for _, r := range rows {
		items = append(items, assignmentWire(r))
	}
	return domain.AssignmentsOutput{Items: items, Total: total, Page: page, PageSize: size}, nil
}

// SetStatus moves an assignment into a terminal status. Completing or
// cancelling an active row frees the operator's slot for redistribution
func (s *Svc) SetStatus(ctx context.Context, in domain.StatusInput) (domain.Assignment, error) {
	var out domain.Assignment
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		row, ok, err := r.SetStatus(ctx, in.AssignmentID, in.Status)
		if err != nil {
			return err
		}
		if !ok {
			// distinguish a missing row from an illegal transition
			current, serr := r.AssignmentStatus(ctx, in.AssignmentID)
			if serr != nil {
				if perr.IsCode(serr, perr.ErrorCodeNotFound) {
					return perr.NotFoundf("assignment %d not found", in.AssignmentID)
				}
				return serr
			}
			return perr.Conflictf("assignment %d is %s, cannot move to %s", in.AssignmentID, current, in.Status)
		}
		out = assignmentWire(row)
		return nil
	})
	return out, err
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

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func leadsWire(rows []repo.Lead) []domain.Lead {
	out := make([]domain.Lead, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Lead{
			ID:         r.ID,
			ExternalID: deref(r.ExternalID),
			Phone:      deref(r.Phone),
			Email:      deref(r.Email),
			CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func assignmentWire(r repo.Assignment) domain.Assignment {
	return domain.Assignment{
		ID:         r.ID,
		LeadID:     r.LeadID,
		SourceID:   r.SourceID,
		OperatorID: r.OperatorID,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
