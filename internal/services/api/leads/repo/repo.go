// Package repo provides postgres access for leads and assignments
package repo

import (
	"context"
	stderrs "errors"
	"time"

	"leadrouter/internal/modkit/repokit"
	perr "leadrouter/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// Lead is one lead row
type Lead struct {
	ID         int64
	ExternalID *string
	Phone      *string
	Email      *string
	CreatedAt  time.Time
}

// Assignment is one assignment row
type Assignment struct {
	ID         int64
	LeadID     int64
	SourceID   int64
	OperatorID *int64
	Status     string
	CreatedAt  time.Time
}

// AssignmentFilter narrows the assignment list query
type AssignmentFilter struct {
	Status     string
	SourceID   *int64
	OperatorID *int64
}

// Repo is the persistence surface for leads
type Repo interface {
	List(ctx context.Context, offset, limit int) ([]Lead, error)
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, query string, offset, limit int) ([]Lead, error)
	SearchCount(ctx context.Context, query string) (int, error)

	Assignments(ctx context.Context, f AssignmentFilter, offset, limit int) ([]Assignment, error)
	AssignmentsCount(ctx context.Context, f AssignmentFilter) (int, error)
	AssignmentStatus(ctx context.Context, id int64) (string, error)
	SetStatus(ctx context.Context, id int64, status string) (Assignment, bool, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) scanLeads(rows repokit.Rows) ([]Lead, error) {
	defer rows.Close()
	var out []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.ExternalID, &l.Phone, &l.Email, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *queries) List(ctx context.Context, offset, limit int) ([]Lead, error) {
	const sql = `
select id, external_id, phone, email, created_at
from leads
order by id
offset $1 limit $2
`
	rows, err := r.q.Query(ctx, sql, offset, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "select leads")
	}
	return r.scanLeads(rows)
}

func (r *queries) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `select count(*) from leads`).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "count leads")
	}
	return n, nil
}

func (r *queries) Search(ctx context.Context, query string, offset, limit int) ([]Lead, error) {
	const sql = `
select id, external_id, phone, email, created_at
from leads
where external_id ilike '%' || $1 || '%'
   or phone ilike '%' || $1 || '%'
   or email ilike '%' || $1 || '%'
order by id
offset $2 limit $3
`
	rows, err := r.q.Query(ctx, sql, query, offset, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "search leads")
	}
	return r.scanLeads(rows)
}

func (r *queries) SearchCount(ctx context.Context, query string) (int, error) {
	const sql = `
select count(*)
from leads
where external_id ilike '%' || $1 || '%'
   or phone ilike '%' || $1 || '%'
   or email ilike '%' || $1 || '%'
`
	var n int
	if err := r.q.QueryRow(ctx, sql, query).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "count lead search")
	}
	return n, nil
}

const assignmentFilterSQL = `
where ($1::text is null or status = $1)
  and ($2::bigint is null or source_id = $2)
  and ($3::bigint is null or operator_id = $3)
`

func filterArgs(f AssignmentFilter) []any {
	var status *string
	if f.Status != "" {
		status = &f.Status
	}
	return []any{status, f.SourceID, f.OperatorID}
}

func (r *queries) Assignments(ctx context.Context, f AssignmentFilter, offset, limit int) ([]Assignment, error) {
	sql := `
select id, lead_id, source_id, operator_id, status, created_at
from lead_assignments
` + assignmentFilterSQL + `
order by id
offset $4 limit $5
`
	args := append(filterArgs(f), offset, limit)
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "select assignments")
	}
	defer rows.Close()
	var out []Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.LeadID, &a.SourceID, &a.OperatorID, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *queries) AssignmentsCount(ctx context.Context, f AssignmentFilter) (int, error) {
	sql := `
select count(*)
from lead_assignments
` + assignmentFilterSQL
	var n int
	if err := r.q.QueryRow(ctx, sql, filterArgs(f)...).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "count assignments")
	}
	return n, nil
}

func (r *queries) AssignmentStatus(ctx context.Context, id int64) (string, error) {
	var status string
	err := r.q.QueryRow(ctx, `select status from lead_assignments where id = $1`, id).Scan(&status)
	if err != nil {
		if stderrs.Is(err, pgx.ErrNoRows) {
			return "", perr.ErrNotFound
		}
		return "", perr.FromPostgres(err, "select assignment")
	}
	return status, nil
}

// SetStatus flips the row only when the transition is legal: completed
// requires active, cancelled accepts active or pending.
// ok=false means the row was missing or not in an eligible status
func (r *queries) SetStatus(ctx context.Context, id int64, status string) (Assignment, bool, error) {
	const sql = `
update lead_assignments
set status = $2
where id = $1
  and (($2 = 'completed' and status = 'active')
    or ($2 = 'cancelled' and status in ('active', 'pending')))
returning id, lead_id, source_id, operator_id, status, created_at
`
	var a Assignment
	err := r.q.QueryRow(ctx, sql, id, status).
		Scan(&a.ID, &a.LeadID, &a.SourceID, &a.OperatorID, &a.Status, &a.CreatedAt)
	if err != nil {
		if stderrs.Is(err, pgx.ErrNoRows) {
			return Assignment{}, false, nil
		}
		return Assignment{}, false, perr.FromPostgres(err, "update assignment status")
	}
	return a, true, nil
}
