// Package repo runs the stats aggregation queries against postgres.
package repo

import (
	"context"
	stderrs "errors"

	"leadrouter/internal/modkit/repokit"
	perr "leadrouter/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// Repo is what the stats service needs from storage
type Repo interface {
	OperatorsLoad(ctx context.Context, isActive *bool) ([]RowLoad, error)
	SourceExists(ctx context.Context, sourceID int64) (bool, error)
	BySource(ctx context.Context, sourceID int64) ([]RowBySource, error)
}

// RowLoad is one operator with its current active load
type RowLoad struct {
	OperatorID int64
	Name       string
	IsActive   bool
	Load       int
	MaxLoad    int
}

// RowBySource is one operator bucket of a source's assignments
// OperatorID is nil for the unassigned pending bucket
type RowBySource struct {
	OperatorID *int64
	Name       *string
	Active     int64
	Pending    int64
	Completed  int64
	Cancelled  int64
}

type (
	// PG builds the postgres-backed Repo for a given Queryer
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns the binder the service threads through transactions
func NewPG() repokit.Binder[Repo] { return PG{} }

func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) OperatorsLoad(ctx context.Context, isActive *bool) ([]RowLoad, error) {
	const sql = `
select o.id, o.name, o.is_active, o.max_load,
	(select count(*) from lead_assignments la
	 where la.operator_id = o.id and la.status = 'active') as load
from operators o
where ($1::boolean is null or o.is_active = $1)
order by o.id
`
	rows, err := r.q.Query(ctx, sql, isActive)
	if err != nil {
		return nil, perr.FromPostgres(err, "select operator load")
	}
	defer rows.Close()
	var out []RowLoad
	for rows.Next() {
		var rr RowLoad
		if err := rows.Scan(&rr.OperatorID, &rr.Name, &rr.IsActive, &rr.MaxLoad, &rr.Load); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) SourceExists(ctx context.Context, sourceID int64) (bool, error) {
	var one int
	err := r.q.QueryRow(ctx, `select 1 from sources where id = $1`, sourceID).Scan(&one)
	if err != nil {
		if stderrs.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, perr.FromPostgres(err, "select source")
	}
	return true, nil
}

func (r *queries) BySource(ctx context.Context, sourceID int64) ([]RowBySource, error) {
	const sql = `
select la.operator_id, o.name,
	count(*) filter (where la.status = 'active') as active,
	count(*) filter (where la.status = 'pending') as pending,
	count(*) filter (where la.status = 'completed') as completed,
	count(*) filter (where la.status = 'cancelled') as cancelled
from lead_assignments la
left join operators o on o.id = la.operator_id
where la.source_id = $1
group by la.operator_id, o.name
order by la.operator_id nulls last
`
	rows, err := r.q.Query(ctx, sql, sourceID)
	if err != nil {
		return nil, perr.FromPostgres(err, "select source breakdown")
	}
	defer rows.Close()
	var out []RowBySource
	for rows.Next() {
		var rr RowBySource
		if err := rows.Scan(&rr.OperatorID, &rr.Name, &rr.Active, &rr.Pending, &rr.Completed, &rr.Cancelled); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
