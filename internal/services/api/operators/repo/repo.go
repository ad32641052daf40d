// Package repo provides postgres access for operators
package repo

import (
	"context"
	stderrs "errors"
	"time"

	"leadrouter/internal/modkit/repokit"
	perr "leadrouter/internal/platform/errors"
	pstrings "leadrouter/internal/platform/strings"

	"github.com/jackc/pgx/v5"
)

// Operator is one operator row
type Operator struct {
	ID        int64
	Name      string
	Email     *string
	IsActive  bool
	MaxLoad   int
	CreatedAt time.Time
}

// Repo is the persistence surface for operators
type Repo interface {
	Insert(ctx context.Context, name, email string, isActive bool, maxLoad int) (Operator, error)
	List(ctx context.Context, isActive *bool, offset, limit int) ([]Operator, error)
	Count(ctx context.Context, isActive *bool) (int, error)
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

func (r *queries) Insert(ctx context.Context, name, email string, isActive bool, maxLoad int) (Operator, error) {
	const sql = `
insert into operators (name, email, is_active, max_load)
values ($1, $2, $3, $4)
returning id, name, email, is_active, max_load, created_at
`
	var o Operator
	err := r.q.QueryRow(ctx, sql, name, pstrings.SQLNull(email), isActive, maxLoad).
		Scan(&o.ID, &o.Name, &o.Email, &o.IsActive, &o.MaxLoad, &o.CreatedAt)
	if err != nil {
		return Operator{}, perr.FromPostgres(err, "insert operator")
	}
	return o, nil
}

func (r *queries) List(ctx context.Context, isActive *bool, offset, limit int) ([]Operator, error) {
	const sql = `
select id, name, email, is_active, max_load, created_at
from operators
where ($1::boolean is null or is_active = $1)
order by id
offset $2 limit $3
`
	rows, err := r.q.Query(ctx, sql, isActive, offset, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "select operators")
	}
	defer rows.Close()
	var out []Operator
	for rows.Next() {
		var o Operator
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.IsActive, &o.MaxLoad, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *queries) Count(ctx context.Context, isActive *bool) (int, error) {
	const sql = `
select count(*)
from operators
where ($1::boolean is null or is_active = $1)
`
	var n int
	if err := r.q.QueryRow(ctx, sql, isActive).Scan(&n); err != nil {
		if stderrs.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, perr.FromPostgres(err, "count operators")
	}
	return n, nil
}
