// Package repo provides postgres access for sources and their operator links
package repo

import (
	"context"
	"time"

	"leadrouter/internal/modkit/repokit"
	perr "leadrouter/internal/platform/errors"
)

// Source is one source row
type Source struct {
	ID        int64
	Name      string
	BotID     string
	CreatedAt time.Time
}

// Link is one operator-source weight row
type Link struct {
	ID         int64
	SourceID   int64
	OperatorID int64
	Weight     int
}

// Repo is the persistence surface for sources
type Repo interface {
	Insert(ctx context.Context, name, botID string) (Source, error)
	List(ctx context.Context, offset, limit int) ([]Source, error)
	Count(ctx context.Context) (int, error)
	UpsertLink(ctx context.Context, sourceID, operatorID int64, weight int) (Link, error)
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

func (r *queries) Insert(ctx context.Context, name, botID string) (Source, error) {
	const sql = `
insert into sources (name, bot_id)
values ($1, $2)
returning id, name, bot_id, created_at
`
	var s Source
	if err := r.q.QueryRow(ctx, sql, name, botID).Scan(&s.ID, &s.Name, &s.BotID, &s.CreatedAt); err != nil {
		return Source{}, perr.FromPostgres(err, "insert source")
	}
	return s, nil
}

func (r *queries) List(ctx context.Context, offset, limit int) ([]Source, error) {
	const sql = `
select id, name, bot_id, created_at
from sources
order by id
offset $1 limit $2
`
	rows, err := r.q.Query(ctx, sql, offset, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "select sources")
	}
	defer rows.Close()
	var out []Source
	for rows.Next() {
		var s Source
		if err := rows.Scan(&s.ID, &s.Name, &s.BotID, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *queries) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `select count(*) from sources`).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "count sources")
	}
	return n, nil
}

// UpsertLink re-linking an already linked pair just replaces the weight
func (r *queries) UpsertLink(ctx context.Context, sourceID, operatorID int64, weight int) (Link, error) {
	const sql = `
insert into operator_sources (source_id, operator_id, weight)
values ($1, $2, $3)
on conflict (operator_id, source_id) do update set weight = excluded.weight
returning id, source_id, operator_id, weight
`
	var l Link
	err := r.q.QueryRow(ctx, sql, sourceID, operatorID, weight).
		Scan(&l.ID, &l.SourceID, &l.OperatorID, &l.Weight)
	if err != nil {
		return Link{}, perr.FromPostgres(err, "upsert operator link")
	}
	return l, nil
}
