// Package repo provides postgres access for the distribution engine
package repo

import (
	"context"
	stderrs "errors"

	"leadrouter/internal/modkit/repokit"
	perr "leadrouter/internal/platform/errors"
	pstrings "leadrouter/internal/platform/strings"

	"github.com/jackc/pgx/v5"
)

// scanErr maps no-rows to the project sentinel and everything else through
// the pg classifier
func scanErr(err error, msg string) error {
	if stderrs.Is(err, pgx.ErrNoRows) {
		return perr.ErrNotFound
	}
	return perr.FromPostgres(err, msg)
}

// Lead is a deduplicated contact row
type Lead struct {
	ID         int64
	ExternalID *string
	Phone      *string
	Email      *string
}

// Source is an inbound channel row
type Source struct {
	ID    int64
	Name  string
	BotID string
}

// Link is one operator-source weight row joined with operator state
// ActiveCount is the operator's current load at read time
type Link struct {
	OperatorID  int64
	IsActive    bool
	MaxLoad     int
	Weight      int
	ActiveCount int
}

// PendingRow is one pending assignment awaiting capacity
type PendingRow struct {
	AssignmentID int64
	LeadID       int64
	SourceID     int64
}

// Repo is the persistence surface the engine consumes
//
// ReserveActive and PromotePending lock the operator row and re-check the
// capacity predicate before writing; callers must run them inside a
// transaction so the lock holds until commit
type Repo interface {
	LeadByExternalID(ctx context.Context, externalID string) (Lead, error)
	LeadByPhone(ctx context.Context, phone string) (Lead, error)
	LeadByEmail(ctx context.Context, email string) (Lead, error)
	CreateLead(ctx context.Context, externalID, phone, email string) (Lead, error)

	SourceByKey(ctx context.Context, botID string) (Source, error)
	LinksForSource(ctx context.Context, sourceID int64) ([]Link, error)

	ActiveCountForOperator(ctx context.Context, operatorID int64) (int, error)
	CreatePending(ctx context.Context, leadID, sourceID int64) (int64, error)
	ReserveActive(ctx context.Context, leadID, sourceID, operatorID int64) (int64, bool, error)

	PendingAssignments(ctx context.Context, sourceID *int64) ([]PendingRow, error)
	PromotePending(ctx context.Context, assignmentID, operatorID int64) (bool, error)
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

func (r *queries) leadBy(ctx context.Context, column, value string) (Lead, error) {
	sql := `
select id, external_id, phone, email
from leads
where ` + column + ` = $1
`
	var l Lead
	if err := r.q.QueryRow(ctx, sql, value).Scan(&l.ID, &l.ExternalID, &l.Phone, &l.Email); err != nil {
		return Lead{}, scanErr(err, "select lead")
	}
	return l, nil
}

func (r *queries) LeadByExternalID(ctx context.Context, externalID string) (Lead, error) {
	return r.leadBy(ctx, "external_id", externalID)
}

func (r *queries) LeadByPhone(ctx context.Context, phone string) (Lead, error) {
	return r.leadBy(ctx, "phone", phone)
}

func (r *queries) LeadByEmail(ctx context.Context, email string) (Lead, error) {
	return r.leadBy(ctx, "email", email)
}

func (r *queries) CreateLead(ctx context.Context, externalID, phone, email string) (Lead, error) {
	const sql = `
insert into leads (external_id, phone, email)
values ($1, $2, $3)
returning id, external_id, phone, email
`
	var l Lead
	err := r.q.QueryRow(ctx, sql,
		pstrings.SQLNull(externalID),
		pstrings.SQLNull(phone),
		pstrings.SQLNull(email),
	).Scan(&l.ID, &l.ExternalID, &l.Phone, &l.Email)
	if err != nil {
		return Lead{}, perr.FromPostgres(err, "insert lead")
	}
	return l, nil
}

func (r *queries) SourceByKey(ctx context.Context, botID string) (Source, error) {
	const sql = `
select id, name, bot_id
from sources
where bot_id = $1
`
	var s Source
	if err := r.q.QueryRow(ctx, sql, botID).Scan(&s.ID, &s.Name, &s.BotID); err != nil {
		return Source{}, scanErr(err, "select source")
	}
	return s, nil
}

func (r *queries) LinksForSource(ctx context.Context, sourceID int64) ([]Link, error) {
	const sql = `
select o.id, o.is_active, o.max_load, os.weight,
	(select count(*) from lead_assignments la
	 where la.operator_id = o.id and la.status = 'active') as active_count
from operator_sources os
join operators o on o.id = os.operator_id
where os.source_id = $1
order by o.id
`
	rows, err := r.q.Query(ctx, sql, sourceID)
	if err != nil {
		return nil, perr.FromPostgres(err, "select links")
	}
	defer rows.Close()
	var out []Link
	for rows.Next() {
		var l Link
		if err := rows.Scan(&l.OperatorID, &l.IsActive, &l.MaxLoad, &l.Weight, &l.ActiveCount); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *queries) ActiveCountForOperator(ctx context.Context, operatorID int64) (int, error) {
	const sql = `
select count(*)
from lead_assignments
where operator_id = $1 and status = 'active'
`
	var n int
	if err := r.q.QueryRow(ctx, sql, operatorID).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "count active")
	}
	return n, nil
}

func (r *queries) CreatePending(ctx context.Context, leadID, sourceID int64) (int64, error) {
	const sql = `
insert into lead_assignments (lead_id, source_id, operator_id, status)
values ($1, $2, null, 'pending')
returning id
`
	var id int64
	if err := r.q.QueryRow(ctx, sql, leadID, sourceID).Scan(&id); err != nil {
		return 0, perr.FromPostgres(err, "insert pending assignment")
	}
	return id, nil
}

// ReserveActive locks the operator row, re-checks the capacity predicate,
// and inserts the active assignment only if a slot is still free.
// ok=false means the operator went inactive or filled up since eligibility
func (r *queries) ReserveActive(ctx context.Context, leadID, sourceID, operatorID int64) (int64, bool, error) {
	const lockSQL = `
select is_active, max_load
from operators
where id = $1
for update
`
	var isActive bool
	var maxLoad int
	if err := r.q.QueryRow(ctx, lockSQL, operatorID).Scan(&isActive, &maxLoad); err != nil {
		return 0, false, scanErr(err, "lock operator")
	}
	if !isActive {
		return 0, false, nil
	}

	load, err := r.ActiveCountForOperator(ctx, operatorID)
	if err != nil {
		return 0, false, err
	}
	if load >= maxLoad {
		return 0, false, nil
	}

	const insertSQL = `
insert into lead_assignments (lead_id, source_id, operator_id, status)
values ($1, $2, $3, 'active')
returning id
`
	var id int64
	if err := r.q.QueryRow(ctx, insertSQL, leadID, sourceID, operatorID).Scan(&id); err != nil {
		return 0, false, perr.FromPostgres(err, "insert active assignment")
	}
	return id, true, nil
}

func (r *queries) PendingAssignments(ctx context.Context, sourceID *int64) ([]PendingRow, error) {
	const sql = `
select id, lead_id, source_id
from lead_assignments
where status = 'pending'
and ($1::bigint is null or source_id = $1)
order by id
`
	rows, err := r.q.Query(ctx, sql, sourceID)
	if err != nil {
		return nil, perr.FromPostgres(err, "select pending")
	}
	defer rows.Close()
	var out []PendingRow
	for rows.Next() {
		var p PendingRow
		if err := rows.Scan(&p.AssignmentID, &p.LeadID, &p.SourceID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PromotePending applies the same lock-and-recheck discipline as
// ReserveActive, then flips the row only if it is still pending.
// ok=false when capacity vanished or another sweep got there first
func (r *queries) PromotePending(ctx context.Context, assignmentID, operatorID int64) (bool, error) {
	const lockSQL = `
select is_active, max_load
from operators
where id = $1
for update
`
	var isActive bool
	var maxLoad int
	if err := r.q.QueryRow(ctx, lockSQL, operatorID).Scan(&isActive, &maxLoad); err != nil {
		return false, scanErr(err, "lock operator")
	}
	if !isActive {
		return false, nil
	}

	load, err := r.ActiveCountForOperator(ctx, operatorID)
	if err != nil {
		return false, err
	}
	if load >= maxLoad {
		return false, nil
	}

	const updateSQL = `
update lead_assignments
set operator_id = $2, status = 'active'
where id = $1 and status = 'pending'
`
	tag, err := r.q.Exec(ctx, updateSQL, assignmentID, operatorID)
	if err != nil {
		return false, perr.FromPostgres(err, "promote assignment")
	}
	return tag.RowsAffected() == 1, nil
}
