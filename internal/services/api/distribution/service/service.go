// Package service contains the lead distribution engine workflows
package service

import (
	"context"

	"leadrouter/internal/core/weighted"
	"leadrouter/internal/modkit/repokit"
	perr "leadrouter/internal/platform/errors"
	"leadrouter/internal/platform/logger"
	pnet "leadrouter/internal/platform/net"
	"leadrouter/internal/platform/store"
	"leadrouter/internal/services/api/distribution/domain"
	"leadrouter/internal/services/api/distribution/repo"

	"github.com/google/uuid"
)

// Service defines the distribution service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the distribution engine
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	audit store.Clickhouse
	intn  weighted.IntN
}

// Option mutates the service during construction
type Option func(*Svc)

// WithAudit wires the optional clickhouse routing-events sink
func WithAudit(ch store.Clickhouse) Option {
	return func(s *Svc) { s.audit = ch }
}

// WithIntN injects a deterministic randomness source for tests
func WithIntN(fn weighted.IntN) Option {
	return func(s *Svc) { s.intn = fn }
}

// New constructs a distribution service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("distribution.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("distribution.Service requires a non nil Repo binder")
	}
	s := &Svc{Repo: binder.Bind(db), binder: binder, db: db, intn: weighted.DefaultIntN}
	for _, o := range opts {
		o(s)
	}
	return s
}

// candidate is one eligible operator with its routing weight
type candidate struct {
	operatorID int64
	weight     int
}

// eligible filters links down to active operators with spare capacity
func eligible(links []repo.Link) []candidate {
	out := make([]candidate, 0, len(links))
	for _, l := range links {
		if !l.IsActive {
			continue
		}
		if l.ActiveCount >= l.MaxLoad {
			continue
		}
		out = append(out, candidate{operatorID: l.OperatorID, weight: l.Weight})
	}
	return out
}

func weightsOf(cands []candidate) []int {
	w := make([]int, len(cands))
	for i, c := range cands {
		w[i] = c.weight
	}
	return w
}

// resolveLead returns the existing lead matching any supplied identity
// value, or creates one. Lookup order is external_id, phone, email; the
// first hit wins so repeated calls stay deterministic
func (s *Svc) resolveLead(ctx context.Context, in domain.DistributeInput) (repo.Lead, error) {
	lead, err, done := s.lookupLead(ctx, in)
	if done {
		return lead, err
	}

	lead, err = s.Repo.CreateLead(ctx, in.ExternalID, in.Phone, in.Email)
	if err == nil {
		return lead, nil
	}
	// lost a create race; the winner now holds one of our identity values
	if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		if lead, lerr, done := s.lookupLead(ctx, in); done {
			return lead, lerr
		}
	}
	return repo.Lead{}, err
}

// lookupLead probes the three identity columns in fixed order
// done=false means no identity value matched an existing lead
func (s *Svc) lookupLead(ctx context.Context, in domain.DistributeInput) (repo.Lead, error, bool) {
	type probe struct {
		val string
		fn  func(context.Context, string) (repo.Lead, error)
	}
	probes := []probe{
		{in.ExternalID, s.Repo.LeadByExternalID},
		{in.Phone, s.Repo.LeadByPhone},
		{in.Email, s.Repo.LeadByEmail},
	}
	for _, p := range probes {
		if p.val == "" {
			continue
		}
		lead, err := p.fn(ctx, p.val)
		if err == nil {
			return lead, nil, true
		}
		if !perr.IsCode(err, perr.ErrorCodeNotFound) {
			return repo.Lead{}, err, true
		}
	}
	return repo.Lead{}, nil, false
}

// Distribute resolves the lead, computes eligibility for the source, and
// places the lead with an operator or parks it pending
func (s *Svc) Distribute(ctx context.Context, in domain.DistributeInput) (domain.DistributeOutput, error) {
	var out domain.DistributeOutput

	if in.ExternalID == "" && in.Phone == "" && in.Email == "" {
		return out, perr.InvalidArgf("at least one of external_id, phone, email is required")
	}

	lead, err := s.resolveLead(ctx, in)
	if err != nil {
		return out, err
	}

	src, err := s.Repo.SourceByKey(ctx, in.SourceKey)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return out, perr.NotFoundf("source %q not found", in.SourceKey)
		}
		return out, err
	}

	links, err := s.Repo.LinksForSource(ctx, src.ID)
	if err != nil {
		return out, err
	}

	assignmentID, operatorID, err := s.place(ctx, lead.ID, src.ID, eligible(links))
	if err != nil {
		return out, err
	}

	out = domain.DistributeOutput{
		LeadID:       lead.ID,
		AssignmentID: assignmentID,
		OperatorID:   operatorID,
		Status:       domain.StatusActive,
	}
	if operatorID == nil {
		out.Status = domain.StatusPending
	}
	s.emitDecision(ctx, "distribute", pnet.RequestID(ctx), lead.ID, src.ID, operatorID, out.Status)
	return out, nil
}

// place runs selection and atomic reservation over the candidate set.
// Each failed reservation removes that operator and retries, so the loop
// is bounded by the eligibility set size; exhaustion parks the lead
func (s *Svc) place(ctx context.Context, leadID, sourceID int64, cands []candidate) (int64, *int64, error) {
	for len(cands) > 0 {
		idx := weighted.Pick(weightsOf(cands), s.intn)
		op := cands[idx].operatorID

		var assignmentID int64
		var ok bool
		err := s.db.Tx(ctx, func(q repokit.Queryer) error {
			var txErr error
			assignmentID, ok, txErr = s.binder.Bind(q).ReserveActive(ctx, leadID, sourceID, op)
			return txErr
		})
		if err != nil {
			// contention is not fatal; drop the contested operator and go on
			if !perr.Retryable(err) {
				return 0, nil, err
			}
			ok = false
		}
		if ok {
			return assignmentID, &op, nil
		}
		cands = append(cands[:idx], cands[idx+1:]...)
	}

	assignmentID, err := s.Repo.CreatePending(ctx, leadID, sourceID)
	if err != nil {
		return 0, nil, err
	}
	return assignmentID, nil, nil
}

// Redistribute sweeps pending assignments in creation order and promotes
// each one it can still place. Promotions run in their own transactions so
// a crash mid-sweep leaves every processed row fully applied or untouched
func (s *Svc) Redistribute(ctx context.Context, in domain.RedistributeInput) (domain.RedistributeOutput, error) {
	sweepID := uuid.NewString()
	log := logger.C(ctx)

	pendings, err := s.Repo.PendingAssignments(ctx, in.SourceID)
	if err != nil {
		return domain.RedistributeOutput{}, err
	}

	redistributed := 0
	for _, p := range pendings {
		links, err := s.Repo.LinksForSource(ctx, p.SourceID)
		if err != nil {
			return domain.RedistributeOutput{}, err
		}
		opID, err := s.promote(ctx, p, eligible(links))
		if err != nil {
			return domain.RedistributeOutput{}, err
		}
		if opID != nil {
			redistributed++
			s.emitDecision(ctx, "redistribute", sweepID, p.LeadID, p.SourceID, opID, domain.StatusActive)
		}
	}

	log.Info().
		Str("sweep_id", sweepID).
		Int("redistributed", redistributed).
		Int("total_pending", len(pendings)).
		Msg("redistribution sweep done")

	return domain.RedistributeOutput{
		SweepID:       sweepID,
		Redistributed: redistributed,
		TotalPending:  len(pendings),
	}, nil
}

// promote attempts a capacity-safe promotion of one pending assignment
// returns the operator id on success, nil when no candidate could take it
func (s *Svc) promote(ctx context.Context, p repo.PendingRow, cands []candidate) (*int64, error) {
	for len(cands) > 0 {
		idx := weighted.Pick(weightsOf(cands), s.intn)
		op := cands[idx].operatorID

		var ok bool
		err := s.db.Tx(ctx, func(q repokit.Queryer) error {
			var txErr error
			ok, txErr = s.binder.Bind(q).PromotePending(ctx, p.AssignmentID, op)
			return txErr
		})
		if err != nil {
			if !perr.Retryable(err) {
				return nil, err
			}
			ok = false
		}
		if ok {
			return &op, nil
		}
		cands = append(cands[:idx], cands[idx+1:]...)
	}
	return nil, nil
}
