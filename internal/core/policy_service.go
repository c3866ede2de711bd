package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrKriegler/go-home-insurance/internal/platform/ids"
)

// maxPolicyIDAttempts bounds regeneration when a policy id is taken.
const maxPolicyIDAttempts = 20

type policyService struct {
	policies PolicyRepo
	quotes   QuoteRepo
	partners PartnerRepo
	events   EventPublisher
	clock    func() time.Time
	newID    func(trigram, productCode string) string
}

func NewPolicyService(policies PolicyRepo, quotes QuoteRepo, partners PartnerRepo, events EventPublisher) PolicyService {
	return &policyService{
		policies: policies,
		quotes:   quotes,
		partners: partners,
		events:   events,
		clock:    time.Now,
		newID:    ids.NewPolicyID,
	}
}

func (s *policyService) CreateFromQuote(ctx context.Context, in PolicyInput) (Policy, error) {
	if in.QuoteID == "" {
		return Policy{}, fmt.Errorf("%w: missing quote id", ErrValidation)
	}

	// 1) Load quote
	q, err := s.quotes.Get(ctx, in.QuoteID)
	if err != nil {
		return Policy{}, err
	}

	// 2) A policy needs someone to sign it
	if q.PolicyHolder == nil {
		return Policy{}, fmt.Errorf("%w: %s", ErrPolicyHolderNeeded, q.ID)
	}

	// 3) Load partner for the id prefix
	partner, err := s.partners.GetByCode(ctx, q.PartnerCode)
	if err != nil {
		return Policy{}, err
	}

	// 4) Carry the commercial terms over; the start date defaults to today
	// and must still be valid now
	now := s.clock()
	terms, err := ApplyStartDate(q.Terms, q.StartDate, now)
	if err != nil {
		return Policy{}, err
	}

	// 5) Generate a free policy id
	id, err := s.nextPolicyID(ctx, partner.Trigram, q.Insurance.ProductCode)
	if err != nil {
		return Policy{}, err
	}

	// 6) Create policy
	p := Policy{
		ID:               id,
		PartnerCode:      q.PartnerCode,
		QuoteID:          q.ID,
		Risk:             q.Risk,
		PolicyHolder:     *q.PolicyHolder,
		Terms:            terms,
		Status:           PolicyStatusInitiated,
		EmailValidatedAt: q.PolicyHolder.EmailValidatedAt,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}

	// 7) Persist
	return s.policies.Save(ctx, p)
}

func (s *policyService) nextPolicyID(ctx context.Context, trigram, productCode string) (string, error) {
	for i := 0; i < maxPolicyIDAttempts; i++ {
		id := s.newID(trigram, productCode)
		ok, err := s.policies.IsIDAvailable(ctx, id)
		if err != nil {
			return "", err
		}
		if ok {
			return id, nil
		}
		slog.Debug("policy id taken, regenerating", "policy_id", id, "attempt", i+1)
	}
	return "", fmt.Errorf("%w: %s%s after %d attempts", ErrPolicyIDExhausted, trigram, productCode, maxPolicyIDAttempts)
}

func (s *policyService) Get(ctx context.Context, id string) (Policy, error) {
	return s.policies.Get(ctx, id)
}

func (s *policyService) ApplySpecialOperationCode(ctx context.Context, id string, in OperationCodeInput) (Policy, error) {
	// 1) Load policy
	p, err := s.policies.Get(ctx, id)
	if err != nil {
		return Policy{}, err
	}

	// 2) Only initiated policies can be re-priced
	if err := CheckTermsUpdatable(p); err != nil {
		return Policy{}, err
	}

	// 3) Partner's codes, fetched fresh
	allowed, err := s.partners.GetOperationCodes(ctx, p.PartnerCode)
	if err != nil {
		return Policy{}, err
	}

	// 4) Apply
	now := s.clock()
	terms, err := ApplyOperationCode(p.Terms, p.PartnerCode, allowed, in.Code, now)
	if err != nil {
		return Policy{}, err
	}
	p.Terms = terms
	p.UpdatedAt = now.UTC()

	// 5) Persist
	if err := s.policies.Update(ctx, p); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (s *policyService) ChangeStartDate(ctx context.Context, id string, in StartDateInput) (Policy, error) {
	// 1) Load policy
	p, err := s.policies.Get(ctx, id)
	if err != nil {
		return Policy{}, err
	}

	// 2) Guard
	if err := CheckTermsUpdatable(p); err != nil {
		return Policy{}, err
	}

	// 3) Recompute dates
	now := s.clock()
	terms, err := ApplyStartDate(p.Terms, in.StartDate, now)
	if err != nil {
		return Policy{}, err
	}
	p.Terms = terms
	p.UpdatedAt = now.UTC()

	// 4) Persist
	if err := s.policies.Update(ctx, p); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// CreateSignatureRequest hands the contract to the e-signature adapter
// through the event publisher. Failing to publish fails the request.
func (s *policyService) CreateSignatureRequest(ctx context.Context, id string) (SignatureRequest, error) {
	p, err := s.policies.Get(ctx, id)
	if err != nil {
		return SignatureRequest{}, err
	}
	if err := CheckSignatureRequest(p); err != nil {
		return SignatureRequest{}, err
	}

	now := s.clock().UTC()
	req := SignatureRequest{
		PolicyID:         p.ID,
		SignerName:       p.PolicyHolder.FullName(),
		SignerEmail:      p.PolicyHolder.Email,
		ContractualTerms: p.Insurance.ContractualTerms,
		IPID:             p.Insurance.IPID,
		RequestedAt:      now,
	}

	e := newPolicyEvent(p, PolicyEventSignatureRequested, now)
	e.SignatureRequest = &req
	if err := s.events.Publish(ctx, e); err != nil {
		return SignatureRequest{}, fmt.Errorf("publish signature request for %s: %w", p.ID, err)
	}
	return req, nil
}

func (s *policyService) RecordSignature(ctx context.Context, id string) (Policy, error) {
	// 1) Load policy
	p, err := s.policies.Get(ctx, id)
	if err != nil {
		return Policy{}, err
	}

	// 2) Guard
	if err := CheckSignatureRecording(p); err != nil {
		return Policy{}, err
	}
	if !p.Status.CanTransitionTo(PolicyStatusSigned) {
		return Policy{}, fmt.Errorf("%w: %s cannot go from %s to %s", ErrInvalidState, p.ID, p.Status, PolicyStatusSigned)
	}

	// 3) Only status and signature timestamp change
	now := s.clock().UTC()
	if err := s.policies.UpdateAfterSignature(ctx, p.ID, now, PolicyStatusSigned); err != nil {
		return Policy{}, err
	}
	p.Status = PolicyStatusSigned
	p.SignedAt = &now
	p.UpdatedAt = now

	// 4) Notify
	s.publish(ctx, p, PolicyEventSigned, now)
	return p, nil
}

func (s *policyService) RecordPayment(ctx context.Context, id string) (Policy, error) {
	// 1) Load policy
	p, err := s.policies.Get(ctx, id)
	if err != nil {
		return Policy{}, err
	}

	// 2) Guard
	if err := CheckPaymentRecording(p); err != nil {
		return Policy{}, err
	}

	// 3) Signed -> Applicable with payment and subscription stamps
	now := s.clock().UTC()
	if err := s.policies.UpdateAfterPayment(ctx, p.ID, now, now, PolicyStatusApplicable); err != nil {
		return Policy{}, err
	}
	p.Status = PolicyStatusApplicable
	p.PaidAt = &now
	subscribedAt := now
	p.SubscribedAt = &subscribedAt
	p.UpdatedAt = now

	// 4) Notify
	s.publish(ctx, p, PolicyEventPaid, now)
	return p, nil
}

func (s *policyService) GenerateCertificate(ctx context.Context, id string) (Certificate, error) {
	p, err := s.policies.Get(ctx, id)
	if err != nil {
		return Certificate{}, err
	}
	if err := CheckCertificateGeneration(p); err != nil {
		return Certificate{}, err
	}
	if p.StartDate == nil || p.TermEndDate == nil {
		return Certificate{}, fmt.Errorf("%w: policy %s has no term dates", ErrInvalidState, p.ID)
	}

	covers := make([]string, len(p.Insurance.SimplifiedCovers))
	copy(covers, p.Insurance.SimplifiedCovers)

	return Certificate{
		PolicyID:       p.ID,
		PartnerCode:    p.PartnerCode,
		HolderName:     p.PolicyHolder.FullName(),
		Address:        p.Risk.Property.Address,
		ProductCode:    p.Insurance.ProductCode,
		ProductVersion: p.Insurance.ProductVersion,
		Covers:         covers,
		StartDate:      *p.StartDate,
		TermEndDate:    *p.TermEndDate,
		Premium:        p.Premium,
		Currency:       p.Insurance.Estimate.Currency,
		IssuedAt:       s.clock().UTC(),
	}, nil
}

func (s *policyService) Cancel(ctx context.Context, id string) (Policy, error) {
	p, err := s.policies.Get(ctx, id)
	if err != nil {
		return Policy{}, err
	}
	if err := CheckCancellation(p); err != nil {
		return Policy{}, err
	}

	now := s.clock().UTC()
	p.Status = PolicyStatusCancelled
	p.CancelledAt = &now
	p.UpdatedAt = now
	if err := s.policies.Update(ctx, p); err != nil {
		return Policy{}, err
	}

	s.publish(ctx, p, PolicyEventCancelled, now)
	return p, nil
}

// publish is best effort: the state change is already stored.
func (s *policyService) publish(ctx context.Context, p Policy, t PolicyEventType, at time.Time) {
	if err := s.events.Publish(ctx, newPolicyEvent(p, t, at)); err != nil {
		slog.Warn("failed to publish policy event", "type", t, "policy_id", p.ID, "error", err)
	}
}

func newPolicyEvent(p Policy, t PolicyEventType, at time.Time) PolicyEvent {
	return PolicyEvent{
		ID:          ids.New(),
		Type:        t,
		PolicyID:    p.ID,
		PartnerCode: p.PartnerCode,
		Status:      p.Status,
		OccurredAt:  at,
	}
}
