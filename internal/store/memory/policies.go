package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

// PolicyRepo is an in-memory implementation of core.PolicyRepo.
type PolicyRepo struct {
	mu       sync.RWMutex
	policies map[string]core.Policy
}

func NewPolicyRepo() *PolicyRepo {
	return &PolicyRepo{policies: make(map[string]core.Policy)}
}

func (r *PolicyRepo) Get(_ context.Context, id string) (core.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.policies[id]
	if !ok {
		return core.Policy{}, fmt.Errorf("%w: %s", core.ErrPolicyNotFound, id)
	}
	return p, nil
}

func (r *PolicyRepo) Save(_ context.Context, p core.Policy) (core.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.policies[p.ID]; ok {
		return core.Policy{}, fmt.Errorf("%w: %s", core.ErrPolicyExists, p.ID)
	}
	r.policies[p.ID] = p
	return p, nil
}

func (r *PolicyRepo) Update(_ context.Context, p core.Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.policies[p.ID]; !ok {
		return fmt.Errorf("%w: %s", core.ErrPolicyNotFound, p.ID)
	}
	r.policies[p.ID] = p
	return nil
}

func (r *PolicyRepo) IsIDAvailable(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, taken := r.policies[id]
	return !taken, nil
}

func (r *PolicyRepo) UpdateAfterPayment(_ context.Context, id string, paidAt, subscribedAt time.Time, status core.PolicyStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.policies[id]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrPolicyNotFound, id)
	}
	p.PaidAt = &paidAt
	p.SubscribedAt = &subscribedAt
	p.Status = status
	p.UpdatedAt = paidAt
	r.policies[id] = p
	return nil
}

func (r *PolicyRepo) UpdateAfterSignature(_ context.Context, id string, signedAt time.Time, status core.PolicyStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.policies[id]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrPolicyNotFound, id)
	}
	p.SignedAt = &signedAt
	p.Status = status
	p.UpdatedAt = signedAt
	r.policies[id] = p
	return nil
}
