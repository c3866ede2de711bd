package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

// PartnerRepo is an in-memory implementation of core.PartnerRepo.
type PartnerRepo struct {
	mu       sync.RWMutex
	partners map[string]core.Partner
}

func NewPartnerRepo() *PartnerRepo {
	return &PartnerRepo{partners: make(map[string]core.Partner)}
}

func (r *PartnerRepo) GetByCode(_ context.Context, code string) (core.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.partners[code]
	if !ok {
		return core.Partner{}, fmt.Errorf("%w: %q", core.ErrPartnerNotFound, code)
	}
	return p, nil
}

func (r *PartnerRepo) GetOffer(ctx context.Context, code string) (core.Offer, error) {
	p, err := r.GetByCode(ctx, code)
	if err != nil {
		return core.Offer{}, err
	}
	return p.Offer, nil
}

func (r *PartnerRepo) GetOperationCodes(ctx context.Context, code string) ([]core.OperationCode, error) {
	offer, err := r.GetOffer(ctx, code)
	if err != nil {
		return nil, err
	}
	codes := make([]core.OperationCode, len(offer.OperationCodes))
	copy(codes, offer.OperationCodes)
	return codes, nil
}

func (r *PartnerRepo) Upsert(_ context.Context, p core.Partner) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.partners[p.Code] = p
	return nil
}
