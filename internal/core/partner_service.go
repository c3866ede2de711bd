package core

import "context"

type PartnerService interface {
	Get(ctx context.Context, code string) (Partner, error)
}

type partnerService struct {
	partners PartnerRepo
}

func NewPartnerService(partners PartnerRepo) PartnerService {
	return &partnerService{partners: partners}
}

func (s *partnerService) Get(ctx context.Context, code string) (Partner, error) {
	return s.partners.GetByCode(ctx, code)
}
