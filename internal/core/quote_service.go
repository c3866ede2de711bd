package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MrKriegler/go-home-insurance/internal/platform/ids"
)

type quoteService struct {
	partners PartnerRepo
	quotes   QuoteRepo
	clock    func() time.Time
	newID    func() string
}

func NewQuoteService(partners PartnerRepo, quotes QuoteRepo) QuoteService {
	return &quoteService{
		partners: partners,
		quotes:   quotes,
		clock:    time.Now,
		newID:    ids.NewQuoteID,
	}
}

func (s *quoteService) Create(ctx context.Context, in QuoteInput) (Quote, error) {
	// 1) validate inputs
	if err := in.Validate(); err != nil {
		return Quote{}, err
	}

	// 2) load partner configuration, never cached
	partner, err := s.partners.GetByCode(ctx, in.PartnerCode)
	if err != nil {
		return Quote{}, err
	}

	// 3) eligibility
	if err := ValidateRisk(partner.Code, partner.Questions, in.Risk); err != nil {
		return Quote{}, err
	}

	// 4) price
	insurance, err := ResolveInsurance(partner, in.Risk.Property.RoomCount)
	if err != nil {
		return Quote{}, err
	}
	now := s.clock()
	terms := NewTerms(insurance)

	// 5) optional promotional code
	if in.SpecialOperationCode != nil {
		terms, err = ApplyOperationCode(terms, partner.Code, partner.Offer.OperationCodes, *in.SpecialOperationCode, now)
		if err != nil {
			return Quote{}, err
		}
	}

	// 6) optional start date
	if in.StartDate != nil {
		terms, err = ApplyStartDate(terms, in.StartDate, now)
		if err != nil {
			return Quote{}, err
		}
	}

	q := Quote{
		ID:           s.newID(),
		PartnerCode:  partner.Code,
		Risk:         in.Risk,
		PolicyHolder: newPolicyHolder(in.PolicyHolder, nil),
		Terms:        terms,
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}

	// 7) persist
	if err := s.quotes.Save(ctx, q); err != nil {
		return Quote{}, err
	}
	return q, nil
}

func (s *quoteService) Get(ctx context.Context, id string) (Quote, error) {
	return s.quotes.Get(ctx, id)
}

// Update re-prices the quote from the current partner configuration. A nil
// operation code keeps the applied one, a nil start date keeps the current
// start date.
func (s *quoteService) Update(ctx context.Context, id string, in QuoteInput) (Quote, error) {
	// 1) Load quote
	q, err := s.quotes.Get(ctx, id)
	if err != nil {
		return Quote{}, err
	}

	// 2) Validate, the partner is fixed at creation
	if in.PartnerCode == "" {
		in.PartnerCode = q.PartnerCode
	}
	if in.PartnerCode != q.PartnerCode {
		return Quote{}, fmt.Errorf("%w: quote %s belongs to partner %q", ErrValidation, q.ID, q.PartnerCode)
	}
	if err := in.Validate(); err != nil {
		return Quote{}, err
	}

	// 3) Reload partner and check the risk again
	partner, err := s.partners.GetByCode(ctx, q.PartnerCode)
	if err != nil {
		return Quote{}, err
	}
	if err := ValidateRisk(partner.Code, partner.Questions, in.Risk); err != nil {
		return Quote{}, err
	}

	// 4) Re-price
	insurance, err := ResolveInsurance(partner, in.Risk.Property.RoomCount)
	if err != nil {
		return Quote{}, err
	}
	now := s.clock()
	terms := NewTerms(insurance)

	// 5) Operation code
	if in.SpecialOperationCode != nil {
		terms, err = ApplyOperationCode(terms, partner.Code, partner.Offer.OperationCodes, *in.SpecialOperationCode, now)
		if err != nil {
			return Quote{}, err
		}
	} else {
		terms = carryOperationCode(terms, q.Terms)
	}

	// 6) Dates
	if in.StartDate != nil {
		terms, err = ApplyStartDate(terms, in.StartDate, now)
		if err != nil {
			return Quote{}, err
		}
	} else {
		terms.StartDate = q.StartDate
		terms.TermStartDate = q.TermStartDate
		terms = refreshTermEndDate(terms)
	}

	q.Risk = in.Risk
	q.PolicyHolder = newPolicyHolder(in.PolicyHolder, q.PolicyHolder)
	q.Terms = terms
	q.UpdatedAt = now.UTC()

	// 7) Persist
	return s.quotes.Update(ctx, q)
}

// carryOperationCode keeps the duration and code of prev on freshly priced
// terms.
func carryOperationCode(t Terms, prev Terms) Terms {
	if prev.NbMonthsDue == 0 {
		return t
	}
	t.NbMonthsDue = prev.NbMonthsDue
	t.Premium = t.Insurance.Estimate.MonthlyPrice.Times(prev.NbMonthsDue)
	t.SpecialOperationCode = prev.SpecialOperationCode
	t.SpecialOperationCodeAppliedAt = prev.SpecialOperationCodeAppliedAt
	return t
}

// newPolicyHolder copies the contact from the request. The validation stamp
// only survives when the email did not change.
func newPolicyHolder(in *PolicyHolder, prev *PolicyHolder) *PolicyHolder {
	if in == nil {
		return prev
	}
	h := *in
	h.EmailValidatedAt = nil
	if prev != nil && strings.EqualFold(prev.Email, h.Email) {
		h.EmailValidatedAt = prev.EmailValidatedAt
	}
	return &h
}

func (s *quoteService) ValidateEmail(ctx context.Context, id string) (Quote, error) {
	q, err := s.quotes.Get(ctx, id)
	if err != nil {
		return Quote{}, err
	}
	if q.PolicyHolder == nil {
		return Quote{}, fmt.Errorf("%w: %s", ErrPolicyHolderNeeded, q.ID)
	}
	now := s.clock().UTC()
	h := *q.PolicyHolder
	h.EmailValidatedAt = &now
	q.PolicyHolder = &h
	q.UpdatedAt = now
	return s.quotes.Update(ctx, q)
}
