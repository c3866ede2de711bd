package mongo

import (
	"fmt"
	"sort"
	"time"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

const (
	ColPartners = "partners"
	ColQuotes   = "quotes"
	ColPolicies = "policies"
)

// Amounts are stored as decimal strings so no precision is lost in BSON
// doubles.

// Partner
type PricingEntryDoc struct {
	RoomCount         int    `bson:"room_count"`
	MonthlyPrice      string `bson:"monthly_price"`
	DefaultDeductible string `bson:"default_deductible"`
	DefaultCeiling    string `bson:"default_ceiling"`
}

type OfferDoc struct {
	PricingMatrix    []PricingEntryDoc `bson:"pricing_matrix"`
	SimplifiedCovers []string          `bson:"simplified_covers"`
	ProductCode      string            `bson:"product_code"`
	ProductVersion   string            `bson:"product_version"`
	ContractualTerms string            `bson:"contractual_terms"`
	IPID             string            `bson:"ipid"`
	OperationCodes   []string          `bson:"operation_codes"`
}

type PartnerDoc struct {
	Code      string           `bson:"_id"`
	Trigram   string           `bson:"trigram"`
	Currency  string           `bson:"currency"`
	Offer     OfferDoc         `bson:"offer"`
	Questions core.QuestionSet `bson:"questions"`
}

func toPartnerDoc(p core.Partner) PartnerDoc {
	matrix := make([]PricingEntryDoc, 0, len(p.Offer.PricingMatrix))
	for rooms, e := range p.Offer.PricingMatrix {
		matrix = append(matrix, PricingEntryDoc{
			RoomCount:         rooms,
			MonthlyPrice:      e.MonthlyPrice.String(),
			DefaultDeductible: e.DefaultDeductible.String(),
			DefaultCeiling:    e.DefaultCeiling.String(),
		})
	}
	sort.Slice(matrix, func(i, j int) bool { return matrix[i].RoomCount < matrix[j].RoomCount })

	codes := make([]string, len(p.Offer.OperationCodes))
	for i, c := range p.Offer.OperationCodes {
		codes[i] = string(c)
	}

	return PartnerDoc{
		Code:     p.Code,
		Trigram:  p.Trigram,
		Currency: p.Currency,
		Offer: OfferDoc{
			PricingMatrix:    matrix,
			SimplifiedCovers: p.Offer.SimplifiedCovers,
			ProductCode:      p.Offer.ProductCode,
			ProductVersion:   p.Offer.ProductVersion,
			ContractualTerms: p.Offer.ContractualTerms,
			IPID:             p.Offer.IPID,
			OperationCodes:   codes,
		},
		Questions: p.Questions,
	}
}

func fromPartnerDoc(d PartnerDoc) (core.Partner, error) {
	matrix := make(map[int]core.PricingEntry, len(d.Offer.PricingMatrix))
	for _, e := range d.Offer.PricingMatrix {
		entry, err := pricingEntryFromStrings(e.MonthlyPrice, e.DefaultDeductible, e.DefaultCeiling)
		if err != nil {
			return core.Partner{}, fmt.Errorf("partner %s, %d room(s): %w", d.Code, e.RoomCount, err)
		}
		matrix[e.RoomCount] = entry
	}

	codes := make([]core.OperationCode, len(d.Offer.OperationCodes))
	for i, c := range d.Offer.OperationCodes {
		codes[i] = core.OperationCode(c)
	}

	return core.Partner{
		Code:     d.Code,
		Trigram:  d.Trigram,
		Currency: d.Currency,
		Offer: core.Offer{
			PricingMatrix:    matrix,
			SimplifiedCovers: d.Offer.SimplifiedCovers,
			ProductCode:      d.Offer.ProductCode,
			ProductVersion:   d.Offer.ProductVersion,
			ContractualTerms: d.Offer.ContractualTerms,
			IPID:             d.Offer.IPID,
			OperationCodes:   codes,
		},
		Questions: d.Questions,
	}, nil
}

func pricingEntryFromStrings(price, deductible, ceiling string) (core.PricingEntry, error) {
	p, err := core.ParseAmount(price)
	if err != nil {
		return core.PricingEntry{}, err
	}
	d, err := core.ParseAmount(deductible)
	if err != nil {
		return core.PricingEntry{}, err
	}
	c, err := core.ParseAmount(ceiling)
	if err != nil {
		return core.PricingEntry{}, err
	}
	return core.PricingEntry{MonthlyPrice: p, DefaultDeductible: d, DefaultCeiling: c}, nil
}

// Terms, shared by quotes and policies
type InsuranceDoc struct {
	MonthlyPrice      string   `bson:"monthly_price"`
	DefaultDeductible string   `bson:"default_deductible"`
	DefaultCeiling    string   `bson:"default_ceiling"`
	Currency          string   `bson:"currency"`
	SimplifiedCovers  []string `bson:"simplified_covers"`
	ProductCode       string   `bson:"product_code"`
	ProductVersion    string   `bson:"product_version"`
	ContractualTerms  string   `bson:"contractual_terms"`
	IPID              string   `bson:"ipid"`
}

type TermsDoc struct {
	Insurance                     InsuranceDoc `bson:"insurance"`
	Premium                       string       `bson:"premium"`
	NbMonthsDue                   int          `bson:"nb_months_due"`
	StartDate                     *time.Time   `bson:"start_date,omitempty"`
	TermStartDate                 *time.Time   `bson:"term_start_date,omitempty"`
	TermEndDate                   *time.Time   `bson:"term_end_date,omitempty"`
	SpecialOperationCode          string       `bson:"special_operation_code,omitempty"`
	SpecialOperationCodeAppliedAt *time.Time   `bson:"special_operation_code_applied_at,omitempty"`
}

func toTermsDoc(t core.Terms) TermsDoc {
	est := t.Insurance.Estimate
	return TermsDoc{
		Insurance: InsuranceDoc{
			MonthlyPrice:      est.MonthlyPrice.String(),
			DefaultDeductible: est.DefaultDeductible.String(),
			DefaultCeiling:    est.DefaultCeiling.String(),
			Currency:          est.Currency,
			SimplifiedCovers:  t.Insurance.SimplifiedCovers,
			ProductCode:       t.Insurance.ProductCode,
			ProductVersion:    t.Insurance.ProductVersion,
			ContractualTerms:  t.Insurance.ContractualTerms,
			IPID:              t.Insurance.IPID,
		},
		Premium:                       t.Premium.String(),
		NbMonthsDue:                   t.NbMonthsDue,
		StartDate:                     t.StartDate,
		TermStartDate:                 t.TermStartDate,
		TermEndDate:                   t.TermEndDate,
		SpecialOperationCode:          string(t.SpecialOperationCode),
		SpecialOperationCodeAppliedAt: t.SpecialOperationCodeAppliedAt,
	}
}

func fromTermsDoc(d TermsDoc) (core.Terms, error) {
	entry, err := pricingEntryFromStrings(d.Insurance.MonthlyPrice, d.Insurance.DefaultDeductible, d.Insurance.DefaultCeiling)
	if err != nil {
		return core.Terms{}, err
	}
	premium, err := core.ParseAmount(d.Premium)
	if err != nil {
		return core.Terms{}, err
	}
	return core.Terms{
		Insurance: core.Insurance{
			Estimate: core.InsuranceEstimate{
				MonthlyPrice:      entry.MonthlyPrice,
				DefaultDeductible: entry.DefaultDeductible,
				DefaultCeiling:    entry.DefaultCeiling,
				Currency:          d.Insurance.Currency,
			},
			SimplifiedCovers: d.Insurance.SimplifiedCovers,
			ProductCode:      d.Insurance.ProductCode,
			ProductVersion:   d.Insurance.ProductVersion,
			ContractualTerms: d.Insurance.ContractualTerms,
			IPID:             d.Insurance.IPID,
		},
		Premium:                       premium,
		NbMonthsDue:                   d.NbMonthsDue,
		StartDate:                     utcPtr(d.StartDate),
		TermStartDate:                 utcPtr(d.TermStartDate),
		TermEndDate:                   utcPtr(d.TermEndDate),
		SpecialOperationCode:          core.OperationCode(d.SpecialOperationCode),
		SpecialOperationCodeAppliedAt: utcPtr(d.SpecialOperationCodeAppliedAt),
	}, nil
}

// BSON dates come back in local time.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// Quote
type QuoteDoc struct {
	ID           string             `bson:"_id"`
	PartnerCode  string             `bson:"partner_code"`
	Risk         core.Risk          `bson:"risk"`
	PolicyHolder *core.PolicyHolder `bson:"policy_holder,omitempty"`
	Terms        TermsDoc           `bson:"terms"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func toQuoteDoc(q core.Quote) QuoteDoc {
	return QuoteDoc{
		ID:           q.ID,
		PartnerCode:  q.PartnerCode,
		Risk:         q.Risk,
		PolicyHolder: q.PolicyHolder,
		Terms:        toTermsDoc(q.Terms),
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func fromQuoteDoc(d QuoteDoc) (core.Quote, error) {
	terms, err := fromTermsDoc(d.Terms)
	if err != nil {
		return core.Quote{}, fmt.Errorf("quote %s: %w", d.ID, err)
	}
	return core.Quote{
		ID:           d.ID,
		PartnerCode:  d.PartnerCode,
		Risk:         d.Risk,
		PolicyHolder: d.PolicyHolder,
		Terms:        terms,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}, nil
}

// Policy
type PolicyDoc struct {
	ID               string            `bson:"_id"`
	PartnerCode      string            `bson:"partner_code"`
	QuoteID          string            `bson:"quote_id"`
	Risk             core.Risk         `bson:"risk"`
	PolicyHolder     core.PolicyHolder `bson:"policy_holder"`
	Terms            TermsDoc          `bson:"terms"`
	Status           string            `bson:"status"`
	EmailValidatedAt *time.Time        `bson:"email_validated_at,omitempty"`
	SignedAt         *time.Time        `bson:"signed_at,omitempty"`
	PaidAt           *time.Time        `bson:"paid_at,omitempty"`
	SubscribedAt     *time.Time        `bson:"subscribed_at,omitempty"`
	CancelledAt      *time.Time        `bson:"cancelled_at,omitempty"`
	CreatedAt        time.Time         `bson:"created_at"`
	UpdatedAt        time.Time         `bson:"updated_at"`
}

func toPolicyDoc(p core.Policy) PolicyDoc {
	return PolicyDoc{
		ID:               p.ID,
		PartnerCode:      p.PartnerCode,
		QuoteID:          p.QuoteID,
		Risk:             p.Risk,
		PolicyHolder:     p.PolicyHolder,
		Terms:            toTermsDoc(p.Terms),
		Status:           string(p.Status),
		EmailValidatedAt: p.EmailValidatedAt,
		SignedAt:         p.SignedAt,
		PaidAt:           p.PaidAt,
		SubscribedAt:     p.SubscribedAt,
		CancelledAt:      p.CancelledAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func fromPolicyDoc(d PolicyDoc) (core.Policy, error) {
	terms, err := fromTermsDoc(d.Terms)
	if err != nil {
		return core.Policy{}, fmt.Errorf("policy %s: %w", d.ID, err)
	}
	return core.Policy{
		ID:               d.ID,
		PartnerCode:      d.PartnerCode,
		QuoteID:          d.QuoteID,
		Risk:             d.Risk,
		PolicyHolder:     d.PolicyHolder,
		Terms:            terms,
		Status:           core.PolicyStatus(d.Status),
		EmailValidatedAt: utcPtr(d.EmailValidatedAt),
		SignedAt:         utcPtr(d.SignedAt),
		PaidAt:           utcPtr(d.PaidAt),
		SubscribedAt:     utcPtr(d.SubscribedAt),
		CancelledAt:      utcPtr(d.CancelledAt),
		CreatedAt:        d.CreatedAt.UTC(),
		UpdatedAt:        d.UpdatedAt.UTC(),
	}, nil
}
