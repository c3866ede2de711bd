package core

import (
	"context"
	"fmt"
	"regexp"
)

// PricingEntry is the price line for one room count.
type PricingEntry struct {
	MonthlyPrice      Amount `json:"monthly_price"`
	DefaultDeductible Amount `json:"default_deductible"`
	DefaultCeiling    Amount `json:"default_ceiling"`
}

// Offer is a partner's commercial configuration. A room count missing from
// PricingMatrix is not insurable.
type Offer struct {
	PricingMatrix    map[int]PricingEntry `json:"pricing_matrix"`
	SimplifiedCovers []string             `json:"simplified_covers"`
	ProductCode      string               `json:"product_code"`
	ProductVersion   string               `json:"product_version"`
	ContractualTerms string               `json:"contractual_terms"`
	IPID             string               `json:"ipid"`
	OperationCodes   []OperationCode      `json:"operation_codes"`
}

// Partner is a distribution partner, loaded read-only by the core.
type Partner struct {
	Code      string      `json:"code"`
	Trigram   string      `json:"trigram"`
	Currency  string      `json:"currency"`
	Offer     Offer       `json:"offer"`
	Questions QuestionSet `json:"questions"`
}

type PartnerRepo interface {
	GetByCode(ctx context.Context, code string) (Partner, error)
	GetOffer(ctx context.Context, code string) (Offer, error)
	GetOperationCodes(ctx context.Context, code string) ([]OperationCode, error)
	Upsert(ctx context.Context, p Partner) error
}

var (
	trigramRegex  = regexp.MustCompile(`^[A-Z]{3}$`)
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

func (p Partner) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("%w: missing partner code", ErrValidation)
	}
	if !trigramRegex.MatchString(p.Trigram) {
		return fmt.Errorf("%w: trigram must be 3 uppercase letters", ErrValidation)
	}
	if !currencyRegex.MatchString(p.Currency) {
		return fmt.Errorf("%w: currency must be an ISO 4217 code", ErrValidation)
	}
	if p.Offer.ProductCode == "" {
		return fmt.Errorf("%w: missing product code", ErrValidation)
	}
	if len(p.Offer.PricingMatrix) == 0 {
		return fmt.Errorf("%w: empty pricing matrix", ErrValidation)
	}
	for rooms, entry := range p.Offer.PricingMatrix {
		if rooms <= 0 {
			return fmt.Errorf("%w: invalid room count %d in pricing matrix", ErrValidation, rooms)
		}
		if entry.MonthlyPrice.IsNegative() || entry.DefaultDeductible.IsNegative() || entry.DefaultCeiling.IsNegative() {
			return fmt.Errorf("%w: negative amount for %d room(s)", ErrValidation, rooms)
		}
	}
	for _, c := range p.Offer.OperationCodes {
		if ParseOperationCode(string(c)) == OperationCodeUnknown {
			return fmt.Errorf("%w: unknown operation code %q", ErrValidation, c)
		}
	}
	return nil
}

var (
	ErrPartnerNotFound = fmt.Errorf("%w: partner not found", ErrNotFound)
)
