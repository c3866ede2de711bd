package core

import "fmt"

// InsuranceEstimate is the price line resolved for a risk.
type InsuranceEstimate struct {
	MonthlyPrice      Amount `json:"monthly_price"`
	DefaultDeductible Amount `json:"default_deductible"`
	DefaultCeiling    Amount `json:"default_ceiling"`
	Currency          string `json:"currency"`
}

// Insurance is an estimate plus the product metadata it was priced under.
type Insurance struct {
	Estimate         InsuranceEstimate `json:"estimate"`
	SimplifiedCovers []string          `json:"simplified_covers"`
	ProductCode      string            `json:"product_code"`
	ProductVersion   string            `json:"product_version"`
	ContractualTerms string            `json:"contractual_terms"`
	IPID             string            `json:"ipid"`
}

// ResolveInsurance looks roomCount up in the partner's pricing matrix. The
// stored amounts are returned as is; nothing is computed.
func ResolveInsurance(p Partner, roomCount int) (Insurance, error) {
	entry, ok := p.Offer.PricingMatrix[roomCount]
	if !ok {
		return Insurance{}, fmt.Errorf("%w: no price for %d room(s) at partner %q",
			ErrRoomCountNotInsurable, roomCount, p.Code)
	}

	covers := make([]string, len(p.Offer.SimplifiedCovers))
	copy(covers, p.Offer.SimplifiedCovers)

	return Insurance{
		Estimate: InsuranceEstimate{
			MonthlyPrice:      entry.MonthlyPrice,
			DefaultDeductible: entry.DefaultDeductible,
			DefaultCeiling:    entry.DefaultCeiling,
			Currency:          p.Currency,
		},
		SimplifiedCovers: covers,
		ProductCode:      p.Offer.ProductCode,
		ProductVersion:   p.Offer.ProductVersion,
		ContractualTerms: p.Offer.ContractualTerms,
		IPID:             p.Offer.IPID,
	}, nil
}
