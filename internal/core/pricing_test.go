package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInsurance(t *testing.T) {
	p := demoPartner()

	ins, err := ResolveInsurance(p, 2)
	require.NoError(t, err)
	assert.Equal(t, "5.82", ins.Estimate.MonthlyPrice.String())
	assert.Equal(t, "150.00", ins.Estimate.DefaultDeductible.String())
	assert.Equal(t, "7000.00", ins.Estimate.DefaultCeiling.String())
	assert.Equal(t, "EUR", ins.Estimate.Currency)
	assert.Equal(t, "MRH01", ins.ProductCode)
	assert.Equal(t, []string{"ACDDE", "ACVOL"}, ins.SimplifiedCovers)
}

func TestResolveInsurance_CopiesCovers(t *testing.T) {
	p := demoPartner()

	ins, err := ResolveInsurance(p, 1)
	require.NoError(t, err)
	ins.SimplifiedCovers[0] = "CHANGED"
	assert.Equal(t, "ACDDE", p.Offer.SimplifiedCovers[0])
}

func TestResolveInsurance_OutsideMatrix(t *testing.T) {
	p := demoPartner()

	for _, rooms := range []int{-1, 0, 4, 5, 100} {
		_, err := ResolveInsurance(p, rooms)
		assert.ErrorIs(t, err, ErrRoomCountNotInsurable, "%d room(s)", rooms)
	}
}

func TestNewTerms(t *testing.T) {
	ins, err := ResolveInsurance(demoPartner(), 2)
	require.NoError(t, err)

	terms := NewTerms(ins)
	assert.Equal(t, 12, terms.NbMonthsDue)
	assert.Equal(t, "69.84", terms.Premium.String())
	assert.Nil(t, terms.StartDate)
	assert.Empty(t, terms.SpecialOperationCode)
}

func TestPartner_Validate(t *testing.T) {
	require.NoError(t, demoPartner().Validate())

	tests := []struct {
		name   string
		mutate func(p *Partner)
	}{
		{"no code", func(p *Partner) { p.Code = "" }},
		{"lowercase trigram", func(p *Partner) { p.Trigram = "dem" }},
		{"bad currency", func(p *Partner) { p.Currency = "EURO" }},
		{"no product", func(p *Partner) { p.Offer.ProductCode = "" }},
		{"empty matrix", func(p *Partner) { p.Offer.PricingMatrix = nil }},
		{"zero rooms", func(p *Partner) { p.Offer.PricingMatrix[0] = PricingEntry{} }},
		{"negative price", func(p *Partner) {
			p.Offer.PricingMatrix[1] = PricingEntry{MonthlyPrice: MustParseAmount("-1")}
		}},
		{"unknown code", func(p *Partner) { p.Offer.OperationCodes = []OperationCode{"SUMMER"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := demoPartner()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrValidation)
		})
	}
}
