package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

func samplePolicy() core.Policy {
	start := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := core.TermEndDate(start, 5)
	signed := time.Date(2024, time.March, 11, 9, 30, 0, 0, time.UTC)

	return core.Policy{
		ID:          "DEMH01000042",
		PartnerCode: "demo",
		QuoteID:     "K7XH2PM",
		Risk: core.Risk{Property: core.Property{
			RoomCount: 2,
			Type:      core.PropertyTypeFlat,
			Occupancy: core.OccupancyTenant,
			Address:   &core.Address{Street: "1 rue de la Paix", PostalCode: "75002", City: "Paris", Country: "FR"},
		}},
		PolicyHolder: core.PolicyHolder{FirstName: "Jane", LastName: "Doe", Email: "jane@example.org"},
		Terms: core.Terms{
			Insurance: core.Insurance{
				Estimate: core.InsuranceEstimate{
					MonthlyPrice:      core.MustParseAmount("5.82"),
					DefaultDeductible: core.MustParseAmount("150"),
					DefaultCeiling:    core.MustParseAmount("7000"),
					Currency:          "EUR",
				},
				SimplifiedCovers: []string{"ACDDE"},
				ProductCode:      "MRH01",
			},
			Premium:              core.MustParseAmount("29.10"),
			NbMonthsDue:          5,
			StartDate:            &start,
			TermStartDate:        &start,
			TermEndDate:          &end,
			SpecialOperationCode: core.OperationCodeSemester1,
		},
		Status:    core.PolicyStatusSigned,
		SignedAt:  &signed,
		CreatedAt: signed.Add(-time.Hour),
		UpdatedAt: signed,
	}
}

func TestPolicyDoc_BSON(t *testing.T) {
	p := samplePolicy()

	raw, err := bson.Marshal(toPolicyDoc(p))
	require.NoError(t, err)

	doc := bson.Raw(raw)
	assert.Equal(t, "DEMH01000042", doc.Lookup("_id").StringValue())
	assert.Equal(t, "29.10", doc.Lookup("terms", "premium").StringValue())
	_, err = doc.LookupErr("paid_at")
	assert.Error(t, err)

	var decoded PolicyDoc
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	got, err := fromPolicyDoc(decoded)
	require.NoError(t, err)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Status, got.Status)
	assert.Equal(t, "29.10", got.Premium.String())
	assert.Equal(t, "5.82", got.Insurance.Estimate.MonthlyPrice.String())
	assert.Equal(t, core.OperationCodeSemester1, got.SpecialOperationCode)
	assert.True(t, p.StartDate.Equal(*got.StartDate))
	assert.True(t, p.TermEndDate.Equal(*got.TermEndDate))
	assert.True(t, p.SignedAt.Equal(*got.SignedAt))
	assert.Nil(t, got.PaidAt)
	assert.Equal(t, "Paris", got.Risk.Property.Address.City)
}

func TestPartnerDoc_MatrixIsSorted(t *testing.T) {
	p := core.Partner{
		Code: "demo",
		Offer: core.Offer{PricingMatrix: map[int]core.PricingEntry{
			3: {MonthlyPrice: core.MustParseAmount("7.09")},
			1: {MonthlyPrice: core.MustParseAmount("4.68")},
			2: {MonthlyPrice: core.MustParseAmount("5.82")},
		}},
	}

	doc := toPartnerDoc(p)
	require.Len(t, doc.Offer.PricingMatrix, 3)
	assert.Equal(t, 1, doc.Offer.PricingMatrix[0].RoomCount)
	assert.Equal(t, "7.09", doc.Offer.PricingMatrix[2].MonthlyPrice)

	back, err := fromPartnerDoc(doc)
	require.NoError(t, err)
	assert.Equal(t, "5.82", back.Offer.PricingMatrix[2].MonthlyPrice.String())
}

func TestFromPartnerDoc_BadAmount(t *testing.T) {
	_, err := fromPartnerDoc(PartnerDoc{
		Code:  "demo",
		Offer: OfferDoc{PricingMatrix: []PricingEntryDoc{{RoomCount: 1, MonthlyPrice: "abc", DefaultDeductible: "0", DefaultCeiling: "0"}}},
	})
	assert.ErrorIs(t, err, core.ErrValidation)
}
