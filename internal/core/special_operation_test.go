package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoRoomTerms(t *testing.T) Terms {
	t.Helper()
	ins, err := ResolveInsurance(demoPartner(), 2)
	require.NoError(t, err)
	return NewTerms(ins)
}

func TestApplyOperationCode(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	allowed := demoPartner().Offer.OperationCodes

	tests := []struct {
		raw     string
		code    OperationCode
		months  int
		premium string
	}{
		{"SEMESTER1", OperationCodeSemester1, 5, "29.10"},
		{"semester 2", OperationCodeSemester2, 5, "29.10"},
		{"full_year", OperationCodeFullYear, 10, "58.20"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ApplyOperationCode(twoRoomTerms(t), "demo", allowed, tt.raw, now)
			require.NoError(t, err)
			assert.Equal(t, tt.code, got.SpecialOperationCode)
			assert.Equal(t, tt.months, got.NbMonthsDue)
			assert.Equal(t, tt.premium, got.Premium.String())
			require.NotNil(t, got.SpecialOperationCodeAppliedAt)
			assert.Equal(t, now, *got.SpecialOperationCodeAppliedAt)
		})
	}
}

func TestApplyOperationCode_BlankResets(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	allowed := demoPartner().Offer.OperationCodes

	withCode, err := ApplyOperationCode(twoRoomTerms(t), "demo", allowed, "FULLYEAR", now)
	require.NoError(t, err)

	blank, err := ApplyOperationCode(withCode, "demo", allowed, "", now)
	require.NoError(t, err)
	assert.Equal(t, 12, blank.NbMonthsDue)
	assert.Equal(t, "69.84", blank.Premium.String())
	assert.Empty(t, blank.SpecialOperationCode)
	assert.Nil(t, blank.SpecialOperationCodeAppliedAt)

	again, err := ApplyOperationCode(blank, "demo", allowed, "BLANK", now)
	require.NoError(t, err)
	assert.Equal(t, blank.NbMonthsDue, again.NbMonthsDue)
	assert.True(t, blank.Premium.Equal(again.Premium))
	assert.Empty(t, again.SpecialOperationCode)
	assert.Nil(t, again.SpecialOperationCodeAppliedAt)
}

func TestApplyOperationCode_RefreshesTermEnd(t *testing.T) {
	now := date(2020, time.January, 1)
	allowed := demoPartner().Offer.OperationCodes

	terms, err := ApplyStartDate(twoRoomTerms(t), ptr(date(2020, time.January, 5)), now)
	require.NoError(t, err)
	require.Equal(t, date(2021, time.January, 4), *terms.TermEndDate)

	got, err := ApplyOperationCode(terms, "demo", allowed, "SEMESTER1", now)
	require.NoError(t, err)
	assert.Equal(t, date(2020, time.June, 4), *got.TermEndDate)
}

func TestApplyOperationCode_NotApplicable(t *testing.T) {
	now := time.Now()
	terms := twoRoomTerms(t)

	for _, raw := range []string{"SUMMER24", "FULLYEAR"} {
		allowed := []OperationCode{OperationCodeSemester1}
		_, err := ApplyOperationCode(terms, "demo", allowed, raw, now)
		require.ErrorIs(t, err, ErrOperationCodeNotApplicable, raw)

		var notApplicable *OperationCodeNotApplicableError
		require.True(t, errors.As(err, &notApplicable))
		assert.Equal(t, raw, notApplicable.Code)
		assert.Equal(t, "demo", notApplicable.PartnerCode)
	}
}

func ptr[T any](v T) *T { return &v }
