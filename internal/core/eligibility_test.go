package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRoomCountInsurable(t *testing.T) {
	qs := demoQuestions()

	assert.True(t, IsRoomCountInsurable(qs, 1))
	assert.True(t, IsRoomCountInsurable(qs, 3))
	assert.False(t, IsRoomCountInsurable(qs, 4), "REJECT option")
	assert.False(t, IsRoomCountInsurable(qs, 5), "not an option")
	assert.False(t, IsRoomCountInsurable(QuestionSet{}, 1), "no question configured")
}

func TestIsRoomCountInsurable_DefaultOnly(t *testing.T) {
	qs, err := NewQuestionSet(RoomCountQuestion{DefaultValue: 2})
	require.NoError(t, err)

	assert.True(t, IsRoomCountInsurable(qs, 2))
	assert.False(t, IsRoomCountInsurable(qs, 1))
}

func TestIsPropertyTypeInsurable(t *testing.T) {
	qs := demoQuestions()

	assert.True(t, IsPropertyTypeInsurable(qs, PropertyTypeFlat))
	assert.False(t, IsPropertyTypeInsurable(qs, PropertyTypeHouse))
	assert.False(t, IsPropertyTypeInsurable(QuestionSet{}, PropertyTypeFlat))
}

func TestIsOccupancyInsurable(t *testing.T) {
	qs := demoQuestions()

	assert.True(t, IsOccupancyInsurable(qs, OccupancyTenant))
	assert.False(t, IsOccupancyInsurable(qs, OccupancyLandlord))
}

func TestMaxRoommatesForRoomCount(t *testing.T) {
	qs := demoQuestions()

	for rooms, want := range map[int]int{1: 0, 2: 1, 3: 2, 7: 0} {
		got, err := MaxRoommatesForRoomCount("demo", qs, rooms)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%d room(s)", rooms)
	}
}

func TestMaxRoommatesForRoomCount_NotApplicable(t *testing.T) {
	qs, err := NewQuestionSet(RoommateQuestion{
		Applicable:     false,
		MaximumNumbers: []RoommateLimit{{RoomCount: 2, MaxRoommates: 3}},
	})
	require.NoError(t, err)

	got, err := MaxRoommatesForRoomCount("demo", qs, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestDoesPartnerAllowRoommates_MissingQuestion(t *testing.T) {
	_, err := DoesPartnerAllowRoommates("demo", QuestionSet{})

	require.ErrorIs(t, err, ErrQuestionNotFound)
	require.ErrorIs(t, err, ErrConfiguration)
	var qnf *QuestionNotFoundError
	require.True(t, errors.As(err, &qnf))
	assert.Equal(t, QuestionRoommate, qnf.QuestionCode)
	assert.Equal(t, "demo", qnf.PartnerCode)
}

func TestIsRoommateCountAllowed(t *testing.T) {
	qs := demoQuestions()

	ok, limit, err := IsRoommateCountAllowed("demo", qs, 2, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, limit)

	ok, limit, err = IsRoommateCountAllowed("demo", qs, 2, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, limit)
}

func TestValidateRisk(t *testing.T) {
	qs := demoQuestions()

	tests := []struct {
		name string
		risk Risk
		want error
	}{
		{"one room alone", flatRisk(1), nil},
		{"three rooms two roommates", flatRisk(3, "Ann", "Bob"), nil},
		{"rejected room count", flatRisk(4), ErrRoomCountNotInsurable},
		{"house", Risk{Property: Property{RoomCount: 2, Type: PropertyTypeHouse, Occupancy: OccupancyTenant}}, ErrPropertyTypeNotInsurable},
		{"landlord", Risk{Property: Property{RoomCount: 2, Type: PropertyTypeFlat, Occupancy: OccupancyLandlord}}, ErrOccupancyNotInsurable},
		{"roommate in one room", flatRisk(1, "Ann"), ErrRoommatesNotAllowed},
		{"too many roommates", flatRisk(2, "Ann", "Bob"), ErrRoommateCountExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRisk("demo", qs, tt.risk)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidateRisk_RoommateLimitDetails(t *testing.T) {
	err := ValidateRisk("demo", demoQuestions(), flatRisk(2, "Ann", "Bob"))

	var exceeded *RoommateCountExceededError
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, 1, exceeded.Max)
	assert.Equal(t, 2, exceeded.RoomCount)
	assert.Equal(t, 2, exceeded.Requested)
}

func TestValidateRisk_RoommatesWithoutQuestion(t *testing.T) {
	qs := demoQuestions()
	qs.Roommate = nil

	assert.NoError(t, ValidateRisk("demo", qs, flatRisk(2)))
	assert.ErrorIs(t, ValidateRisk("demo", qs, flatRisk(2, "Ann")), ErrQuestionNotFound)
}
