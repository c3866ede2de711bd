package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestionSet_RejectsDuplicates(t *testing.T) {
	_, err := NewQuestionSet(AddressQuestion{ToAsk: true}, AddressQuestion{})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewQuestionSet_RejectsBadRoommateLimits(t *testing.T) {
	_, err := NewQuestionSet(RoommateQuestion{
		Applicable:     true,
		MaximumNumbers: []RoommateLimit{{RoomCount: 2, MaxRoommates: 1}, {RoomCount: 2, MaxRoommates: 2}},
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewQuestionSet(RoommateQuestion{
		Applicable:     true,
		MaximumNumbers: []RoommateLimit{{RoomCount: 2, MaxRoommates: -1}},
	})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestQuestionSet_Questions(t *testing.T) {
	codes := make([]QuestionCode, 0, 5)
	for _, q := range demoQuestions().Questions() {
		codes = append(codes, q.Code())
	}
	assert.Equal(t, []QuestionCode{
		QuestionRoomCount, QuestionPropertyType, QuestionOccupancy, QuestionRoommate, QuestionAddress,
	}, codes)

	qs, err := NewQuestionSet(nil, AddressQuestion{})
	require.NoError(t, err)
	assert.Len(t, qs.Questions(), 1)
}
