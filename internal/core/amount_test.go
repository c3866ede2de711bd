package core

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_Times(t *testing.T) {
	price := MustParseAmount("5.82")

	assert.Equal(t, "29.10", price.Times(5).String())
	assert.Equal(t, "58.20", price.Times(10).String())
	assert.Equal(t, "69.84", price.Times(12).String())
}

func TestAmount_RoundsToCents(t *testing.T) {
	assert.Equal(t, "0.10", NewAmount(0.1).String())
	assert.Equal(t, "4.69", MustParseAmount("4.685").String())
	assert.Equal(t, int64(468), MustParseAmount("4.68").Cents())
	assert.True(t, AmountFromCents(582).Equal(MustParseAmount("5.82")))
}

func TestAmount_Add(t *testing.T) {
	sum := NewAmount(0.1).Add(NewAmount(0.2))
	assert.Equal(t, "0.30", sum.String())
}

func TestParseAmount_Invalid(t *testing.T) {
	_, err := ParseAmount("five")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAmount_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Premium Amount `json:"premium"`
	}{MustParseAmount("29.1")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"premium":29.10}`, string(b))

	var fromNumber, fromString Amount
	require.NoError(t, json.Unmarshal([]byte(`5.82`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"5.82"`), &fromString))
	assert.True(t, fromNumber.Equal(fromString))

	var bad Amount
	assert.ErrorIs(t, bad.UnmarshalJSON([]byte(`"abc"`)), ErrValidation)
}
