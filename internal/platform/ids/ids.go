package ids

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// quoteAlphabet has no I, O, l or 0.
const quoteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ123456789"

const (
	QuoteIDLength     = 7
	PolicyIDDigits    = 6
	productSuffixSize = 3
)

// New returns a random UUID, used for event ids.
func New() string {
	return uuid.NewString()
}

// NewQuoteID returns a 7 character identifier such as "K7XH2PM".
func NewQuoteID() string {
	var b strings.Builder
	b.Grow(QuoteIDLength)
	for i := 0; i < QuoteIDLength; i++ {
		b.WriteByte(quoteAlphabet[randInt(len(quoteAlphabet))])
	}
	return b.String()
}

// NewPolicyID builds <TRIGRAM><last 3 chars of product code><6 digits>,
// e.g. "DEMH01000123" for trigram DEM and product "MRH01". Callers check
// availability and call again on collision.
func NewPolicyID(trigram, productCode string) string {
	suffix := strings.ToUpper(productCode)
	if len(suffix) > productSuffixSize {
		suffix = suffix[len(suffix)-productSuffixSize:]
	}
	return fmt.Sprintf("%s%s%06d", strings.ToUpper(trigram), suffix, randInt(1_000_000))
}

func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS source is broken
		panic(fmt.Sprintf("ids: reading random source: %v", err))
	}
	return int(v.Int64())
}
