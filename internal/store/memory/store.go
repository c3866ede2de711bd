// Package memory keeps partners, quotes and policies in process memory. It
// backs DB_TYPE=memory and the use case tests.
package memory

import "context"

type Store struct {
	Partners *PartnerRepo
	Quotes   *QuoteRepo
	Policies *PolicyRepo
}

func New() *Store {
	return &Store{
		Partners: NewPartnerRepo(),
		Quotes:   NewQuoteRepo(),
		Policies: NewPolicyRepo(),
	}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }
