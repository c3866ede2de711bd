package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

// QuoteRepo is an in-memory implementation of core.QuoteRepo.
type QuoteRepo struct {
	mu     sync.RWMutex
	quotes map[string]core.Quote
}

func NewQuoteRepo() *QuoteRepo {
	return &QuoteRepo{quotes: make(map[string]core.Quote)}
}

func (r *QuoteRepo) Get(_ context.Context, id string) (core.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.quotes[id]
	if !ok {
		return core.Quote{}, fmt.Errorf("%w: %s", core.ErrQuoteNotFound, id)
	}
	return q, nil
}

func (r *QuoteRepo) Save(_ context.Context, q core.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.quotes[q.ID]; ok {
		return fmt.Errorf("%w: quote %s", core.ErrConflict, q.ID)
	}
	r.quotes[q.ID] = q
	return nil
}

func (r *QuoteRepo) Update(_ context.Context, q core.Quote) (core.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.quotes[q.ID]; !ok {
		return core.Quote{}, fmt.Errorf("%w: %s", core.ErrQuoteNotFound, q.ID)
	}
	r.quotes[q.ID] = q
	return q, nil
}
