package handlers

import "github.com/go-chi/chi/v5"

// Mountable is a feature handler that registers its own routes under the
// API prefix.
type Mountable interface {
	Mount(r chi.Router)
}

var (
	_ Mountable = (*PartnerHandler)(nil)
	_ Mountable = (*QuoteHandler)(nil)
	_ Mountable = (*PolicyHandler)(nil)
)
