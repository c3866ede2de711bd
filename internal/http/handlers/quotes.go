package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

type QuoteHandler struct {
	Svc core.QuoteService
	Log *slog.Logger
}

func NewQuoteHandler(svc core.QuoteService, log *slog.Logger) *QuoteHandler {
	return &QuoteHandler{Svc: svc, Log: log}
}

func (h *QuoteHandler) Mount(r chi.Router) {
	r.Route("/quotes", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/{quote_id}", h.Get)
		r.Put("/{quote_id}", h.Update)
		r.Post("/{quote_id}/email-validation", h.ValidateEmail)
	})
}

// Create prices a new quote.
// 201: JSON; 400: bad JSON/validation/not insurable; 404: partner not found; 500: internal error.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in core.QuoteInput
	if !decodeJSON(w, r, &in) {
		return
	}

	q, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusCreated, q)
}

// Get retrieves a quote by ID.
// 200: JSON; 404: not found.
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.Svc.Get(r.Context(), chi.URLParam(r, "quote_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, q)
}

// Update re-prices a quote with a new risk, code or start date.
// 200: JSON; 400: bad JSON/validation; 404: not found.
func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in core.QuoteInput
	if !decodeJSON(w, r, &in) {
		return
	}

	q, err := h.Svc.Update(r.Context(), chi.URLParam(r, "quote_id"), in)
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, q)
}

// ValidateEmail marks the policy holder's email as verified.
// 200: JSON; 400: no policy holder; 404: not found.
func (h *QuoteHandler) ValidateEmail(w http.ResponseWriter, r *http.Request) {
	q, err := h.Svc.ValidateEmail(r.Context(), chi.URLParam(r, "quote_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, q)
}
