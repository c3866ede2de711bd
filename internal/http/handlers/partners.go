package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

type PartnerHandler struct {
	Svc core.PartnerService
	Log *slog.Logger
}

func NewPartnerHandler(svc core.PartnerService, log *slog.Logger) *PartnerHandler {
	return &PartnerHandler{Svc: svc, Log: log}
}

func (h *PartnerHandler) Mount(r chi.Router) {
	r.Get("/partners/{partner_code}", h.Get)
}

// Get returns a partner's offer and questionnaire.
// 200: JSON; 404: not found.
func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.Get(r.Context(), chi.URLParam(r, "partner_code"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, p)
}
