package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

type PolicyHandler struct {
	Svc core.PolicyService
	Log *slog.Logger
}

func NewPolicyHandler(svc core.PolicyService, log *slog.Logger) *PolicyHandler {
	return &PolicyHandler{Svc: svc, Log: log}
}

func (h *PolicyHandler) Mount(r chi.Router) {
	r.Route("/policies", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Route("/{policy_id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/special-operation-code", h.ApplySpecialOperationCode)
			r.Put("/start-date", h.ChangeStartDate)
			r.Post("/signature-request", h.CreateSignatureRequest)
			r.Post("/signature", h.RecordSignature)
			r.Post("/payment", h.RecordPayment)
			r.Get("/certificate", h.GenerateCertificate)
			r.Post("/cancellation", h.Cancel)
		})
	})
}

// Create converts a quote into an initiated policy.
// 201: JSON; 400: validation; 404: quote not found.
func (h *PolicyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in core.PolicyInput
	if !decodeJSON(w, r, &in) {
		return
	}

	p, err := h.Svc.CreateFromQuote(r.Context(), in)
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusCreated, p)
}

// Get retrieves a policy by ID.
// 200: JSON; 404: not found.
func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.Get(r.Context(), chi.URLParam(r, "policy_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, p)
}

// ApplySpecialOperationCode re-prices an initiated policy.
// 200: JSON; 400: code not applicable; 409: signed or cancelled.
func (h *PolicyHandler) ApplySpecialOperationCode(w http.ResponseWriter, r *http.Request) {
	var in core.OperationCodeInput
	if !decodeJSON(w, r, &in) {
		return
	}

	p, err := h.Svc.ApplySpecialOperationCode(r.Context(), chi.URLParam(r, "policy_id"), in)
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, p)
}

// ChangeStartDate moves the start date of an initiated policy.
// 200: JSON; 400: date before today; 409: signed or cancelled.
func (h *PolicyHandler) ChangeStartDate(w http.ResponseWriter, r *http.Request) {
	var in core.StartDateInput
	if !decodeJSON(w, r, &in) {
		return
	}

	p, err := h.Svc.ChangeStartDate(r.Context(), chi.URLParam(r, "policy_id"), in)
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, p)
}

// CreateSignatureRequest sends the contract for e-signature.
// 202: JSON; 409: already signed or cancelled.
func (h *PolicyHandler) CreateSignatureRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.Svc.CreateSignatureRequest(r.Context(), chi.URLParam(r, "policy_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusAccepted, req)
}

// RecordSignature is the e-signature provider's success callback.
// 200: JSON; 409: already signed or cancelled.
func (h *PolicyHandler) RecordSignature(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.RecordSignature(r.Context(), chi.URLParam(r, "policy_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, p)
}

// RecordPayment is the payment processor's success callback.
// 200: JSON; 409: not signed, already paid or cancelled.
func (h *PolicyHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.RecordPayment(r.Context(), chi.URLParam(r, "policy_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, p)
}

// GenerateCertificate returns the certificate data of an applicable policy.
// 200: JSON; 403: not applicable yet; 409: cancelled.
func (h *PolicyHandler) GenerateCertificate(w http.ResponseWriter, r *http.Request) {
	c, err := h.Svc.GenerateCertificate(r.Context(), chi.URLParam(r, "policy_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, c)
}

// Cancel terminates a policy.
// 200: JSON; 409: already cancelled.
func (h *PolicyHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.Cancel(r.Context(), chi.URLParam(r, "policy_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(h.Log, w, http.StatusOK, p)
}
