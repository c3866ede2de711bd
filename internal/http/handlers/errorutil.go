package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/MrKriegler/go-home-insurance/internal/core"
	"github.com/MrKriegler/go-home-insurance/pkg/problem"
)

// errorCodes gives clients a stable code for the errors they have to tell
// apart, e.g. roommates not allowed at all vs. too many roommates.
var errorCodes = []struct {
	err  error
	code string
}{
	{core.ErrPartnerNotFound, "PARTNER_NOT_FOUND"},
	{core.ErrQuoteNotFound, "QUOTE_NOT_FOUND"},
	{core.ErrPolicyNotFound, "POLICY_NOT_FOUND"},
	{core.ErrRoomCountNotInsurable, "ROOM_COUNT_NOT_INSURABLE"},
	{core.ErrPropertyTypeNotInsurable, "PROPERTY_TYPE_NOT_INSURABLE"},
	{core.ErrOccupancyNotInsurable, "OCCUPANCY_NOT_INSURABLE"},
	{core.ErrRoommatesNotAllowed, "ROOMMATES_NOT_ALLOWED"},
	{core.ErrRoommateCountExceeded, "ROOMMATE_COUNT_EXCEEDED"},
	{core.ErrOperationCodeNotApplicable, "OPERATION_CODE_NOT_APPLICABLE"},
	{core.ErrStartDateBeforeToday, "START_DATE_BEFORE_TODAY"},
	{core.ErrPolicyHolderNeeded, "POLICY_HOLDER_REQUIRED"},
	{core.ErrPolicyNotUpdatable, "POLICY_NOT_UPDATABLE"},
	{core.ErrPolicyCanceled, "POLICY_CANCELED"},
	{core.ErrPolicyAlreadySigned, "POLICY_ALREADY_SIGNED"},
	{core.ErrPolicyAlreadyPaid, "POLICY_ALREADY_PAID"},
	{core.ErrPolicyNotSigned, "POLICY_NOT_SIGNED"},
	{core.ErrForbiddenCertificateGeneration, "FORBIDDEN_CERTIFICATE_GENERATION"},
	{core.ErrQuestionNotFound, "QUESTION_NOT_FOUND"},
}

func errorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

func writeError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	p := problem.Problem{Detail: err.Error(), Code: errorCode(err)}

	switch {
	case errors.Is(err, core.ErrNotFound):
		log.WarnContext(ctx, "resource not found", "err", err)
		p.Status, p.Title = http.StatusNotFound, "Not Found"

	case errors.Is(err, core.ErrValidation):
		log.WarnContext(ctx, "validation failed", "err", err)
		p.Status, p.Title = http.StatusBadRequest, "Validation Error"

	case errors.Is(err, core.ErrInvalidState):
		log.WarnContext(ctx, "invalid policy state", "err", err)
		p.Status, p.Title = http.StatusConflict, "Invalid State"

	case errors.Is(err, core.ErrConflict):
		log.WarnContext(ctx, "resource conflict", "err", err)
		p.Status, p.Title = http.StatusConflict, "Conflict"

	case errors.Is(err, core.ErrForbidden):
		log.WarnContext(ctx, "forbidden operation", "err", err)
		p.Status, p.Title = http.StatusForbidden, "Forbidden"

	case errors.Is(err, core.ErrConfiguration):
		log.ErrorContext(ctx, "partner configuration error", "err", err)
		p.Status, p.Title = http.StatusInternalServerError, "Partner Configuration Error"

	case errors.Is(err, context.DeadlineExceeded):
		log.ErrorContext(ctx, "operation timeout", "err", err)
		p.Status, p.Title, p.Detail = http.StatusGatewayTimeout, "Timeout", "Operation took too long."

	default:
		log.ErrorContext(ctx, "internal server error", "err", err)
		p.Status, p.Title, p.Detail = http.StatusInternalServerError, "Internal Server Error", "Unexpected error."
	}

	problem.WriteProblem(w, p)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Body could not be decoded.")
		return false
	}
	return true
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", "err", err)
	}
}
