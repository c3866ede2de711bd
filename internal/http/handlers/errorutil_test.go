package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrKriegler/go-home-insurance/internal/core"
	"github.com/MrKriegler/go-home-insurance/pkg/problem"
)

func TestWriteError(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"quote not found", fmt.Errorf("%w: ABC1234", core.ErrQuoteNotFound), http.StatusNotFound, "QUOTE_NOT_FOUND"},
		{"roommates exceeded", &core.RoommateCountExceededError{Max: 1, RoomCount: 2, Requested: 2}, http.StatusBadRequest, "ROOMMATE_COUNT_EXCEEDED"},
		{"start date", &core.StartDateBeforeTodayError{}, http.StatusBadRequest, "START_DATE_BEFORE_TODAY"},
		{"not updatable", core.ErrPolicyNotUpdatable, http.StatusConflict, "POLICY_NOT_UPDATABLE"},
		{"id exhausted", core.ErrPolicyIDExhausted, http.StatusConflict, ""},
		{"certificate", core.ErrForbiddenCertificateGeneration, http.StatusForbidden, "FORBIDDEN_CERTIFICATE_GENERATION"},
		{"missing question", &core.QuestionNotFoundError{PartnerCode: "demo", QuestionCode: core.QuestionRoommate}, http.StatusInternalServerError, "QUESTION_NOT_FOUND"},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, ""},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), log, rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var p problem.Problem
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.code, p.Code)
			assert.Equal(t, "about:blank", p.Type)
		})
	}
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), rec, errors.New("mongo: secret host"))

	var p problem.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Unexpected error.", p.Detail)
}
