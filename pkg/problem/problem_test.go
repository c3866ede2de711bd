package problem

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusBadRequest, "Invalid JSON", "Body could not be decoded.")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var p Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, Problem{
		Type:   "about:blank",
		Title:  "Invalid JSON",
		Status: http.StatusBadRequest,
		Detail: "Body could not be decoded.",
	}, p)
}

func TestWriteProblem_KeepsCode(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteProblem(rec, Problem{Status: http.StatusConflict, Title: "Invalid State", Code: "POLICY_CANCELED"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"type":"about:blank","title":"Invalid State","status":409,"code":"POLICY_CANCELED"}`, rec.Body.String())
}
