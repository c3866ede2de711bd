package transporthttp

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrKriegler/go-home-insurance/internal/catalog"
	"github.com/MrKriegler/go-home-insurance/internal/core"
	"github.com/MrKriegler/go-home-insurance/internal/event"
	"github.com/MrKriegler/go-home-insurance/internal/http/handlers"
	"github.com/MrKriegler/go-home-insurance/internal/store/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	st := memory.New()
	partners, err := catalog.Load("../../configs/partners.yaml")
	require.NoError(t, err)
	for _, p := range partners {
		require.NoError(t, st.Partners.Upsert(context.Background(), p))
	}

	router := NewRouter(Deps{Mounts: []handlers.Mountable{
		handlers.NewPartnerHandler(core.NewPartnerService(st.Partners), log),
		handlers.NewQuoteHandler(core.NewQuoteService(st.Partners, st.Quotes), log),
		handlers.NewPolicyHandler(core.NewPolicyService(st.Policies, st.Quotes, st.Partners, event.NewLogPublisher(log)), log),
	}})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func quoteBody(rooms int, roommates int) map[string]any {
	others := make([]map[string]any, 0, roommates)
	for i := 0; i < roommates; i++ {
		others = append(others, map[string]any{"first_name": "Room", "last_name": "Mate"})
	}
	return map[string]any{
		"partner_code": "demo",
		"risk": map[string]any{
			"property":     map[string]any{"room_count": rooms, "type": "FLAT", "occupancy": "TENANT"},
			"other_people": others,
		},
		"policy_holder": map[string]any{"first_name": "Jane", "last_name": "Doe", "email": "jane@example.org"},
	}
}

func TestRouter_QuoteToCertificate(t *testing.T) {
	srv := newTestServer(t)

	status, quote := call(t, srv, http.MethodPost, "/quotes", quoteBody(2, 1))
	require.Equal(t, http.StatusCreated, status, quote)
	assert.Equal(t, 69.84, quote["premium"])
	quoteID := quote["id"].(string)

	status, quote = call(t, srv, http.MethodPut, "/quotes/"+quoteID, map[string]any{
		"risk":                   quoteBody(2, 0)["risk"],
		"special_operation_code": "full year",
	})
	require.Equal(t, http.StatusOK, status, quote)
	assert.Equal(t, 58.2, quote["premium"])
	assert.Equal(t, "FULLYEAR", quote["special_operation_code"])

	status, policy := call(t, srv, http.MethodPost, "/policies", map[string]any{"quote_id": quoteID})
	require.Equal(t, http.StatusCreated, status, policy)
	assert.Equal(t, "INITIATED", policy["status"])
	policyID := policy["id"].(string)
	assert.Regexp(t, `^DEMH01\d{6}$`, policyID)

	status, policy = call(t, srv, http.MethodPut, "/policies/"+policyID+"/special-operation-code",
		map[string]any{"special_operation_code": "SEMESTER2"})
	require.Equal(t, http.StatusOK, status, policy)
	assert.Equal(t, 29.1, policy["premium"])

	status, _ = call(t, srv, http.MethodPost, "/policies/"+policyID+"/signature-request", nil)
	assert.Equal(t, http.StatusAccepted, status)

	status, _ = call(t, srv, http.MethodPost, "/policies/"+policyID+"/signature", nil)
	require.Equal(t, http.StatusOK, status)

	status, prob := call(t, srv, http.MethodPut, "/policies/"+policyID+"/start-date",
		map[string]any{"start_date": "2999-01-01T00:00:00Z"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "POLICY_NOT_UPDATABLE", prob["code"])

	status, prob = call(t, srv, http.MethodGet, "/policies/"+policyID+"/certificate", nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN_CERTIFICATE_GENERATION", prob["code"])

	status, _ = call(t, srv, http.MethodPost, "/policies/"+policyID+"/payment", nil)
	require.Equal(t, http.StatusOK, status)

	status, cert := call(t, srv, http.MethodGet, "/policies/"+policyID+"/certificate", nil)
	require.Equal(t, http.StatusOK, status, cert)
	assert.Equal(t, policyID, cert["policy_id"])
	assert.Equal(t, "Jane Doe", cert["holder_name"])
	assert.Equal(t, "EUR", cert["currency"])

	status, policy = call(t, srv, http.MethodPost, "/policies/"+policyID+"/cancellation", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "CANCELLED", policy["status"])
}

func TestRouter_EligibilityErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{"too many roommates", quoteBody(2, 2), http.StatusBadRequest, "ROOMMATE_COUNT_EXCEEDED"},
		{"roommates in one room", quoteBody(1, 1), http.StatusBadRequest, "ROOMMATES_NOT_ALLOWED"},
		{"room count rejected", quoteBody(4, 0), http.StatusBadRequest, "ROOM_COUNT_NOT_INSURABLE"},
		{"unknown partner", func() map[string]any {
			b := quoteBody(2, 0)
			b["partner_code"] = "nope"
			return b
		}(), http.StatusNotFound, "PARTNER_NOT_FOUND"},
		{"unknown code", func() map[string]any {
			b := quoteBody(2, 0)
			b["special_operation_code"] = "SUMMER"
			return b
		}(), http.StatusBadRequest, "OPERATION_CODE_NOT_APPLICABLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, prob := call(t, srv, http.MethodPost, "/quotes", tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, prob["code"])
		})
	}
}

func TestRouter_RejectsUnknownFieldsAndNonJSON(t *testing.T) {
	srv := newTestServer(t)

	body := quoteBody(2, 0)
	body["surprise"] = true
	status, prob := call(t, srv, http.MethodPost, "/quotes", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid JSON", prob["title"])

	resp, err := http.Post(srv.URL+"/quotes", "text/plain", bytes.NewBufferString("hello"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestRouter_Partner(t *testing.T) {
	srv := newTestServer(t)

	status, partner := call(t, srv, http.MethodGet, "/partners/demo", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "DEM", partner["trigram"])

	status, _ = call(t, srv, http.MethodGet, "/quotes/NOPE123", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
