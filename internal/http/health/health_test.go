package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func ok() pingFunc { return func(context.Context) error { return nil } }

func TestHealth_Liveness(t *testing.T) {
	h := New(nil, time.Second)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHealth_ReadyWhenAllChecksPass(t *testing.T) {
	h := New(nil, time.Second, Check{Name: "store", Pinger: ok()}, Check{Name: "events", Pinger: ok()})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var rep report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, "ready", rep.Status)
	assert.Equal(t, map[string]string{"store": "ok", "events": "ok"}, rep.Checks)
}

func TestHealth_NotReadyWhenOneCheckFails(t *testing.T) {
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })
	h := New(nil, time.Second, Check{Name: "store", Pinger: ok()}, Check{Name: "events", Pinger: down})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var rep report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, "not ready", rep.Status)
	assert.Equal(t, "connection refused", rep.Checks["events"])
	assert.Equal(t, "ok", rep.Checks["store"])
}

func TestHealth_ReadinessHonoursTimeout(t *testing.T) {
	slow := pingFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	h := New(nil, 10*time.Millisecond, Check{Name: "store", Pinger: slow})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"events", "store"}, Names([]Check{{Name: "store"}, {Name: "events"}}))
}
