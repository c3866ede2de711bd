package health

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Check is a named readiness dependency (store, event broker).
type Check struct {
	Name   string
	Pinger Pinger
}

type report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// New builds a health check HTTP handler with liveness and readiness endpoints.
func New(log *slog.Logger, opTimeout time.Duration, checks ...Check) http.Handler {
	r := chi.NewRouter()

	// Liveness: process is up
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Readiness: every dependency answers within opTimeout
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
		defer cancel()

		rep := report{Status: "ready", Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if err := c.Pinger.Ping(ctx); err != nil {
				if log != nil {
					log.Warn("readiness failed", "check", c.Name, "err", err)
				}
				rep.Status = "not ready"
				rep.Checks[c.Name] = err.Error()
				continue
			}
			rep.Checks[c.Name] = "ok"
		}

		status := http.StatusOK
		if rep.Status != "ready" {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(rep)
	})

	return r
}

// Names lists the configured checks, sorted.
func Names(checks []Check) []string {
	out := make([]string, 0, len(checks))
	for _, c := range checks {
		out = append(out, c.Name)
	}
	sort.Strings(out)
	return out
}
