package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/swaggo/swag"

	_ "github.com/MrKriegler/go-home-insurance/docs"
	"github.com/MrKriegler/go-home-insurance/internal/core"
	"github.com/MrKriegler/go-home-insurance/internal/event"
	transporthttp "github.com/MrKriegler/go-home-insurance/internal/http"
	"github.com/MrKriegler/go-home-insurance/internal/http/handlers"
	"github.com/MrKriegler/go-home-insurance/internal/http/health"
	"github.com/MrKriegler/go-home-insurance/internal/middleware"
	"github.com/MrKriegler/go-home-insurance/internal/platform/config"
	"github.com/MrKriegler/go-home-insurance/internal/platform/logging"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- Storage ----
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	checks := []health.Check{{Name: "store", Pinger: st.pinger}}

	// ---- Events ----
	var events core.EventPublisher = event.NewLogPublisher(log)
	if cfg.RabbitMQURL != "" {
		conn, err := event.ConnectRabbitMQ(ctx, cfg.RabbitMQURL)
		if err != nil {
			return err
		}
		defer conn.Close()
		pub := event.NewPolicyPublisher(conn)
		events = pub
		checks = append(checks, health.Check{Name: "events", Pinger: pub})
	}
	log.Info("readiness checks", "checks", health.Names(checks))

	// ---- Services ----
	quoteSvc := core.NewQuoteService(st.partners, st.quotes)
	policySvc := core.NewPolicyService(st.policies, st.quotes, st.partners, events)
	partnerSvc := core.NewPartnerService(st.partners)

	api := transporthttp.NewRouter(transporthttp.Deps{
		Mounts: []handlers.Mountable{
			handlers.NewPartnerHandler(partnerSvc, log),
			handlers.NewQuoteHandler(quoteSvc, log),
			handlers.NewPolicyHandler(policySvc, log),
		},
	})

	// ---- Setup router (Chi) ----
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(time.Duration(cfg.HTTPRequestTimeoutSec) * time.Second))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.LimitRequestBody(middleware.MaxBodySize))

	r.Mount("/", health.New(log, 2*time.Second, checks...))
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "swagger unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})
	r.Mount("/api/v1", api)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTPReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPWriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPIdleTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Env, "db", cfg.DBType)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
