package event

import (
	"context"
	"log/slog"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(ctx context.Context, e core.PolicyEvent) error {
	p.log.InfoContext(ctx, "policy event",
		"event_id", e.ID,
		"type", e.Type,
		"policy_id", e.PolicyID,
		"partner_code", e.PartnerCode,
		"status", e.Status,
	)
	return nil
}
