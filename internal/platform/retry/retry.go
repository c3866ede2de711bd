// Package retry runs connection checks against backing services with
// exponential backoff.
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type Policy struct {
	Attempts int
	Initial  time.Duration
	Max      time.Duration
}

// Startup is used when dialing stores and brokers at boot.
var Startup = Policy{Attempts: 5, Initial: time.Second, Max: 30 * time.Second}

// Do calls op until it succeeds, attempts run out or ctx is done. The last
// error is returned wrapped with name.
func (p Policy) Do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	attempts := max(p.Attempts, 1)
	backoff := p.Initial

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		slog.Warn(name+" failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"err", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", name, ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, p.Max)
	}
	return fmt.Errorf("%s failed after %d attempts: %w", name, attempts, err)
}
