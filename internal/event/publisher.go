package event

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

// PolicyEventsQueue receives every policy lifecycle event. Consumers route
// on the "type" field.
const PolicyEventsQueue = "policy_events"

// PolicyPublisher publishes policy lifecycle events to RabbitMQ.
type PolicyPublisher struct {
	conn  *RabbitMQConnection
	queue string

	mu       sync.Mutex
	declared bool

	published atomic.Int64
	failed    atomic.Int64
}

func NewPolicyPublisher(conn *RabbitMQConnection) *PolicyPublisher {
	return &PolicyPublisher{conn: conn, queue: PolicyEventsQueue}
}

func (p *PolicyPublisher) Publish(ctx context.Context, e core.PolicyEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		p.failed.Add(1)
		return fmt.Errorf("failed to marshal policy event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.declared {
		_, err := p.conn.Channel.QueueDeclare(
			p.queue, // queue name
			true,    // durable
			false,   // delete when unused
			false,   // exclusive
			false,   // no-wait
			nil,     // arguments
		)
		if err != nil {
			p.failed.Add(1)
			return fmt.Errorf("failed to declare queue: %w", err)
		}
		p.declared = true
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",      // exchange
		p.queue, // routing key (queue name)
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    e.ID,
			Type:         string(e.Type),
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.failed.Add(1)
		return fmt.Errorf("failed to publish policy event: %w", err)
	}

	p.published.Add(1)
	slog.Info("policy event published",
		"queue", p.queue,
		"type", e.Type,
		"policy_id", e.PolicyID,
	)
	return nil
}

// Ping reports whether the broker connection is still open.
func (p *PolicyPublisher) Ping(context.Context) error {
	if p.conn == nil || p.conn.Connection == nil || p.conn.Connection.IsClosed() {
		return fmt.Errorf("rabbitmq connection closed")
	}
	return nil
}

// Metrics returns publisher counters
func (p *PolicyPublisher) Metrics() map[string]any {
	return map[string]any{
		"messages_published": p.published.Load(),
		"messages_failed":    p.failed.Load(),
		"queue":              p.queue,
	}
}
