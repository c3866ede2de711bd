package core

import (
	"context"
	"time"
)

type PolicyEventType string

const (
	PolicyEventSignatureRequested PolicyEventType = "policy.signature_requested"
	PolicyEventSigned             PolicyEventType = "policy.signed"
	PolicyEventPaid               PolicyEventType = "policy.paid"
	PolicyEventCancelled          PolicyEventType = "policy.cancelled"
)

// PolicyEvent tells downstream adapters (e-signature, email, accounting)
// that a policy moved through its lifecycle.
type PolicyEvent struct {
	ID               string            `json:"id"`
	Type             PolicyEventType   `json:"type"`
	PolicyID         string            `json:"policy_id"`
	PartnerCode      string            `json:"partner_code"`
	Status           PolicyStatus      `json:"status"`
	OccurredAt       time.Time         `json:"occurred_at"`
	SignatureRequest *SignatureRequest `json:"signature_request,omitempty"`
}

type EventPublisher interface {
	Publish(ctx context.Context, e PolicyEvent) error
}
