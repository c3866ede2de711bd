package core

import (
	"context"
	"fmt"
	"time"
)

// Policy represents a binding contract created from a quote.
type Policy struct {
	ID           string       `json:"id"` // Human-readable, e.g. DEMH01000123
	PartnerCode  string       `json:"partner_code"`
	QuoteID      string       `json:"quote_id"`
	Risk         Risk         `json:"risk"`
	PolicyHolder PolicyHolder `json:"policy_holder"`
	Terms
	Status           PolicyStatus `json:"status"`
	EmailValidatedAt *time.Time   `json:"email_validated_at,omitempty"`
	SignedAt         *time.Time   `json:"signed_at,omitempty"`
	PaidAt           *time.Time   `json:"paid_at,omitempty"`
	SubscribedAt     *time.Time   `json:"subscribed_at,omitempty"`
	CancelledAt      *time.Time   `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type PolicyInput struct {
	QuoteID string `json:"quote_id"`
}

type StartDateInput struct {
	StartDate *time.Time `json:"start_date"`
}

type OperationCodeInput struct {
	Code string `json:"special_operation_code"`
}

// SignatureRequest is what the e-signature adapter needs to send a contract.
type SignatureRequest struct {
	PolicyID         string    `json:"policy_id"`
	SignerName       string    `json:"signer_name"`
	SignerEmail      string    `json:"signer_email"`
	ContractualTerms string    `json:"contractual_terms"`
	IPID             string    `json:"ipid"`
	RequestedAt      time.Time `json:"requested_at"`
}

// Certificate is the data printed on an insurance certificate.
type Certificate struct {
	PolicyID       string    `json:"policy_id"`
	PartnerCode    string    `json:"partner_code"`
	HolderName     string    `json:"holder_name"`
	Address        *Address  `json:"address,omitempty"`
	ProductCode    string    `json:"product_code"`
	ProductVersion string    `json:"product_version"`
	Covers         []string  `json:"covers"`
	StartDate      time.Time `json:"start_date"`
	TermEndDate    time.Time `json:"term_end_date"`
	Premium        Amount    `json:"premium"`
	Currency       string    `json:"currency"`
	IssuedAt       time.Time `json:"issued_at"`
}

type PolicyRepo interface {
	Get(ctx context.Context, id string) (Policy, error)
	Save(ctx context.Context, p Policy) (Policy, error)
	Update(ctx context.Context, p Policy) error
	IsIDAvailable(ctx context.Context, id string) (bool, error)
	UpdateAfterPayment(ctx context.Context, id string, paidAt, subscribedAt time.Time, status PolicyStatus) error
	UpdateAfterSignature(ctx context.Context, id string, signedAt time.Time, status PolicyStatus) error
}

type PolicyService interface {
	// CreateFromQuote converts a quote into an initiated policy
	CreateFromQuote(ctx context.Context, in PolicyInput) (Policy, error)

	// Get retrieves a policy by ID
	Get(ctx context.Context, id string) (Policy, error)

	// ApplySpecialOperationCode re-prices an initiated policy with a promotional code
	ApplySpecialOperationCode(ctx context.Context, id string, in OperationCodeInput) (Policy, error)

	// ChangeStartDate moves the start date of an initiated policy
	ChangeStartDate(ctx context.Context, id string, in StartDateInput) (Policy, error)

	// CreateSignatureRequest asks the e-signature provider to send the contract
	CreateSignatureRequest(ctx context.Context, id string) (SignatureRequest, error)

	// RecordSignature is called once the policy holder has signed
	RecordSignature(ctx context.Context, id string) (Policy, error)

	// RecordPayment is called once the first payment succeeded
	RecordPayment(ctx context.Context, id string) (Policy, error)

	// GenerateCertificate builds the certificate of an applicable policy
	GenerateCertificate(ctx context.Context, id string) (Certificate, error)

	// Cancel terminates a policy
	Cancel(ctx context.Context, id string) (Policy, error)
}

var (
	ErrPolicyNotFound     = fmt.Errorf("%w: policy not found", ErrNotFound)
	ErrPolicyExists       = fmt.Errorf("%w: policy already exists", ErrConflict)
	ErrPolicyIDExhausted  = fmt.Errorf("%w: no policy id available", ErrConflict)
	ErrPolicyHolderNeeded = fmt.Errorf("%w: quote has no policy holder", ErrValidation)
)
