package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Address struct {
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

type Property struct {
	RoomCount int           `json:"room_count"`
	Type      PropertyType  `json:"type"`
	Occupancy OccupancyType `json:"occupancy"`
	Address   *Address      `json:"address,omitempty"`
}

type Person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Risk is the insured subject matter. OtherPeople are the roommates.
type Risk struct {
	Property    Property `json:"property"`
	Person      *Person  `json:"person,omitempty"`
	OtherPeople []Person `json:"other_people,omitempty"`
}

// PolicyHolder is the contact who will sign the policy.
type PolicyHolder struct {
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	EmailValidatedAt *time.Time `json:"email_validated_at,omitempty"`
}

func (h PolicyHolder) FullName() string {
	return strings.TrimSpace(h.FirstName + " " + h.LastName)
}

// Quote is a mutable pricing proposal. It is never signed itself; a policy
// is created from it.
type Quote struct {
	ID           string        `json:"id"`
	PartnerCode  string        `json:"partner_code"`
	Risk         Risk          `json:"risk"`
	PolicyHolder *PolicyHolder `json:"policy_holder,omitempty"`
	Terms
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuoteInput struct {
	PartnerCode          string        `json:"partner_code"`
	Risk                 Risk          `json:"risk"`
	PolicyHolder         *PolicyHolder `json:"policy_holder,omitempty"`
	SpecialOperationCode *string       `json:"special_operation_code,omitempty"`
	StartDate            *time.Time    `json:"start_date,omitempty"`
}

type QuoteRepo interface {
	Get(ctx context.Context, id string) (Quote, error)
	Save(ctx context.Context, q Quote) error
	Update(ctx context.Context, q Quote) (Quote, error)
}

type QuoteService interface {
	Create(ctx context.Context, in QuoteInput) (Quote, error)
	Get(ctx context.Context, id string) (Quote, error)
	Update(ctx context.Context, id string, in QuoteInput) (Quote, error)

	// ValidateEmail stamps the policy holder's email as verified
	ValidateEmail(ctx context.Context, id string) (Quote, error)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (in QuoteInput) Validate() error {
	if in.PartnerCode == "" {
		return fmt.Errorf("%w: missing partner code", ErrValidation)
	}
	if err := in.Risk.Validate(); err != nil {
		return err
	}
	if in.PolicyHolder != nil {
		return in.PolicyHolder.Validate()
	}
	return nil
}

func (r Risk) Validate() error {
	if r.Property.RoomCount <= 0 {
		return fmt.Errorf("%w: room count must be > 0", ErrValidation)
	}
	if r.Property.Type == "" {
		return fmt.Errorf("%w: missing property type", ErrValidation)
	}
	if r.Property.Occupancy == "" {
		return fmt.Errorf("%w: missing occupancy type", ErrValidation)
	}
	for i, p := range r.OtherPeople {
		if p.FirstName == "" || p.LastName == "" {
			return fmt.Errorf("%w: other person %d needs a first and last name", ErrValidation, i+1)
		}
	}
	return nil
}

func (h PolicyHolder) Validate() error {
	if h.FirstName == "" {
		return fmt.Errorf("%w: policy holder first name is required", ErrValidation)
	}
	if h.LastName == "" {
		return fmt.Errorf("%w: policy holder last name is required", ErrValidation)
	}
	if !emailRegex.MatchString(h.Email) {
		return fmt.Errorf("%w: invalid policy holder email", ErrValidation)
	}
	return nil
}

var (
	ErrQuoteNotFound = fmt.Errorf("%w: quote not found", ErrNotFound)
)
