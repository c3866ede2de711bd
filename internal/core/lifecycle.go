package core

import "fmt"

type PolicyStatus string

const (
	PolicyStatusInitiated  PolicyStatus = "INITIATED"
	PolicyStatusSigned     PolicyStatus = "SIGNED"
	PolicyStatusApplicable PolicyStatus = "APPLICABLE"
	PolicyStatusCancelled  PolicyStatus = "CANCELLED"
)

var (
	ErrPolicyNotUpdatable             = fmt.Errorf("%w: policy is signed, commercial terms are frozen", ErrInvalidState)
	ErrPolicyCanceled                 = fmt.Errorf("%w: policy is cancelled", ErrInvalidState)
	ErrPolicyAlreadySigned            = fmt.Errorf("%w: policy already signed", ErrInvalidState)
	ErrPolicyAlreadyPaid              = fmt.Errorf("%w: policy already paid", ErrInvalidState)
	ErrPolicyNotSigned                = fmt.Errorf("%w: policy must be signed first", ErrInvalidState)
	ErrForbiddenCertificateGeneration = fmt.Errorf("%w: certificate requires an applicable policy", ErrForbidden)
)

// CanTransitionTo checks if a status transition is valid.
func (s PolicyStatus) CanTransitionTo(next PolicyStatus) bool {
	transitions := map[PolicyStatus][]PolicyStatus{
		PolicyStatusInitiated:  {PolicyStatusSigned, PolicyStatusCancelled},
		PolicyStatusSigned:     {PolicyStatusApplicable, PolicyStatusCancelled},
		PolicyStatusApplicable: {PolicyStatusCancelled},
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s PolicyStatus) IsValid() bool {
	switch s {
	case PolicyStatusInitiated, PolicyStatusSigned, PolicyStatusApplicable, PolicyStatusCancelled:
		return true
	}
	return false
}

// isSignedOrLater is true for Signed and Applicable.
func (s PolicyStatus) isSignedOrLater() bool {
	return s == PolicyStatusSigned || s == PolicyStatusApplicable
}

// Guards. Each one is checked before any mutation of the policy.

// CheckTermsUpdatable guards premium, months due, dates and operation code.
func CheckTermsUpdatable(p Policy) error {
	switch {
	case p.Status == PolicyStatusCancelled:
		return fmt.Errorf("%w: %s", ErrPolicyCanceled, p.ID)
	case p.Status.isSignedOrLater():
		return fmt.Errorf("%w: %s is %s", ErrPolicyNotUpdatable, p.ID, p.Status)
	}
	return nil
}

// CheckCertificateGeneration requires exactly Applicable.
func CheckCertificateGeneration(p Policy) error {
	switch p.Status {
	case PolicyStatusApplicable:
		return nil
	case PolicyStatusCancelled:
		return fmt.Errorf("%w: %s", ErrPolicyCanceled, p.ID)
	default:
		return fmt.Errorf("%w: %s is %s", ErrForbiddenCertificateGeneration, p.ID, p.Status)
	}
}

func CheckSignatureRequest(p Policy) error {
	switch {
	case p.Status == PolicyStatusCancelled:
		return fmt.Errorf("%w: %s", ErrPolicyCanceled, p.ID)
	case p.Status.isSignedOrLater():
		return fmt.Errorf("%w: %s", ErrPolicyAlreadySigned, p.ID)
	}
	return nil
}

// CheckSignatureRecording accepts only Initiated policies.
func CheckSignatureRecording(p Policy) error {
	return CheckSignatureRequest(p)
}

// CheckPaymentRecording accepts only Signed policies: the state graph has no
// Initiated -> Applicable edge.
func CheckPaymentRecording(p Policy) error {
	switch p.Status {
	case PolicyStatusSigned:
		return nil
	case PolicyStatusApplicable:
		return fmt.Errorf("%w: %s", ErrPolicyAlreadyPaid, p.ID)
	case PolicyStatusCancelled:
		return fmt.Errorf("%w: %s", ErrPolicyCanceled, p.ID)
	default:
		return fmt.Errorf("%w: %s is %s", ErrPolicyNotSigned, p.ID, p.Status)
	}
}

func CheckCancellation(p Policy) error {
	if p.Status == PolicyStatusCancelled {
		return fmt.Errorf("%w: %s", ErrPolicyCanceled, p.ID)
	}
	return nil
}
