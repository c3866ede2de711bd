package core

import "time"

// ApplyOperationCode sets months due and premium from a promotional code.
// BLANK is always accepted and clears any previously applied code; any other
// code must be in the partner's allowed list.
func ApplyOperationCode(t Terms, partnerCode string, allowed []OperationCode, raw string, now time.Time) (Terms, error) {
	// 1) Resolve
	code := ParseOperationCode(raw)

	// 2) Check against the partner's codes plus BLANK
	if !isOperationCodeAllowed(code, allowed) {
		return Terms{}, &OperationCodeNotApplicableError{Code: raw, PartnerCode: partnerCode}
	}

	// 3) Duration and premium
	months, ok := code.MonthsDue()
	if !ok {
		return Terms{}, &OperationCodeNotApplicableError{Code: raw, PartnerCode: partnerCode}
	}
	t.NbMonthsDue = months
	t.Premium = t.Insurance.Estimate.MonthlyPrice.Times(months)

	// 4) Keep the term end consistent with the new duration
	t = refreshTermEndDate(t)

	// 5) Record or clear the code
	if code.IsBlank() {
		t.SpecialOperationCode = ""
		t.SpecialOperationCodeAppliedAt = nil
		return t, nil
	}
	appliedAt := now.UTC()
	t.SpecialOperationCode = code
	t.SpecialOperationCodeAppliedAt = &appliedAt
	return t, nil
}

func isOperationCodeAllowed(code OperationCode, allowed []OperationCode) bool {
	if code == OperationCodeUnknown {
		return false
	}
	if code.IsBlank() {
		return true
	}
	for _, a := range allowed {
		if ParseOperationCode(string(a)) == code {
			return true
		}
	}
	return false
}
