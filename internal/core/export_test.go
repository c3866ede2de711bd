package core

import "time"

// SetQuoteClock and friends let the external test package pin time and ids.

func SetQuoteClock(svc QuoteService, clock func() time.Time) {
	svc.(*quoteService).clock = clock
}

func SetQuoteIDs(svc QuoteService, gen func() string) {
	svc.(*quoteService).newID = gen
}

func SetPolicyClock(svc PolicyService, clock func() time.Time) {
	svc.(*policyService).clock = clock
}

func SetPolicyIDs(svc PolicyService, gen func(trigram, productCode string) string) {
	svc.(*policyService).newID = gen
}
