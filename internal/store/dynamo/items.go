package dynamo

import (
	"fmt"
	"sort"
	"time"

	"github.com/MrKriegler/go-home-insurance/internal/core"
)

// Amounts are kept as decimal strings, timestamps as RFC3339 strings.

type PricingEntryItem struct {
	RoomCount         int    `dynamodbav:"room_count"`
	MonthlyPrice      string `dynamodbav:"monthly_price"`
	DefaultDeductible string `dynamodbav:"default_deductible"`
	DefaultCeiling    string `dynamodbav:"default_ceiling"`
}

type PartnerItem struct {
	Code             string             `dynamodbav:"code"`
	Trigram          string             `dynamodbav:"trigram"`
	Currency         string             `dynamodbav:"currency"`
	PricingMatrix    []PricingEntryItem `dynamodbav:"pricing_matrix"`
	SimplifiedCovers []string           `dynamodbav:"simplified_covers"`
	ProductCode      string             `dynamodbav:"product_code"`
	ProductVersion   string             `dynamodbav:"product_version"`
	ContractualTerms string             `dynamodbav:"contractual_terms"`
	IPID             string             `dynamodbav:"ipid"`
	OperationCodes   []string           `dynamodbav:"operation_codes"`
	Questions        core.QuestionSet   `dynamodbav:"questions"`
}

func (i PartnerItem) ToCore() (core.Partner, error) {
	matrix := make(map[int]core.PricingEntry, len(i.PricingMatrix))
	for _, e := range i.PricingMatrix {
		price, err := core.ParseAmount(e.MonthlyPrice)
		if err != nil {
			return core.Partner{}, fmt.Errorf("partner %s: %w", i.Code, err)
		}
		deductible, err := core.ParseAmount(e.DefaultDeductible)
		if err != nil {
			return core.Partner{}, fmt.Errorf("partner %s: %w", i.Code, err)
		}
		ceiling, err := core.ParseAmount(e.DefaultCeiling)
		if err != nil {
			return core.Partner{}, fmt.Errorf("partner %s: %w", i.Code, err)
		}
		matrix[e.RoomCount] = core.PricingEntry{
			MonthlyPrice:      price,
			DefaultDeductible: deductible,
			DefaultCeiling:    ceiling,
		}
	}

	return core.Partner{
		Code:     i.Code,
		Trigram:  i.Trigram,
		Currency: i.Currency,
		Offer: core.Offer{
			PricingMatrix:    matrix,
			SimplifiedCovers: i.SimplifiedCovers,
			ProductCode:      i.ProductCode,
			ProductVersion:   i.ProductVersion,
			ContractualTerms: i.ContractualTerms,
			IPID:             i.IPID,
			OperationCodes:   operationCodes(i.OperationCodes),
		},
		Questions: i.Questions,
	}, nil
}

func partnerItemFromCore(p core.Partner) PartnerItem {
	matrix := make([]PricingEntryItem, 0, len(p.Offer.PricingMatrix))
	for rooms, e := range p.Offer.PricingMatrix {
		matrix = append(matrix, PricingEntryItem{
			RoomCount:         rooms,
			MonthlyPrice:      e.MonthlyPrice.String(),
			DefaultDeductible: e.DefaultDeductible.String(),
			DefaultCeiling:    e.DefaultCeiling.String(),
		})
	}
	sort.Slice(matrix, func(a, b int) bool { return matrix[a].RoomCount < matrix[b].RoomCount })

	codes := make([]string, len(p.Offer.OperationCodes))
	for i, c := range p.Offer.OperationCodes {
		codes[i] = string(c)
	}

	return PartnerItem{
		Code:             p.Code,
		Trigram:          p.Trigram,
		Currency:         p.Currency,
		PricingMatrix:    matrix,
		SimplifiedCovers: p.Offer.SimplifiedCovers,
		ProductCode:      p.Offer.ProductCode,
		ProductVersion:   p.Offer.ProductVersion,
		ContractualTerms: p.Offer.ContractualTerms,
		IPID:             p.Offer.IPID,
		OperationCodes:   codes,
		Questions:        p.Questions,
	}
}

func operationCodes(raw []string) []core.OperationCode {
	codes := make([]core.OperationCode, len(raw))
	for i, c := range raw {
		codes[i] = core.OperationCode(c)
	}
	return codes
}

// TermsItem holds the commercial fields shared by quotes and policies.
type TermsItem struct {
	MonthlyPrice                  string   `dynamodbav:"monthly_price"`
	DefaultDeductible             string   `dynamodbav:"default_deductible"`
	DefaultCeiling                string   `dynamodbav:"default_ceiling"`
	Currency                      string   `dynamodbav:"currency"`
	SimplifiedCovers              []string `dynamodbav:"simplified_covers"`
	ProductCode                   string   `dynamodbav:"product_code"`
	ProductVersion                string   `dynamodbav:"product_version"`
	ContractualTerms              string   `dynamodbav:"contractual_terms"`
	IPID                          string   `dynamodbav:"ipid"`
	Premium                       string   `dynamodbav:"premium"`
	NbMonthsDue                   int      `dynamodbav:"nb_months_due"`
	StartDate                     string   `dynamodbav:"start_date,omitempty"`
	TermStartDate                 string   `dynamodbav:"term_start_date,omitempty"`
	TermEndDate                   string   `dynamodbav:"term_end_date,omitempty"`
	SpecialOperationCode          string   `dynamodbav:"special_operation_code,omitempty"`
	SpecialOperationCodeAppliedAt string   `dynamodbav:"special_operation_code_applied_at,omitempty"`
}

func (i TermsItem) ToCore() (core.Terms, error) {
	price, err := core.ParseAmount(i.MonthlyPrice)
	if err != nil {
		return core.Terms{}, err
	}
	deductible, err := core.ParseAmount(i.DefaultDeductible)
	if err != nil {
		return core.Terms{}, err
	}
	ceiling, err := core.ParseAmount(i.DefaultCeiling)
	if err != nil {
		return core.Terms{}, err
	}
	premium, err := core.ParseAmount(i.Premium)
	if err != nil {
		return core.Terms{}, err
	}
	return core.Terms{
		Insurance: core.Insurance{
			Estimate: core.InsuranceEstimate{
				MonthlyPrice:      price,
				DefaultDeductible: deductible,
				DefaultCeiling:    ceiling,
				Currency:          i.Currency,
			},
			SimplifiedCovers: i.SimplifiedCovers,
			ProductCode:      i.ProductCode,
			ProductVersion:   i.ProductVersion,
			ContractualTerms: i.ContractualTerms,
			IPID:             i.IPID,
		},
		Premium:                       premium,
		NbMonthsDue:                   i.NbMonthsDue,
		StartDate:                     parseTime(i.StartDate),
		TermStartDate:                 parseTime(i.TermStartDate),
		TermEndDate:                   parseTime(i.TermEndDate),
		SpecialOperationCode:          core.OperationCode(i.SpecialOperationCode),
		SpecialOperationCodeAppliedAt: parseTime(i.SpecialOperationCodeAppliedAt),
	}, nil
}

func termsItemFromCore(t core.Terms) TermsItem {
	est := t.Insurance.Estimate
	return TermsItem{
		MonthlyPrice:                  est.MonthlyPrice.String(),
		DefaultDeductible:             est.DefaultDeductible.String(),
		DefaultCeiling:                est.DefaultCeiling.String(),
		Currency:                      est.Currency,
		SimplifiedCovers:              t.Insurance.SimplifiedCovers,
		ProductCode:                   t.Insurance.ProductCode,
		ProductVersion:                t.Insurance.ProductVersion,
		ContractualTerms:              t.Insurance.ContractualTerms,
		IPID:                          t.Insurance.IPID,
		Premium:                       t.Premium.String(),
		NbMonthsDue:                   t.NbMonthsDue,
		StartDate:                     formatTime(t.StartDate),
		TermStartDate:                 formatTime(t.TermStartDate),
		TermEndDate:                   formatTime(t.TermEndDate),
		SpecialOperationCode:          string(t.SpecialOperationCode),
		SpecialOperationCodeAppliedAt: formatTime(t.SpecialOperationCodeAppliedAt),
	}
}

type QuoteItem struct {
	ID           string             `dynamodbav:"id"`
	PartnerCode  string             `dynamodbav:"partner_code"`
	Risk         core.Risk          `dynamodbav:"risk"`
	PolicyHolder *core.PolicyHolder `dynamodbav:"policy_holder,omitempty"`
	Terms        TermsItem          `dynamodbav:"terms"`
	CreatedAt    string             `dynamodbav:"created_at"`
	UpdatedAt    string             `dynamodbav:"updated_at"`
}

func (i QuoteItem) ToCore() (core.Quote, error) {
	terms, err := i.Terms.ToCore()
	if err != nil {
		return core.Quote{}, fmt.Errorf("quote %s: %w", i.ID, err)
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, i.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, i.UpdatedAt)
	return core.Quote{
		ID:           i.ID,
		PartnerCode:  i.PartnerCode,
		Risk:         i.Risk,
		PolicyHolder: i.PolicyHolder,
		Terms:        terms,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func quoteItemFromCore(q core.Quote) QuoteItem {
	return QuoteItem{
		ID:           q.ID,
		PartnerCode:  q.PartnerCode,
		Risk:         q.Risk,
		PolicyHolder: q.PolicyHolder,
		Terms:        termsItemFromCore(q.Terms),
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

type PolicyItem struct {
	ID               string            `dynamodbav:"id"`
	PartnerCode      string            `dynamodbav:"partner_code"`
	QuoteID          string            `dynamodbav:"quote_id"`
	Risk             core.Risk         `dynamodbav:"risk"`
	PolicyHolder     core.PolicyHolder `dynamodbav:"policy_holder"`
	Terms            TermsItem         `dynamodbav:"terms"`
	Status           string            `dynamodbav:"status"`
	EmailValidatedAt string            `dynamodbav:"email_validated_at,omitempty"`
	SignedAt         string            `dynamodbav:"signed_at,omitempty"`
	PaidAt           string            `dynamodbav:"paid_at,omitempty"`
	SubscribedAt     string            `dynamodbav:"subscribed_at,omitempty"`
	CancelledAt      string            `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
}

func (i PolicyItem) ToCore() (core.Policy, error) {
	terms, err := i.Terms.ToCore()
	if err != nil {
		return core.Policy{}, fmt.Errorf("policy %s: %w", i.ID, err)
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, i.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, i.UpdatedAt)
	return core.Policy{
		ID:               i.ID,
		PartnerCode:      i.PartnerCode,
		QuoteID:          i.QuoteID,
		Risk:             i.Risk,
		PolicyHolder:     i.PolicyHolder,
		Terms:            terms,
		Status:           core.PolicyStatus(i.Status),
		EmailValidatedAt: parseTime(i.EmailValidatedAt),
		SignedAt:         parseTime(i.SignedAt),
		PaidAt:           parseTime(i.PaidAt),
		SubscribedAt:     parseTime(i.SubscribedAt),
		CancelledAt:      parseTime(i.CancelledAt),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

func policyItemFromCore(p core.Policy) PolicyItem {
	return PolicyItem{
		ID:               p.ID,
		PartnerCode:      p.PartnerCode,
		QuoteID:          p.QuoteID,
		Risk:             p.Risk,
		PolicyHolder:     p.PolicyHolder,
		Terms:            termsItemFromCore(p.Terms),
		Status:           string(p.Status),
		EmailValidatedAt: formatTime(p.EmailValidatedAt),
		SignedAt:         formatTime(p.SignedAt),
		PaidAt:           formatTime(p.PaidAt),
		SubscribedAt:     formatTime(p.SubscribedAt),
		CancelledAt:      formatTime(p.CancelledAt),
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
