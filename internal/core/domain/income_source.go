package domain

import "github.com/shopspring/decimal"

// PayFrequency determines how many allocation slots an income source has
// per month.
type PayFrequency string

const (
	Monthly     PayFrequency = "MONTHLY"
	SemiMonthly PayFrequency = "SEMI_MONTHLY"
	Weekly      PayFrequency = "WEEKLY"
)

// SlotCount returns the expected number of allocation slots per month.
func (f PayFrequency) SlotCount() int {
	switch f {
	case SemiMonthly:
		return 2
	case Weekly:
		return 4
	default:
		return 1
	}
}

// AllocationRule describes how one payment slot of an income source is
// split into envelopes. Percentages across all rules should sum to 100 but
// this is not hard-enforced; the allocation engine tolerates deviation and
// scales against the pool instead.
type AllocationRule struct {
	PaymentIndex int             `json:"paymentIndex"` // 1-based slot within the month
	Percentage   decimal.Decimal `json:"percentage"`   // Share of the slot, 0..100
	Amount       decimal.Decimal `json:"amount"`       // Computed absolute amount for display
	Label        string          `json:"label"`        // Human label, e.g. "1st paycheck"
	Uncertain    bool            `json:"uncertain"`    // Marks an estimated amount
	Note         string          `json:"note,omitempty"`
}

// IncomeSource holds the distribution policy for incoming pay. A budget
// document has at most one active income source.
type IncomeSource struct {
	IncomeSourceID string           `json:"incomeSourceID"` // Primary Key (e.g., UUID)
	Currency       string           `json:"currency"`       // ISO 4217 code, informational
	Frequency      PayFrequency     `json:"frequency"`
	Rules          []AllocationRule `json:"rules"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"` // Starting balance of the unallocated pool
	AuditFields
}

// RuleForIndex returns the first rule with the given 1-based payment index,
// or nil when none exists.
func (s IncomeSource) RuleForIndex(paymentIndex int) *AllocationRule {
	for i := range s.Rules {
		if s.Rules[i].PaymentIndex == paymentIndex {
			return &s.Rules[i]
		}
	}
	return nil
}
