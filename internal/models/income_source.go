package models

import "github.com/shopspring/decimal"

// PayFrequency determines an income source's allocation slots per month.
type PayFrequency string

const (
	Monthly     PayFrequency = "MONTHLY"
	SemiMonthly PayFrequency = "SEMI_MONTHLY"
	Weekly      PayFrequency = "WEEKLY"
)

// AllocationRule is one payment slot's persisted distribution rule.
type AllocationRule struct {
	PaymentIndex int             `json:"paymentIndex"`
	Percentage   decimal.Decimal `json:"percentage"`
	Amount       decimal.Decimal `json:"amount"`
	Label        string          `json:"label"`
	Uncertain    bool            `json:"uncertain"`
	Note         string          `json:"note,omitempty"`
}

// IncomeSource is the persisted distribution policy.
type IncomeSource struct {
	IncomeSourceID string           `json:"incomeSourceID"`
	Currency       string           `json:"currency"`
	Frequency      PayFrequency     `json:"frequency"`
	Rules          []AllocationRule `json:"rules"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	AuditFields
}
