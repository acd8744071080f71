package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryType defines what kind of envelope a category is.
type CategoryType string

const (
	CategoryExpense    CategoryType = "EXPENSE"
	CategoryIncome     CategoryType = "INCOME"
	CategoryInvestment CategoryType = "INVESTMENT"
)

// ScheduledChange is a dated override of a category's monthly target.
type ScheduledChange struct {
	EffectiveDate time.Time       `json:"effectiveDate"`
	Amount        decimal.Decimal `json:"amount"`
}

// Category is the persisted shape of an envelope.
type Category struct {
	CategoryID         string            `json:"categoryID"`
	Name               string            `json:"name"`
	Type               CategoryType      `json:"type"`
	MonthlyBudget      decimal.Decimal   `json:"monthlyBudget"`
	Rollover           decimal.Decimal   `json:"rollover"`
	Schedule           []ScheduledChange `json:"schedule,omitempty"`
	LinkedPaymentIndex *int              `json:"linkedPaymentIndex,omitempty"`
	Color              string            `json:"color,omitempty"`
	StartDate          time.Time         `json:"startDate"`
	AuditFields
}
