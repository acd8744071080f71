package domain

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
// When several changes have effective dates on or before the as-of date,
// the one with the latest effective date wins.
type ScheduledChange struct {
	EffectiveDate time.Time       `json:"effectiveDate"` // Day granularity, UTC
	Amount        decimal.Decimal `json:"amount"`        // New monthly target from that date on
}

// Category represents a budget envelope within the core domain.
// This is the primary representation used by services.
type Category struct {
	CategoryID         string            `json:"categoryID"`    // Primary Key (e.g., UUID)
	Name               string            `json:"name"`          // User-defined name
	Type               CategoryType      `json:"type"`          // EXPENSE, INCOME or INVESTMENT
	MonthlyBudget      decimal.Decimal   `json:"monthlyBudget"` // Base target; never negative
	Rollover           decimal.Decimal   `json:"rollover"`      // Signed carried starting balance
	Schedule           []ScheduledChange `json:"schedule,omitempty"`
	LinkedPaymentIndex *int              `json:"linkedPaymentIndex,omitempty"` // 1-based allocation slot; overrides percentage splits
	Color              string            `json:"color,omitempty"`
	StartDate          time.Time         `json:"startDate"`
	AuditFields
}

// IsLinkedTo reports whether the category is exclusively tied to the given
// 1-based payment index.
func (c Category) IsLinkedTo(paymentIndex int) bool {
	return c.LinkedPaymentIndex != nil && *c.LinkedPaymentIndex == paymentIndex
}
