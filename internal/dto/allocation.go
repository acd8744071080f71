package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// AllocationRuleRequest is one payment slot's distribution rule.
type AllocationRuleRequest struct {
	PaymentIndex int             `json:"paymentIndex" binding:"required,min=1"`
	Percentage   decimal.Decimal `json:"percentage" binding:"decimal_pct"`
	Amount       decimal.Decimal `json:"amount" binding:"decimal_nonneg"`
	Label        string          `json:"label" binding:"required"`
	Uncertain    bool            `json:"uncertain"`
	Note         string          `json:"note,omitempty"`
}

// UpsertIncomeSourceRequest replaces the document's income source. The
// percentages across rules should sum to 100 but are deliberately not
// hard-enforced; the response surfaces the deviation instead.
type UpsertIncomeSourceRequest struct {
	Currency       string                  `json:"currency" binding:"required,len=3,uppercase"`
	Frequency      domain.PayFrequency     `json:"frequency" binding:"required,oneof=MONTHLY SEMI_MONTHLY WEEKLY"`
	Rules          []AllocationRuleRequest `json:"rules" binding:"required,dive"`
	OpeningBalance decimal.Decimal         `json:"openingBalance"`
}

// IncomeSourceResponse returns the stored source plus the percentage
// deviation from 100 for UI surfacing.
type IncomeSourceResponse struct {
	IncomeSource        domain.IncomeSource `json:"incomeSource"`
	PercentageDeviation decimal.Decimal     `json:"percentageDeviation"` // Sum of rule percentages minus 100
}

// DistributeRequest runs the allocation engine for one payment slot.
type DistributeRequest struct {
	PaymentIndex        int             `json:"paymentIndex" binding:"required,min=1"`
	PoolAmount          decimal.Decimal `json:"poolAmount" binding:"decimal_pos"`
	Date                time.Time       `json:"date" binding:"required"`
	ParentTransactionID *string         `json:"parentTransactionID,omitempty"` // The paycheck that funds this run
	Force               bool            `json:"force"`                         // Confirm despite a duplicate warning
}

// GapFillRequest tops up a prior period's deficits from the pool,
// ignoring percentage rules and linked categories.
type GapFillRequest struct {
	PoolAmount decimal.Decimal `json:"poolAmount" binding:"decimal_pos"`
	Month      time.Time       `json:"month" binding:"required"` // Any day inside the target month
	Force      bool            `json:"force"`
}

// DistributeResponse returns the emitted allocations. DuplicateWarning is
// advisory: the run was NOT applied when it is set without Force, because
// matching allocations already exist for the slot and period.
type DistributeResponse struct {
	Transactions     []domain.Transaction `json:"transactions"`
	DuplicateWarning bool                 `json:"duplicateWarning"`
	Applied          bool                 `json:"applied"`
}
