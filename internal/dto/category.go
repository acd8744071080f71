package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// ScheduledChangeRequest is one dated target override on a category.
type ScheduledChangeRequest struct {
	EffectiveDate time.Time       `json:"effectiveDate" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"decimal_nonneg"`
}

// CreateCategoryRequest is the payload for creating an envelope.
type CreateCategoryRequest struct {
	Name               string                   `json:"name" binding:"required"`
	Type               domain.CategoryType      `json:"type" binding:"required,oneof=EXPENSE INCOME INVESTMENT"`
	MonthlyBudget      decimal.Decimal          `json:"monthlyBudget" binding:"decimal_nonneg"`
	Rollover           decimal.Decimal          `json:"rollover"`
	Schedule           []ScheduledChangeRequest `json:"schedule,omitempty" binding:"omitempty,dive"`
	LinkedPaymentIndex *int                     `json:"linkedPaymentIndex,omitempty" binding:"omitempty,min=1"`
	Color              string                   `json:"color,omitempty"`
	StartDate          *time.Time               `json:"startDate,omitempty"`
}

// UpdateCategoryRequest carries optional whole-field replacements for a
// category. Nil fields are left untouched.
type UpdateCategoryRequest struct {
	Name               *string                   `json:"name,omitempty"`
	MonthlyBudget      *decimal.Decimal          `json:"monthlyBudget,omitempty"`
	Rollover           *decimal.Decimal          `json:"rollover,omitempty"`
	Schedule           *[]ScheduledChangeRequest `json:"schedule,omitempty" binding:"omitempty,dive"`
	LinkedPaymentIndex *int                      `json:"linkedPaymentIndex,omitempty" binding:"omitempty,min=1"`
	ClearLinkedPayment bool                      `json:"clearLinkedPayment,omitempty"`
	Color              *string                   `json:"color,omitempty"`
}

// ListCategoriesResponse wraps the category collection.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}
