package dto

import (
	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// FundRequest applies a funding configuration to a one-time expense: each
// entry pulls the given amount out of a source envelope. Re-funding fully
// replaces the previous configuration (clean slate), never patches it.
type FundRequest struct {
	Sources map[string]decimal.Decimal `json:"sources" binding:"required"` // categoryID -> amount
}

// FundResponse describes the applied funding mutation.
type FundResponse struct {
	UpdatedTarget        domain.Transaction   `json:"updatedTarget"`
	NewChildTransactions []domain.Transaction `json:"newChildTransactions"`
	RemovedIDs           []string             `json:"removedIDs"`
	PoolShortfall        decimal.Decimal      `json:"poolShortfall"` // Portion implicitly funded from the unallocated pool
}
