package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// CreateTransactionRequest is the payload for a manual ledger entry.
type CreateTransactionRequest struct {
	Date        time.Time              `json:"date" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"decimal_nonneg"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	CategoryID  *string                `json:"categoryID,omitempty"`
}

// UpdateTransactionRequest replaces a transaction's user-editable fields
// wholesale. Identity and linkage fields are never mutated through edits.
type UpdateTransactionRequest struct {
	Date        time.Time              `json:"date" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"decimal_nonneg"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	CategoryID  *string                `json:"categoryID,omitempty"`
}

// CreateTransferRequest moves money between two envelopes as a linked pair
// of ledger entries.
type CreateTransferRequest struct {
	Date           time.Time       `json:"date" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"decimal_pos"`
	FromCategoryID *string         `json:"fromCategoryID,omitempty"`
	ToCategoryID   *string         `json:"toCategoryID,omitempty"`
}

// ListTransactionsResponse wraps a ledger listing. RootsOnly reporting
// views exclude derived child entries.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// DeleteTransactionResponse reports the full cascade of a delete: the
// requested id plus every child and transfer peer removed with it.
type DeleteTransactionResponse struct {
	RemovedIDs []string `json:"removedIDs"`
}
