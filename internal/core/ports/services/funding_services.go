package services

import (
	"context"

	"github.com/penwald/envelope_budget_app/internal/dto"
)

// FundingSvcFacade reconciles one-time expenses against source envelopes.
type FundingSvcFacade interface {
	// FundExpense replaces the funding configuration of the target
	// transaction wholesale. Insufficient funds reject the request
	// before any mutation.
	FundExpense(ctx context.Context, transactionID string, req dto.FundRequest) (*dto.FundResponse, error)
}
