package services

import (
	"context"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// ReportingSvcFacade derives balances from the ledger. The reporting
// window is always an explicit parameter; there is no ambient "current
// month" state.
type ReportingSvcFacade interface {
	// MonthlyReport computes every envelope's balance plus the
	// unallocated pool for the window.
	MonthlyReport(ctx context.Context, window domain.ReportingWindow) (*domain.BudgetReport, error)
}
