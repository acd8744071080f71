package services

import (
	"context"
	"fmt"

	"github.com/penwald/envelope_budget_app/internal/core/budget"
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	portsrepo "github.com/penwald/envelope_budget_app/internal/core/ports/repositories"
	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
)

// reportingService derives envelope balances for a reporting window.
// Everything is recomputed from the ledger on each call; there is no
// cached balance state to invalidate.
type reportingService struct {
	repo portsrepo.BudgetRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(repo portsrepo.BudgetRepository) portssvc.ReportingSvcFacade {
	return &reportingService{repo: repo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) MonthlyReport(ctx context.Context, window domain.ReportingWindow) (*domain.BudgetReport, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget document: %w", err)
	}

	report := &domain.BudgetReport{
		Window:      window,
		Categories:  make([]domain.CategoryBalance, 0, len(doc.Categories)),
		Unallocated: budget.UnallocatedPool(doc, window.End),
	}
	for _, cat := range doc.Categories {
		report.Categories = append(report.Categories, budget.CategoryBalanceFor(cat, doc.Transactions, window))
	}
	return report, nil
}
