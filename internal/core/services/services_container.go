package services

import (
	portsrepo "github.com/penwald/envelope_budget_app/internal/core/ports/repositories"
	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. classifier may be nil when no external
// categorization collaborator is configured; imports then skip
// auto-categorization.
func NewServiceContainer(repo portsrepo.BudgetRepository, classifier portssvc.Classifier) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Category:   NewCategoryService(repo),
		Ledger:     NewLedgerService(repo),
		Allocation: NewAllocationService(repo),
		Funding:    NewFundingService(repo),
		Import:     NewImportService(repo, classifier),
		Reporting:  NewReportingService(repo),
	}
}
