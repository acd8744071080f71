package mapping

import (
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	"github.com/penwald/envelope_budget_app/internal/models"
)

// ToModelDocument converts a domain BudgetDocument to its persisted shape.
func ToModelDocument(d *domain.BudgetDocument) models.BudgetDocument {
	categories := make([]models.Category, len(d.Categories))
	for i, c := range d.Categories {
		categories[i] = ToModelCategory(c)
	}
	sources := make([]models.IncomeSource, len(d.IncomeSources))
	for i, s := range d.IncomeSources {
		sources[i] = ToModelIncomeSource(s)
	}
	return models.BudgetDocument{
		Categories:    categories,
		Transactions:  ToModelTransactionSlice(d.Transactions),
		IncomeSources: sources,
		LastUpdated:   d.LastUpdated,
	}
}

// ToDomainDocument converts a persisted BudgetDocument to the domain shape.
func ToDomainDocument(m models.BudgetDocument) *domain.BudgetDocument {
	categories := make([]domain.Category, len(m.Categories))
	for i, c := range m.Categories {
		categories[i] = ToDomainCategory(c)
	}
	sources := make([]domain.IncomeSource, len(m.IncomeSources))
	for i, s := range m.IncomeSources {
		sources[i] = ToDomainIncomeSource(s)
	}
	return &domain.BudgetDocument{
		Categories:    categories,
		Transactions:  ToDomainTransactionSlice(m.Transactions),
		IncomeSources: sources,
		LastUpdated:   m.LastUpdated,
	}
}
