package mapping

import (
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	"github.com/penwald/envelope_budget_app/internal/models"
)

// ToModelCategory converts a domain Category to a model Category.
func ToModelCategory(d domain.Category) models.Category {
	schedule := make([]models.ScheduledChange, len(d.Schedule))
	for i, c := range d.Schedule {
		schedule[i] = models.ScheduledChange{EffectiveDate: c.EffectiveDate, Amount: c.Amount}
	}
	if len(schedule) == 0 {
		schedule = nil
	}
	return models.Category{
		CategoryID:         d.CategoryID,
		Name:               d.Name,
		Type:               models.CategoryType(d.Type),
		MonthlyBudget:      d.MonthlyBudget,
		Rollover:           d.Rollover,
		Schedule:           schedule,
		LinkedPaymentIndex: d.LinkedPaymentIndex,
		Color:              d.Color,
		StartDate:          d.StartDate,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	schedule := make([]domain.ScheduledChange, len(m.Schedule))
	for i, c := range m.Schedule {
		schedule[i] = domain.ScheduledChange{EffectiveDate: c.EffectiveDate, Amount: c.Amount}
	}
	if len(schedule) == 0 {
		schedule = nil
	}
	return domain.Category{
		CategoryID:         m.CategoryID,
		Name:               m.Name,
		Type:               domain.CategoryType(m.Type),
		MonthlyBudget:      m.MonthlyBudget,
		Rollover:           m.Rollover,
		Schedule:           schedule,
		LinkedPaymentIndex: m.LinkedPaymentIndex,
		Color:              m.Color,
		StartDate:          m.StartDate,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
