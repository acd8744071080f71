package mapping

import (
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	"github.com/penwald/envelope_budget_app/internal/models"
)

// ToModelIncomeSource converts a domain IncomeSource to a model IncomeSource.
func ToModelIncomeSource(d domain.IncomeSource) models.IncomeSource {
	rules := make([]models.AllocationRule, len(d.Rules))
	for i, r := range d.Rules {
		rules[i] = models.AllocationRule{
			PaymentIndex: r.PaymentIndex,
			Percentage:   r.Percentage,
			Amount:       r.Amount,
			Label:        r.Label,
			Uncertain:    r.Uncertain,
			Note:         r.Note,
		}
	}
	return models.IncomeSource{
		IncomeSourceID: d.IncomeSourceID,
		Currency:       d.Currency,
		Frequency:      models.PayFrequency(d.Frequency),
		Rules:          rules,
		OpeningBalance: d.OpeningBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncomeSource converts a model IncomeSource to a domain IncomeSource.
func ToDomainIncomeSource(m models.IncomeSource) domain.IncomeSource {
	rules := make([]domain.AllocationRule, len(m.Rules))
	for i, r := range m.Rules {
		rules[i] = domain.AllocationRule{
			PaymentIndex: r.PaymentIndex,
			Percentage:   r.Percentage,
			Amount:       r.Amount,
			Label:        r.Label,
			Uncertain:    r.Uncertain,
			Note:         r.Note,
		}
	}
	return domain.IncomeSource{
		IncomeSourceID: m.IncomeSourceID,
		Currency:       m.Currency,
		Frequency:      domain.PayFrequency(m.Frequency),
		Rules:          rules,
		OpeningBalance: m.OpeningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
