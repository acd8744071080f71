// Package budget holds the pure allocation and balance-reconciliation
// engine. Nothing in this package performs I/O or reads the clock; every
// function is deterministic over its inputs so the services layer can call
// them any number of times for any historical or future window.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// EffectiveTarget resolves a category's monthly target as of a given date,
// accounting for scheduled future changes. Among scheduled changes with an
// effective date on or before asOf, the one with the latest date wins; ties
// resolve to the later list entry. With no applicable change the base
// monthly budget applies.
func EffectiveTarget(cat domain.Category, asOf time.Time) decimal.Decimal {
	day := domain.Day(asOf)

	found := false
	var winner domain.ScheduledChange
	for _, change := range cat.Schedule {
		if change.EffectiveDate.After(day) {
			continue
		}
		if !found || !change.EffectiveDate.Before(winner.EffectiveDate) {
			winner = change
			found = true
		}
	}
	if !found {
		return cat.MonthlyBudget
	}
	return winner.Amount
}
