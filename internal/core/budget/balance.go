package budget

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// internalMarkers are the descriptions of legacy distribution bookkeeping
// entries. They are excluded from the unallocated pool so that replaying
// calculations over historical data stays stable.
var internalMarkers = map[string]struct{}{
	"monthly distribution": {},
	"distribution top-up":  {},
	"balance adjustment":   {},
}

// IsInternalMarker reports whether a description identifies a legacy
// system-generated bookkeeping entry.
func IsInternalMarker(description string) bool {
	_, ok := internalMarkers[strings.ToLower(strings.TrimSpace(description))]
	return ok
}

// CategoryBalanceFor replays the ledger for one category over a reporting
// window. Transactions referencing a category that no longer exists are
// simply not part of any category's aggregation; this function only ever
// sees the ids it is asked about, so dangling references cost nothing here.
func CategoryBalanceFor(cat domain.Category, txns []domain.Transaction, window domain.ReportingWindow) domain.CategoryBalance {
	carried := cat.Rollover
	income := decimal.Zero
	spent := decimal.Zero

	for _, txn := range txns {
		if !txn.InCategory(cat.CategoryID) {
			continue
		}
		switch {
		case txn.Date.Before(window.Start):
			if txn.Type == domain.Income {
				carried = carried.Add(txn.Amount)
			} else {
				carried = carried.Sub(txn.Amount)
			}
		case window.Contains(txn.Date):
			if txn.Type == domain.Income {
				income = income.Add(txn.Amount)
			} else {
				spent = spent.Add(txn.Amount)
			}
		}
	}

	totalAvailable := carried.Add(income)
	return domain.CategoryBalance{
		CategoryID:     cat.CategoryID,
		CategoryName:   cat.Name,
		Target:         EffectiveTarget(cat, window.Start),
		CarriedOver:    carried,
		Income:         income,
		Spent:          spent,
		TotalAvailable: totalAvailable,
		Remaining:      totalAvailable.Sub(spent),
	}
}

// UnallocatedPool computes the money not yet assigned to any envelope as of
// asOf: the income source's opening balance, plus gross income that has not
// been allocated out, minus income allocated into expense or investment
// envelopes, plus funding debits pulled back out of envelopes, minus
// expenses spent directly from the pool. Entries dated after asOf and
// legacy internal markers are ignored, as are entries whose category
// reference no longer resolves.
func UnallocatedPool(doc *domain.BudgetDocument, asOf time.Time) decimal.Decimal {
	pool := decimal.Zero
	if src := doc.ActiveIncomeSource(); src != nil {
		pool = src.OpeningBalance
	}

	day := domain.Day(asOf)
	for _, txn := range doc.Transactions {
		if txn.Date.After(day) || IsInternalMarker(txn.Description) {
			continue
		}

		var cat *domain.Category
		if txn.CategoryID != nil {
			cat = doc.CategoryByID(*txn.CategoryID)
			if cat == nil {
				continue // dangling reference, excluded from aggregation
			}
		}

		allocatable := cat != nil && (cat.Type == domain.CategoryExpense || cat.Type == domain.CategoryInvestment)
		switch {
		case txn.Type == domain.Income && !allocatable:
			// Gross income: straight into the pool.
			pool = pool.Add(txn.Amount)
		case txn.Type == domain.Income && allocatable:
			// Allocated out of the pool into an envelope.
			pool = pool.Sub(txn.Amount)
		case txn.Type == domain.Expense && cat == nil:
			// Spent directly from the pool.
			pool = pool.Sub(txn.Amount)
		case txn.Type == domain.Expense && allocatable && txn.ParentTransactionID != nil:
			// Funding debit: money pulled back out of an envelope.
			pool = pool.Add(txn.Amount)
		}
	}
	return pool
}
