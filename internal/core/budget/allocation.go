package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// Epsilon is the tolerance below which an allocation share is treated as
// zero and no ledger entry is emitted. It doubles as the floating tolerance
// for over-funding checks.
var Epsilon = decimal.NewFromFloat(0.005)

var oneHundred = decimal.NewFromInt(100)

// Distribute splits a pool of unallocated income across categories
// according to one allocation rule. Per category the multiplier is the
// rule's percentage, unless the category is linked to a payment index: then
// it is 1 when the index matches the rule and 0 otherwise, ignoring the
// percentage entirely. Shares are each category's effective target times
// its multiplier; when the pool cannot cover the potential total every
// share shrinks proportionally. Surplus is never distributed - it stays in
// the pool. One INCOME entry is emitted per share above Epsilon, dated
// asOf and linked to parentTransactionID so the funding paycheck stays
// auditable.
func Distribute(poolAmount decimal.Decimal, rule domain.AllocationRule, categories []domain.Category, asOf time.Time, parentTransactionID *string, now time.Time) []domain.Transaction {
	day := domain.Day(asOf)

	shares := make([]decimal.Decimal, len(categories))
	potentialTotal := decimal.Zero
	for i, cat := range categories {
		multiplier := rule.Percentage.Div(oneHundred)
		if cat.LinkedPaymentIndex != nil {
			if cat.IsLinkedTo(rule.PaymentIndex) {
				multiplier = decimal.NewFromInt(1)
			} else {
				multiplier = decimal.Zero
			}
		}
		shares[i] = EffectiveTarget(cat, day).Mul(multiplier)
		potentialTotal = potentialTotal.Add(shares[i])
	}

	if potentialTotal.GreaterThan(poolAmount) && potentialTotal.IsPositive() {
		ratio := poolAmount.Div(potentialTotal)
		for i := range shares {
			shares[i] = shares[i].Mul(ratio)
		}
	}

	return emitAllocations(categories, shares, "Allocation: ", day, parentTransactionID, now)
}

// CategoryDeficit is one category's shortfall versus its target for a
// prior period, used by gap-fill distribution.
type CategoryDeficit struct {
	Category domain.Category
	Deficit  decimal.Decimal
}

// Deficits computes each category's shortfall for a reporting window: the
// effective target minus the income already allocated to it within the
// window, floored at zero.
func Deficits(categories []domain.Category, txns []domain.Transaction, window domain.ReportingWindow) []CategoryDeficit {
	out := make([]CategoryDeficit, 0, len(categories))
	for _, cat := range categories {
		allocated := decimal.Zero
		for _, txn := range txns {
			if txn.Type == domain.Income && txn.InCategory(cat.CategoryID) && window.Contains(txn.Date) {
				allocated = allocated.Add(txn.Amount)
			}
		}
		deficit := EffectiveTarget(cat, window.Start).Sub(allocated)
		if deficit.IsNegative() {
			deficit = decimal.Zero
		}
		out = append(out, CategoryDeficit{Category: cat, Deficit: deficit})
	}
	return out
}

// GapFill distributes a pool against category deficits for a prior period.
// Every category is treated uniformly: percentage rules and linked-payment
// overrides do not apply here. Shares are proportional to each deficit and
// shrink together when the pool cannot cover the total shortfall.
func GapFill(poolAmount decimal.Decimal, deficits []CategoryDeficit, asOf time.Time, now time.Time) []domain.Transaction {
	day := domain.Day(asOf)

	totalDeficit := decimal.Zero
	for _, d := range deficits {
		totalDeficit = totalDeficit.Add(d.Deficit)
	}
	if totalDeficit.LessThanOrEqual(Epsilon) {
		return nil
	}

	categories := make([]domain.Category, len(deficits))
	shares := make([]decimal.Decimal, len(deficits))
	for i, d := range deficits {
		categories[i] = d.Category
		shares[i] = d.Deficit
	}
	if totalDeficit.GreaterThan(poolAmount) {
		ratio := poolAmount.Div(totalDeficit)
		for i := range shares {
			shares[i] = shares[i].Mul(ratio)
		}
	}

	return emitAllocations(categories, shares, "Gap fill: ", day, nil, now)
}

func emitAllocations(categories []domain.Category, shares []decimal.Decimal, descPrefix string, day time.Time, parentTransactionID *string, now time.Time) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(categories))
	for i, cat := range categories {
		if shares[i].LessThanOrEqual(Epsilon) {
			continue
		}
		categoryID := cat.CategoryID
		out = append(out, domain.Transaction{
			TransactionID:       uuid.NewString(),
			Date:                day,
			Description:         descPrefix + cat.Name,
			Amount:              shares[i],
			Type:                domain.Income,
			CategoryID:          &categoryID,
			ParentTransactionID: parentTransactionID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		})
	}
	return out
}
