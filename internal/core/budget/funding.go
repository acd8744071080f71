package budget

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/apperrors"
	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// FundingPlan is the outcome of reconciling a one-time expense against a
// set of source envelopes. It is a description of the mutation, not the
// mutation itself: the caller applies removals and insertions as one atomic
// collection transform.
type FundingPlan struct {
	UpdatedTarget       domain.Transaction
	NewChildTransactions []domain.Transaction
	IDsToRemove         []string
}

// PlanRefunding computes a clean-slate funding of a one-time expense from
// source envelopes. Every existing child of the target is removed and a
// fresh set is emitted, so repeated refunding can never drift from the
// displayed total.
//
// Funding model: each source with a positive amount produces a debit child
// (EXPENSE against the source envelope) and, when the target itself has a
// category, a matching credit child (INCOME into that category). The
// target's own category is never reassigned. Any shortfall between the sum
// of credits and the target amount is implicitly funded from the
// unallocated pool and derived at display time, never stored.
//
// The plan is rejected before any mutation when the requested total exceeds
// the target amount, or exceeds the unallocated pool plus the source
// envelopes' balances by more than Epsilon.
func PlanRefunding(doc *domain.BudgetDocument, target domain.Transaction, sources map[string]decimal.Decimal, now time.Time) (*FundingPlan, error) {
	sourceIDs := make([]string, 0, len(sources))
	requested := decimal.Zero
	for categoryID, amount := range sources {
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: funding amount for category %s must not be negative", apperrors.ErrValidation, categoryID)
		}
		if amount.LessThanOrEqual(Epsilon) {
			continue
		}
		if doc.CategoryByID(categoryID) == nil {
			return nil, fmt.Errorf("%w: source category %s", apperrors.ErrNotFound, categoryID)
		}
		sourceIDs = append(sourceIDs, categoryID)
		requested = requested.Add(amount)
	}
	sort.Strings(sourceIDs)

	if requested.Sub(target.Amount).GreaterThan(Epsilon) {
		return nil, fmt.Errorf("%w: funding total %s exceeds target amount %s",
			apperrors.ErrValidation, requested.StringFixed(2), target.Amount.StringFixed(2))
	}

	if available := fundingAvailable(doc, target, sourceIDs); requested.Sub(available).GreaterThan(Epsilon) {
		return nil, &apperrors.InsufficientFundsError{Required: requested, Available: available}
	}

	idx := NewLedgerIndex(doc.Transactions)
	plan := &FundingPlan{UpdatedTarget: target}
	plan.UpdatedTarget.LastUpdatedAt = now
	for _, child := range idx.Children(target.TransactionID) {
		plan.IDsToRemove = append(plan.IDsToRemove, child.TransactionID)
	}

	parentID := target.TransactionID
	for _, categoryID := range sourceIDs {
		sourceID := categoryID
		amount := sources[categoryID]
		plan.NewChildTransactions = append(plan.NewChildTransactions, domain.Transaction{
			TransactionID:       uuid.NewString(),
			Date:                target.Date,
			Description:         "Funding for: " + target.Description,
			Amount:              amount,
			Type:                domain.Expense,
			CategoryID:          &sourceID,
			ParentTransactionID: &parentID,
			AuditFields:         domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		})
		if target.CategoryID != nil {
			targetCategoryID := *target.CategoryID
			plan.NewChildTransactions = append(plan.NewChildTransactions, domain.Transaction{
				TransactionID:       uuid.NewString(),
				Date:                target.Date,
				Description:         "Funded: " + target.Description,
				Amount:              amount,
				Type:                domain.Income,
				CategoryID:          &targetCategoryID,
				ParentTransactionID: &parentID,
				AuditFields:         domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
			})
		}
	}
	return plan, nil
}

// fundingAvailable is the money reachable by a funding operation: the
// unallocated pool plus the remaining balance of each source envelope,
// computed with the target's previous children excluded so that refunding
// an already-funded expense does not count its own entries twice.
func fundingAvailable(doc *domain.BudgetDocument, target domain.Transaction, sourceIDs []string) decimal.Decimal {
	trimmed := *doc
	trimmed.Transactions = make([]domain.Transaction, 0, len(doc.Transactions))
	for _, txn := range doc.Transactions {
		if txn.ParentTransactionID != nil && *txn.ParentTransactionID == target.TransactionID {
			continue
		}
		trimmed.Transactions = append(trimmed.Transactions, txn)
	}

	available := UnallocatedPool(&trimmed, target.Date)
	window := domain.MonthWindow(target.Date)
	for _, categoryID := range sourceIDs {
		cat := doc.CategoryByID(categoryID)
		if cat == nil {
			continue
		}
		remaining := CategoryBalanceFor(*cat, trimmed.Transactions, window).Remaining
		if remaining.IsPositive() {
			available = available.Add(remaining)
		}
	}
	return available
}
