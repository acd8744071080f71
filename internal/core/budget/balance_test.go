package budget_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/penwald/envelope_budget_app/internal/core/budget"
	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestCategoryBalanceFor(t *testing.T) {
	cat := domain.Category{
		CategoryID:    "cat-food",
		Name:          "Food",
		Type:          domain.CategoryExpense,
		MonthlyBudget: decimal.NewFromInt(400),
		Rollover:      decimal.NewFromInt(50),
	}
	window := domain.MonthWindow(day(2024, time.June, 1))

	txns := []domain.Transaction{
		// Prior-month activity folds into carriedOver.
		{TransactionID: "t1", Date: day(2024, time.May, 2), Amount: decimal.NewFromInt(400), Type: domain.Income, CategoryID: strPtr("cat-food")},
		{TransactionID: "t2", Date: day(2024, time.May, 20), Amount: decimal.NewFromInt(380), Type: domain.Expense, CategoryID: strPtr("cat-food")},
		// In-window activity.
		{TransactionID: "t3", Date: day(2024, time.June, 1), Amount: decimal.NewFromInt(400), Type: domain.Income, CategoryID: strPtr("cat-food")},
		{TransactionID: "t4", Date: day(2024, time.June, 10), Amount: decimal.NewFromInt(120), Type: domain.Expense, CategoryID: strPtr("cat-food")},
		// Other category, never counted.
		{TransactionID: "t5", Date: day(2024, time.June, 10), Amount: decimal.NewFromInt(999), Type: domain.Expense, CategoryID: strPtr("cat-rent")},
		// Future month, outside the window.
		{TransactionID: "t6", Date: day(2024, time.July, 1), Amount: decimal.NewFromInt(400), Type: domain.Income, CategoryID: strPtr("cat-food")},
	}

	bal := budget.CategoryBalanceFor(cat, txns, window)

	// carried = 50 + 400 - 380
	assert.True(t, decimal.NewFromInt(70).Equal(bal.CarriedOver), "carried: %s", bal.CarriedOver)
	assert.True(t, decimal.NewFromInt(400).Equal(bal.Income))
	assert.True(t, decimal.NewFromInt(120).Equal(bal.Spent))
	assert.True(t, decimal.NewFromInt(470).Equal(bal.TotalAvailable))
	assert.True(t, decimal.NewFromInt(350).Equal(bal.Remaining))
	assert.True(t, decimal.NewFromInt(400).Equal(bal.Target))
}

func TestCategoryBalanceFor_NegativeRemaining(t *testing.T) {
	cat := domain.Category{CategoryID: "cat-food", Name: "Food", Type: domain.CategoryExpense}
	window := domain.MonthWindow(day(2024, time.June, 1))
	txns := []domain.Transaction{
		{TransactionID: "t1", Date: day(2024, time.June, 5), Amount: decimal.NewFromInt(80), Type: domain.Expense, CategoryID: strPtr("cat-food")},
	}

	bal := budget.CategoryBalanceFor(cat, txns, window)
	assert.True(t, decimal.NewFromInt(-80).Equal(bal.Remaining), "overspend must go negative, got %s", bal.Remaining)
}

func TestIsInternalMarker(t *testing.T) {
	assert.True(t, budget.IsInternalMarker("monthly distribution"))
	assert.True(t, budget.IsInternalMarker("  Distribution Top-Up  "))
	assert.True(t, budget.IsInternalMarker("Balance Adjustment"))
	assert.False(t, budget.IsInternalMarker("Groceries"))
	assert.False(t, budget.IsInternalMarker(""))
}

func TestUnallocatedPool(t *testing.T) {
	doc := &domain.BudgetDocument{
		Categories: []domain.Category{
			{CategoryID: "cat-food", Name: "Food", Type: domain.CategoryExpense},
		},
		IncomeSources: []domain.IncomeSource{
			{IncomeSourceID: "src-1", OpeningBalance: decimal.NewFromInt(100)},
		},
		Transactions: []domain.Transaction{
			// Uncategorized income feeds the pool.
			{TransactionID: "t1", Date: day(2024, time.June, 1), Amount: decimal.NewFromInt(2000), Type: domain.Income},
			// Allocation into an envelope drains the pool.
			{TransactionID: "t2", Date: day(2024, time.June, 1), Amount: decimal.NewFromInt(400), Type: domain.Income, CategoryID: strPtr("cat-food")},
			// Uncategorized expense drains the pool.
			{TransactionID: "t3", Date: day(2024, time.June, 5), Amount: decimal.NewFromInt(50), Type: domain.Expense},
			// Categorized expense spends envelope money, pool untouched.
			{TransactionID: "t4", Date: day(2024, time.June, 8), Amount: decimal.NewFromInt(120), Type: domain.Expense, CategoryID: strPtr("cat-food")},
			// Internal marker: excluded entirely.
			{TransactionID: "t5", Date: day(2024, time.June, 9), Description: "monthly distribution", Amount: decimal.NewFromInt(9999), Type: domain.Expense},
			// Dangling category reference: excluded entirely.
			{TransactionID: "t6", Date: day(2024, time.June, 9), Amount: decimal.NewFromInt(777), Type: domain.Income, CategoryID: strPtr("cat-deleted")},
			// After asOf: excluded.
			{TransactionID: "t7", Date: day(2024, time.July, 1), Amount: decimal.NewFromInt(5000), Type: domain.Income},
		},
	}

	pool := budget.UnallocatedPool(doc, day(2024, time.June, 30))
	// 100 + 2000 - 400 - 50
	assert.True(t, decimal.NewFromInt(1650).Equal(pool), "got %s", pool)
}

func TestUnallocatedPool_FundingPairIsNeutral(t *testing.T) {
	parentID := "txn-laptop"
	doc := &domain.BudgetDocument{
		Categories: []domain.Category{
			{CategoryID: "cat-tech", Name: "Tech", Type: domain.CategoryExpense},
			{CategoryID: "cat-savings", Name: "Savings", Type: domain.CategoryInvestment},
		},
		Transactions: []domain.Transaction{
			{TransactionID: "t1", Date: day(2024, time.June, 1), Amount: decimal.NewFromInt(1000), Type: domain.Income},
			// Funding debit pulls money out of savings back to the pool...
			{TransactionID: "t2", Date: day(2024, time.June, 2), Amount: decimal.NewFromInt(200), Type: domain.Expense, CategoryID: strPtr("cat-savings"), ParentTransactionID: &parentID},
			// ...and the matching credit moves it into the target envelope.
			{TransactionID: "t3", Date: day(2024, time.June, 2), Amount: decimal.NewFromInt(200), Type: domain.Income, CategoryID: strPtr("cat-tech"), ParentTransactionID: &parentID},
		},
	}

	pool := budget.UnallocatedPool(doc, day(2024, time.June, 30))
	assert.True(t, decimal.NewFromInt(1000).Equal(pool), "funding pair must not change the pool, got %s", pool)
}

func TestUnallocatedPool_NoIncomeSource(t *testing.T) {
	doc := &domain.BudgetDocument{}
	pool := budget.UnallocatedPool(doc, day(2024, time.June, 30))
	assert.True(t, pool.IsZero())
}
