package budget_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/penwald/envelope_budget_app/internal/core/budget"
	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEffectiveTarget(t *testing.T) {
	base := decimal.NewFromInt(500)

	tests := []struct {
		name     string
		schedule []domain.ScheduledChange
		asOf     time.Time
		want     decimal.Decimal
	}{
		{
			name:     "no schedule falls back to base budget",
			schedule: nil,
			asOf:     day(2024, time.June, 15),
			want:     base,
		},
		{
			name: "change before asOf applies",
			schedule: []domain.ScheduledChange{
				{EffectiveDate: day(2024, time.May, 1), Amount: decimal.NewFromInt(600)},
			},
			asOf: day(2024, time.June, 15),
			want: decimal.NewFromInt(600),
		},
		{
			name: "change on asOf applies",
			schedule: []domain.ScheduledChange{
				{EffectiveDate: day(2024, time.June, 15), Amount: decimal.NewFromInt(650)},
			},
			asOf: day(2024, time.June, 15),
			want: decimal.NewFromInt(650),
		},
		{
			name: "future change is ignored",
			schedule: []domain.ScheduledChange{
				{EffectiveDate: day(2024, time.July, 1), Amount: decimal.NewFromInt(999)},
			},
			asOf: day(2024, time.June, 15),
			want: base,
		},
		{
			name: "latest applicable change wins regardless of list order",
			schedule: []domain.ScheduledChange{
				{EffectiveDate: day(2024, time.June, 1), Amount: decimal.NewFromInt(700)},
				{EffectiveDate: day(2024, time.March, 1), Amount: decimal.NewFromInt(550)},
				{EffectiveDate: day(2024, time.July, 1), Amount: decimal.NewFromInt(999)},
			},
			asOf: day(2024, time.June, 15),
			want: decimal.NewFromInt(700),
		},
		{
			name: "same effective date resolves to the later list entry",
			schedule: []domain.ScheduledChange{
				{EffectiveDate: day(2024, time.June, 1), Amount: decimal.NewFromInt(700)},
				{EffectiveDate: day(2024, time.June, 1), Amount: decimal.NewFromInt(725)},
			},
			asOf: day(2024, time.June, 15),
			want: decimal.NewFromInt(725),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := domain.Category{
				CategoryID:    "cat-groceries",
				Name:          "Groceries",
				Type:          domain.CategoryExpense,
				MonthlyBudget: base,
				Schedule:      tt.schedule,
			}
			got := budget.EffectiveTarget(cat, tt.asOf)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestEffectiveTarget_IgnoresTimeOfDay(t *testing.T) {
	cat := domain.Category{
		CategoryID:    "cat-rent",
		MonthlyBudget: decimal.NewFromInt(1200),
		Schedule: []domain.ScheduledChange{
			{EffectiveDate: day(2024, time.June, 15), Amount: decimal.NewFromInt(1300)},
		},
	}

	// asOf late in the day still matches a change effective that same day.
	asOf := time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC)
	got := budget.EffectiveTarget(cat, asOf)
	assert.True(t, decimal.NewFromInt(1300).Equal(got))
}
