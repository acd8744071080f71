package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportingWindow is the month (or arbitrary period) a balance report is
// computed for. It is threaded explicitly through every balance function so
// the calculators stay pure and testable for historical or future months.
type ReportingWindow struct {
	Start time.Time `json:"start"` // Inclusive, day granularity
	End   time.Time `json:"end"`   // Inclusive, day granularity
}

// MonthWindow builds the reporting window covering the calendar month of t.
func MonthWindow(t time.Time) ReportingWindow {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return ReportingWindow{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// Contains reports whether d (day granularity) falls inside the window.
func (w ReportingWindow) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// CategoryBalance is the derived balance of one envelope for a reporting
// window. Always recomputed from source transactions, never cached.
type CategoryBalance struct {
	CategoryID     string          `json:"categoryID"`
	CategoryName   string          `json:"categoryName"`
	Target         decimal.Decimal `json:"target"`         // Effective target for the window
	CarriedOver    decimal.Decimal `json:"carriedOver"`    // Rollover plus net activity before the window
	Income         decimal.Decimal `json:"income"`         // Income within the window
	Spent          decimal.Decimal `json:"spent"`          // Expenses within the window
	TotalAvailable decimal.Decimal `json:"totalAvailable"` // CarriedOver + Income
	Remaining      decimal.Decimal `json:"remaining"`      // TotalAvailable - Spent
}

// BudgetReport aggregates every envelope balance plus the unallocated pool
// for one reporting window.
type BudgetReport struct {
	Window      ReportingWindow   `json:"window"`
	Categories  []CategoryBalance `json:"categories"`
	Unallocated decimal.Decimal   `json:"unallocated"`
}
