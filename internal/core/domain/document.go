package domain

import "time"

// BudgetDocument is the whole budget state: the single unit of persistence.
// Saves replace the document wholesale; there is no partial-field update
// protocol.
type BudgetDocument struct {
	Categories    []Category     `json:"categories"`
	Transactions  []Transaction  `json:"transactions"`
	IncomeSources []IncomeSource `json:"incomeSources"`
	LastUpdated   time.Time      `json:"lastUpdated"`
}

// ActiveIncomeSource returns the first income source, or nil when the
// document has none configured yet.
func (d *BudgetDocument) ActiveIncomeSource() *IncomeSource {
	if len(d.IncomeSources) == 0 {
		return nil
	}
	return &d.IncomeSources[0]
}

// CategoryByID returns the category with the given id, or nil. A nil result
// for an id still referenced by transactions is a tolerated dangling
// reference, not an error.
func (d *BudgetDocument) CategoryByID(categoryID string) *Category {
	for i := range d.Categories {
		if d.Categories[i].CategoryID == categoryID {
			return &d.Categories[i]
		}
	}
	return nil
}
