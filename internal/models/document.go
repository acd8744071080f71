package models

import "time"

// BudgetDocument is the persisted whole-budget blob. Saves always replace
// the entire document; there is no partial-field update protocol.
type BudgetDocument struct {
	Categories    []Category     `json:"categories"`
	Transactions  []Transaction  `json:"transactions"`
	IncomeSources []IncomeSource `json:"incomeSources"`
	LastUpdated   time.Time      `json:"lastUpdated"`
}
