package dto

import (
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	"github.com/penwald/envelope_budget_app/internal/core/statement"
)

// ImportRequest carries raw CSV text plus an optional explicit column
// mapping. Without a mapping the importer auto-detects columns from the
// header row. AutoCategorize additionally sends still-uncategorized
// descriptions to the external classifier.
type ImportRequest struct {
	CSV            string                   `json:"csv" binding:"required"`
	Mapping        *statement.ColumnMapping `json:"mapping,omitempty"`
	AutoCategorize bool                     `json:"autoCategorize"`
}

// ImportResponse reports imported vs skipped row counts; individual bad
// rows never fail the batch.
type ImportResponse struct {
	Imported     int                  `json:"imported"`
	Skipped      int                  `json:"skipped"`
	Transactions []domain.Transaction `json:"transactions"`
}
