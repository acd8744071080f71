// Package statement normalizes tabular bank-statement exports into ledger
// entries. Like the budget package it is pure: parsing never reads the
// clock or touches storage, and a malformed row is skipped rather than
// failing the whole import.
package statement

import (
	"encoding/csv"
	"strings"
)

// ReadCSV parses comma-separated text into raw rows. Quoted fields are
// honoured, so commas inside quotes survive. Rows of uneven length are
// allowed; the column mapping decides which cells matter.
func ReadCSV(raw string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}

// DetectColumns inspects a header row and maps columns by keyword. It
// returns a mapping and whether enough columns were recognised to import
// with (a date column plus at least one amount column).
func DetectColumns(header []string) (ColumnMapping, bool) {
	mapping := NewColumnMapping()
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case strings.Contains(name, "date"):
			mapping.Date = i
		case strings.Contains(name, "desc") || strings.Contains(name, "narrat") || strings.Contains(name, "detail"):
			mapping.Description = i
		case strings.Contains(name, "debit"):
			mapping.Debit = i
		case strings.Contains(name, "credit"):
			mapping.Credit = i
		case strings.Contains(name, "amount"):
			mapping.Amount = i
		}
	}

	if mapping.Debit >= 0 && mapping.Credit >= 0 {
		mapping.Mode = DebitCreditColumns
	} else {
		mapping.Mode = SingleAmountColumn
	}
	ok := mapping.Date >= 0 && (mapping.Amount >= 0 || (mapping.Debit >= 0 && mapping.Credit >= 0))
	return mapping, ok
}
