package services

import (
	"context"

	"github.com/penwald/envelope_budget_app/internal/dto"
)

// ImportSvcFacade turns raw statement exports into ledger entries.
type ImportSvcFacade interface {
	// ImportCSV parses, normalizes, categorizes and appends statement
	// rows. Bad rows are skipped and counted, never fatal.
	ImportCSV(ctx context.Context, req dto.ImportRequest) (*dto.ImportResponse, error)
}
