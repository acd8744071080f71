package services

import (
	"context"

	"github.com/penwald/envelope_budget_app/internal/dto"
)

// IncomeSourceSvc manages the document's distribution policy.
type IncomeSourceSvc interface {
	// GetIncomeSource retrieves the active income source.
	GetIncomeSource(ctx context.Context) (*dto.IncomeSourceResponse, error)

	// UpsertIncomeSource replaces the active income source.
	UpsertIncomeSource(ctx context.Context, req dto.UpsertIncomeSourceRequest) (*dto.IncomeSourceResponse, error)
}

// AllocationSvc runs the distribution engine against the ledger.
type AllocationSvc interface {
	// Distribute moves pool money into envelopes for one payment slot.
	// A duplicate-looking run is returned unapplied with a warning
	// unless the request forces it.
	Distribute(ctx context.Context, req dto.DistributeRequest) (*dto.DistributeResponse, error)

	// GapFill tops up a prior month's deficits from the pool.
	GapFill(ctx context.Context, req dto.GapFillRequest) (*dto.DistributeResponse, error)
}

// AllocationSvcFacade combines income source management with distribution.
type AllocationSvcFacade interface {
	IncomeSourceSvc
	AllocationSvc
}
