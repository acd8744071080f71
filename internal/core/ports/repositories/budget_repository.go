package repositories

import (
	"context"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// BudgetRepository persists the budget document as a single blob. Load
// returns an empty document (never nil) when nothing has been saved yet;
// Save replaces the stored document wholesale. Implementations must make
// load-transform-save sequences safe to run from concurrent requests.
type BudgetRepository interface {
	// Load retrieves the current budget document.
	Load(ctx context.Context) (*domain.BudgetDocument, error)

	// Save replaces the stored document with doc.
	Save(ctx context.Context, doc *domain.BudgetDocument) error

	// Transform applies fn to the current document and saves the result,
	// as one serialized unit. Multi-record mutations (e.g. cascade
	// deletes) go through here so they are never applied as two partial
	// writes. When fn returns an error nothing is saved.
	Transform(ctx context.Context, fn func(doc *domain.BudgetDocument) error) error
}
