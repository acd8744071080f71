package services_test

import (
	"context"
	"time"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// stubBudgetRepository is an in-memory BudgetRepository for service tests.
// Transform applies fn directly to the held document, mirroring the real
// load-transform-save semantics: on error nothing is kept.
type stubBudgetRepository struct {
	doc     *domain.BudgetDocument
	loadErr error
	saveErr error
	saves   int
}

func newStubRepo(doc *domain.BudgetDocument) *stubBudgetRepository {
	if doc == nil {
		doc = &domain.BudgetDocument{}
	}
	return &stubBudgetRepository{doc: doc}
}

func (r *stubBudgetRepository) Load(ctx context.Context) (*domain.BudgetDocument, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.doc, nil
}

func (r *stubBudgetRepository) Save(ctx context.Context, doc *domain.BudgetDocument) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.doc = doc
	r.saves++
	return nil
}

func (r *stubBudgetRepository) Transform(ctx context.Context, fn func(doc *domain.BudgetDocument) error) error {
	if r.loadErr != nil {
		return r.loadErr
	}
	// Work on a copy so a failing fn leaves the stored document untouched,
	// like the real repository does.
	working := *r.doc
	working.Transactions = append([]domain.Transaction(nil), r.doc.Transactions...)
	working.Categories = append([]domain.Category(nil), r.doc.Categories...)
	working.IncomeSources = append([]domain.IncomeSource(nil), r.doc.IncomeSources...)
	if err := fn(&working); err != nil {
		return err
	}
	if r.saveErr != nil {
		return r.saveErr
	}
	working.LastUpdated = time.Now().UTC()
	r.doc = &working
	r.saves++
	return nil
}
