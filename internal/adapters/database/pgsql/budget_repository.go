// Package pgsql stores the budget document as a single JSONB row. The
// document is small (one user's ledger), so whole-document replace keeps
// the persistence protocol trivial and matches the core's atomic-transform
// model exactly.
package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
	portsrepo "github.com/penwald/envelope_budget_app/internal/core/ports/repositories"
	"github.com/penwald/envelope_budget_app/internal/models"
	"github.com/penwald/envelope_budget_app/internal/utils/mapping"
)

// documentID is the fixed key of the single budget document row.
const documentID = 1

type budgetRepository struct {
	pool *pgxpool.Pool

	// mu serializes load-transform-save sequences from this process so
	// two logical operations in the same tick are applied as one combined
	// replace, never two partial writes.
	mu sync.Mutex
}

// NewBudgetRepository creates a new repository for the budget document.
func NewBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &budgetRepository{pool: pool}
}

var _ portsrepo.BudgetRepository = (*budgetRepository)(nil)

func (r *budgetRepository) Load(ctx context.Context) (*domain.BudgetDocument, error) {
	return r.load(ctx)
}

func (r *budgetRepository) load(ctx context.Context) (*domain.BudgetDocument, error) {
	query := `SELECT doc FROM budget_documents WHERE document_id = $1;`

	var raw []byte
	err := r.pool.QueryRow(ctx, query, documentID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		// Nothing saved yet: start from an empty document.
		return &domain.BudgetDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load budget document: %w", err)
	}

	var doc models.BudgetDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode budget document: %w", err)
	}
	return mapping.ToDomainDocument(doc), nil
}

func (r *budgetRepository) Save(ctx context.Context, doc *domain.BudgetDocument) error {
	return r.save(ctx, doc)
}

func (r *budgetRepository) save(ctx context.Context, doc *domain.BudgetDocument) error {
	doc.LastUpdated = time.Now().UTC()

	raw, err := json.Marshal(mapping.ToModelDocument(doc))
	if err != nil {
		return fmt.Errorf("failed to encode budget document: %w", err)
	}

	query := `
		INSERT INTO budget_documents (document_id, doc, last_updated)
		VALUES ($1, $2, $3)
		ON CONFLICT (document_id) DO UPDATE SET doc = EXCLUDED.doc, last_updated = EXCLUDED.last_updated;
	`
	if _, err := r.pool.Exec(ctx, query, documentID, raw, doc.LastUpdated); err != nil {
		return fmt.Errorf("failed to save budget document: %w", err)
	}
	return nil
}

// Transform applies fn under the repository lock and saves the result only
// when fn succeeds.
func (r *budgetRepository) Transform(ctx context.Context, fn func(doc *domain.BudgetDocument) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return r.save(ctx, doc)
}
