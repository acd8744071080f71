package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/apperrors"
	"github.com/penwald/envelope_budget_app/internal/core/budget"
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	portsrepo "github.com/penwald/envelope_budget_app/internal/core/ports/repositories"
	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/dto"
	"github.com/penwald/envelope_budget_app/internal/middleware"
)

var (
	ErrAmountNegative  = errors.New("transaction amount must not be negative")
	ErrEditDerived     = errors.New("derived transactions cannot be edited directly")
	ErrTransferSelf    = errors.New("transfer source and destination must differ")
	ErrUnknownCategory = errors.New("referenced category does not exist")
)

// ledgerService manages the flat transaction collection. Every mutation
// that touches more than one record (cascade deletes, transfer pairs) is
// applied as a single document transform so partial writes cannot occur.
type ledgerService struct {
	repo portsrepo.BudgetRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(repo portsrepo.BudgetRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{repo: repo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, []domain.Transaction, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load budget document: %w", err)
	}

	idx := budget.NewLedgerIndex(doc.Transactions)
	txn, ok := idx.Get(transactionID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return &txn, idx.Children(transactionID), nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, rootsOnly bool) ([]domain.Transaction, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget document: %w", err)
	}
	if !rootsOnly {
		return doc.Transactions, nil
	}
	return budget.NewLedgerIndex(doc.Transactions).Roots(), nil
}

func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNegative)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          domain.Day(req.Date),
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		CategoryID:    req.CategoryID,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		if req.CategoryID != nil && doc.CategoryByID(*req.CategoryID) == nil {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrUnknownCategory)
		}
		doc.Transactions = append(doc.Transactions, txn)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateTransaction replaces the user-editable fields wholesale. Identity
// and linkage (parent, transfer peer) are never touched by an edit.
func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNegative)
	}

	var updated domain.Transaction
	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		for i := range doc.Transactions {
			if doc.Transactions[i].TransactionID != transactionID {
				continue
			}
			if doc.Transactions[i].ParentTransactionID != nil {
				return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEditDerived)
			}
			if req.CategoryID != nil && doc.CategoryByID(*req.CategoryID) == nil {
				return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrUnknownCategory)
			}
			doc.Transactions[i].Date = domain.Day(req.Date)
			doc.Transactions[i].Description = req.Description
			doc.Transactions[i].Amount = req.Amount
			doc.Transactions[i].Type = req.Type
			doc.Transactions[i].CategoryID = req.CategoryID
			doc.Transactions[i].LastUpdatedAt = time.Now().UTC()
			updated = doc.Transactions[i]
			return nil
		}
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransaction removes the transaction, all transactions referencing
// it as parent, and the peer of any transfer leg in the removed set. The
// whole cascade is one collection transform: there is no state in which the
// parent is gone but its children remain.
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) ([]string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var removedIDs []string
	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		idx := budget.NewLedgerIndex(doc.Transactions)
		if _, ok := idx.Get(transactionID); !ok {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}

		removed := idx.CascadeSet(transactionID)
		kept := make([]domain.Transaction, 0, len(doc.Transactions))
		for _, txn := range doc.Transactions {
			if _, gone := removed[txn.TransactionID]; gone {
				removedIDs = append(removedIDs, txn.TransactionID)
				continue
			}
			kept = append(kept, txn)
		}
		doc.Transactions = kept
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(removedIDs)
	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID), slog.Int("removed_count", len(removedIDs)))
	return removedIDs, nil
}

func (s *ledgerService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (*domain.Transaction, *domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if req.FromCategoryID != nil && req.ToCategoryID != nil && *req.FromCategoryID == *req.ToCategoryID {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTransferSelf)
	}

	now := time.Now().UTC()
	out, in := budget.NewTransferPair(req.Date, req.Description, req.Amount, req.FromCategoryID, req.ToCategoryID, now)

	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		for _, categoryID := range []*string{req.FromCategoryID, req.ToCategoryID} {
			if categoryID != nil && doc.CategoryByID(*categoryID) == nil {
				return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrUnknownCategory)
			}
		}
		doc.Transactions = append(doc.Transactions, out, in)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &out, &in, nil
}
