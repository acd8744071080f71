package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/apperrors"
	"github.com/penwald/envelope_budget_app/internal/core/budget"
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	portsrepo "github.com/penwald/envelope_budget_app/internal/core/ports/repositories"
	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/dto"
	"github.com/penwald/envelope_budget_app/internal/middleware"
)

// fundingService covers one-time expenses from existing envelopes.
type fundingService struct {
	repo portsrepo.BudgetRepository
}

// NewFundingService creates a new FundingService.
func NewFundingService(repo portsrepo.BudgetRepository) portssvc.FundingSvcFacade {
	return &fundingService{repo: repo}
}

var _ portssvc.FundingSvcFacade = (*fundingService)(nil)

// FundExpense applies a funding configuration to the target transaction.
// The previous configuration is removed and the new one inserted inside
// one document transform, so re-funding is idempotent in effect: running
// the same request twice yields the same final child set.
func (s *fundingService) FundExpense(ctx context.Context, transactionID string, req dto.FundRequest) (*dto.FundResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	resp := &dto.FundResponse{}
	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		idx := budget.NewLedgerIndex(doc.Transactions)
		target, ok := idx.Get(transactionID)
		if !ok {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		if target.Type != domain.Expense {
			return fmt.Errorf("%w: only expenses can be funded from envelopes", apperrors.ErrValidation)
		}
		if !target.IsRoot() {
			return fmt.Errorf("%w: derived transactions cannot be funded", apperrors.ErrValidation)
		}

		plan, err := budget.PlanRefunding(doc, target, req.Sources, now)
		if err != nil {
			return err
		}

		removed := make(map[string]struct{}, len(plan.IDsToRemove))
		for _, id := range plan.IDsToRemove {
			removed[id] = struct{}{}
		}

		kept := make([]domain.Transaction, 0, len(doc.Transactions)+len(plan.NewChildTransactions))
		for _, txn := range doc.Transactions {
			if _, gone := removed[txn.TransactionID]; gone {
				continue
			}
			if txn.TransactionID == plan.UpdatedTarget.TransactionID {
				txn = plan.UpdatedTarget
			}
			kept = append(kept, txn)
		}
		doc.Transactions = append(kept, plan.NewChildTransactions...)

		// Each source contributes exactly one debit child; their sum is
		// the funded portion regardless of whether credit mirrors exist.
		funded := decimal.Zero
		for _, child := range plan.NewChildTransactions {
			if child.Type == domain.Expense {
				funded = funded.Add(child.Amount)
			}
		}
		resp.UpdatedTarget = plan.UpdatedTarget
		resp.NewChildTransactions = plan.NewChildTransactions
		resp.RemovedIDs = plan.IDsToRemove
		resp.PoolShortfall = plan.UpdatedTarget.Amount.Sub(funded)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Expense funding replaced",
		slog.String("transaction_id", transactionID),
		slog.Int("removed", len(resp.RemovedIDs)),
		slog.Int("children", len(resp.NewChildTransactions)))
	return resp, nil
}
