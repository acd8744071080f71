package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
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
	ErrNoIncomeSource = errors.New("no income source configured")
	ErrNoRuleForIndex = errors.New("no allocation rule for payment index")
)

// allocationPrefix marks ledger entries emitted by the distribution
// engine; duplicate detection keys off it.
const allocationPrefix = "Allocation: "

// allocationService manages the income source and runs the distribution
// engine against the ledger.
type allocationService struct {
	repo portsrepo.BudgetRepository
}

// NewAllocationService creates a new AllocationService.
func NewAllocationService(repo portsrepo.BudgetRepository) portssvc.AllocationSvcFacade {
	return &allocationService{repo: repo}
}

var _ portssvc.AllocationSvcFacade = (*allocationService)(nil)

func (s *allocationService) GetIncomeSource(ctx context.Context) (*dto.IncomeSourceResponse, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget document: %w", err)
	}
	src := doc.ActiveIncomeSource()
	if src == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, ErrNoIncomeSource)
	}
	return incomeSourceResponse(*src), nil
}

// UpsertIncomeSource replaces the document's distribution policy. A
// percentage sum away from 100 is allowed; the deviation is reported, not
// corrected, because normalizing would change allocation amounts.
func (s *allocationService) UpsertIncomeSource(ctx context.Context, req dto.UpsertIncomeSourceRequest) (*dto.IncomeSourceResponse, error) {
	now := time.Now().UTC()
	src := domain.IncomeSource{
		IncomeSourceID: uuid.NewString(),
		Currency:       req.Currency,
		Frequency:      req.Frequency,
		Rules:          make([]domain.AllocationRule, len(req.Rules)),
		OpeningBalance: req.OpeningBalance,
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	for i, r := range req.Rules {
		if r.PaymentIndex > req.Frequency.SlotCount() {
			return nil, fmt.Errorf("%w: payment index %d exceeds the %d slots of a %s source",
				apperrors.ErrValidation, r.PaymentIndex, req.Frequency.SlotCount(), req.Frequency)
		}
		src.Rules[i] = domain.AllocationRule{
			PaymentIndex: r.PaymentIndex,
			Percentage:   r.Percentage,
			Amount:       r.Amount,
			Label:        r.Label,
			Uncertain:    r.Uncertain,
			Note:         r.Note,
		}
	}

	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		if existing := doc.ActiveIncomeSource(); existing != nil {
			src.IncomeSourceID = existing.IncomeSourceID
			src.CreatedAt = existing.CreatedAt
		}
		doc.IncomeSources = []domain.IncomeSource{src}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return incomeSourceResponse(src), nil
}

// Distribute runs the primary allocation mode for one payment slot. The
// run is rejected before mutation when the requested pool exceeds the
// actual unallocated pool. When matching allocation entries already exist
// for the slot and period the run is returned unapplied with a warning;
// legitimate multiple partial allocations pass Force to override.
func (s *allocationService) Distribute(ctx context.Context, req dto.DistributeRequest) (*dto.DistributeResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	resp := &dto.DistributeResponse{}
	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		src := doc.ActiveIncomeSource()
		if src == nil {
			return fmt.Errorf("%w: %s", apperrors.ErrNotFound, ErrNoIncomeSource)
		}
		rule := src.RuleForIndex(req.PaymentIndex)
		if rule == nil {
			return fmt.Errorf("%w: %s %d", apperrors.ErrNotFound, ErrNoRuleForIndex, req.PaymentIndex)
		}
		if req.ParentTransactionID != nil {
			if _, ok := budget.NewLedgerIndex(doc.Transactions).Get(*req.ParentTransactionID); !ok {
				return fmt.Errorf("%w: parent transaction %s", apperrors.ErrNotFound, *req.ParentTransactionID)
			}
		}

		if available := budget.UnallocatedPool(doc, req.Date); req.PoolAmount.Sub(available).GreaterThan(budget.Epsilon) {
			return &apperrors.InsufficientFundsError{Required: req.PoolAmount, Available: available}
		}

		targets := allocatableCategories(doc.Categories)
		if hasExistingAllocations(doc.Transactions, *rule, targets, domain.MonthWindow(req.Date)) && !req.Force {
			resp.DuplicateWarning = true
			return nil // advisory only; nothing to save
		}

		resp.Transactions = budget.Distribute(req.PoolAmount, *rule, targets, req.Date, req.ParentTransactionID, now)
		resp.Applied = true
		doc.Transactions = append(doc.Transactions, resp.Transactions...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.Applied {
		logger.Info("Distribution applied",
			slog.Int("payment_index", req.PaymentIndex),
			slog.Int("allocations", len(resp.Transactions)),
			slog.String("pool", req.PoolAmount.StringFixed(2)))
	} else {
		logger.Warn("Distribution skipped: matching allocations already exist for the period",
			slog.Int("payment_index", req.PaymentIndex))
	}
	return resp, nil
}

// GapFill runs the secondary mode: it tops up a prior month's deficits
// proportionally, treating every category uniformly.
func (s *allocationService) GapFill(ctx context.Context, req dto.GapFillRequest) (*dto.DistributeResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()
	window := domain.MonthWindow(req.Month)

	resp := &dto.DistributeResponse{Applied: true}
	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		if available := budget.UnallocatedPool(doc, now); req.PoolAmount.Sub(available).GreaterThan(budget.Epsilon) {
			return &apperrors.InsufficientFundsError{Required: req.PoolAmount, Available: available}
		}

		deficits := budget.Deficits(allocatableCategories(doc.Categories), doc.Transactions, window)
		resp.Transactions = budget.GapFill(req.PoolAmount, deficits, window.End, now)
		doc.Transactions = append(doc.Transactions, resp.Transactions...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Gap fill applied",
		slog.Time("month", window.Start),
		slog.Int("allocations", len(resp.Transactions)))
	return resp, nil
}

// allocatableCategories filters to the envelope kinds money can be
// distributed into.
func allocatableCategories(categories []domain.Category) []domain.Category {
	out := make([]domain.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.Type == domain.CategoryExpense || cat.Type == domain.CategoryInvestment {
			out = append(out, cat)
		}
	}
	return out
}

// hasExistingAllocations reports whether any category that would receive a
// share under the rule already holds an allocation entry inside the window.
func hasExistingAllocations(txns []domain.Transaction, rule domain.AllocationRule, targets []domain.Category, window domain.ReportingWindow) bool {
	receiving := make(map[string]struct{})
	for _, cat := range targets {
		switch {
		case cat.LinkedPaymentIndex != nil:
			if cat.IsLinkedTo(rule.PaymentIndex) {
				receiving[cat.CategoryID] = struct{}{}
			}
		case rule.Percentage.IsPositive():
			receiving[cat.CategoryID] = struct{}{}
		}
	}

	for _, txn := range txns {
		if txn.Type != domain.Income || txn.CategoryID == nil || !window.Contains(txn.Date) {
			continue
		}
		if !strings.HasPrefix(txn.Description, allocationPrefix) {
			continue
		}
		if _, ok := receiving[*txn.CategoryID]; ok {
			return true
		}
	}
	return false
}

func incomeSourceResponse(src domain.IncomeSource) *dto.IncomeSourceResponse {
	sum := decimal.Zero
	for _, r := range src.Rules {
		sum = sum.Add(r.Percentage)
	}
	return &dto.IncomeSourceResponse{
		IncomeSource:        src,
		PercentageDeviation: sum.Sub(decimal.NewFromInt(100)),
	}
}
