package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/penwald/envelope_budget_app/internal/apperrors"
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	portsrepo "github.com/penwald/envelope_budget_app/internal/core/ports/repositories"
	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/dto"
	"github.com/penwald/envelope_budget_app/internal/middleware"
)

// categoryService manages envelopes within the budget document.
type categoryService struct {
	repo portsrepo.BudgetRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo portsrepo.BudgetRepository) portssvc.CategorySvcFacade {
	return &categoryService{repo: repo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget document: %w", err)
	}
	cat := doc.CategoryByID(categoryID)
	if cat == nil {
		return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
	}
	return cat, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget document: %w", err)
	}
	return doc.Categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.MonthlyBudget.IsNegative() {
		return nil, fmt.Errorf("%w: monthly budget must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	startDate := domain.Day(now)
	if req.StartDate != nil {
		startDate = domain.Day(*req.StartDate)
	}

	cat := domain.Category{
		CategoryID:         uuid.NewString(),
		Name:               req.Name,
		Type:               req.Type,
		MonthlyBudget:      req.MonthlyBudget,
		Rollover:           req.Rollover,
		Schedule:           toDomainSchedule(req.Schedule),
		LinkedPaymentIndex: req.LinkedPaymentIndex,
		Color:              req.Color,
		StartDate:          startDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		for _, existing := range doc.Categories {
			if existing.Name == req.Name {
				return fmt.Errorf("%w: category named %q", apperrors.ErrDuplicate, req.Name)
			}
		}
		doc.Categories = append(doc.Categories, cat)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Category created", slog.String("category_id", cat.CategoryID), slog.String("name", cat.Name))
	return &cat, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	var updated domain.Category
	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		cat := doc.CategoryByID(categoryID)
		if cat == nil {
			return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
		}

		if req.Name != nil {
			cat.Name = *req.Name
		}
		if req.MonthlyBudget != nil {
			if req.MonthlyBudget.IsNegative() {
				return fmt.Errorf("%w: monthly budget must not be negative", apperrors.ErrValidation)
			}
			cat.MonthlyBudget = *req.MonthlyBudget
		}
		if req.Rollover != nil {
			cat.Rollover = *req.Rollover
		}
		if req.Schedule != nil {
			cat.Schedule = toDomainSchedule(*req.Schedule)
		}
		if req.ClearLinkedPayment {
			cat.LinkedPaymentIndex = nil
		} else if req.LinkedPaymentIndex != nil {
			cat.LinkedPaymentIndex = req.LinkedPaymentIndex
		}
		if req.Color != nil {
			cat.Color = *req.Color
		}
		cat.LastUpdatedAt = time.Now().UTC()
		updated = *cat
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory removes the envelope only. Transactions keep their
// reference to the deleted id; balance calculations exclude entries whose
// category no longer resolves, they are never re-pointed.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	err := s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		for i := range doc.Categories {
			if doc.Categories[i].CategoryID == categoryID {
				doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, categoryID)
	})
	if err != nil {
		return err
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	return nil
}

func toDomainSchedule(reqs []dto.ScheduledChangeRequest) []domain.ScheduledChange {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]domain.ScheduledChange, len(reqs))
	for i, r := range reqs {
		out[i] = domain.ScheduledChange{
			EffectiveDate: domain.Day(r.EffectiveDate),
			Amount:        r.Amount,
		}
	}
	return out
}
