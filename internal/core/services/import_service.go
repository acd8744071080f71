package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/penwald/envelope_budget_app/internal/apperrors"
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	portsrepo "github.com/penwald/envelope_budget_app/internal/core/ports/repositories"
	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/core/statement"
	"github.com/penwald/envelope_budget_app/internal/dto"
	"github.com/penwald/envelope_budget_app/internal/middleware"
)

// importService parses statement exports into the ledger. The classifier
// is optional; when absent (or failing) imported rows simply stay
// uncategorized.
type importService struct {
	repo       portsrepo.BudgetRepository
	classifier portssvc.Classifier
}

// NewImportService creates a new ImportService. classifier may be nil.
func NewImportService(repo portsrepo.BudgetRepository, classifier portssvc.Classifier) portssvc.ImportSvcFacade {
	return &importService{repo: repo, classifier: classifier}
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

func (s *importService) ImportCSV(ctx context.Context, req dto.ImportRequest) (*dto.ImportResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	rows, err := statement.ReadCSV(req.CSV)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable CSV: %v", apperrors.ErrValidation, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty CSV", apperrors.ErrValidation)
	}

	mapping, err := resolveMapping(rows, req.Mapping)
	if err != nil {
		return nil, err
	}

	resp := &dto.ImportResponse{}
	err = s.repo.Transform(ctx, func(doc *domain.BudgetDocument) error {
		history := statement.HistoryMap(doc.Transactions)
		result := statement.ParseRows(rows, mapping, history, now)

		if req.AutoCategorize && s.classifier != nil {
			s.classifyRemaining(ctx, result.Transactions, doc.Categories)
		}

		doc.Transactions = append(doc.Transactions, result.Transactions...)
		resp.Imported = result.Imported
		resp.Skipped = result.Skipped
		resp.Transactions = result.Transactions
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Statement imported", slog.Int("imported", resp.Imported), slog.Int("skipped", resp.Skipped))
	return resp, nil
}

// classifyRemaining sends still-uncategorized descriptions to the external
// classifier in one batch. A missing suggestion leaves the row
// uncategorized; a classifier failure never fails the import.
func (s *importService) classifyRemaining(ctx context.Context, txns []domain.Transaction, categories []domain.Category) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var descriptions []string
	seen := make(map[string]struct{})
	for _, txn := range txns {
		if txn.CategoryID != nil {
			continue
		}
		if _, dup := seen[txn.Description]; dup {
			continue
		}
		seen[txn.Description] = struct{}{}
		descriptions = append(descriptions, txn.Description)
	}
	if len(descriptions) == 0 {
		return
	}

	suggestions, err := s.classifier.ClassifyBatch(ctx, descriptions, categories)
	if err != nil {
		logger.Warn("Classifier unavailable; leaving rows uncategorized", slog.String("error", err.Error()))
		return
	}

	valid := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		valid[cat.CategoryID] = struct{}{}
	}
	for i := range txns {
		if txns[i].CategoryID != nil {
			continue
		}
		categoryID, ok := suggestions[txns[i].Description]
		if !ok {
			continue
		}
		if _, known := valid[categoryID]; !known {
			continue // never trust an id the document does not hold
		}
		id := categoryID
		txns[i].CategoryID = &id
	}
}

func resolveMapping(rows [][]string, explicit *statement.ColumnMapping) (statement.ColumnMapping, error) {
	if explicit != nil {
		return *explicit, nil
	}
	mapping, ok := statement.DetectColumns(rows[0])
	if !ok {
		return mapping, fmt.Errorf("%w: could not detect date and amount columns from the header row", apperrors.ErrValidation)
	}
	return mapping, nil
}
