package services

import (
	"context"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// Classifier is the external auto-categorization collaborator. A nil or
// missing result means "leave uncategorized" and is never an error; the
// collaborator owns its own retries and timeouts, cancellation is the
// caller's context.
type Classifier interface {
	// Classify suggests a category id for one description, or nil.
	Classify(ctx context.Context, description string, categories []domain.Category) (*string, error)

	// ClassifyBatch suggests category ids for many descriptions at once.
	// Descriptions absent from the result map stay uncategorized.
	ClassifyBatch(ctx context.Context, descriptions []string, categories []domain.Category) (map[string]string, error)
}
