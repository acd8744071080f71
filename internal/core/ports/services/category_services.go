package services

import (
	"context"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
	"github.com/penwald/envelope_budget_app/internal/dto"
)

// CategoryReaderSvc defines read operations for envelopes.
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a specific category.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves every category in the document.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for envelopes.
type CategoryWriterSvc interface {
	// CreateCategory adds a new envelope.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory replaces the given fields of an envelope.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes an envelope. Historical transactions keep
	// their now-dangling reference; aggregation excludes them.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategorySvcFacade combines all category service interfaces.
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
