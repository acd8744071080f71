package services

import (
	"context"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
	"github.com/penwald/envelope_budget_app/internal/dto"
)

// LedgerReaderSvc defines read operations over the transaction ledger.
type LedgerReaderSvc interface {
	// GetTransaction retrieves a transaction and its derived children.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, []domain.Transaction, error)

	// ListTransactions retrieves ledger entries. With rootsOnly set,
	// derived children are excluded.
	ListTransactions(ctx context.Context, rootsOnly bool) ([]domain.Transaction, error)
}

// LedgerWriterSvc defines write operations over the transaction ledger.
type LedgerWriterSvc interface {
	// CreateTransaction appends a manual ledger entry.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction replaces a transaction's editable fields wholesale.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction together with its children
	// and transfer peer, as one atomic transform. It returns every
	// removed id.
	DeleteTransaction(ctx context.Context, transactionID string) ([]string, error)

	// CreateTransfer appends a linked pair of entries moving money
	// between envelopes.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (out *domain.Transaction, in *domain.Transaction, err error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
