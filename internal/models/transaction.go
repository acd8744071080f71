package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a ledger entry.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// TransferDirection marks one leg of a transfer pair.
type TransferDirection string

const (
	TransferIn  TransferDirection = "IN"
	TransferOut TransferDirection = "OUT"
)

// Transaction is the persisted shape of a ledger entry. Relationships are
// plain id fields, never embedded records, keeping the document free of
// cyclic references.
type Transaction struct {
	TransactionID       string            `json:"transactionID"`
	Date                time.Time         `json:"date"`
	Description         string            `json:"description"`
	Amount              decimal.Decimal   `json:"amount"`
	Type                TransactionType   `json:"type"`
	CategoryID          *string           `json:"categoryID,omitempty"`
	ParentTransactionID *string           `json:"parentTransactionID,omitempty"`
	TransferPeerID      *string           `json:"transferPeerID,omitempty"`
	TransferDirection   TransferDirection `json:"transferDirection,omitempty"`
	AuditFields
}
