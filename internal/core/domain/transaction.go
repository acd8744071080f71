package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry adds money to or removes
// money from its category. Amounts are always stored non-negative; the sign
// is implied by the type.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// TransferDirection marks one leg of an account-to-account transfer pair.
type TransferDirection string

const (
	TransferIn  TransferDirection = "IN"
	TransferOut TransferDirection = "OUT"
)

// Transaction represents a single ledger entry. Relationships to other
// records (parent/child, transfer peer, category membership) are expressed
// purely via id references so the ledger stays flat and serializable.
type Transaction struct {
	TransactionID       string            `json:"transactionID"`         // Primary Key (e.g., UUID)
	Date                time.Time         `json:"date"`                  // Calendar day, UTC midnight
	Description         string            `json:"description"`           // Free text
	Amount              decimal.Decimal   `json:"amount"`                // Non-negative; sign implied by Type
	Type                TransactionType   `json:"type"`                  // INCOME or EXPENSE
	CategoryID          *string           `json:"categoryID,omitempty"`  // Nullable FK -> Category.categoryID; may dangle after category deletion
	ParentTransactionID *string           `json:"parentTransactionID,omitempty"` // Links a derived entry back to the entry that caused it
	TransferPeerID      *string           `json:"transferPeerID,omitempty"`      // Mutual link between the two legs of a transfer
	TransferDirection   TransferDirection `json:"transferDirection,omitempty"`
	AuditFields
}

// IsRoot reports whether the transaction is a user-facing root entry.
// Derived entries (allocation and funding children) exist purely to make
// fund movements auditable and are excluded from aggregate views.
func (t Transaction) IsRoot() bool {
	return t.ParentTransactionID == nil
}

// InCategory reports whether the transaction is tagged to the given category.
func (t Transaction) InCategory(categoryID string) bool {
	return t.CategoryID != nil && *t.CategoryID == categoryID
}
