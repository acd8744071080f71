package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/google/uuid"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// NewTransferPair builds the two legs of an envelope-to-envelope transfer:
// an OUT leg (expense against the source) and an IN leg (income into the
// destination), linked through mutual transfer-peer ids. This linkage is
// distinct from the funding parent/child mechanism; deleting either leg
// cascades to its peer.
func NewTransferPair(date time.Time, description string, amount decimal.Decimal, fromCategoryID, toCategoryID *string, now time.Time) (out, in domain.Transaction) {
	day := domain.Day(date)
	outID := uuid.NewString()
	inID := uuid.NewString()
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	out = domain.Transaction{
		TransactionID:     outID,
		Date:              day,
		Description:       description,
		Amount:            amount,
		Type:              domain.Expense,
		CategoryID:        fromCategoryID,
		TransferPeerID:    &inID,
		TransferDirection: domain.TransferOut,
		AuditFields:       audit,
	}
	in = domain.Transaction{
		TransactionID:     inID,
		Date:              day,
		Description:       description,
		Amount:            amount,
		Type:              domain.Income,
		CategoryID:        toCategoryID,
		TransferPeerID:    &outID,
		TransferDirection: domain.TransferIn,
		AuditFields:       audit,
	}
	return out, in
}
