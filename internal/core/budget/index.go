package budget

import "github.com/penwald/envelope_budget_app/internal/core/domain"

// LedgerIndex is an id lookup over a flat transaction collection: record by
// id and children by parent id. The index is rebuilt on each read rather
// than maintained incrementally; the data volume is small and a rebuild can
// never drift from the source records.
type LedgerIndex struct {
	byID     map[string]domain.Transaction
	children map[string][]string
	order    []string
}

// NewLedgerIndex builds an index over txns, preserving ledger order.
func NewLedgerIndex(txns []domain.Transaction) *LedgerIndex {
	idx := &LedgerIndex{
		byID:     make(map[string]domain.Transaction, len(txns)),
		children: make(map[string][]string),
		order:    make([]string, 0, len(txns)),
	}
	for _, txn := range txns {
		idx.byID[txn.TransactionID] = txn
		idx.order = append(idx.order, txn.TransactionID)
		if txn.ParentTransactionID != nil {
			parent := *txn.ParentTransactionID
			idx.children[parent] = append(idx.children[parent], txn.TransactionID)
		}
	}
	return idx
}

// Get returns the transaction with the given id.
func (idx *LedgerIndex) Get(transactionID string) (domain.Transaction, bool) {
	txn, ok := idx.byID[transactionID]
	return txn, ok
}

// Children returns the transactions whose parent is transactionID, in
// ledger order.
func (idx *LedgerIndex) Children(transactionID string) []domain.Transaction {
	ids := idx.children[transactionID]
	out := make([]domain.Transaction, 0, len(ids))
	for _, id := range ids {
		out = append(out, idx.byID[id])
	}
	return out
}

// Roots returns the user-facing entries: every transaction without a
// parent, in ledger order. Derived children are excluded from aggregate
// views.
func (idx *LedgerIndex) Roots() []domain.Transaction {
	out := make([]domain.Transaction, 0, len(idx.order))
	for _, id := range idx.order {
		if txn := idx.byID[id]; txn.IsRoot() {
			out = append(out, txn)
		}
	}
	return out
}

// CascadeSet returns the ids removed by deleting transactionID: the record
// itself, every transaction that references it as parent, and the transfer
// peer (with its own children) of each removed record. Parent/child and
// transfer-peer linkage are distinct mechanisms but both cascade on delete
// so no orphaned entries are left behind.
func (idx *LedgerIndex) CascadeSet(transactionID string) map[string]struct{} {
	removed := make(map[string]struct{})
	var visit func(id string)
	visit = func(id string) {
		txn, ok := idx.byID[id]
		if !ok {
			return
		}
		if _, done := removed[id]; done {
			return
		}
		removed[id] = struct{}{}
		for _, childID := range idx.children[id] {
			visit(childID)
		}
		if txn.TransferPeerID != nil {
			visit(*txn.TransferPeerID)
		}
	}
	visit(transactionID)
	return removed
}
