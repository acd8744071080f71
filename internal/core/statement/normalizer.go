package statement

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
)

// AmountMode selects how a row's amount cells resolve to a signed ledger
// entry.
type AmountMode string

const (
	// SingleAmountColumn reads one signed column: negative means expense,
	// positive means income, zero is treated as an expense.
	SingleAmountColumn AmountMode = "SINGLE_AMOUNT"
	// DebitCreditColumns reads separate debit and credit columns: a nonzero
	// debit wins as an expense, otherwise a nonzero credit is income, and a
	// row with neither is skipped.
	DebitCreditColumns AmountMode = "DEBIT_CREDIT"
)

// ColumnMapping points each logical field at a column index. Unused
// columns stay -1.
type ColumnMapping struct {
	Date        int        `json:"date"`
	Description int        `json:"description"`
	Amount      int        `json:"amount"`
	Debit       int        `json:"debit"`
	Credit      int        `json:"credit"`
	Mode        AmountMode `json:"mode"`
}

// NewColumnMapping returns a mapping with every column unset.
func NewColumnMapping() ColumnMapping {
	return ColumnMapping{Date: -1, Description: -1, Amount: -1, Debit: -1, Credit: -1, Mode: SingleAmountColumn}
}

// Result reports how an import went: the normalized entries plus how many
// rows could not be used.
type Result struct {
	Transactions []domain.Transaction
	Imported     int
	Skipped      int
}

// dayFirstPattern matches D/M/YYYY-like dates with /, - or . separators.
// The first captured number is always the day.
var dayFirstPattern = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})$`)

// NormalizeDate parses a statement date cell. ISO YYYY-MM-DD is accepted
// as-is; day-first D/M/YYYY variants are reinterpreted; anything else
// falls back to fallback (a bad date never aborts the import).
func NormalizeDate(cell string, fallback time.Time) time.Time {
	cell = strings.TrimSpace(cell)
	if t, err := time.Parse("2006-01-02", cell); err == nil {
		return domain.Day(t)
	}
	if m := dayFirstPattern.FindStringSubmatch(cell); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		}
	}
	return domain.Day(fallback)
}

// HistoryMap builds a description -> categoryID lookup from prior
// transactions, keyed case-insensitively on the trimmed description. Later
// entries win so the most recent categorization of a description sticks.
func HistoryMap(txns []domain.Transaction) map[string]string {
	history := make(map[string]string)
	for _, txn := range txns {
		if txn.CategoryID == nil {
			continue
		}
		history[historyKey(txn.Description)] = *txn.CategoryID
	}
	return history
}

func historyKey(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

// ParseRows normalizes raw statement rows into ledger entries. Row 0 is
// treated as a header and skipped when its date cell mentions "date".
// Rows with a missing description or an unresolvable amount are skipped
// individually and counted; the batch never fails as a whole. Descriptions
// seen in history are pre-assigned that category.
func ParseRows(rows [][]string, mapping ColumnMapping, history map[string]string, now time.Time) Result {
	var res Result
	for i, row := range rows {
		if i == 0 && isHeaderRow(row, mapping) {
			continue
		}

		description := strings.TrimSpace(cellAt(row, mapping.Description))
		if description == "" {
			res.Skipped++
			continue
		}

		amount, txnType, ok := resolveAmount(row, mapping)
		if !ok {
			res.Skipped++
			continue
		}

		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			Date:          NormalizeDate(cellAt(row, mapping.Date), now),
			Description:   description,
			Amount:        amount,
			Type:          txnType,
			AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if categoryID, found := history[historyKey(description)]; found {
			id := categoryID
			txn.CategoryID = &id
		}

		res.Transactions = append(res.Transactions, txn)
		res.Imported++
	}
	return res
}

func isHeaderRow(row []string, mapping ColumnMapping) bool {
	return strings.Contains(strings.ToLower(cellAt(row, mapping.Date)), "date")
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

func resolveAmount(row []string, mapping ColumnMapping) (decimal.Decimal, domain.TransactionType, bool) {
	switch mapping.Mode {
	case DebitCreditColumns:
		debit, debitOK := parseAmountCell(cellAt(row, mapping.Debit))
		if debitOK && !debit.IsZero() {
			return debit.Abs(), domain.Expense, true
		}
		credit, creditOK := parseAmountCell(cellAt(row, mapping.Credit))
		if creditOK && !credit.IsZero() {
			return credit.Abs(), domain.Income, true
		}
		return decimal.Zero, "", false
	default:
		amount, ok := parseAmountCell(cellAt(row, mapping.Amount))
		if !ok {
			return decimal.Zero, "", false
		}
		if amount.IsPositive() {
			return amount, domain.Income, true
		}
		// Zero is treated as an expense.
		return amount.Abs(), domain.Expense, true
	}
}

func parseAmountCell(cell string) (decimal.Decimal, bool) {
	cell = strings.TrimSpace(cell)
	cell = strings.ReplaceAll(cell, ",", "")
	cell = strings.TrimPrefix(cell, "$")
	if cell == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
