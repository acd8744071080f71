package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/penwald/envelope_budget_app/internal/apperrors"
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/core/services"
	"github.com/penwald/envelope_budget_app/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	repo    *stubBudgetRepository
	service portssvc.LedgerSvcFacade
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.repo = newStubRepo(&domain.BudgetDocument{
		Categories: []domain.Category{
			{CategoryID: "cat-food", Name: "Food", Type: domain.CategoryExpense},
			{CategoryID: "cat-rent", Name: "Rent", Type: domain.CategoryExpense},
		},
		Transactions: []domain.Transaction{
			{TransactionID: "t-root", Date: day(2024, time.June, 10), Description: "Laptop", Amount: decimal.NewFromInt(900), Type: domain.Expense},
			{TransactionID: "t-child", Date: day(2024, time.June, 10), Description: "Funding for: Laptop", Amount: decimal.NewFromInt(200), Type: domain.Expense, CategoryID: strPtr("cat-food"), ParentTransactionID: strPtr("t-root")},
			{TransactionID: "t-out", Date: day(2024, time.June, 11), Description: "Rebalance", Amount: decimal.NewFromInt(50), Type: domain.Expense, CategoryID: strPtr("cat-food"), TransferPeerID: strPtr("t-in"), TransferDirection: domain.TransferOut},
			{TransactionID: "t-in", Date: day(2024, time.June, 11), Description: "Rebalance", Amount: decimal.NewFromInt(50), Type: domain.Income, CategoryID: strPtr("cat-rent"), TransferPeerID: strPtr("t-out"), TransferDirection: domain.TransferIn},
		},
	})
	s.service = services.NewLedgerService(s.repo)
}

func (s *LedgerServiceTestSuite) TestGetTransaction_WithChildren() {
	txn, children, err := s.service.GetTransaction(context.Background(), "t-root")
	s.Require().NoError(err)
	s.Equal("t-root", txn.TransactionID)
	s.Require().Len(children, 1)
	s.Equal("t-child", children[0].TransactionID)
}

func (s *LedgerServiceTestSuite) TestGetTransaction_NotFound() {
	_, _, err := s.service.GetTransaction(context.Background(), "missing")
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestListTransactions_RootsOnly() {
	all, err := s.service.ListTransactions(context.Background(), false)
	s.Require().NoError(err)
	s.Len(all, 4)

	roots, err := s.service.ListTransactions(context.Background(), true)
	s.Require().NoError(err)
	s.Len(roots, 3, "derived children are excluded from root listings")
	for _, txn := range roots {
		s.NotEqual("t-child", txn.TransactionID)
	}
}

func (s *LedgerServiceTestSuite) TestCreateTransaction_Success() {
	txn, err := s.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Date:        time.Date(2024, time.June, 12, 14, 30, 0, 0, time.UTC),
		Description: "Groceries",
		Amount:      decimal.NewFromInt(55),
		Type:        domain.Expense,
		CategoryID:  strPtr("cat-food"),
	})
	s.Require().NoError(err)
	s.NotEmpty(txn.TransactionID)
	s.True(day(2024, time.June, 12).Equal(txn.Date), "dates are truncated to day granularity")
	s.Len(s.repo.doc.Transactions, 5)
}

func (s *LedgerServiceTestSuite) TestCreateTransaction_UnknownCategory() {
	_, err := s.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Date:        day(2024, time.June, 12),
		Description: "Groceries",
		Amount:      decimal.NewFromInt(55),
		Type:        domain.Expense,
		CategoryID:  strPtr("cat-missing"),
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(0, s.repo.saves)
}

func (s *LedgerServiceTestSuite) TestUpdateTransaction_Success() {
	txn, err := s.service.UpdateTransaction(context.Background(), "t-root", dto.UpdateTransactionRequest{
		Date:        day(2024, time.June, 9),
		Description: "Laptop (refurbished)",
		Amount:      decimal.NewFromInt(750),
		Type:        domain.Expense,
	})
	s.Require().NoError(err)
	s.Equal("Laptop (refurbished)", txn.Description)
	s.True(decimal.NewFromInt(750).Equal(txn.Amount))
}

func (s *LedgerServiceTestSuite) TestUpdateTransaction_DerivedBlocked() {
	_, err := s.service.UpdateTransaction(context.Background(), "t-child", dto.UpdateTransactionRequest{
		Date:        day(2024, time.June, 9),
		Description: "Tampering",
		Amount:      decimal.NewFromInt(1),
		Type:        domain.Expense,
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestDeleteTransaction_CascadesToChildren() {
	removed, err := s.service.DeleteTransaction(context.Background(), "t-root")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"t-root", "t-child"}, removed)
	s.Len(s.repo.doc.Transactions, 2)
}

func (s *LedgerServiceTestSuite) TestDeleteTransaction_CascadesToTransferPeer() {
	removed, err := s.service.DeleteTransaction(context.Background(), "t-out")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"t-in", "t-out"}, removed)

	for _, txn := range s.repo.doc.Transactions {
		s.NotEqual("t-in", txn.TransactionID)
	}
}

func (s *LedgerServiceTestSuite) TestDeleteTransaction_NotFoundLeavesLedger() {
	_, err := s.service.DeleteTransaction(context.Background(), "missing")
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Len(s.repo.doc.Transactions, 4)
}

func (s *LedgerServiceTestSuite) TestCreateTransfer_Success() {
	out, in, err := s.service.CreateTransfer(context.Background(), dto.CreateTransferRequest{
		Date:           day(2024, time.June, 15),
		Description:    "Cover overspend",
		Amount:         decimal.NewFromInt(30),
		FromCategoryID: strPtr("cat-rent"),
		ToCategoryID:   strPtr("cat-food"),
	})
	s.Require().NoError(err)
	s.Equal(domain.TransferOut, out.TransferDirection)
	s.Equal(domain.TransferIn, in.TransferDirection)
	s.Equal(in.TransactionID, *out.TransferPeerID)
	s.Len(s.repo.doc.Transactions, 6)
}

func (s *LedgerServiceTestSuite) TestCreateTransfer_SameCategoryRejected() {
	_, _, err := s.service.CreateTransfer(context.Background(), dto.CreateTransferRequest{
		Date:           day(2024, time.June, 15),
		Description:    "Noop",
		Amount:         decimal.NewFromInt(30),
		FromCategoryID: strPtr("cat-food"),
		ToCategoryID:   strPtr("cat-food"),
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
