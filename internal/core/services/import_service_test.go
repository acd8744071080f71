package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/penwald/envelope_budget_app/internal/apperrors"
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
	"github.com/penwald/envelope_budget_app/internal/core/services"
	"github.com/penwald/envelope_budget_app/internal/core/statement"
	"github.com/penwald/envelope_budget_app/internal/dto"
)

// MockClassifier is a mock type for the Classifier interface
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, description string, categories []domain.Category) (*string, error) {
	args := m.Called(ctx, description, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockClassifier) ClassifyBatch(ctx context.Context, descriptions []string, categories []domain.Category) (map[string]string, error) {
	args := m.Called(ctx, descriptions, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

type ImportServiceTestSuite struct {
	suite.Suite
	repo       *stubBudgetRepository
	classifier *MockClassifier
	service    portssvc.ImportSvcFacade
}

func (s *ImportServiceTestSuite) SetupTest() {
	s.repo = newStubRepo(&domain.BudgetDocument{
		Categories: []domain.Category{
			{CategoryID: "cat-dining", Name: "Dining", Type: domain.CategoryExpense},
			{CategoryID: "cat-salary", Name: "Salary", Type: domain.CategoryIncome},
		},
		Transactions: []domain.Transaction{
			{TransactionID: "t-old", Date: day(2024, time.May, 1), Description: "Coffee Shop", Amount: decimal.NewFromInt(4), Type: domain.Expense, CategoryID: strPtr("cat-dining")},
		},
	})
	s.classifier = new(MockClassifier)
	s.service = services.NewImportService(s.repo, s.classifier)
}

func (s *ImportServiceTestSuite) TestImportCSV_AutoDetectedColumns() {
	resp, err := s.service.ImportCSV(context.Background(), dto.ImportRequest{
		CSV: "Date,Description,Amount\n2024-06-01,Salary,2000\n\"03/04/2024\",\"Coffee Shop\",\"-4.50\"\n",
	})
	s.Require().NoError(err)
	s.Equal(2, resp.Imported)
	s.Equal(0, resp.Skipped)
	s.Len(s.repo.doc.Transactions, 3)

	// History pre-assigns the known description.
	coffee := resp.Transactions[1]
	s.Require().NotNil(coffee.CategoryID)
	s.Equal("cat-dining", *coffee.CategoryID)
	s.Equal(domain.Expense, coffee.Type)
	s.True(day(2024, time.April, 3).Equal(coffee.Date), "day-first date, got %s", coffee.Date)
}

func (s *ImportServiceTestSuite) TestImportCSV_ExplicitMapping() {
	mapping := statement.NewColumnMapping()
	mapping.Date = 2
	mapping.Description = 0
	mapping.Amount = 1
	mapping.Mode = statement.SingleAmountColumn

	resp, err := s.service.ImportCSV(context.Background(), dto.ImportRequest{
		CSV:     "Groceries,-55,2024-06-02\n",
		Mapping: &mapping,
	})
	s.Require().NoError(err)
	s.Equal(1, resp.Imported)
	s.Equal(domain.Expense, resp.Transactions[0].Type)
}

func (s *ImportServiceTestSuite) TestImportCSV_SkipsBadRows() {
	resp, err := s.service.ImportCSV(context.Background(), dto.ImportRequest{
		CSV: "Date,Description,Amount\n2024-06-01,Salary,2000\n2024-06-02,,-10\n2024-06-03,Mystery,n/a\n",
	})
	s.Require().NoError(err)
	s.Equal(1, resp.Imported)
	s.Equal(2, resp.Skipped)
}

func (s *ImportServiceTestSuite) TestImportCSV_UndetectableHeader() {
	_, err := s.service.ImportCSV(context.Background(), dto.ImportRequest{
		CSV: "foo,bar\n1,2\n",
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(0, s.repo.saves)
}

func (s *ImportServiceTestSuite) TestImportCSV_ClassifierFillsGaps() {
	s.classifier.On("ClassifyBatch", mock.Anything, []string{"New Bistro"}, mock.Anything).
		Return(map[string]string{"New Bistro": "cat-dining"}, nil).Once()

	resp, err := s.service.ImportCSV(context.Background(), dto.ImportRequest{
		CSV:            "Date,Description,Amount\n2024-06-05,New Bistro,-25\n",
		AutoCategorize: true,
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Transactions, 1)
	s.Require().NotNil(resp.Transactions[0].CategoryID)
	s.Equal("cat-dining", *resp.Transactions[0].CategoryID)
	s.classifier.AssertExpectations(s.T())
}

func (s *ImportServiceTestSuite) TestImportCSV_HallucinatedCategoryIgnored() {
	s.classifier.On("ClassifyBatch", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]string{"New Bistro": "cat-invented"}, nil).Once()

	resp, err := s.service.ImportCSV(context.Background(), dto.ImportRequest{
		CSV:            "Date,Description,Amount\n2024-06-05,New Bistro,-25\n",
		AutoCategorize: true,
	})
	s.Require().NoError(err)
	s.Nil(resp.Transactions[0].CategoryID, "unknown ids from the classifier are dropped")
}

func (s *ImportServiceTestSuite) TestImportCSV_ClassifierFailureDoesNotFailImport() {
	s.classifier.On("ClassifyBatch", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded")).Once()

	resp, err := s.service.ImportCSV(context.Background(), dto.ImportRequest{
		CSV:            "Date,Description,Amount\n2024-06-05,New Bistro,-25\n",
		AutoCategorize: true,
	})
	s.Require().NoError(err)
	s.Equal(1, resp.Imported)
	s.Nil(resp.Transactions[0].CategoryID)
}

func (s *ImportServiceTestSuite) TestImportCSV_NoAutoCategorizeSkipsClassifier() {
	resp, err := s.service.ImportCSV(context.Background(), dto.ImportRequest{
		CSV: "Date,Description,Amount\n2024-06-05,New Bistro,-25\n",
	})
	s.Require().NoError(err)
	s.Nil(resp.Transactions[0].CategoryID)
	s.classifier.AssertNotCalled(s.T(), "ClassifyBatch")
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
