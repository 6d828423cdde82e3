package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	txRepo       *MockTransactionRepository
	accountRepo  *MockAccountRepository
	categoryRepo *MockCategoryRepository
	locks        *services.ContainerLocks
	service      portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.txRepo = new(MockTransactionRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.locks = services.NewContainerLocks()
	suite.service = services.NewLedgerService(suite.txRepo, suite.accountRepo, suite.categoryRepo,
		services.ListLimits{Default: 2, Max: 10},
		services.WithLocks(suite.locks),
		services.WithClock(fixedClock),
	)
}

func (suite *LedgerServiceTestSuite) givenAccount(id int64, classification domain.Classification) {
	suite.accountRepo.On("FindAccountByID", mock.Anything, id).
		Return(&domain.Account{AccountID: id, ContainerID: 1, Name: "acc", Classification: classification}, nil)
}

func (suite *LedgerServiceTestSuite) givenCategory(name string, kind domain.Kind) {
	suite.categoryRepo.On("FindCategoryByName", mock.Anything, name).
		Return(&domain.Category{Name: name, Type: kind}, nil)
}

func (suite *LedgerServiceTestSuite) expectSave() *mock.Call {
	return suite.txRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(
		func(_ context.Context, txn domain.Transaction) *domain.Transaction {
			txn.TransactionID = 100
			return &txn
		}, nil)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_Polarity() {
	tests := []struct {
		name           string
		classification domain.Classification
		category       string
		kind           domain.Kind
		userAmount     int64
		stored         int64
	}{
		{"expense on asset", domain.Asset, "Food & Dining", domain.KindExpense, 5000, -5000},
		{"expense on contra asset", domain.ContraAsset, "Food & Dining", domain.KindExpense, 5000, -5000},
		{"expense on liability", domain.Liability, "Food & Dining", domain.KindExpense, 5000, 5000},
		{"expense on equity", domain.Equity, "Food & Dining", domain.KindExpense, 5000, 5000},
		{"income on asset", domain.Asset, "Income", domain.KindIncome, 5000, 5000},
		{"income on liability", domain.Liability, "Income", domain.KindIncome, 5000, -5000},
		{"income on equity", domain.Equity, "Income", domain.KindIncome, 5000, -5000},
		{"negative magnitude is normalized", domain.Asset, "Food & Dining", domain.KindExpense, -5000, -5000},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.givenAccount(1, tt.classification)
			suite.givenCategory(tt.category, tt.kind)
			suite.expectSave()

			txn, err := suite.service.RecordTransaction(context.Background(), 1, dto.RecordTransactionRequest{
				AccountID: 1, Category: tt.category, Amount: tt.userAmount, Kind: tt.kind,
			})

			suite.Require().NoError(err)
			suite.Equal(tt.stored, txn.Amount)
			suite.Equal(domain.DefaultDescription, txn.Description)
			suite.Equal(fixedNow, txn.Date)
			suite.False(txn.IsTransfer())
		})
	}
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_KindDerivedFromCategory() {
	suite.givenAccount(1, domain.Asset)
	suite.givenCategory("Income", domain.KindIncome)
	suite.expectSave()

	txn, err := suite.service.RecordTransaction(context.Background(), 1, dto.RecordTransactionRequest{AccountID: 1, Category: "Income", Amount: 1200})

	suite.Require().NoError(err)
	suite.Equal(int64(1200), txn.Amount)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_Errors() {
	suite.givenAccount(1, domain.Asset)
	suite.givenCategory("Income", domain.KindIncome)
	suite.categoryRepo.On("FindCategoryByName", mock.Anything, "Nope").Return(nil, apperrors.NotFoundError("category not found"))
	suite.accountRepo.On("FindAccountByID", mock.Anything, int64(99)).Return(nil, apperrors.NotFoundError("account 99 not found"))

	tests := []struct {
		name string
		req  dto.RecordTransactionRequest
		err  error
	}{
		{"unknown account", dto.RecordTransactionRequest{AccountID: 99, Category: "Income", Amount: 1}, apperrors.ErrNotFound},
		{"zero amount", dto.RecordTransactionRequest{AccountID: 1, Category: "Income", Amount: 0}, apperrors.ErrValidation},
		{"missing category", dto.RecordTransactionRequest{AccountID: 1, Category: " ", Amount: 10}, apperrors.ErrValidation},
		{"reserved category", dto.RecordTransactionRequest{AccountID: 1, Category: "transfer", Amount: 10}, apperrors.ErrValidation},
		{"unknown category", dto.RecordTransactionRequest{AccountID: 1, Category: "Nope", Amount: 10}, apperrors.ErrNotFound},
		{"kind mismatch", dto.RecordTransactionRequest{AccountID: 1, Category: "Income", Amount: 10, Kind: domain.KindExpense}, apperrors.ErrValidation},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			txn, err := suite.service.RecordTransaction(context.Background(), 1, tt.req)
			suite.Nil(txn)
			suite.ErrorIs(err, tt.err)
		})
	}
	suite.txRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_FencedContainer() {
	suite.locks.Fence(1, "broken transfer")

	_, err := suite.service.RecordTransaction(context.Background(), 1, dto.RecordTransactionRequest{AccountID: 1, Category: "Income", Amount: 10})

	suite.ErrorIs(err, apperrors.ErrConsistency)
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_RefusesTransferLeg() {
	suite.txRepo.On("FindTransactionByID", mock.Anything, int64(10)).
		Return(&domain.Transaction{TransactionID: 10, ContainerID: 1, TransferGroupID: 4}, nil).Once()

	_, err := suite.service.UpdateTransaction(context.Background(), 1, 10, dto.RecordTransactionRequest{AccountID: 1, Category: "Income", Amount: 5})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_ReappliesPolarity() {
	original := &domain.Transaction{TransactionID: 10, ContainerID: 1, AccountID: 1, Amount: -700, Category: "Food & Dining", Date: fixedNow.AddDate(0, -1, 0), AuditFields: domain.AuditFields{CreatedAt: fixedNow.AddDate(0, -1, 0)}}
	suite.txRepo.On("FindTransactionByID", mock.Anything, int64(10)).Return(original, nil).Once()
	suite.givenAccount(2, domain.Liability)
	suite.givenCategory("Food & Dining", domain.KindExpense)
	suite.txRepo.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID == 10 && t.AccountID == 2 && t.Amount == 700 && t.Date.Equal(original.Date)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(context.Background(), 1, 10, dto.RecordTransactionRequest{AccountID: 2, Category: "Food & Dining", Amount: 700})

	suite.Require().NoError(err)
	suite.Equal(int64(700), updated.Amount)
	suite.txRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_TransferDeletesWholeGroup() {
	legs := []domain.Transaction{
		{TransactionID: 20, ContainerID: 1, AccountID: 1, Amount: -100, TransferGroupID: 3, CounterpartyAccountID: 2},
		{TransactionID: 21, ContainerID: 1, AccountID: 2, Amount: 100, TransferGroupID: 3, CounterpartyAccountID: 1},
	}
	suite.txRepo.On("FindTransactionByID", mock.Anything, int64(21)).Return(&legs[1], nil).Once()
	suite.txRepo.On("FindTransferGroup", mock.Anything, int64(3)).Return(legs, nil).Once()
	suite.txRepo.On("DeleteTransferGroup", mock.Anything, int64(3)).Return(int64(2), nil).Once()

	deleted, err := suite.service.DeleteTransaction(context.Background(), 1, 21)

	suite.Require().NoError(err)
	suite.ElementsMatch([]int64{20, 21}, deleted)
	suite.txRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_BrokenGroupFencesContainer() {
	orphan := domain.Transaction{TransactionID: 30, ContainerID: 1, AccountID: 1, Amount: -100, TransferGroupID: 8, CounterpartyAccountID: 2}
	suite.txRepo.On("FindTransactionByID", mock.Anything, int64(30)).Return(&orphan, nil).Once()
	suite.txRepo.On("FindTransferGroup", mock.Anything, int64(8)).Return([]domain.Transaction{orphan}, nil).Once()

	_, err := suite.service.DeleteTransaction(context.Background(), 1, 30)

	suite.ErrorIs(err, apperrors.ErrConsistency)
	suite.ErrorIs(suite.locks.FenceError(1), apperrors.ErrConsistency)
}

func (suite *LedgerServiceTestSuite) TestGetTransaction_OtherContainer() {
	suite.txRepo.On("FindTransactionByID", mock.Anything, int64(5)).Return(&domain.Transaction{TransactionID: 5, ContainerID: 2}, nil).Once()

	_, err := suite.service.GetTransaction(context.Background(), 1, 5)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestListTransactionsByAccount_Paginates() {
	suite.givenAccount(1, domain.Asset)
	page := []domain.Transaction{
		{TransactionID: 3, Date: fixedNow},
		{TransactionID: 2, Date: fixedNow.Add(-1)},
		{TransactionID: 1, Date: fixedNow.Add(-2)},
	}
	var nilCursor *pagination.Cursor
	suite.txRepo.On("ListTransactionsByAccount", mock.Anything, int64(1), 3, nilCursor).Return(page, nil).Once()

	txns, token, err := suite.service.ListTransactionsByAccount(context.Background(), 1, 1, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Len(txns, 2)
	suite.Require().NotEmpty(token)
	cursor, err := pagination.DecodeToken(token)
	suite.Require().NoError(err)
	suite.Equal(int64(2), cursor.ID)
}

func (suite *LedgerServiceTestSuite) TestListTransactionsByAccount_BadToken() {
	suite.givenAccount(1, domain.Asset)

	_, _, err := suite.service.ListTransactionsByAccount(context.Background(), 1, 1, dto.ListTransactionsParams{NextToken: "%%%"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestListTransactionsForMonth_InvalidMonth() {
	_, err := suite.service.ListTransactionsForMonth(context.Background(), 1, "2024-13", 10)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
