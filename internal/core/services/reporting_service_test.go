package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	reportingRepo *MockReportingRepository
	accountRepo   *MockAccountRepository
	service       *services.ReportingServiceImpl
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.reportingRepo = new(MockReportingRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.service = services.NewReportingService(suite.reportingRepo, suite.accountRepo,
		services.ReportCacheConfig{Size: 16, TTL: time.Minute},
		services.WithLocks(services.NewContainerLocks()),
	)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLossForMonth_TotalsAndOrdering() {
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)
	suite.reportingRepo.On("GetCategorySums", mock.Anything, int64(1), from, to).Return([]domain.CategorySum{
		{Category: "Shopping", Type: domain.KindExpense, Sum: 2000},
		{Category: "Bills & Utilities", Type: domain.KindExpense, Sum: 5000},
		{Category: "Food & Dining", Type: domain.KindExpense, Sum: 2000},
		{Category: "Income", Type: domain.KindIncome, Sum: 300000},
		{Category: "Card refund", Type: domain.KindExpense, Sum: 150},
	}, nil).Once()

	report, err := suite.service.ProfitAndLossForMonth(context.Background(), 1, "2024-03")

	suite.Require().NoError(err)
	suite.Equal(from, report.PeriodStart)
	suite.Equal(to, report.PeriodEnd)
	suite.Equal([]domain.CategoryAmount{{Category: "Income", Total: 300000}}, report.Income)
	suite.Equal([]domain.CategoryAmount{
		{Category: "Bills & Utilities", Total: 5000},
		{Category: "Food & Dining", Total: 2000},
		{Category: "Shopping", Total: 2000},
		{Category: "Card refund", Total: 150},
	}, report.Expense)
	suite.Equal(int64(300000), report.TotalIncome)
	suite.Equal(int64(9150), report.TotalExpense)
	suite.Equal(report.TotalIncome-report.TotalExpense, report.NetIncome)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_IsMemoizedUntilInvalidated() {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC)
	suite.reportingRepo.On("GetCategorySums", mock.Anything, int64(1), from, to).
		Return([]domain.CategorySum{{Category: "Income", Type: domain.KindIncome, Sum: 10}}, nil).Twice()

	for i := 0; i < 3; i++ {
		_, err := suite.service.ProfitAndLoss(context.Background(), 1, from, to)
		suite.Require().NoError(err)
	}
	suite.reportingRepo.AssertNumberOfCalls(suite.T(), "GetCategorySums", 1)

	// Another container's write leaves the entry alone
	suite.service.InvalidateContainer(2)
	_, err := suite.service.ProfitAndLoss(context.Background(), 1, from, to)
	suite.Require().NoError(err)
	suite.reportingRepo.AssertNumberOfCalls(suite.T(), "GetCategorySums", 1)

	suite.service.InvalidateContainer(1)
	_, err = suite.service.ProfitAndLoss(context.Background(), 1, from, to)
	suite.Require().NoError(err)
	suite.reportingRepo.AssertNumberOfCalls(suite.T(), "GetCategorySums", 2)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_InvertedWindow() {
	now := time.Now()
	_, err := suite.service.ProfitAndLoss(context.Background(), 1, now, now.Add(-time.Hour))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_ContraAssetsNetAgainstAssets() {
	asOf := time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)
	suite.accountRepo.On("ListAccounts", mock.Anything, int64(1)).Return([]domain.Account{
		{AccountID: 1, Name: "Cash", Classification: domain.Asset, OpeningBalance: 100000},
		{AccountID: 2, Name: "Depreciation", Classification: domain.ContraAsset, OpeningBalance: 0},
		{AccountID: 3, Name: "Card", Classification: domain.Liability, OpeningBalance: 0},
		{AccountID: 4, Name: "Capital", Classification: domain.Equity, OpeningBalance: 50000},
		{AccountID: 5, Name: "Savings", Classification: domain.Asset, OpeningBalance: 0},
	}, nil).Once()
	suite.reportingRepo.On("GetAccountSums", mock.Anything, int64(1), asOf).Return(map[int64]int64{
		1: -2550,
		2: 4000,
		3: 1200,
		5: 10000,
	}, nil).Once()

	report, err := suite.service.BalanceSheetForMonth(context.Background(), 1, "2024-02")

	suite.Require().NoError(err)
	suite.Equal(asOf, report.AsOf)
	suite.Require().Len(report.Assets, 3)
	suite.Equal("Cash", report.Assets[0].Name)
	suite.Equal(int64(97450), report.Assets[0].Balance)
	suite.True(report.Assets[1].Contra)
	suite.Equal("Savings", report.Assets[2].Name)
	suite.Equal(int64(107450), report.GrossAssets)
	suite.Equal(int64(4000), report.ContraAssets)
	suite.Equal(int64(103450), report.TotalAssets)
	suite.Equal(int64(1200), report.TotalLiabilities)
	suite.Equal(int64(50000), report.TotalEquity)
}

func (suite *ReportingServiceTestSuite) TestCategoryTotals_ExpenseOnly() {
	suite.reportingRepo.On("GetCategorySums", mock.Anything, int64(1), mock.Anything, mock.Anything).Return([]domain.CategorySum{
		{Category: "Income", Type: domain.KindIncome, Sum: 9000},
		{Category: "Shopping", Type: domain.KindExpense, Sum: 300},
		{Category: "Healthcare", Type: domain.KindExpense, Sum: 300},
	}, nil).Once()

	totals, err := suite.service.CategoryTotals(context.Background(), 1, "")

	suite.Require().NoError(err)
	suite.Equal([]domain.CategoryAmount{{Category: "Healthcare", Total: 300}, {Category: "Shopping", Total: 300}}, totals)
}

func (suite *ReportingServiceTestSuite) TestMonthlyNet_InvalidMonth() {
	_, err := suite.service.MonthlyNet(context.Background(), 1, "March")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
