package services_test

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/platform/config"
	"github.com/SscSPs/ledgerbook/internal/repositories/database/sqlite"
	"github.com/SscSPs/ledgerbook/internal/utils/csvio"
	"github.com/SscSPs/ledgerbook/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const defaultContainer int64 = 1

// EngineTestSuite drives the wired services against a real SQLite file.
type EngineTestSuite struct {
	suite.Suite
	ctx  context.Context
	svcs *portssvc.ServiceContainer
}

func (suite *EngineTestSuite) SetupTest() {
	suite.ctx = context.Background()
	path := filepath.Join(suite.T().TempDir(), "ledger.db")

	suite.Require().NoError(sqlite.RunMigrations(database.SQLiteDSN(path)))
	db, err := database.OpenSQLite(suite.ctx, path)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { db.Close() })

	cfg := &config.Config{
		ReportCacheSize:         32,
		ReportCacheTTL:          time.Minute,
		DefaultTransactionLimit: 50,
		MaxTransactionLimit:     500,
	}
	suite.svcs = services.NewServiceContainer(cfg, sqlite.NewRepositoryProvider(db), nil)
	suite.Require().NoError(suite.svcs.Category.EnsureDefaults(suite.ctx))
}

func (suite *EngineTestSuite) createAccount(name string, class domain.Classification, opening int64) *domain.Account {
	acc, err := suite.svcs.Account.CreateAccount(suite.ctx, defaultContainer, dto.CreateAccountRequest{
		Name: name, Classification: class, OpeningBalance: opening,
	})
	suite.Require().NoError(err)
	return acc
}

func (suite *EngineTestSuite) record(accountID int64, category string, amount int64, date time.Time) *domain.Transaction {
	txn, err := suite.svcs.Ledger.RecordTransaction(suite.ctx, defaultContainer, dto.RecordTransactionRequest{
		AccountID: accountID, Category: category, Amount: amount, Date: &date,
	})
	suite.Require().NoError(err)
	return txn
}

func (suite *EngineTestSuite) balance(accountID int64) int64 {
	b, err := suite.svcs.Balance.CurrentBalance(suite.ctx, defaultContainer, accountID)
	suite.Require().NoError(err)
	return b
}

func (suite *EngineTestSuite) TestExpenseThenTransfer() {
	cash := suite.createAccount("Cash", domain.Asset, 100000)
	savings := suite.createAccount("Savings", domain.Asset, 0)

	suite.record(cash.AccountID, "Food & Dining", 2550, time.Date(2024, time.March, 3, 12, 0, 0, 0, time.UTC))
	suite.Equal(int64(97450), suite.balance(cash.AccountID))

	transfer, err := suite.svcs.Transfer.RecordTransfer(suite.ctx, defaultContainer, dto.RecordTransferRequest{
		FromAccountID: cash.AccountID, ToAccountID: savings.AccountID, Amount: 10000,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(-10000), transfer.From.Amount)
	suite.Equal(int64(10000), transfer.To.Amount)
	suite.Equal(transfer.From.TransferGroupID, transfer.To.TransferGroupID)
	suite.NotZero(transfer.TransferGroupID)

	suite.Equal(int64(87450), suite.balance(cash.AccountID))
	suite.Equal(int64(10000), suite.balance(savings.AccountID))
	// Reads do not move balances
	suite.Equal(int64(87450), suite.balance(cash.AccountID))

	issues, err := suite.svcs.Integrity.VerifyContainer(suite.ctx, defaultContainer)
	suite.Require().NoError(err)
	suite.Empty(issues)
}

func (suite *EngineTestSuite) TestDeletingTransferLegRemovesBoth() {
	cash := suite.createAccount("Cash", domain.Asset, 5000)
	card := suite.createAccount("Card", domain.Liability, 0)

	transfer, err := suite.svcs.Transfer.RecordTransfer(suite.ctx, defaultContainer, dto.RecordTransferRequest{
		FromAccountID: cash.AccountID, ToAccountID: card.AccountID, Amount: 700,
	})
	suite.Require().NoError(err)

	deleted, err := suite.svcs.Ledger.DeleteTransaction(suite.ctx, defaultContainer, transfer.To.TransactionID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]int64{transfer.From.TransactionID, transfer.To.TransactionID}, deleted)
	suite.Equal(int64(5000), suite.balance(cash.AccountID))
	suite.Equal(int64(0), suite.balance(card.AccountID))
}

func (suite *EngineTestSuite) TestCategoryLifecycle() {
	err := suite.svcs.Category.DeleteCategory(suite.ctx, "Other")
	suite.ErrorIs(err, apperrors.ErrConflict)

	_, err = suite.svcs.Category.AddCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Gym", Type: domain.KindExpense})
	suite.Require().NoError(err)
	suite.Contains(categoryNames(suite.svcs.Category.GetCategories(suite.ctx)), "Gym")

	suite.Require().NoError(suite.svcs.Category.DeleteCategory(suite.ctx, "Gym"))
	list := suite.svcs.Category.GetCategories(suite.ctx)
	suite.False(list.FromDefaults())
	suite.NotContains(categoryNames(list), "Gym")
	suite.Contains(categoryNames(list), "Other")
}

func (suite *EngineTestSuite) TestCategoryInUseCannotBeDeleted() {
	cash := suite.createAccount("Cash", domain.Asset, 0)
	_, err := suite.svcs.Category.AddCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Gym", Type: domain.KindExpense})
	suite.Require().NoError(err)
	suite.record(cash.AccountID, "Gym", 4000, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))

	suite.ErrorIs(suite.svcs.Category.DeleteCategory(suite.ctx, "Gym"), apperrors.ErrConflict)
}

func (suite *EngineTestSuite) TestCategoryDeleteNeverOrphansEntries() {
	cash := suite.createAccount("Cash", domain.Asset, 0)
	_, err := suite.svcs.Category.AddCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Gym", Type: domain.KindExpense})
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		date := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 20; i++ {
			_, _ = suite.svcs.Ledger.RecordTransaction(suite.ctx, defaultContainer, dto.RecordTransactionRequest{
				AccountID: cash.AccountID, Category: "Gym", Amount: 100, Date: &date,
			})
		}
	}()
	deleteErr := suite.svcs.Category.DeleteCategory(suite.ctx, "Gym")
	wg.Wait()

	totals, err := suite.svcs.Reporting.CategoryTotals(suite.ctx, defaultContainer, "")
	suite.Require().NoError(err)
	_, lookupErr := suite.svcs.Category.GetCategory(suite.ctx, "Gym")
	if deleteErr == nil {
		suite.ErrorIs(lookupErr, apperrors.ErrNotFound)
		suite.Empty(totals)
	} else {
		suite.ErrorIs(deleteErr, apperrors.ErrConflict)
		suite.NoError(lookupErr)
		suite.NotEmpty(totals)
	}
}

func categoryNames(list domain.CategoryList) []string {
	names := make([]string, len(list.Categories))
	for i, c := range list.Categories {
		names[i] = c.Name
	}
	return names
}

func (suite *EngineTestSuite) TestReportsAgreeWithEntries() {
	cash := suite.createAccount("Cash", domain.Asset, 100000)
	savings := suite.createAccount("Savings", domain.Asset, 0)
	march := func(day int) time.Time { return time.Date(2024, time.March, day, 9, 0, 0, 0, time.UTC) }

	suite.record(cash.AccountID, "Income", 300000, march(1))
	suite.record(cash.AccountID, "Food & Dining", 2550, march(3))
	suite.record(cash.AccountID, "Bills & Utilities", 12000, march(10))
	suite.record(cash.AccountID, "Food & Dining", 1450, time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC))
	_, err := suite.svcs.Transfer.RecordTransfer(suite.ctx, defaultContainer, dto.RecordTransferRequest{
		FromAccountID: cash.AccountID, ToAccountID: savings.AccountID, Amount: 50000, Date: ptrTime(march(15)),
	})
	suite.Require().NoError(err)

	pnl, err := suite.svcs.Reporting.ProfitAndLossForMonth(suite.ctx, defaultContainer, "2024-03")
	suite.Require().NoError(err)
	suite.Equal(int64(300000), pnl.TotalIncome)
	suite.Equal(int64(14550), pnl.TotalExpense)
	suite.Equal([]domain.CategoryAmount{
		{Category: "Bills & Utilities", Total: 12000},
		{Category: "Food & Dining", Total: 2550},
	}, pnl.Expense)

	net, err := suite.svcs.Reporting.MonthlyNet(suite.ctx, defaultContainer, "2024-03")
	suite.Require().NoError(err)
	suite.Equal(pnl.NetIncome, net)

	allTime, err := suite.svcs.Reporting.AllTimeNet(suite.ctx, defaultContainer)
	suite.Require().NoError(err)
	suite.Equal(int64(300000-2550-12000-1450), allTime)

	months, err := suite.svcs.Reporting.AvailableMonths(suite.ctx, defaultContainer)
	suite.Require().NoError(err)
	suite.Equal([]string{"2024-04", "2024-03"}, months)

	sheet, err := suite.svcs.Reporting.BalanceSheetForMonth(suite.ctx, defaultContainer, "2024-03")
	suite.Require().NoError(err)
	suite.Equal(int64(100000+300000-2550-12000), sheet.TotalAssets)

	// A later write must be visible through the memoized report
	suite.record(cash.AccountID, "Shopping", 1000, march(20))
	pnl, err = suite.svcs.Reporting.ProfitAndLossForMonth(suite.ctx, defaultContainer, "2024-03")
	suite.Require().NoError(err)
	suite.Equal(int64(15550), pnl.TotalExpense)
}

func ptrTime(t time.Time) *time.Time { return &t }

func (suite *EngineTestSuite) TestProfitAndLossAddsExpensesAcrossPolarities() {
	cash := suite.createAccount("Cash", domain.Asset, 0)
	card := suite.createAccount("Card", domain.Liability, 0)
	march := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)

	onCash := suite.record(cash.AccountID, "Food & Dining", 5000, march)
	onCard := suite.record(card.AccountID, "Food & Dining", 5000, march)
	suite.Equal(int64(-5000), onCash.Amount)
	suite.Equal(int64(5000), onCard.Amount)

	pnl, err := suite.svcs.Reporting.ProfitAndLossForMonth(suite.ctx, defaultContainer, "2024-03")
	suite.Require().NoError(err)
	suite.Equal([]domain.CategoryAmount{{Category: "Food & Dining", Total: 10000}}, pnl.Expense)
	suite.Equal(int64(10000), pnl.TotalExpense)
	suite.Equal(int64(-10000), pnl.NetIncome)

	totals, err := suite.svcs.Reporting.CategoryTotals(suite.ctx, defaultContainer, "2024-03")
	suite.Require().NoError(err)
	suite.Equal([]domain.CategoryAmount{{Category: "Food & Dining", Total: 10000}}, totals)
}

func (suite *EngineTestSuite) TestCSVRoundTrip() {
	cash := suite.createAccount("Cash", domain.Asset, 0)
	suite.record(cash.AccountID, "Income", 250000, time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC))
	suite.record(cash.AccountID, "Healthcare", 4599, time.Date(2024, time.March, 2, 8, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	suite.Require().NoError(suite.svcs.Exchange.ExportTransactionsCSV(suite.ctx, defaultContainer, &buf))
	suite.Contains(buf.String(), "ID,Date,Account,Amount,Description,Category,TransferGroup")

	other, err := suite.svcs.Container.CreateContainer(suite.ctx, dto.CreateContainerRequest{Name: "Copy"})
	suite.Require().NoError(err)
	target, err := suite.svcs.Account.CreateAccount(suite.ctx, other.ContainerID, dto.CreateAccountRequest{Name: "Cash", Classification: domain.Asset})
	suite.Require().NoError(err)

	mapping := csvio.ColumnMapping{Date: 1, Description: 4, Category: 5, Amount: 3, SkipHeader: true}
	result, err := suite.svcs.Exchange.ImportTransactionsCSV(suite.ctx, other.ContainerID, target.AccountID, &buf, mapping)
	suite.Require().NoError(err)
	suite.Equal(2, result.SuccessCount)
	suite.Zero(result.ErrorCount)

	b, err := suite.svcs.Balance.CurrentBalance(suite.ctx, other.ContainerID, target.AccountID)
	suite.Require().NoError(err)
	suite.Equal(int64(250000-4599), b)
	suite.Equal(b, suite.balance(cash.AccountID))
}

func (suite *EngineTestSuite) TestContainersAreIsolated() {
	other, err := suite.svcs.Container.CreateContainer(suite.ctx, dto.CreateContainerRequest{Name: "Business"})
	suite.Require().NoError(err)
	cash := suite.createAccount("Cash", domain.Asset, 100)

	_, err = suite.svcs.Account.GetAccount(suite.ctx, other.ContainerID, cash.AccountID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.svcs.Ledger.RecordTransaction(suite.ctx, other.ContainerID, dto.RecordTransactionRequest{
		AccountID: cash.AccountID, Category: "Other", Amount: 10,
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.ErrorIs(suite.svcs.Container.DeleteContainer(suite.ctx, defaultContainer), apperrors.ErrConflict)
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func TestEngine_DuplicateAccountName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	require.NoError(t, sqlite.RunMigrations(database.SQLiteDSN(path)))
	db, err := database.OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	svcs := services.NewServiceContainer(&config.Config{}, sqlite.NewRepositoryProvider(db), nil)
	req := dto.CreateAccountRequest{Name: "Cash", Classification: domain.Asset}
	_, err = svcs.Account.CreateAccount(context.Background(), defaultContainer, req)
	require.NoError(t, err)
	_, err = svcs.Account.CreateAccount(context.Background(), defaultContainer, req)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
