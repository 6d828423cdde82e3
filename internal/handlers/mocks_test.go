package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/csvio"
	"github.com/SscSPs/ledgerbook/internal/utils/money"
	"github.com/stretchr/testify/mock"
)

type MockContainerService struct{ mock.Mock }

func (m *MockContainerService) GetContainer(ctx context.Context, containerID int64) (*domain.Container, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Container), args.Error(1)
}

func (m *MockContainerService) ListContainers(ctx context.Context) ([]domain.Container, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Container), args.Error(1)
}

func (m *MockContainerService) CreateContainer(ctx context.Context, req dto.CreateContainerRequest) (*domain.Container, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Container), args.Error(1)
}

func (m *MockContainerService) RenameContainer(ctx context.Context, containerID int64, req dto.UpdateContainerRequest) (*domain.Container, error) {
	args := m.Called(ctx, containerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Container), args.Error(1)
}

func (m *MockContainerService) DeleteContainer(ctx context.Context, containerID int64) error {
	return m.Called(ctx, containerID).Error(0)
}

var _ portssvc.ContainerSvcFacade = (*MockContainerService)(nil)

type MockIntegrityService struct{ mock.Mock }

func (m *MockIntegrityService) VerifyContainer(ctx context.Context, containerID int64) ([]domain.IntegrityIssue, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IntegrityIssue), args.Error(1)
}

func (m *MockIntegrityService) ReconcileContainer(ctx context.Context, containerID int64) ([]int64, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

var _ portssvc.IntegritySvc = (*MockIntegrityService)(nil)

type MockAccountService struct{ mock.Mock }

func (m *MockAccountService) GetAccount(ctx context.Context, containerID int64, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, containerID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, containerID int64) ([]domain.Account, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, containerID int64, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, containerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, containerID int64, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, containerID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

type MockBalanceService struct{ mock.Mock }

func (m *MockBalanceService) CurrentBalance(ctx context.Context, containerID int64, accountID int64) (int64, error) {
	args := m.Called(ctx, containerID, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceService) ListAccountBalances(ctx context.Context, containerID int64) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

type MockLedgerService struct{ mock.Mock }

func (m *MockLedgerService) GetTransaction(ctx context.Context, containerID int64, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, containerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListTransactionsByAccount(ctx context.Context, containerID int64, accountID int64, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, containerID, accountID, params)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, containerID int64, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, containerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListTransactionsForMonth(ctx context.Context, containerID int64, month string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, containerID, month, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) RecordTransaction(ctx context.Context, containerID int64, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, containerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) UpdateTransaction(ctx context.Context, containerID int64, transactionID int64, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, containerID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) DeleteTransaction(ctx context.Context, containerID int64, transactionID int64) ([]int64, error) {
	args := m.Called(ctx, containerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

type MockTransferService struct{ mock.Mock }

func (m *MockTransferService) RecordTransfer(ctx context.Context, containerID int64, req dto.RecordTransferRequest) (*domain.Transfer, error) {
	args := m.Called(ctx, containerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

type MockReportingService struct{ mock.Mock }

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, containerID int64, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	args := m.Called(ctx, containerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitAndLossReport), args.Error(1)
}

func (m *MockReportingService) ProfitAndLossForMonth(ctx context.Context, containerID int64, month string) (*domain.ProfitAndLossReport, error) {
	args := m.Called(ctx, containerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitAndLossReport), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, containerID int64, asOf time.Time) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, containerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *MockReportingService) BalanceSheetForMonth(ctx context.Context, containerID int64, month string) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, containerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *MockReportingService) MonthlyNet(ctx context.Context, containerID int64, month string) (int64, error) {
	args := m.Called(ctx, containerID, month)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingService) AllTimeNet(ctx context.Context, containerID int64) (int64, error) {
	args := m.Called(ctx, containerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingService) AvailableMonths(ctx context.Context, containerID int64) ([]string, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReportingService) CategoryTotals(ctx context.Context, containerID int64, month string) ([]domain.CategoryAmount, error) {
	args := m.Called(ctx, containerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryAmount), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

type MockCategoryService struct{ mock.Mock }

func (m *MockCategoryService) GetCategories(ctx context.Context) domain.CategoryList {
	return m.Called(ctx).Get(0).(domain.CategoryList)
}

func (m *MockCategoryService) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) AddCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockCategoryService) EnsureDefaults(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

type MockExchangeService struct{ mock.Mock }

func (m *MockExchangeService) ExportTransactionsCSV(ctx context.Context, containerID int64, w io.Writer) error {
	args := m.Called(ctx, containerID, w)
	if body, ok := args.Get(0).(string); ok {
		_, _ = io.WriteString(w, body)
	}
	return args.Error(1)
}

func (m *MockExchangeService) ImportTransactionsCSV(ctx context.Context, containerID int64, accountID int64, r io.Reader, mapping csvio.ColumnMapping) (*domain.ImportResult, error) {
	raw, _ := io.ReadAll(r)
	args := m.Called(ctx, containerID, accountID, string(raw), mapping)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

var _ portssvc.DataExchangeSvc = (*MockExchangeService)(nil)

type MockSettingsService struct{ mock.Mock }

func (m *MockSettingsService) Default() domain.DisplaySettings {
	return domain.DefaultDisplaySettings()
}

func (m *MockSettingsService) Load(ctx context.Context) (domain.DisplaySettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DisplaySettings), args.Error(1)
}

func (m *MockSettingsService) Save(ctx context.Context, settings domain.DisplaySettings) (domain.DisplaySettings, error) {
	args := m.Called(ctx, settings)
	return args.Get(0).(domain.DisplaySettings), args.Error(1)
}

func (m *MockSettingsService) Reset(ctx context.Context) (domain.DisplaySettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DisplaySettings), args.Error(1)
}

func (m *MockSettingsService) Formatter(ctx context.Context) (*money.Formatter, error) {
	args := m.Called(ctx)
	return money.NewFormatter(args.Get(0).(domain.DisplaySettings)), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)
