package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
)

// MockContainerRepository is a mock type for the ContainerRepositoryFacade interface
type MockContainerRepository struct {
	mock.Mock
}

func (m *MockContainerRepository) FindContainerByID(ctx context.Context, containerID int64) (*domain.Container, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Container), args.Error(1)
}

func (m *MockContainerRepository) ListContainers(ctx context.Context) ([]domain.Container, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Container), args.Error(1)
}

func (m *MockContainerRepository) SaveContainer(ctx context.Context, container domain.Container) (*domain.Container, error) {
	args := m.Called(ctx, container)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Container), args.Error(1)
}

func (m *MockContainerRepository) UpdateContainer(ctx context.Context, container domain.Container) error {
	return m.Called(ctx, container).Error(0)
}

func (m *MockContainerRepository) DeleteContainer(ctx context.Context, containerID int64) error {
	return m.Called(ctx, containerID).Error(0)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, containerID int64) ([]domain.Account, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, accountID int64, update domain.AccountUpdate) error {
	return m.Called(ctx, accountID, update).Error(0)
}

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) CountTransactionsByCategory(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) SeedCategories(ctx context.Context, categories []domain.Category) error {
	return m.Called(ctx, categories).Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransferGroup(ctx context.Context, transferGroupID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, transferGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, after *pagination.Cursor) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, containerID int64, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, containerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransferLegs(ctx context.Context, containerID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumAccount(ctx context.Context, accountID int64, asOf *time.Time) (int64, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if fn, ok := args.Get(0).(func(context.Context, domain.Transaction) *domain.Transaction); ok {
		return fn(ctx, txn), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransfer(ctx context.Context, from domain.Transaction, to domain.Transaction) (*domain.Transfer, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	return m.Called(ctx, transactionID).Error(0)
}

func (m *MockTransactionRepository) DeleteTransferGroup(ctx context.Context, transferGroupID int64) (int64, error) {
	args := m.Called(ctx, transferGroupID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransactions(ctx context.Context, transactionIDs []int64) error {
	return m.Called(ctx, transactionIDs).Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetCategorySums(ctx context.Context, containerID int64, from, to time.Time) ([]domain.CategorySum, error) {
	args := m.Called(ctx, containerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySum), args.Error(1)
}

func (m *MockReportingRepository) GetAccountSums(ctx context.Context, containerID int64, asOf time.Time) (map[int64]int64, error) {
	args := m.Called(ctx, containerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *MockReportingRepository) GetNetAmount(ctx context.Context, containerID int64, from, to *time.Time) (int64, error) {
	args := m.Called(ctx, containerID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) GetAvailableMonths(ctx context.Context, containerID int64) ([]string, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockSettingsRepository is a mock type for the SettingsRepository interface
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) LoadDisplaySettings(ctx context.Context) (*domain.DisplaySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplaySettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveDisplaySettings(ctx context.Context, settings domain.DisplaySettings) error {
	return m.Called(ctx, settings).Error(0)
}

func (m *MockSettingsRepository) DeleteDisplaySettings(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockEventPublisher records published events.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.LedgerEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}
