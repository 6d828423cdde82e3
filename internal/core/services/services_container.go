package services

import (
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The publisher may be nil, in which case changes only invalidate report caches.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher) *portssvc.ServiceContainer {
	locks := NewContainerLocks()

	// Reporting first: it is the cache every write must invalidate
	reporting := NewReportingService(
		repos.ReportingRepo,
		repos.AccountRepo,
		ReportCacheConfig{Size: cfg.ReportCacheSize, TTL: cfg.ReportCacheTTL},
		WithLocks(locks),
		WithContainerReader(repos.ContainerRepo),
	)
	notifier := NewChangeNotifier(publisher, reporting)

	common := []Option{
		WithLocks(locks),
		WithNotifier(notifier),
		WithContainerReader(repos.ContainerRepo),
	}

	container := &portssvc.ServiceContainer{}
	container.Reporting = reporting
	container.Container = NewContainerService(repos.ContainerRepo, common...)
	container.Account = NewAccountService(repos.AccountRepo, common...)
	container.Category = NewCategoryService(repos.CategoryRepo, common...)
	container.Balance = NewBalanceService(repos.AccountRepo, repos.TransactionRepo, common...)
	container.Ledger = NewLedgerService(
		repos.TransactionRepo,
		repos.AccountRepo,
		repos.CategoryRepo,
		ListLimits{Default: cfg.DefaultTransactionLimit, Max: cfg.MaxTransactionLimit},
		common...,
	)
	container.Transfer = NewTransferService(repos.TransactionRepo, repos.AccountRepo, common...)
	container.Integrity = NewIntegrityService(repos.TransactionRepo, common...)
	container.Exchange = NewDataExchangeService(container.Ledger, repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, common...)
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Token = NewTokenService(cfg)

	return container
}
