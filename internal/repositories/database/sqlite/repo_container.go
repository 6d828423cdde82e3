package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every SQLite-backed repository over one handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ContainerRepo:   newContainerRepository(db),
		AccountRepo:     newAccountRepository(db),
		CategoryRepo:    newCategoryRepository(db),
		TransactionRepo: newTransactionRepository(db),
		ReportingRepo:   newReportingRepository(db),
		SettingsRepo:    newSettingsRepository(db),
	}
}
