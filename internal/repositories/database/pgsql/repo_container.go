package pgsql

import (
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool}
	return portsrepo.RepositoryProvider{
		ContainerRepo:   &containerRepository{base},
		AccountRepo:     &accountRepository{base},
		CategoryRepo:    &categoryRepository{base},
		TransactionRepo: &transactionRepository{base},
		ReportingRepo:   &reportingRepository{base},
		SettingsRepo:    &settingsRepository{base},
	}
}
