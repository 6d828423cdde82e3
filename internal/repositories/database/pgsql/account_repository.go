package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type accountRepository struct {
	BaseRepository
}

// Ensure accountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

const accountColumns = `account_id, container_id, name, classification, opening_balance, created_at, last_updated_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(&m.AccountID, &m.ContainerID, &m.Name, &m.Classification, &m.OpeningBalance, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

func collectAccounts(rows pgx.Rows) ([]models.Account, error) {
	defer rows.Close()
	var ms []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return ms, nil
}

// SaveAccount inserts a new account.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (container_id, name, classification, opening_balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING account_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.ContainerID,
		m.Name,
		m.Classification,
		m.OpeningBalance,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&m.AccountID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.DuplicateNameError("account", m.Name)
		}
		return nil, fmt.Errorf("failed to save account %q: %w", m.Name, err)
	}
	saved := mapping.ToDomainAccount(m)
	return &saved, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	m, err := scanAccount(r.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = $1`, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.AccountNotFoundError(accountID)
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts in one query.
func (r *accountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	result := make(map[int64]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = ANY($1)`, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	ms, err := collectAccounts(rows)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return result, nil
}

// ListAccounts retrieves the accounts of a container in creation order.
func (r *accountRepository) ListAccounts(ctx context.Context, containerID int64) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE container_id = $1 ORDER BY created_at, account_id`, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts of container %d: %w", containerID, err)
	}
	ms, err := collectAccounts(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// UpdateAccount updates the mutable fields of an account.
func (r *accountRepository) UpdateAccount(ctx context.Context, accountID int64, update domain.AccountUpdate) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE accounts SET name = $1, opening_balance = $2, last_updated_at = $3 WHERE account_id = $4`,
		update.Name, update.OpeningBalance, update.UpdatedAt, accountID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.DuplicateNameError("account", update.Name)
		}
		return fmt.Errorf("failed to update account %d: %w", accountID, err)
	}
	return checkAffected(tag, apperrors.AccountNotFoundError(accountID))
}
