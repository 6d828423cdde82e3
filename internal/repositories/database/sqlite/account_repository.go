package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
)

type accountRepository struct {
	BaseRepository
}

func newAccountRepository(db *sql.DB) *accountRepository {
	return &accountRepository{BaseRepository{DB: db}}
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

const accountColumns = `account_id, container_id, name, classification, opening_balance, created_at, last_updated_at`

func scanAccount(row interface{ Scan(...any) error }) (models.Account, error) {
	var m models.Account
	var createdAt, updatedAt string
	if err := row.Scan(&m.AccountID, &m.ContainerID, &m.Name, &m.Classification, &m.OpeningBalance, &createdAt, &updatedAt); err != nil {
		return m, err
	}
	var err error
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, err
	}
	if m.LastUpdatedAt, err = parseTime(updatedAt); err != nil {
		return m, err
	}
	return m, nil
}

func (r *accountRepository) collect(rows *sql.Rows) ([]models.Account, error) {
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

// SaveAccount inserts a new account and returns it with the id assigned by the store.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m := mapping.ToModelAccount(account)
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO accounts (container_id, name, classification, opening_balance, created_at, last_updated_at)
		 VALUES (?, ?, ?, ?, ?, ?) RETURNING account_id`,
		m.ContainerID, m.Name, m.Classification, m.OpeningBalance, formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt),
	).Scan(&m.AccountID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.DuplicateNameError("account", m.Name)
		}
		return nil, fmt.Errorf("save account %q: %w", m.Name, err)
	}
	saved := mapping.ToDomainAccount(m)
	return &saved, nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = ?`, accountID)
	m, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.AccountNotFoundError(accountID)
		}
		return nil, fmt.Errorf("find account %d: %w", accountID, err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *accountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	result := make(map[int64]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(accountIDs)), ",")
	args := make([]any, len(accountIDs))
	for i, id := range accountIDs {
		args[i] = id
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}
	ms, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return result, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context, containerID int64) ([]domain.Account, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE container_id = ? ORDER BY created_at, account_id`, containerID)
	if err != nil {
		return nil, fmt.Errorf("list accounts of container %d: %w", containerID, err)
	}
	ms, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, accountID int64, update domain.AccountUpdate) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE accounts SET name = ?, opening_balance = ?, last_updated_at = ? WHERE account_id = ?`,
		update.Name, update.OpeningBalance, formatTime(update.UpdatedAt), accountID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.DuplicateNameError("account", update.Name)
		}
		return fmt.Errorf("update account %d: %w", accountID, err)
	}
	return checkAffected(res, apperrors.AccountNotFoundError(accountID))
}
