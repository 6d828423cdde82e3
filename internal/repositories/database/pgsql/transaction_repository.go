package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
	"github.com/SscSPs/ledgerbook/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

type transactionRepository struct {
	BaseRepository
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

const transactionColumns = `transaction_id, container_id, account_id, amount, description, category, transaction_date,
	transfer_group_id, counterparty_account_id, created_at, last_updated_at`

// dbExecutor is satisfied by both the pool and a pgx.Tx.
type dbExecutor interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(&m.TransactionID, &m.ContainerID, &m.AccountID, &m.Amount, &m.Description, &m.Category,
		&m.TransactionDate, &m.TransferGroupID, &m.CounterpartyAccountID, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func insertTransaction(ctx context.Context, db dbExecutor, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (container_id, account_id, amount, description, category, transaction_date,
			transfer_group_id, counterparty_account_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING transaction_id;
	`
	var id int64
	err := db.QueryRow(ctx, query,
		m.ContainerID,
		m.AccountID,
		m.Amount,
		m.Description,
		m.Category,
		m.TransactionDate,
		m.TransferGroupID,
		m.CounterpartyAccountID,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction on account %d: %w", m.AccountID, err)
	}
	return id, nil
}

func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	id, err := insertTransaction(ctx, r.Pool, txn)
	if err != nil {
		return nil, err
	}
	txn.TransactionID = id
	return &txn, nil
}

// SaveTransfer persists both legs of a transfer within a single transaction.
func (r *transactionRepository) SaveTransfer(ctx context.Context, from domain.Transaction, to domain.Transaction) (*domain.Transfer, error) {
	var transfer domain.Transfer
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var groupID int64
		if err := tx.QueryRow(ctx, `SELECT nextval('transfer_group_seq')`).Scan(&groupID); err != nil {
			return fmt.Errorf("failed to allocate transfer group: %w", err)
		}

		from.TransferGroupID, to.TransferGroupID = groupID, groupID
		fromID, err := insertTransaction(ctx, tx, from)
		if err != nil {
			return err
		}
		toID, err := insertTransaction(ctx, tx, to)
		if err != nil {
			return err
		}
		from.TransactionID, to.TransactionID = fromID, toID
		transfer = domain.Transfer{TransferGroupID: groupID, From: from, To: to}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (r *transactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	m, err := scanTransaction(r.Pool.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1`, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("transaction %d not found", transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *transactionRepository) FindTransferGroup(ctx context.Context, transferGroupID int64) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE transfer_group_id = $1 ORDER BY transaction_id`, transferGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transfer group %d: %w", transferGroupID, err)
	}
	return collectTransactions(rows)
}

// ListTransactionsByAccount uses keyset pagination on (transaction_date, transaction_id).
func (r *transactionRepository) ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, after *pagination.Cursor) ([]domain.Transaction, error) {
	var rows pgx.Rows
	var err error
	if after == nil {
		rows, err = r.Pool.Query(ctx, `
			SELECT `+transactionColumns+` FROM transactions
			WHERE account_id = $1
			ORDER BY transaction_date DESC, transaction_id DESC
			LIMIT $2`, accountID, limit)
	} else {
		rows, err = r.Pool.Query(ctx, `
			SELECT `+transactionColumns+` FROM transactions
			WHERE account_id = $1 AND (transaction_date, transaction_id) < ($2, $3)
			ORDER BY transaction_date DESC, transaction_id DESC
			LIMIT $4`, accountID, after.Date, after.ID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions of account %d: %w", accountID, err)
	}
	return collectTransactions(rows)
}

func (r *transactionRepository) ListTransactions(ctx context.Context, containerID int64, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE container_id = $1`)
	args := []any{containerID}
	if filter.From != nil {
		args = append(args, *filter.From)
		sb.WriteString(` AND transaction_date >= $` + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		sb.WriteString(` AND transaction_date <= $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(` ORDER BY transaction_date DESC, transaction_id DESC`)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(` LIMIT $` + strconv.Itoa(len(args)))
	}

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions of container %d: %w", containerID, err)
	}
	return collectTransactions(rows)
}

func (r *transactionRepository) ListTransferLegs(ctx context.Context, containerID int64) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE container_id = $1 AND transfer_group_id IS NOT NULL
		ORDER BY transfer_group_id, transaction_id`, containerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer legs of container %d: %w", containerID, err)
	}
	return collectTransactions(rows)
}

func (r *transactionRepository) SumAccount(ctx context.Context, accountID int64, asOf *time.Time) (int64, error) {
	var sum int64
	var err error
	if asOf == nil {
		err = r.Pool.QueryRow(ctx,
			`SELECT COALESCE(SUM(amount), 0)::BIGINT FROM transactions WHERE account_id = $1`, accountID).Scan(&sum)
	} else {
		err = r.Pool.QueryRow(ctx,
			`SELECT COALESCE(SUM(amount), 0)::BIGINT FROM transactions WHERE account_id = $1 AND transaction_date <= $2`,
			accountID, *asOf).Scan(&sum)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to sum account %d: %w", accountID, err)
	}
	return sum, nil
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET account_id = $1, amount = $2, description = $3, category = $4, transaction_date = $5, last_updated_at = $6
		WHERE transaction_id = $7 AND transfer_group_id IS NULL`,
		m.AccountID, m.Amount, m.Description, m.Category, m.TransactionDate, m.LastUpdatedAt, m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", m.TransactionID, err)
	}
	return checkAffected(tag, apperrors.NotFoundError("transaction %d not found", m.TransactionID))
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	return checkAffected(tag, apperrors.NotFoundError("transaction %d not found", transactionID))
}

func (r *transactionRepository) DeleteTransferGroup(ctx context.Context, transferGroupID int64) (int64, error) {
	var removed int64
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transfer_group_id = $1`, transferGroupID)
		if err != nil {
			return fmt.Errorf("failed to delete transfer group %d: %w", transferGroupID, err)
		}
		removed = tag.RowsAffected()
		if removed == 0 {
			return apperrors.NotFoundError("transfer group %d not found", transferGroupID)
		}
		return nil
	})
	return removed, err
}

func (r *transactionRepository) DeleteTransactions(ctx context.Context, transactionIDs []int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = ANY($1)`, transactionIDs); err != nil {
			return fmt.Errorf("failed to delete transactions: %w", err)
		}
		return nil
	})
}
