package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
	"github.com/SscSPs/ledgerbook/internal/utils/pagination"
)

type transactionRepository struct {
	BaseRepository
}

func newTransactionRepository(db *sql.DB) *transactionRepository {
	return &transactionRepository{BaseRepository{DB: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

const transactionColumns = `transaction_id, container_id, account_id, amount, description, category, transaction_date,
	transfer_group_id, counterparty_account_id, created_at, last_updated_at`

func scanTransaction(row interface{ Scan(...any) error }) (models.Transaction, error) {
	var m models.Transaction
	var date, createdAt, updatedAt string
	var group, counterparty sql.NullInt64
	if err := row.Scan(&m.TransactionID, &m.ContainerID, &m.AccountID, &m.Amount, &m.Description, &m.Category,
		&date, &group, &counterparty, &createdAt, &updatedAt); err != nil {
		return m, err
	}
	if group.Valid {
		m.TransferGroupID = &group.Int64
	}
	if counterparty.Valid {
		m.CounterpartyAccountID = &counterparty.Int64
	}
	var err error
	if m.TransactionDate, err = parseTime(date); err != nil {
		return m, err
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, err
	}
	if m.LastUpdatedAt, err = parseTime(updatedAt); err != nil {
		return m, err
	}
	return m, nil
}

func collectTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
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

func insertTransaction(ctx context.Context, q querier, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	var id int64
	err := q.QueryRowContext(ctx,
		`INSERT INTO transactions (container_id, account_id, amount, description, category, transaction_date,
			transfer_group_id, counterparty_account_id, created_at, last_updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING transaction_id`,
		m.ContainerID, m.AccountID, m.Amount, m.Description, m.Category, formatTime(m.TransactionDate),
		m.TransferGroupID, m.CounterpartyAccountID, formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transaction on account %d: %w", m.AccountID, err)
	}
	return id, nil
}

// normalize truncates timestamps to the precision the store keeps.
func normalize(txn domain.Transaction) domain.Transaction {
	txn.Date = txn.Date.UTC().Truncate(time.Second)
	txn.CreatedAt = txn.CreatedAt.UTC().Truncate(time.Second)
	txn.LastUpdatedAt = txn.LastUpdatedAt.UTC().Truncate(time.Second)
	return txn
}

func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	id, err := insertTransaction(ctx, r.DB, txn)
	if err != nil {
		return nil, err
	}
	saved := normalize(txn)
	saved.TransactionID = id
	return &saved, nil
}

// SaveTransfer allocates the group id and writes both legs in one database transaction.
func (r *transactionRepository) SaveTransfer(ctx context.Context, from domain.Transaction, to domain.Transaction) (*domain.Transfer, error) {
	var transfer domain.Transfer
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var groupID int64
		if err := tx.QueryRowContext(ctx,
			`INSERT INTO transfer_groups (created_at) VALUES (?) RETURNING transfer_group_id`, formatTime(from.CreatedAt),
		).Scan(&groupID); err != nil {
			return fmt.Errorf("allocate transfer group: %w", err)
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
		transfer = domain.Transfer{TransferGroupID: groupID, From: normalize(from), To: normalize(to)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (r *transactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = ?`, transactionID)
	m, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("transaction %d not found", transactionID)
		}
		return nil, fmt.Errorf("find transaction %d: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *transactionRepository) FindTransferGroup(ctx context.Context, transferGroupID int64) ([]domain.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE transfer_group_id = ? ORDER BY transaction_id`, transferGroupID)
	if err != nil {
		return nil, fmt.Errorf("find transfer group %d: %w", transferGroupID, err)
	}
	return collectTransactions(rows)
}

func (r *transactionRepository) ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, after *pagination.Cursor) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = ?`
	args := []any{accountID}
	if after != nil {
		date := formatTime(after.Date)
		query += ` AND (transaction_date < ? OR (transaction_date = ? AND transaction_id < ?))`
		args = append(args, date, date, after.ID)
	}
	query += ` ORDER BY transaction_date DESC, transaction_id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions of account %d: %w", accountID, err)
	}
	return collectTransactions(rows)
}

func (r *transactionRepository) ListTransactions(ctx context.Context, containerID int64, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE container_id = ?`)
	args := []any{containerID}
	if filter.From != nil {
		sb.WriteString(` AND transaction_date >= ?`)
		args = append(args, formatTime(*filter.From))
	}
	if filter.To != nil {
		sb.WriteString(` AND transaction_date <= ?`)
		args = append(args, formatTime(*filter.To))
	}
	sb.WriteString(` ORDER BY transaction_date DESC, transaction_id DESC`)
	if filter.Limit > 0 {
		sb.WriteString(` LIMIT ?`)
		args = append(args, filter.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions of container %d: %w", containerID, err)
	}
	return collectTransactions(rows)
}

func (r *transactionRepository) ListTransferLegs(ctx context.Context, containerID int64) ([]domain.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE container_id = ? AND transfer_group_id IS NOT NULL
		 ORDER BY transfer_group_id, transaction_id`, containerID)
	if err != nil {
		return nil, fmt.Errorf("list transfer legs of container %d: %w", containerID, err)
	}
	return collectTransactions(rows)
}

func (r *transactionRepository) SumAccount(ctx context.Context, accountID int64, asOf *time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE account_id = ?`
	args := []any{accountID}
	if asOf != nil {
		query += ` AND transaction_date <= ?`
		args = append(args, formatTime(*asOf))
	}
	var sum int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum account %d: %w", accountID, err)
	}
	return sum, nil
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	res, err := r.DB.ExecContext(ctx,
		`UPDATE transactions SET account_id = ?, amount = ?, description = ?, category = ?, transaction_date = ?, last_updated_at = ?
		 WHERE transaction_id = ? AND transfer_group_id IS NULL`,
		m.AccountID, m.Amount, m.Description, m.Category, formatTime(m.TransactionDate), formatTime(m.LastUpdatedAt), m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", m.TransactionID, err)
	}
	return checkAffected(res, apperrors.NotFoundError("transaction %d not found", m.TransactionID))
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", transactionID, err)
	}
	return checkAffected(res, apperrors.NotFoundError("transaction %d not found", transactionID))
}

func (r *transactionRepository) DeleteTransferGroup(ctx context.Context, transferGroupID int64) (int64, error) {
	var removed int64
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE transfer_group_id = ?`, transferGroupID)
		if err != nil {
			return fmt.Errorf("delete transfer group %d: %w", transferGroupID, err)
		}
		if removed, err = res.RowsAffected(); err != nil {
			return err
		}
		if removed == 0 {
			return apperrors.NotFoundError("transfer group %d not found", transferGroupID)
		}
		return nil
	})
	return removed, err
}

func (r *transactionRepository) DeleteTransactions(ctx context.Context, transactionIDs []int64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, id := range transactionIDs {
			if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?`, id); err != nil {
				return fmt.Errorf("delete transaction %d: %w", id, err)
			}
		}
		return nil
	})
}
