package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *sql.DB) *reportingRepository {
	return &reportingRepository{BaseRepository{DB: db}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) GetCategorySums(ctx context.Context, containerID int64, from, to time.Time) ([]domain.CategorySum, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT t.category, COALESCE(c.category_type, 'expense'), SUM(ABS(t.amount))
		 FROM transactions t
		 LEFT JOIN categories c ON c.name = t.category
		 WHERE t.container_id = ? AND t.transfer_group_id IS NULL
		   AND t.transaction_date >= ? AND t.transaction_date <= ?
		 GROUP BY t.category, c.category_type`,
		containerID, formatTime(from), formatTime(to),
	)
	if err != nil {
		return nil, fmt.Errorf("category sums of container %d: %w", containerID, err)
	}
	defer rows.Close()

	var sums []domain.CategorySum
	for rows.Next() {
		var s domain.CategorySum
		var kind string
		if err := rows.Scan(&s.Category, &kind, &s.Sum); err != nil {
			return nil, fmt.Errorf("scan category sum: %w", err)
		}
		s.Type = domain.Kind(kind)
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

func (r *reportingRepository) GetAccountSums(ctx context.Context, containerID int64, asOf time.Time) (map[int64]int64, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT account_id, SUM(amount) FROM transactions
		 WHERE container_id = ? AND transaction_date <= ?
		 GROUP BY account_id`,
		containerID, formatTime(asOf),
	)
	if err != nil {
		return nil, fmt.Errorf("account sums of container %d: %w", containerID, err)
	}
	defer rows.Close()

	sums := make(map[int64]int64)
	for rows.Next() {
		var accountID, sum int64
		if err := rows.Scan(&accountID, &sum); err != nil {
			return nil, fmt.Errorf("scan account sum: %w", err)
		}
		sums[accountID] = sum
	}
	return sums, rows.Err()
}

func (r *reportingRepository) GetNetAmount(ctx context.Context, containerID int64, from, to *time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE container_id = ? AND transfer_group_id IS NULL`
	args := []any{containerID}
	if from != nil {
		query += ` AND transaction_date >= ?`
		args = append(args, formatTime(*from))
	}
	if to != nil {
		query += ` AND transaction_date <= ?`
		args = append(args, formatTime(*to))
	}
	var net int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&net); err != nil {
		return 0, fmt.Errorf("net amount of container %d: %w", containerID, err)
	}
	return net, nil
}

func (r *reportingRepository) GetAvailableMonths(ctx context.Context, containerID int64) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT DISTINCT substr(transaction_date, 1, 7) AS month FROM transactions
		 WHERE container_id = ? ORDER BY month DESC`, containerID)
	if err != nil {
		return nil, fmt.Errorf("available months of container %d: %w", containerID, err)
	}
	defer rows.Close()

	months := []string{}
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("scan month: %w", err)
		}
		months = append(months, month)
	}
	return months, rows.Err()
}
