package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetCategorySums sums non-transfer magnitudes per category within the window
func (r *reportingRepository) GetCategorySums(ctx context.Context, containerID int64, from, to time.Time) ([]domain.CategorySum, error) {
	query := `
		SELECT
			t.category,
			COALESCE(c.category_type, 'expense') AS category_type,
			SUM(ABS(t.amount))::BIGINT AS total
		FROM transactions t
		LEFT JOIN categories c ON c.name = t.category
		WHERE t.container_id = $1
			AND t.transfer_group_id IS NULL
			AND t.transaction_date >= $2
			AND t.transaction_date <= $3
		GROUP BY t.category, c.category_type
	`

	rows, err := r.Pool.Query(ctx, query, containerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying category sums: %w", err)
	}
	defer rows.Close()

	var result []domain.CategorySum
	for rows.Next() {
		var row domain.CategorySum
		var kind string
		if err := rows.Scan(&row.Category, &kind, &row.Sum); err != nil {
			return nil, fmt.Errorf("error scanning category sum row: %w", err)
		}
		row.Type = domain.Kind(kind)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category sum rows: %w", err)
	}
	return result, nil
}

// GetAccountSums sums every account's amounts dated on or before asOf
func (r *reportingRepository) GetAccountSums(ctx context.Context, containerID int64, asOf time.Time) (map[int64]int64, error) {
	query := `
		SELECT account_id, SUM(amount)::BIGINT
		FROM transactions
		WHERE container_id = $1 AND transaction_date <= $2
		GROUP BY account_id
	`

	rows, err := r.Pool.Query(ctx, query, containerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying account sums: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]int64)
	for rows.Next() {
		var accountID, sum int64
		if err := rows.Scan(&accountID, &sum); err != nil {
			return nil, fmt.Errorf("error scanning account sum row: %w", err)
		}
		result[accountID] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account sum rows: %w", err)
	}
	return result, nil
}

// GetNetAmount sums non-transfer amounts, optionally bounded by from and to
func (r *reportingRepository) GetNetAmount(ctx context.Context, containerID int64, from, to *time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)::BIGINT
		FROM transactions
		WHERE container_id = $1
			AND transfer_group_id IS NULL
			AND ($2::TIMESTAMPTZ IS NULL OR transaction_date >= $2)
			AND ($3::TIMESTAMPTZ IS NULL OR transaction_date <= $3)
	`
	var net int64
	if err := r.Pool.QueryRow(ctx, query, containerID, from, to).Scan(&net); err != nil {
		return 0, fmt.Errorf("error querying net amount: %w", err)
	}
	return net, nil
}

// GetAvailableMonths lists the distinct months holding transactions, newest first
func (r *reportingRepository) GetAvailableMonths(ctx context.Context, containerID int64) ([]string, error) {
	query := `
		SELECT DISTINCT to_char(transaction_date AT TIME ZONE 'UTC', 'YYYY-MM') AS month
		FROM transactions
		WHERE container_id = $1
		ORDER BY month DESC
	`
	rows, err := r.Pool.Query(ctx, query, containerID)
	if err != nil {
		return nil, fmt.Errorf("error querying available months: %w", err)
	}
	defer rows.Close()

	months := []string{}
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("error scanning month: %w", err)
		}
		months = append(months, month)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating months: %w", err)
	}
	return months, nil
}
