package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// ReportingRepository defines aggregate queries used by reports and summaries.
type ReportingRepository interface {
	// GetCategorySums sums the absolute stored amounts of non-transfer transactions dated
	// within [from, to] grouped by category. Categories missing from the registry report as expense.
	GetCategorySums(ctx context.Context, containerID int64, from, to time.Time) ([]domain.CategorySum, error)

	// GetAccountSums sums stored amounts per account for transactions dated on or before asOf.
	// Accounts without transactions are absent from the map.
	GetAccountSums(ctx context.Context, containerID int64, asOf time.Time) (map[int64]int64, error)

	// GetNetAmount sums stored amounts of non-transfer transactions, optionally within [from, to].
	GetNetAmount(ctx context.Context, containerID int64, from, to *time.Time) (int64, error)

	// GetAvailableMonths lists the distinct "YYYY-MM" months with transactions, newest first.
	GetAvailableMonths(ctx context.Context, containerID int64) ([]string, error)
}
