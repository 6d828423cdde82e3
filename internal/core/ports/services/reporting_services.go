package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// ProfitAndLoss generates a profit and loss report for the inclusive window [from, to]
	ProfitAndLoss(ctx context.Context, containerID int64, from, to time.Time) (*domain.ProfitAndLossReport, error)

	// ProfitAndLossForMonth generates a profit and loss report for a "YYYY-MM" calendar month
	ProfitAndLossForMonth(ctx context.Context, containerID int64, month string) (*domain.ProfitAndLossReport, error)

	// BalanceSheet generates a balance sheet report as of a specific instant
	BalanceSheet(ctx context.Context, containerID int64, asOf time.Time) (*domain.BalanceSheetReport, error)

	// BalanceSheetForMonth generates a balance sheet as of the end of a "YYYY-MM" month
	BalanceSheetForMonth(ctx context.Context, containerID int64, month string) (*domain.BalanceSheetReport, error)

	// MonthlyNet sums stored amounts of non-transfer transactions in a month
	MonthlyNet(ctx context.Context, containerID int64, month string) (int64, error)

	// AllTimeNet sums stored amounts of every non-transfer transaction
	AllTimeNet(ctx context.Context, containerID int64) (int64, error)

	// AvailableMonths lists the months holding transactions, newest first
	AvailableMonths(ctx context.Context, containerID int64) ([]string, error)

	// CategoryTotals lists expense totals per category, for a month or all time when month is empty
	CategoryTotals(ctx context.Context, containerID int64, month string) ([]domain.CategoryAmount, error)
}
