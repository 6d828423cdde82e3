package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/platform/cache"
	"github.com/SscSPs/ledgerbook/internal/utils/period"
	"golang.org/x/sync/singleflight"
)

// Bounds used for "all time" category totals.
var (
	allTimeFrom = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	allTimeTo   = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// ReportCacheConfig sizes the report memoization. A zero Size disables caching.
type ReportCacheConfig struct {
	Size int
	TTL  time.Duration
}

// ReportingServiceImpl implements the ReportingService interface.
// It is also the cache invalidator the change notifier talks to.
type ReportingServiceImpl struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
	pnlCache      *cache.LRUCache[domain.ProfitAndLossReport]
	sheetCache    *cache.LRUCache[domain.BalanceSheetReport]
	group         singleflight.Group
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	accountRepo portsrepo.AccountReader,
	cacheCfg ReportCacheConfig,
	options ...Option,
) *ReportingServiceImpl {
	svc := &ReportingServiceImpl{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
		pnlCache:      cache.NewLRUCache[domain.ProfitAndLossReport](cacheCfg.Size, cacheCfg.TTL),
		sheetCache:    cache.NewLRUCache[domain.BalanceSheetReport](cacheCfg.Size, cacheCfg.TTL),
	}
	svc.apply(options)
	return svc
}

var (
	_ portssvc.ReportingService = (*ReportingServiceImpl)(nil)
	_ CacheInvalidator          = (*ReportingServiceImpl)(nil)
)

func reportKey(containerID int64, kind string, from, to time.Time) string {
	return fmt.Sprintf("%d|%s|%d-%d", containerID, kind, from.Unix(), to.Unix())
}

// InvalidateContainer drops memoized reports of a container, or of every container for id 0.
func (s *ReportingServiceImpl) InvalidateContainer(containerID int64) {
	if containerID == 0 {
		s.pnlCache.Clear()
		s.sheetCache.Clear()
		return
	}
	prefix := fmt.Sprintf("%d|", containerID)
	s.pnlCache.DeletePrefix(prefix)
	s.sheetCache.DeletePrefix(prefix)
}

// ProfitAndLoss generates a profit and loss report for a specific period
func (s *ReportingServiceImpl) ProfitAndLoss(ctx context.Context, containerID int64, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	from, to = from.UTC(), to.UTC()
	if to.Before(from) {
		return nil, apperrors.ValidationError("period start %s is after period end %s", from.Format(time.RFC3339), to.Format(time.RFC3339))
	}

	key := reportKey(containerID, "pnl", from, to)
	if report, ok := s.pnlCache.Get(key); ok {
		s.LogDebug(ctx, "Profit and loss served from cache", slog.String("key", key))
		return &report, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		var report domain.ProfitAndLossReport
		err := s.withRead(containerID, func() error {
			if err := s.requireContainer(ctx, containerID); err != nil {
				return err
			}
			sums, err := s.reportingRepo.GetCategorySums(ctx, containerID, from, to)
			if err != nil {
				return fmt.Errorf("failed to retrieve category sums: %w", err)
			}
			report = buildProfitAndLoss(containerID, from, to, sums)
			// Stored while the lock is held so a concurrent write cannot leave a stale entry
			s.pnlCache.Set(key, report)
			return nil
		})
		return report, err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate profit and loss report",
			slog.Int64("container_id", containerID),
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, err
	}

	report := v.(domain.ProfitAndLossReport)
	s.LogInfo(ctx, "Profit and loss report generated",
		slog.Int64("container_id", containerID),
		slog.Int("income_categories", len(report.Income)),
		slog.Int("expense_categories", len(report.Expense)))
	return &report, nil
}

// buildProfitAndLoss turns category magnitudes into report lines bucketed by category type.
func buildProfitAndLoss(containerID int64, from, to time.Time, sums []domain.CategorySum) domain.ProfitAndLossReport {
	report := domain.ProfitAndLossReport{
		ContainerID: containerID,
		PeriodStart: from,
		PeriodEnd:   to,
		Income:      []domain.CategoryAmount{},
		Expense:     []domain.CategoryAmount{},
	}
	for _, sum := range sums {
		line := domain.CategoryAmount{Category: sum.Category, Total: sum.Sum}
		if sum.Type == domain.KindIncome {
			report.Income = append(report.Income, line)
			report.TotalIncome += line.Total
		} else {
			report.Expense = append(report.Expense, line)
			report.TotalExpense += line.Total
		}
	}
	sortCategoryAmounts(report.Income)
	sortCategoryAmounts(report.Expense)
	report.NetIncome = report.TotalIncome - report.TotalExpense
	return report
}

// sortCategoryAmounts orders by total descending, then name ascending.
func sortCategoryAmounts(lines []domain.CategoryAmount) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Total != lines[j].Total {
			return lines[i].Total > lines[j].Total
		}
		return lines[i].Category < lines[j].Category
	})
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// ProfitAndLossForMonth generates a profit and loss report for a calendar month
func (s *ReportingServiceImpl) ProfitAndLossForMonth(ctx context.Context, containerID int64, month string) (*domain.ProfitAndLossReport, error) {
	from, to, err := period.MonthRange(month)
	if err != nil {
		return nil, apperrors.ValidationError("%v", err)
	}
	return s.ProfitAndLoss(ctx, containerID, from, to)
}

// BalanceSheet generates a balance sheet report as of a specific date
func (s *ReportingServiceImpl) BalanceSheet(ctx context.Context, containerID int64, asOf time.Time) (*domain.BalanceSheetReport, error) {
	asOf = asOf.UTC()
	key := reportKey(containerID, "bs", asOf, asOf)
	if report, ok := s.sheetCache.Get(key); ok {
		s.LogDebug(ctx, "Balance sheet served from cache", slog.String("key", key))
		return &report, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		var report domain.BalanceSheetReport
		err := s.withRead(containerID, func() error {
			if err := s.requireContainer(ctx, containerID); err != nil {
				return err
			}
			accounts, err := s.accountRepo.ListAccounts(ctx, containerID)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}
			sums, err := s.reportingRepo.GetAccountSums(ctx, containerID, asOf)
			if err != nil {
				return fmt.Errorf("failed to retrieve account sums: %w", err)
			}
			report = buildBalanceSheet(containerID, asOf, accounts, sums)
			s.sheetCache.Set(key, report)
			return nil
		})
		return report, err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate balance sheet report",
			slog.Int64("container_id", containerID),
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, err
	}

	report := v.(domain.BalanceSheetReport)
	s.LogInfo(ctx, "Balance sheet report generated",
		slog.Int64("container_id", containerID),
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)))
	return &report, nil
}

// buildBalanceSheet partitions accounts (already in creation order) by classification.
// Contra-asset accounts sit with the assets and are subtracted from the asset total.
func buildBalanceSheet(containerID int64, asOf time.Time, accounts []domain.Account, sums map[int64]int64) domain.BalanceSheetReport {
	report := domain.BalanceSheetReport{
		ContainerID: containerID,
		AsOf:        asOf,
		Assets:      []domain.AccountAmount{},
		Liabilities: []domain.AccountAmount{},
		Equity:      []domain.AccountAmount{},
	}
	for _, acc := range accounts {
		line := domain.AccountAmount{
			AccountID:      acc.AccountID,
			Name:           acc.Name,
			Classification: acc.Classification,
			Balance:        domain.NewAccountBalance(acc, sums[acc.AccountID]).Balance,
		}
		switch acc.Classification {
		case domain.Asset:
			report.Assets = append(report.Assets, line)
			report.GrossAssets += line.Balance
		case domain.ContraAsset:
			line.Contra = true
			report.Assets = append(report.Assets, line)
			report.ContraAssets += line.Balance
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, line)
			report.TotalLiabilities += line.Balance
		case domain.Equity:
			report.Equity = append(report.Equity, line)
			report.TotalEquity += line.Balance
		}
	}
	report.TotalAssets = report.GrossAssets - report.ContraAssets
	return report
}

// BalanceSheetForMonth generates a balance sheet as of the last second of a month
func (s *ReportingServiceImpl) BalanceSheetForMonth(ctx context.Context, containerID int64, month string) (*domain.BalanceSheetReport, error) {
	_, end, err := period.MonthRange(month)
	if err != nil {
		return nil, apperrors.ValidationError("%v", err)
	}
	return s.BalanceSheet(ctx, containerID, end)
}

// MonthlyNet sums non-transfer entries of one month
func (s *ReportingServiceImpl) MonthlyNet(ctx context.Context, containerID int64, month string) (int64, error) {
	from, to, err := period.MonthRange(month)
	if err != nil {
		return 0, apperrors.ValidationError("%v", err)
	}
	return s.netAmount(ctx, containerID, &from, &to)
}

// AllTimeNet sums every non-transfer entry
func (s *ReportingServiceImpl) AllTimeNet(ctx context.Context, containerID int64) (int64, error) {
	return s.netAmount(ctx, containerID, nil, nil)
}

func (s *ReportingServiceImpl) netAmount(ctx context.Context, containerID int64, from, to *time.Time) (int64, error) {
	var net int64
	err := s.withRead(containerID, func() error {
		if err := s.requireContainer(ctx, containerID); err != nil {
			return err
		}
		var err error
		net, err = s.reportingRepo.GetNetAmount(ctx, containerID, from, to)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to compute net amount", slog.Int64("container_id", containerID))
		return 0, err
	}
	return net, nil
}

// AvailableMonths lists months with transactions, newest first
func (s *ReportingServiceImpl) AvailableMonths(ctx context.Context, containerID int64) ([]string, error) {
	if err := s.requireContainer(ctx, containerID); err != nil {
		return nil, err
	}
	months, err := s.reportingRepo.GetAvailableMonths(ctx, containerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list available months", slog.Int64("container_id", containerID))
		return nil, err
	}
	return months, nil
}

// CategoryTotals lists expense totals per category for a month, or all time when month is empty
func (s *ReportingServiceImpl) CategoryTotals(ctx context.Context, containerID int64, month string) ([]domain.CategoryAmount, error) {
	from, to := allTimeFrom, allTimeTo
	if month != "" {
		var err error
		from, to, err = period.MonthRange(month)
		if err != nil {
			return nil, apperrors.ValidationError("%v", err)
		}
	}

	var totals []domain.CategoryAmount
	err := s.withRead(containerID, func() error {
		if err := s.requireContainer(ctx, containerID); err != nil {
			return err
		}
		sums, err := s.reportingRepo.GetCategorySums(ctx, containerID, from, to)
		if err != nil {
			return err
		}
		totals = []domain.CategoryAmount{}
		for _, sum := range sums {
			if sum.Type == domain.KindIncome {
				continue
			}
			totals = append(totals, domain.CategoryAmount{Category: sum.Category, Total: sum.Sum})
		}
		sortCategoryAmounts(totals)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to compute category totals",
			slog.Int64("container_id", containerID),
			slog.String("month", month))
		return nil, err
	}
	return totals, nil
}
