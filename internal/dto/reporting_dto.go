package dto

import (
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/utils/csvio"
)

// ProfitAndLossParams selects the report window: a month, or an inclusive from/to day range.
type ProfitAndLossParams struct {
	Month string `form:"month"`
	From  string `form:"from"`
	To    string `form:"to"`
}

// BalanceSheetParams selects the as-of point: the end of a month, or the end of a day.
type BalanceSheetParams struct {
	Month string `form:"month"`
	AsOf  string `form:"asOf"`
}

// SummaryParams optionally restricts a summary to one month.
type SummaryParams struct {
	Month string `form:"month"`
}

// NetAmountResponse carries a monthly or all-time net.
type NetAmountResponse struct {
	ContainerID int64  `json:"containerID"`
	Month       string `json:"month,omitempty"`
	Net         int64  `json:"net"`
}

// AvailableMonthsResponse lists months holding transactions.
type AvailableMonthsResponse struct {
	Months []string `json:"months"`
}

// CategoryTotalsResponse lists expense totals per category.
type CategoryTotalsResponse struct {
	Month  string                  `json:"month,omitempty"`
	Totals []domain.CategoryAmount `json:"totals"`
}

// VerifyContainerResponse lists broken transfer groups.
type VerifyContainerResponse struct {
	ContainerID int64                   `json:"containerID"`
	Consistent  bool                    `json:"consistent"`
	Issues      []domain.IntegrityIssue `json:"issues"`
}

// ReconcileContainerResponse lists the transactions removed by a reconcile.
type ReconcileContainerResponse struct {
	ContainerID           int64   `json:"containerID"`
	RemovedTransactionIDs []int64 `json:"removedTransactionIDs"`
}

// ImportTransactionsForm carries the multipart fields of a CSV import.
// Column indexes are zero-based; a negative category column means "no category column".
type ImportTransactionsForm struct {
	AccountID      int64 `form:"accountID" binding:"required"`
	DateColumn     *int  `form:"dateColumn"`
	DescColumn     *int  `form:"descriptionColumn"`
	CategoryColumn *int  `form:"categoryColumn"`
	AmountColumn   *int  `form:"amountColumn"`
	SkipHeader     *bool `form:"skipHeader"`
}

// ColumnMapping overlays the provided column indexes on the default layout.
func (f ImportTransactionsForm) ColumnMapping() csvio.ColumnMapping {
	m := csvio.DefaultColumnMapping()
	if f.DateColumn != nil {
		m.Date = *f.DateColumn
	}
	if f.DescColumn != nil {
		m.Description = *f.DescColumn
	}
	if f.CategoryColumn != nil {
		m.Category = *f.CategoryColumn
	}
	if f.AmountColumn != nil {
		m.Amount = *f.AmountColumn
	}
	if f.SkipHeader != nil {
		m.SkipHeader = *f.SkipHeader
	}
	return m
}
