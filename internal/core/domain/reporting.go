package domain

import "time"

// CategorySum is the per-category sum of entry magnitudes for non-transfer entries. Each
// stored amount counts by its absolute value, so the sign convention of the account does
// not matter.
type CategorySum struct {
	Category string
	Type     Kind
	Sum      int64
}

// CategoryAmount is a category line of a Profit-and-Loss report.
type CategoryAmount struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// ProfitAndLossReport summarises income and expense categories over a period.
type ProfitAndLossReport struct {
	ContainerID  int64            `json:"containerID"`
	PeriodStart  time.Time        `json:"periodStart"`
	PeriodEnd    time.Time        `json:"periodEnd"`
	Income       []CategoryAmount `json:"income"`
	Expense      []CategoryAmount `json:"expense"`
	TotalIncome  int64            `json:"totalIncome"`
	TotalExpense int64            `json:"totalExpense"`
	NetIncome    int64            `json:"netIncome"`
}

// AccountAmount is an account line of a Balance-Sheet report.
type AccountAmount struct {
	AccountID      int64          `json:"accountID"`
	Name           string         `json:"name"`
	Classification Classification `json:"classification"`
	Balance        int64          `json:"balance"`
	Contra         bool           `json:"contra"`
}

// BalanceSheetReport lists account balances as of a date.
// TotalAssets is GrossAssets minus ContraAssets.
type BalanceSheetReport struct {
	ContainerID      int64           `json:"containerID"`
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	GrossAssets      int64           `json:"grossAssets"`
	ContraAssets     int64           `json:"contraAssets"`
	TotalAssets      int64           `json:"totalAssets"`
	TotalLiabilities int64           `json:"totalLiabilities"`
	TotalEquity      int64           `json:"totalEquity"`
}

// IntegrityIssue describes one broken transfer group.
type IntegrityIssue struct {
	TransferGroupID int64   `json:"transferGroupID"`
	TransactionIDs  []int64 `json:"transactionIDs"`
	Reason          string  `json:"reason"`
}

// ImportResult reports the outcome of a CSV import.
type ImportResult struct {
	SuccessCount int      `json:"successCount"`
	ErrorCount   int      `json:"errorCount"`
	Errors       []string `json:"errors"`
}
