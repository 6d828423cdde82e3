// Package csvio reads and writes the CSV files used for transaction import and export.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/utils/money"
)

// ExportHeader is the header row of exported files.
var ExportHeader = []string{"ID", "Date", "Account", "Amount", "Description", "Category", "TransferGroup"}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"01-02-2006",
	"02-01-2006",
	domain.TimestampLayout,
	"01/02/2006 15:04",
}

var currencyMarks = strings.NewReplacer("$", "", "€", "", "£", "", ",", "")

// ColumnMapping tells which zero-based column holds each field.
type ColumnMapping struct {
	Amount      int  `json:"amount"`
	Description int  `json:"description"`
	Category    int  `json:"category"`
	Date        int  `json:"date"`
	SkipHeader  bool `json:"skipHeader"`
}

// DefaultColumnMapping matches the layout "Date,Description,Category,Amount" with a header.
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{Date: 0, Description: 1, Category: 2, Amount: 3, SkipHeader: true}
}

// Row is one parsed import row.
type Row struct {
	Line        int
	Amount      int64
	Description string
	Category    string
	Date        time.Time
}

// ParseAmount strips currency marks and thousands separators and converts to minor units.
func ParseAmount(raw string) (int64, error) {
	cleaned := strings.TrimSpace(currencyMarks.Replace(raw))
	return money.ToMinor(cleaned, money.DefaultFraction)
}

// ParseDate accepts the date layouts commonly produced by banks and spreadsheets.
// Ambiguous day/month strings resolve month-first.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", raw)
}

// Reader yields parsed rows and per-row errors from an import file.
type Reader struct {
	csv     *csv.Reader
	mapping ColumnMapping
	line    int
}

// NewReader wraps r. Rows may have a variable number of fields.
func NewReader(r io.Reader, mapping ColumnMapping) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr, mapping: mapping}
}

// Next returns the next row. It returns io.EOF at the end of input; any other error is
// specific to the returned line and reading may continue.
func (r *Reader) Next() (Row, error) {
	for {
		record, err := r.csv.Read()
		r.line++
		if err == io.EOF {
			return Row{}, io.EOF
		}
		if err != nil {
			return Row{Line: r.line}, fmt.Errorf("row %d: failed to parse CSV: %w", r.line, err)
		}
		if r.line == 1 && r.mapping.SkipHeader {
			continue
		}
		return r.parse(record)
	}
}

func (r *Reader) parse(record []string) (Row, error) {
	row := Row{Line: r.line}
	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	amountStr := field(r.mapping.Amount)
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return row, fmt.Errorf("row %d: invalid amount '%s': %w", r.line, amountStr, err)
	}
	if amount == 0 {
		return row, fmt.Errorf("row %d: invalid amount '%s': must not be zero", r.line, amountStr)
	}
	dateStr := field(r.mapping.Date)
	date, err := ParseDate(dateStr)
	if err != nil {
		return row, fmt.Errorf("row %d: invalid date '%s': %w", r.line, dateStr, err)
	}

	row.Amount = amount
	row.Date = date
	row.Description = field(r.mapping.Description)
	row.Category = field(r.mapping.Category)
	return row, nil
}

// AccountNamer resolves account ids to names for export.
type AccountNamer func(accountID int64) string

// WriteTransactions writes txns with ExportHeader. Amounts are major units with two decimals.
func WriteTransactions(w io.Writer, txns []domain.Transaction, accountName AccountNamer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, txn := range txns {
		record := []string{
			strconv.FormatInt(txn.TransactionID, 10),
			txn.Date.UTC().Format(domain.TimestampLayout),
			accountName(txn.AccountID),
			money.FromMinor(txn.Amount, money.DefaultFraction),
			txn.Description,
			txn.Category,
			strconv.FormatInt(txn.TransferGroupID, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing transaction %d: %w", txn.TransactionID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
