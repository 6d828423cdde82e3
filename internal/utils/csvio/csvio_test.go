package csvio

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"$1,234.56", 123456},
		{"-25.50", -2550},
		{"€10", 1000},
		{"£ 3.2", 320},
		{"  42  ", 4200},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAmount("twelve")
	assert.Error(t, err)
	_, err = ParseAmount("1.234")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-09", "03/09/2024", "2024/03/09", "03-09-2024"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	got, err := ParseDate("25/12/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-03-09 14:05:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC), got)

	_, err = ParseDate("March 9th")
	assert.Error(t, err)
}

func TestReader(t *testing.T) {
	input := strings.Join([]string{
		"Date,Description,Category,Amount",
		"2024-01-05,Groceries,Food & Dining,-45.10",
		"2024-01-06,Salary,Income,\"2,500.00\"",
		"bad-date,Broken,Other,1.00",
		"2024-01-07,Zero,Other,0",
		"2024-01-08,Short",
	}, "\n")

	r := NewReader(strings.NewReader(input), DefaultColumnMapping())

	row, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, row.Line)
	assert.Equal(t, int64(-4510), row.Amount)
	assert.Equal(t, "Groceries", row.Description)
	assert.Equal(t, "Food & Dining", row.Category)

	row, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(250000), row.Amount)

	_, err = r.Next()
	assert.ErrorContains(t, err, "row 4: invalid date")

	_, err = r.Next()
	assert.ErrorContains(t, err, "must not be zero")

	_, err = r.Next()
	assert.ErrorContains(t, err, "row 6: invalid amount")

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestWriteTransactions(t *testing.T) {
	txns := []domain.Transaction{
		{TransactionID: 1, AccountID: 7, Amount: -2550, Description: "Lunch, with team", Category: "Food & Dining", Date: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)},
		{TransactionID: 2, AccountID: 7, Amount: -10000, Description: "Transfer", Category: domain.TransferCategory, Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), TransferGroupID: 1},
	}

	var buf bytes.Buffer
	err := WriteTransactions(&buf, txns, func(id int64) string { return "Cash" })
	require.NoError(t, err)

	want := "ID,Date,Account,Amount,Description,Category,TransferGroup\n" +
		"1,2024-01-02 12:00:00,Cash,-25.50,\"Lunch, with team\",Food & Dining,0\n" +
		"2,2024-01-03 00:00:00,Cash,-100.00,Transfer,Transfer,1\n"
	assert.Equal(t, want, buf.String())
}
