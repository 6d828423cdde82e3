package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		month string
		start time.Time
		end   time.Time
	}{
		{"2024-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)},
		{"2024-02", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)},
		{"2023-02", time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 2, 28, 23, 59, 59, 0, time.UTC)},
		{"2023-12", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			start, end, err := MonthRange(tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestMonthRange_Invalid(t *testing.T) {
	for _, month := range []string{"", "2024", "2024-13", "24-01", "2024/01"} {
		_, _, err := MonthRange(month)
		assert.Error(t, err, month)
	}
}

func TestDayRange(t *testing.T) {
	start, end, err := DayRange("2024-03-01", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC), end)

	_, _, err = DayRange("2024-03-15", "2024-03-01")
	assert.Error(t, err)
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, "2024-07", MonthOf(time.Date(2024, 7, 31, 23, 0, 0, 0, time.UTC)))
}
