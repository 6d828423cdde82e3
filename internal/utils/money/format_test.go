package money

import (
	"testing"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.DisplaySettings
		minor    int64
		want     string
	}{
		{"default usd", domain.DefaultDisplaySettings(), 123450, "$1,234.50"},
		{"negative", domain.DefaultDisplaySettings(), -2550, "-$25.50"},
		{"small amount", domain.DefaultDisplaySettings(), 5, "$0.05"},
		{
			name:     "euro after german",
			settings: domain.DisplaySettings{CurrencyCode: "EUR", Symbol: "€", Placement: domain.PlacementAfter, Locale: "de-DE"},
			minor:    123450,
			want:     "1.234,50 €",
		},
		{
			name:     "yen has no fraction",
			settings: domain.DisplaySettings{CurrencyCode: "JPY", Symbol: "¥", Placement: domain.PlacementBefore, Locale: "ja-JP"},
			minor:    1500,
			want:     "¥1,500",
		},
		{
			name:     "swiss apostrophe",
			settings: domain.DisplaySettings{CurrencyCode: "CHF", Symbol: "CHF", Placement: domain.PlacementAfter, Locale: "de-CH"},
			minor:    100000000,
			want:     "1'000'000.00 CHF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFormatter(tt.settings).Format(tt.minor))
		})
	}
}

func TestLocaleSeparators(t *testing.T) {
	d, th := LocaleSeparators("fr-FR")
	assert.Equal(t, ",", d)
	assert.Equal(t, " ", th)

	d, th = LocaleSeparators("not a locale!")
	assert.Equal(t, ".", d)
	assert.Equal(t, ",", th)

	assert.True(t, ValidLocale("en-GB"))
	assert.False(t, ValidLocale("??"))
}

func TestToMinor(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"25.50", 2550},
		{"25.5", 2550},
		{"1000", 100000},
		{"-3", -300},
		{" 0.01 ", 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToMinor(tt.in, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "abc", "1.005", "1e30", "NaN"} {
		_, err := ToMinor(bad, 2)
		assert.Error(t, err, bad)
	}
}

func TestFromMinor(t *testing.T) {
	assert.Equal(t, "-25.50", FromMinor(-2550, 2))
	assert.Equal(t, "0.05", FromMinor(5, 2))
	assert.Equal(t, "1500", FromMinor(1500, 0))
}

func TestFractionOf(t *testing.T) {
	assert.Equal(t, int32(2), FractionOf("eur"))
	assert.Equal(t, int32(0), FractionOf("JPY"))
	assert.Equal(t, int32(DefaultFraction), FractionOf("XYZ"))
}
