// Package money converts between major-unit strings and integer minor units, and formats
// minor units for display according to explicit DisplaySettings.
package money

import (
	"fmt"
	"math"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// DefaultFraction is the number of minor-unit digits assumed when a currency is unknown.
const DefaultFraction = 2

var maxMinor = decimal.NewFromInt(math.MaxInt64)
var minMinor = decimal.NewFromInt(math.MinInt64)

// separators per base language: decimal mark, thousands separator.
var separators = map[string][2]string{
	"en": {".", ","},
	"ja": {".", ","},
	"zh": {".", ","},
	"ko": {".", ","},
	"he": {".", ","},
	"th": {".", ","},
	"de": {",", "."},
	"es": {",", "."},
	"it": {",", "."},
	"nl": {",", "."},
	"pt": {",", "."},
	"id": {",", "."},
	"tr": {",", "."},
	"da": {",", "."},
	"fr": {",", " "},
	"ru": {",", " "},
	"pl": {",", " "},
	"cs": {",", " "},
	"sv": {",", " "},
	"nb": {",", " "},
	"fi": {",", " "},
	"uk": {",", " "},
}

// Formatter renders minor units using one DisplaySettings value.
type Formatter struct {
	settings domain.DisplaySettings
	inner    *gomoney.Formatter
}

// FractionOf returns the minor-unit digits of an ISO 4217 code, DefaultFraction when unknown.
func FractionOf(code string) int32 {
	if cur := gomoney.GetCurrency(strings.ToUpper(code)); cur != nil {
		return int32(cur.Fraction)
	}
	return DefaultFraction
}

// NewFormatter builds a Formatter. Unknown currencies use two fraction digits and unknown
// locales fall back to "." and ",".
func NewFormatter(settings domain.DisplaySettings) *Formatter {
	fraction := int(FractionOf(settings.CurrencyCode))

	decimalMark, thousand := LocaleSeparators(settings.Locale)

	template := "$1"
	if settings.Placement == domain.PlacementAfter {
		template = "1 $"
	}

	return &Formatter{
		settings: settings,
		inner:    gomoney.NewFormatter(fraction, decimalMark, thousand, settings.Symbol, template),
	}
}

// Format renders an amount of minor units, e.g. 123450 -> "$1,234.50".
func (f *Formatter) Format(minor int64) string {
	return f.inner.Format(minor)
}

// Settings returns the settings the formatter was built from.
func (f *Formatter) Settings() domain.DisplaySettings {
	return f.settings
}

// LocaleSeparators returns the decimal mark and thousands separator for a BCP 47 tag.
func LocaleSeparators(locale string) (string, string) {
	tag, err := language.Parse(locale)
	if err != nil {
		return ".", ","
	}
	if tag == language.MustParse("de-CH") {
		return ".", "'"
	}
	base, _ := tag.Base()
	if seps, ok := separators[base.String()]; ok {
		return seps[0], seps[1]
	}
	return ".", ","
}

// ValidLocale reports whether locale is a well-formed BCP 47 tag.
func ValidLocale(locale string) bool {
	_, err := language.Parse(locale)
	return err == nil
}

// ToMinor parses a major-unit amount such as "25.50" or "-3" into minor units.
// More fraction digits than fraction allows is an error, never a silent rounding.
func ToMinor(amount string, fraction int32) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as a number", amount)
	}
	shifted := d.Shift(fraction)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has more than %d decimal places", amount, fraction)
	}
	if shifted.GreaterThan(maxMinor) || shifted.LessThan(minMinor) {
		return 0, fmt.Errorf("amount %q is out of range", amount)
	}
	return shifted.IntPart(), nil
}

// FromMinor renders minor units as a plain major-unit string with fraction digits,
// e.g. -2550 -> "-25.50". Used for CSV files and machine-readable output.
func FromMinor(minor int64, fraction int32) string {
	return decimal.New(minor, -fraction).StringFixed(fraction)
}
