package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/ledgerbook/internal/utils/money"
	"github.com/SscSPs/ledgerbook/internal/utils/period"
)

// amount converts a major-unit string typed by the user, e.g. "25.50", into minor units
// of the configured display currency.
func (a *app) amount(ctx context.Context, raw string) (int64, error) {
	settings, err := a.services.Settings.Load(ctx)
	if err != nil {
		settings = a.services.Settings.Default()
	}
	minor, err := money.ToMinor(raw, money.FractionOf(settings.CurrencyCode))
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %w", err)
	}
	return minor, nil
}

// formatter returns the display formatter, falling back to defaults when settings cannot be read.
func (a *app) formatter(ctx context.Context) *money.Formatter {
	f, err := a.services.Settings.Formatter(ctx)
	if err != nil {
		a.logger.Warn("Using default display settings", slog.String("error", err.Error()))
	}
	return f
}

// date parses an optional "YYYY-MM-DD" flag value. Empty means "now".
func date(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(period.DateLayout, raw, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return &d, nil
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, raw)
	}
	return id, nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format(period.DateLayout)
}
