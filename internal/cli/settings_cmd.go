package cli

import (
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/money"
	"github.com/spf13/cobra"
)

const settingsExample = 123456

func newSettingsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change how amounts are displayed",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the display settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := a.services.Settings.Load(cmd.Context())
			if err != nil {
				return err
			}
			return a.emitSettings(settings)
		},
	})

	var currency, symbol, placement, locale string
	set := &cobra.Command{
		Use:   "set",
		Short: "Change display settings; unspecified fields keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			settings, err := a.services.Settings.Load(ctx)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("currency") {
				settings.CurrencyCode = currency
			}
			if flags.Changed("symbol") {
				settings.Symbol = symbol
			}
			if flags.Changed("placement") {
				settings.Placement = domain.Placement(placement)
			}
			if flags.Changed("locale") {
				settings.Locale = locale
			}
			saved, err := a.services.Settings.Save(ctx, settings)
			if err != nil {
				return err
			}
			return a.emitSettings(saved)
		},
	}
	set.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code, e.g. EUR")
	set.Flags().StringVar(&symbol, "symbol", "", "currency symbol, e.g. €")
	set.Flags().StringVar(&placement, "placement", "", "before or after")
	set.Flags().StringVar(&locale, "locale", "", "BCP 47 locale for separators, e.g. de-DE")
	cmd.AddCommand(set)

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the default display settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := a.services.Settings.Reset(cmd.Context())
			if err != nil {
				return err
			}
			return a.emitSettings(settings)
		},
	})

	return cmd
}

func (a *app) emitSettings(s domain.DisplaySettings) error {
	resp := dto.DisplaySettingsResponse{DisplaySettings: s, Example: money.NewFormatter(s).Format(settingsExample)}
	return a.render.emit(resp, func() string {
		return heading("Display settings") + table([]string{"Setting", "Value"}, [][]string{
			{"Currency", s.CurrencyCode},
			{"Symbol", s.Symbol},
			{"Placement", string(s.Placement)},
			{"Locale", s.Locale},
			{"Example", resp.Example},
		}) + fmt.Sprintln()
	})
}
