package domain

// Placement tells on which side of the amount the currency symbol goes.
type Placement string

const (
	PlacementBefore Placement = "before"
	PlacementAfter  Placement = "after"
)

// DisplaySettingsKey is the fixed key under which display settings are persisted.
const DisplaySettingsKey = "display_settings"

// DisplaySettings drive money formatting only. They never influence stored amounts.
type DisplaySettings struct {
	CurrencyCode string    `json:"currencyCode" yaml:"currency_code" validate:"required,iso4217"`
	Symbol       string    `json:"symbol" yaml:"symbol" validate:"required,max=8"`
	Placement    Placement `json:"placement" yaml:"placement" validate:"required,oneof=before after"`
	Locale       string    `json:"locale" yaml:"locale" validate:"required"`
}

// DefaultDisplaySettings returns the settings used when nothing has been saved.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		CurrencyCode: "USD",
		Symbol:       "$",
		Placement:    PlacementBefore,
		Locale:       "en-US",
	}
}
