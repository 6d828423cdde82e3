package dto

import "github.com/SscSPs/ledgerbook/internal/core/domain"

// DisplaySettingsRequest defines the display settings a client may store.
type DisplaySettingsRequest struct {
	CurrencyCode string           `json:"currencyCode" binding:"required"`
	Symbol       string           `json:"symbol" binding:"required"`
	Placement    domain.Placement `json:"placement" binding:"required"`
	Locale       string           `json:"locale" binding:"required"`
}

// DisplaySettingsResponse returns the settings together with a formatted sample amount.
type DisplaySettingsResponse struct {
	domain.DisplaySettings
	Example string `json:"example"`
}

// ToDomain converts the request into domain.DisplaySettings
func (r DisplaySettingsRequest) ToDomain() domain.DisplaySettings {
	return domain.DisplaySettings{
		CurrencyCode: r.CurrencyCode,
		Symbol:       r.Symbol,
		Placement:    r.Placement,
		Locale:       r.Locale,
	}
}
