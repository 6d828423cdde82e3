package repositories

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// SettingsRepository persists the display settings record under domain.DisplaySettingsKey.
type SettingsRepository interface {
	// LoadDisplaySettings returns apperrors.ErrNotFound when nothing has been saved.
	LoadDisplaySettings(ctx context.Context) (*domain.DisplaySettings, error)

	// SaveDisplaySettings replaces the stored record.
	SaveDisplaySettings(ctx context.Context, settings domain.DisplaySettings) error

	// DeleteDisplaySettings removes the stored record. Deleting a missing record is not an error.
	DeleteDisplaySettings(ctx context.Context) error
}
