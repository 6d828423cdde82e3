package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	repo := NewSettingsRepository(path)

	_, err := repo.LoadDisplaySettings(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	euro := domain.DisplaySettings{CurrencyCode: "EUR", Symbol: "€", Placement: domain.PlacementAfter, Locale: "de-DE"}
	require.NoError(t, repo.SaveDisplaySettings(ctx, euro))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "display_settings:")
	assert.Contains(t, string(raw), "currency_code: EUR")

	loaded, err := repo.LoadDisplaySettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, euro, *loaded)

	require.NoError(t, repo.DeleteDisplaySettings(ctx))
	_, err = repo.LoadDisplaySettings(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// deleting twice is fine
	assert.NoError(t, repo.DeleteDisplaySettings(ctx))
}

func TestSettingsRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display_settings: [unterminated"), 0o644))

	_, err := NewSettingsRepository(path).LoadDisplaySettings(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
