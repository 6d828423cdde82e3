package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	BaseRepository
}

var _ portsrepo.SettingsRepository = (*settingsRepository)(nil)

func (r *settingsRepository) LoadDisplaySettings(ctx context.Context) (*domain.DisplaySettings, error) {
	var raw []byte
	err := r.Pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, domain.DisplaySettingsKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("no stored %s", domain.DisplaySettingsKey)
		}
		return nil, fmt.Errorf("load %s: %w", domain.DisplaySettingsKey, err)
	}
	var s domain.DisplaySettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", domain.DisplaySettingsKey, err)
	}
	return &s, nil
}

func (r *settingsRepository) SaveDisplaySettings(ctx context.Context, settings domain.DisplaySettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode %s: %w", domain.DisplaySettingsKey, err)
	}
	_, err = r.Pool.Exec(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		domain.DisplaySettingsKey, raw,
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", domain.DisplaySettingsKey, err)
	}
	return nil
}

func (r *settingsRepository) DeleteDisplaySettings(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM settings WHERE key = $1`, domain.DisplaySettingsKey); err != nil {
		return fmt.Errorf("delete %s: %w", domain.DisplaySettingsKey, err)
	}
	return nil
}
